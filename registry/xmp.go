// seehuhn.de/go/xmpmeta - extract metadata from XMP packets
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package registry

// xmpBasicSchema lists the XMP basic properties.
//
// See section 8.4 of ISO 16684-1:2011.
var xmpBasicSchema = Schema{
	Namespace: NSXMPBasic,
	Properties: []Descriptor{
		// CreateDate is the date and time the resource was originally
		// created.
		{Local: "CreateDate", Name: "DateTimeDigitized", Group: General, Shape: Simple, Check: CheckDate},

		// CreatorTool is the name of the first known tool used to create
		// the resource.
		{Local: "CreatorTool", Name: "Software", Group: General, Shape: Simple},
		{Local: "Identifier", Group: General, Shape: Bag},
		{Local: "Label", Group: General, Shape: Simple},
		{Local: "ModifyDate", Name: "DateTime", Group: General, Shape: Simple, Check: CheckDate},
		{Local: "MetadataDate", Name: "DateTimeMetadata", Group: General, Shape: Simple, Check: CheckDate},
		{Local: "Nickname", Group: General, Shape: Simple},

		// Rating must be -1 (rejected), 0 (unrated) or a rating in the
		// range (0, 5].
		{Local: "Rating", Group: General, Shape: Simple, Check: CheckRating},
	},
}

// xmpRightsSchema lists the XMP rights management properties.
//
// See section 8.5 of ISO 16684-1:2011.
var xmpRightsSchema = Schema{
	Namespace: NSXMPRights,
	Properties: []Descriptor{
		{Local: "Certificate", Name: "RightsCertificate", Group: General, Shape: Simple},
		{Local: "Marked", Name: "Copyrighted", Group: General, Shape: Simple, Check: CheckBoolean},
		{Local: "Owner", Name: "CopyrightOwner", Group: General, Shape: Bag},
		{Local: "UsageTerms", Group: General, Shape: Lang},
		{Local: "WebStatement", Group: General, Shape: Simple},
	},
}

// xmpMMSchema lists the XMP media management properties.  xmpMM:LastURL
// and xmpMM:DerivedFrom are not extracted, since they often hold local
// file names.
var xmpMMSchema = Schema{
	Namespace: NSXMPMM,
	Properties: []Descriptor{
		{Local: "OriginalDocumentID", Group: General, Shape: Simple},
	},
}

var ccSchema = Schema{
	Namespace: NSCC,
	Properties: []Descriptor{
		{Local: "license", Name: "LicenseUrl", Group: General, Shape: Simple},
		{Local: "morePermissions", Name: "MorePermissionsUrl", Group: General, Shape: Simple},
		{Local: "attributionURL", Name: "AttributionUrl", Group: General, Shape: Simple},
		{Local: "attributionName", Name: "PreferredAttributionName", Group: General, Shape: Simple},
	},
}

// xmpNoteSchema holds xmpNote:HasExtendedXMP, which announces the MD5
// digest of an Extended XMP packet stored outside the main packet.
var xmpNoteSchema = Schema{
	Namespace: NSXMPNote,
	Properties: []Descriptor{
		{Local: "HasExtendedXMP", Group: Special, Shape: Simple},
	},
}
