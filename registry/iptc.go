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

// photoshopSchema lists the legacy IPTC properties stored in the photoshop
// namespace.  Properties which have a replacement in the IPTC core schema
// are in the Deprecated group; deprecated properties without a replacement
// stay in General.
var photoshopSchema = Schema{
	Namespace: NSPhotoshop,
	Properties: []Descriptor{
		{Local: "City", Name: "CityDest", Group: Deprecated, Shape: Simple},
		{Local: "Country", Name: "CountryDest", Group: Deprecated, Shape: Simple},
		{Local: "State", Name: "ProvinceOrStateDest", Group: Deprecated, Shape: Simple},

		// This is an XMP date, not an IPTC date.
		{Local: "DateCreated", Name: "DateTimeOriginal", Group: Deprecated, Shape: Simple, Check: CheckDate},
		{Local: "CaptionWriter", Name: "Writer", Group: General, Shape: Simple},
		{Local: "Instructions", Name: "SpecialInstructions", Group: General, Shape: Simple},
		{Local: "TransmissionReference", Name: "OriginalTransmissionRef", Group: General, Shape: Simple},

		// AuthorsPosition qualifies the first dc:creator entry (IIM 2:85).
		{Local: "AuthorsPosition", Group: Special, Shape: Simple},
		{Local: "Credit", Group: General, Shape: Simple},
		{Local: "Source", Group: General, Shape: Simple},
		{Local: "Urgency", Group: General, Shape: Simple},
		{Local: "Category", Name: "iimCategory", Group: General, Shape: Simple},
		{Local: "SupplementalCategories", Name: "iimSupplementalCategory", Group: General, Shape: Bag},
		{Local: "Headline", Group: General, Shape: Simple},
	},
}

var contactInfoFields = choices(
	"CiAdrExtadr", "CiAdrCity", "CiAdrCtry", "CiEmailWork",
	"CiTelWork", "CiAdrPcode", "CiAdrRegion", "CiUrlWork",
)

var iptcCoreSchema = Schema{
	Namespace: NSIPTCCore,
	Properties: []Descriptor{
		{Local: "CountryCode", Name: "CountryCodeDest", Group: Deprecated, Shape: Simple},
		{Local: "IntellectualGenre", Group: General, Shape: Simple},

		// Scene is a six digit code from http://cv.iptc.org/newscodes/scene/.
		{Local: "Scene", Name: "SceneCode", Group: General, Shape: Bag, Check: CheckInteger},

		// SubjectCode should be 8 ASCII digits.  It is not really an
		// integer, but the integer check lets all valid codes through.
		{Local: "SubjectCode", Name: "SubjectNewsCode", Group: General, Shape: Bag, Check: CheckInteger},
		{Local: "Location", Name: "SublocationDest", Group: Deprecated, Shape: Simple},

		// CreatorContactInfo corresponds to IIM 2:118, which is free text.
		{Local: "CreatorContactInfo", Name: "Contact", Group: General, Shape: Struct, Children: contactInfoFields},
		{Local: "CiAdrExtadr", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiAdrCity", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiAdrCtry", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiEmailWork", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiTelWork", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiAdrPcode", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiAdrRegion", Group: General, Shape: Simple, StructPart: true},
		{Local: "CiUrlWork", Group: General, Shape: Simple, StructPart: true},
	},
}

var locationFields = choices(
	"WorldRegion", "CountryCode", "CountryName", "ProvinceState", "City", "Sublocation",
)

// iptcExtSchema lists properties from the IPTC extension schema.
// LocationShown and LocationCreated are hierarchical.  They are reported
// merged with the flat location fields, see the Results method of the
// reader.
var iptcExtSchema = Schema{
	Namespace: NSIPTCExt,
	Properties: []Descriptor{
		{Local: "Event", Group: General, Shape: Simple},
		{Local: "OrganisationInImageName", Name: "OrganisationInImage", Group: General, Shape: Bag},
		{Local: "PersonInImage", Group: General, Shape: Bag},
		{Local: "MaxAvailHeight", Name: "OriginalImageHeight", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "MaxAvailWidth", Name: "OriginalImageWidth", Group: General, Shape: Simple, Check: CheckInteger},
		{Local: "LocationShown", Group: Special, Shape: BagStruct, Children: locationFields},
		{Local: "LocationCreated", Group: Special, Shape: BagStruct, Children: locationFields},
		{Local: "WorldRegion", Group: Special, Shape: Simple, StructPart: true},
		{Local: "CountryCode", Group: Special, Shape: Simple, StructPart: true},
		{Local: "CountryName", Name: "Country", Group: Special, Shape: Simple, StructPart: true},
		{Local: "ProvinceState", Name: "ProvinceOrState", Group: Special, Shape: Simple, StructPart: true},
		{Local: "City", Group: Special, Shape: Simple, StructPart: true},
		{Local: "Sublocation", Group: Special, Shape: Simple, StructPart: true},
	},
}
