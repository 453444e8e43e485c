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

// dublinCoreSchema lists the Dublin Core properties.
//
// See section 8.4 of ISO 16684-1:2011.  dc:format is not extracted, since
// the media type of a file is better determined from the file itself.
var dublinCoreSchema = Schema{
	Namespace: NSDublinCore,
	Properties: []Descriptor{
		// title is the title or name of the resource.
		{Local: "title", Name: "ObjectName", Group: General, Shape: Lang},

		// description is a textual description of the content of the
		// resource.
		{Local: "description", Name: "ImageDescription", Group: General, Shape: Lang},

		// contributor is a list of contributors to the resource.
		{Local: "contributor", Name: "dc-contributor", Group: General, Shape: Bag},

		// coverage is the extent or scope of the resource.
		{Local: "coverage", Name: "dc-coverage", Group: General, Shape: Simple},

		// creator is a list of the creators of the resource, in order of
		// decreasing precedence.  This is reported together with Exif
		// Artist and IPTC By-line.
		{Local: "creator", Name: "Artist", Group: General, Shape: Seq},

		// date is "a point or period of time associated with an event in
		// the life cycle of the resource" and thus not reported together
		// with the other dates.
		{Local: "date", Name: "dc-date", Group: General, Shape: Seq, Check: CheckDate},

		{Local: "identifier", Name: "Identifier", Group: Deprecated, Shape: Simple},

		// language is a list of languages used in the content of the
		// resource.
		{Local: "language", Name: "LanguageCode", Group: General, Shape: Bag, Check: CheckLangCode},

		{Local: "publisher", Name: "dc-publisher", Group: General, Shape: Bag},

		// relation lists related resources.
		{Local: "relation", Name: "dc-relation", Group: General, Shape: Bag},

		// rights is an informal rights statement for the resource.
		{Local: "rights", Name: "Copyright", Group: General, Shape: Lang},

		// source is a resource from which the present resource is derived.
		// This is different from the IPTC source, which names a person.
		{Local: "source", Name: "dc-source", Group: General, Shape: Simple},

		// subject lists descriptive phrases or keywords.
		{Local: "subject", Name: "Keywords", Group: General, Shape: Bag},

		{Local: "type", Name: "dc-type", Group: General, Shape: Bag},
	},
}
