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

package xmpmeta

import (
	"encoding/xml"
	"strings"

	"seehuhn.de/go/xmpmeta/registry"
)

const (
	// RDFNamespace is the namespace for RDF.
	RDFNamespace = registry.NSRDF

	// xmlNamespace is the namespace for XML.
	xmlNamespace = registry.NSXML

	// metaNamespace is the namespace of the optional x:xmpmeta wrapper.
	metaNamespace = registry.NSAdobeMeta
)

var (
	elemXMPMeta        = xml.Name{Space: metaNamespace, Local: "xmpmeta"}
	elemXAPMeta        = xml.Name{Space: metaNamespace, Local: "xapmeta"}
	elemRDFRoot        = xml.Name{Space: RDFNamespace, Local: "RDF"}
	elemRDFDescription = xml.Name{Space: RDFNamespace, Local: "Description"}
	elemRDFSeq         = xml.Name{Space: RDFNamespace, Local: "Seq"}
	elemRDFBag         = xml.Name{Space: RDFNamespace, Local: "Bag"}
	elemRDFAlt         = xml.Name{Space: RDFNamespace, Local: "Alt"}
	elemRDFLi          = xml.Name{Space: RDFNamespace, Local: "li"}
	elemRDFValue       = xml.Name{Space: RDFNamespace, Local: "value"}

	attrRDFParseType = xml.Name{Space: RDFNamespace, Local: "parseType"}
	attrRDFResource  = xml.Name{Space: RDFNamespace, Local: "resource"}
	attrRDFValue     = xml.Name{Space: RDFNamespace, Local: "value"}
	attrXMLLang      = xml.Name{Space: xmlNamespace, Local: "lang"}
)

// isMarkupAttr reports whether an attribute belongs to the RDF/XML syntax
// itself, rather than being a candidate property or qualifier.
func isMarkupAttr(name xml.Name) bool {
	switch {
	case name.Space == "xmlns", name.Space == "" && name.Local == "xmlns":
		return true
	case name.Space == RDFNamespace, name.Space == xmlNamespace:
		return true
	}
	return false
}

// isParseTypeResource reports whether the attributes of an element contain
// rdf:parseType="Resource".
func isParseTypeResource(attrs []xml.Attr) bool {
	for _, a := range attrs {
		if a.Name == attrRDFParseType && a.Value == "Resource" {
			return true
		}
	}
	return false
}

// getAttr returns the value of the named attribute.
func getAttr(attrs []xml.Attr, name xml.Name) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// isBlank reports whether character data consists of white space only.
func isBlank(data []byte) bool {
	return strings.TrimSpace(string(data)) == ""
}
