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

// Namespace URIs of the schemas in the default registry.
const (
	NSExif        = "http://ns.adobe.com/exif/1.0/"
	NSTIFF        = "http://ns.adobe.com/tiff/1.0/"
	NSExifAux     = "http://ns.adobe.com/exif/1.0/aux/"
	NSDublinCore  = "http://purl.org/dc/elements/1.1/"
	NSXMPBasic    = "http://ns.adobe.com/xap/1.0/"
	NSXMPRights   = "http://ns.adobe.com/xap/1.0/rights/"
	NSXMPMM       = "http://ns.adobe.com/xap/1.0/mm/"
	NSCC          = "http://creativecommons.org/ns#"
	NSXMPNote     = "http://ns.adobe.com/xmp/note/"
	NSPhotoshop   = "http://ns.adobe.com/photoshop/1.0/"
	NSIPTCCore    = "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/"
	NSIPTCExt     = "http://iptc.org/std/Iptc4xmpExt/2008-02-29/"
	NSGPano       = "http://ns.google.com/photos/1.0/panorama/"
	NSRDF         = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSXML         = "http://www.w3.org/XML/1998/namespace"
	NSAdobeMeta   = "adobe:ns:meta/"
	NSExtendedXMP = "http://ns.adobe.com/xmp/extension/"
)

// defaultPrefix gives the customary XML prefix for each namespace.
var defaultPrefix = map[string]string{
	NSXML:        "xml",
	NSRDF:        "rdf",
	NSAdobeMeta:  "x",
	NSExif:       "exif",
	NSTIFF:       "tiff",
	NSExifAux:    "aux",
	NSDublinCore: "dc",
	NSXMPBasic:   "xmp",
	NSXMPRights:  "xmpRights",
	NSXMPMM:      "xmpMM",
	NSCC:         "cc",
	NSXMPNote:    "xmpNote",
	NSPhotoshop:  "photoshop",
	NSIPTCCore:   "Iptc4xmpCore",
	NSIPTCExt:    "Iptc4xmpExt",
	NSGPano:      "GPano",
}

// Prefix returns the customary XML prefix for the namespace ns, or the
// empty string if there is none.
func Prefix(ns string) string {
	return defaultPrefix[ns]
}
