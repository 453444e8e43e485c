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
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/xmpmeta/registry"
)

// Encode serializes the properties in r as an XMP packet.
//
// Property names are mapped back to XMP properties using reg, or
// [registry.Default] if reg is nil.  Properties which are not listed in the
// registry, for example the location fields added by [Reader.Results], and
// values which do not fit the shape of their property are omitted.
// Converted values (flash bit fields, GPS coordinates and altitudes) are
// written in their XMP form, so that reading the packet again gives the
// same results.
func (r Results) Encode(reg *registry.Registry) ([]byte, error) {
	if reg == nil {
		reg = registry.Default()
	}
	index := propertyIndex(reg)

	var props []property
	for _, g := range r.Groups() {
		for name, v := range r[g] {
			d, ok := index[groupName{g, name}]
			if !ok {
				continue
			}
			props = append(props, property{d, v})

			// Results stores the signed altitude without its reference.
			if x, isFloat := v.(float64); isFloat && d.Local == "GPSAltitude" {
				if _, hasRef := r[g]["GPSAltitudeRef"]; hasRef {
					continue
				}
				ref, ok := reg.Lookup(d.Namespace, "GPSAltitudeRef")
				if !ok {
					continue
				}
				sign := "0"
				if x < 0 {
					sign = "1"
				}
				props = append(props, property{ref, sign})
			}
		}
	}
	sort.Slice(props, func(i, j int) bool {
		if props[i].desc.Namespace != props[j].desc.Namespace {
			return props[i].desc.Namespace < props[j].desc.Namespace
		}
		return props[i].desc.Local < props[j].desc.Local
	})

	nsUsed := make(map[string]struct{})
	for _, p := range props {
		nsUsed[p.desc.Namespace] = struct{}{}
	}
	e, err := newEncoder(reg, nsUsed)
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		err = e.encodeProperty(p.desc, p.val)
		if err != nil {
			return nil, err
		}
	}
	err = e.Close()
	if err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type property struct {
	desc *registry.Descriptor
	val  any
}

type groupName struct {
	group, name string
}

// propertyIndex maps output names back to top-level properties.  If
// several properties share an output name, the first one in namespace
// order is used.
func propertyIndex(reg *registry.Registry) map[groupName]*registry.Descriptor {
	index := make(map[groupName]*registry.Descriptor)
	for _, ns := range reg.Namespaces() {
		for _, d := range reg.Properties(ns) {
			if d.StructPart {
				continue
			}
			key := groupName{d.Group.Tag(), d.Name}
			if _, seen := index[key]; !seen {
				index[key] = d
			}
		}
	}
	return index
}

// An encoder writes XMP data to a buffer.
type encoder struct {
	*xml.Encoder
	buf        *bytes.Buffer
	reg        *registry.Registry
	nsToPrefix map[string]string
}

func newEncoder(reg *registry.Registry, nsUsed map[string]struct{}) (*encoder, error) {
	nsToPrefix := map[string]string{
		xmlNamespace:  "xml",
		RDFNamespace:  "rdf",
		metaNamespace: "x",
	}
	prefixUsed := map[string]bool{"xml": true, "rdf": true, "x": true}
	nameSpaces := maps.Keys(nsUsed)
	sort.Strings(nameSpaces)
	for _, ns := range nameSpaces {
		pfx := registry.Prefix(ns)
		if pfx == "" || prefixUsed[pfx] {
			pfx = makePrefix(ns, prefixUsed)
		}
		nsToPrefix[ns] = pfx
		prefixUsed[pfx] = true
	}

	buf := &bytes.Buffer{}
	enc := xml.NewEncoder(buf)
	enc.Indent("", " ")
	e := &encoder{
		Encoder:    enc,
		buf:        buf,
		reg:        reg,
		nsToPrefix: nsToPrefix,
	}

	err := e.EncodeToken(xml.ProcInst{
		Target: "xpacket",
		Inst:   []byte("begin=\"\uFEFF\" id=\"W5M0MpCehiHzreSzNTczkc9d\""),
	})
	if err != nil {
		return nil, err
	}
	err = e.EncodeToken(xml.StartElement{
		Name: e.makeName(metaNamespace, "xmpmeta"),
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:x"}, Value: metaNamespace}},
	})
	if err != nil {
		return nil, err
	}

	attrs := []xml.Attr{{Name: xml.Name{Local: "xmlns:rdf"}, Value: RDFNamespace}}
	err = e.EncodeToken(xml.StartElement{
		Name: e.makeName(RDFNamespace, "RDF"),
		Attr: attrs,
	})
	if err != nil {
		return nil, err
	}

	attrs = []xml.Attr{{Name: e.makeName(RDFNamespace, "about"), Value: ""}}
	for _, ns := range nameSpaces {
		attrs = append(attrs, xml.Attr{
			Name:  xml.Name{Local: "xmlns:" + nsToPrefix[ns]},
			Value: ns,
		})
	}
	err = e.EncodeToken(xml.StartElement{
		Name: e.makeName(RDFNamespace, "Description"),
		Attr: attrs,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Close finishes the packet.  This must be called after all properties
// have been written.
func (e *encoder) Close() error {
	for _, local := range []string{"Description", "RDF"} {
		err := e.EncodeToken(xml.EndElement{Name: e.makeName(RDFNamespace, local)})
		if err != nil {
			return err
		}
	}
	err := e.EncodeToken(xml.EndElement{Name: e.makeName(metaNamespace, "xmpmeta")})
	if err != nil {
		return err
	}
	err = e.EncodeToken(xml.CharData("\n"))
	if err != nil {
		return err
	}
	err = e.EncodeToken(xml.ProcInst{
		Target: "xpacket",
		Inst:   []byte(`end="w"`),
	})
	if err != nil {
		return err
	}
	return e.Encoder.Close()
}

// makeName returns a name with the prefix already applied, so that
// encoding/xml does not invent its own namespace declarations.
func (e *encoder) makeName(ns, local string) xml.Name {
	pfx, ok := e.nsToPrefix[ns]
	if !ok {
		panic("namespace not registered: " + ns)
	}
	return xml.Name{Local: pfx + ":" + local}
}

func (e *encoder) encodeProperty(d *registry.Descriptor, v any) error {
	name := e.makeName(d.Namespace, d.Local)

	switch d.Shape {
	case registry.Simple:
		text, ok := e.text(d, v)
		if !ok {
			return nil
		}
		return e.EncodeElement(text, xml.StartElement{Name: name})

	case registry.Seq, registry.Bag, registry.BagStruct:
		items, ok := v.(List)
		if !ok || len(items) == 0 {
			return nil
		}
		container := "Bag"
		if d.Shape == registry.Seq {
			container = "Seq"
		}
		return e.wrap(name, container, func() error {
			for _, item := range items {
				var err error
				if d.Shape == registry.BagStruct {
					err = e.encodeStruct(d, e.makeName(RDFNamespace, "li"), item)
				} else if text, ok := e.text(d, item); ok {
					err = e.EncodeElement(text, xml.StartElement{Name: e.makeName(RDFNamespace, "li")})
				}
				if err != nil {
					return err
				}
			}
			return nil
		})

	case registry.Lang:
		alt, ok := v.(Lang)
		if !ok {
			return nil
		}
		langs := maps.Keys(alt)
		sort.Slice(langs, func(i, j int) bool {
			if (langs[i] == "x-default") != (langs[j] == "x-default") {
				return langs[i] == "x-default"
			}
			return langs[i] < langs[j]
		})
		return e.wrap(name, "Alt", func() error {
			for _, lang := range langs {
				text, isText := alt[lang].(string)
				if lang == LangMarker || !isText {
					continue
				}
				err := e.EncodeElement(text, xml.StartElement{
					Name: e.makeName(RDFNamespace, "li"),
					Attr: []xml.Attr{{Name: e.makeName(xmlNamespace, "lang"), Value: lang}},
				})
				if err != nil {
					return err
				}
			}
			return nil
		})

	case registry.Struct:
		if flash, isInt := v.(int); isInt && d.Check == registry.CheckFlash {
			v = unpackFlash(flash)
		}
		return e.encodeStruct(d, name, v)
	}
	return nil
}

// wrap writes an array property with the given RDF container type.
func (e *encoder) wrap(name xml.Name, container string, body func() error) error {
	err := e.EncodeToken(xml.StartElement{Name: name})
	if err != nil {
		return err
	}
	err = e.EncodeToken(xml.StartElement{Name: e.makeName(RDFNamespace, container)})
	if err != nil {
		return err
	}
	err = body()
	if err != nil {
		return err
	}
	err = e.EncodeToken(xml.EndElement{Name: e.makeName(RDFNamespace, container)})
	if err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

// encodeStruct writes the fields of a structure, using
// rdf:parseType="Resource".  Fields are written in order of their local
// names.
func (e *encoder) encodeStruct(d *registry.Descriptor, name xml.Name, v any) error {
	fields, ok := v.(Struct)
	if !ok {
		return nil
	}

	var members []property
	for _, local := range maps.Keys(d.Children) {
		c, ok := e.reg.Lookup(d.Namespace, local)
		if !ok {
			continue
		}
		if fv, present := fields[c.Name]; present {
			members = append(members, property{c, fv})
		}
	}
	if len(members) == 0 {
		return nil
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].desc.Local < members[j].desc.Local
	})

	start := xml.StartElement{
		Name: name,
		Attr: []xml.Attr{{Name: e.makeName(RDFNamespace, "parseType"), Value: "Resource"}},
	}
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}
	for _, m := range members {
		err = e.encodeProperty(m.desc, m.val)
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// text converts a simple value to its XMP form.
func (e *encoder) text(d *registry.Descriptor, v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, v != ""
	case int:
		return strconv.Itoa(v), true
	case float64:
		switch {
		case d.Check == registry.CheckGPS:
			return formatGPS(v, strings.Contains(d.Local, "Latitude")), true
		case d.Local == "GPSAltitude":
			return strconv.FormatInt(int64(math.Round(math.Abs(v)*1000)), 10) + "/1000", true
		default:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

// formatGPS converts signed decimal degrees to the "D,M.mX" form.
func formatGPS(x float64, latitude bool) string {
	hemisphere := "N"
	if !latitude {
		hemisphere = "E"
	}
	if x < 0 {
		x = -x
		if latitude {
			hemisphere = "S"
		} else {
			hemisphere = "W"
		}
	}
	const scale = 60 * 1000000
	total := int64(math.Round(x * scale))
	deg := total / scale
	micro := total % scale
	return fmt.Sprintf("%d,%d.%06d%s", deg, micro/1000000, micro%1000000, hemisphere)
}

// unpackFlash is the inverse of the exif:Flash bit packing.
func unpackFlash(n int) Struct {
	flag := func(bit int) string {
		if n&bit != 0 {
			return "True"
		}
		return "False"
	}
	return Struct{
		"Fired":      flag(1 << 0),
		"Return":     strconv.Itoa(n>>1&3),
		"Mode":       strconv.Itoa(n>>3&3),
		"Function":   flag(1 << 5),
		"RedEyeMode": flag(1 << 6),
	}
}

// makePrefix invents a prefix for a namespace without a customary one.
// The last path element of the URI is used if it is a valid name.
func makePrefix(ns string, used map[string]bool) string {
	pfx := strings.TrimRight(ns, "/#")
	if i := strings.LastIndexAny(pfx, "/#:"); i >= 0 {
		pfx = pfx[i+1:]
	}
	if !isSimpleName(pfx) || len(pfx) >= 3 && strings.EqualFold(pfx[:3], "xml") {
		pfx = "ns"
	}
	if !used[pfx] {
		return pfx
	}
	for i := 1; ; i++ {
		if id := pfx + strconv.Itoa(i); !used[id] {
			return id
		}
	}
}

func isSimpleName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
