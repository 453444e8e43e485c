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
	"fmt"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/xmpmeta/registry"
)

type mode uint8

const (
	modeRoot        mode = iota + 1 // x:xmpmeta or rdf:RDF
	modeDescription                 // top-level rdf:Description
	modeIgnore                      // an element and all its descendants are skipped
	modeSimple                      // simple property or struct field
	modeQualified                   // rdf:Description holding rdf:value and qualifiers
	modeValue                       // rdf:value
	modeContainer                   // array property, waiting for rdf:Seq/Bag/Alt
	modeList                        // rdf:Seq, rdf:Bag or rdf:Alt
	modeItem                        // rdf:li holding a simple value
	modeLangItem                    // rdf:li with xml:lang
	modeStruct                      // structure, or an rdf:li in an array of structures
	modeStructDesc                  // rdf:Description inside a structure
)

// frame is one entry of the parser stack.  Values are not stored in the
// frame which produced them, but in the frame with index owner: a
// description, an array or a structure.
type frame struct {
	mode  mode
	name  xml.Name
	desc  *registry.Descriptor
	owner int

	// skip counts the open descendants of an ignored element.
	skip int

	invalid bool

	text     []byte
	value    string
	hasValue bool
	resource bool // rdf:parseType="Resource"
	lang     string

	list   List
	langs  Lang
	fields Struct
}

func (d *document) push(f frame) int {
	d.stack = append(d.stack, f)
	return len(d.stack) - 1
}

func (d *document) ignore(t xml.StartElement) {
	d.push(frame{mode: modeIgnore, name: t.Name, owner: -1})
}

func (d *document) startElement(t xml.StartElement) error {
	depth := len(d.stack)
	if depth > 0 {
		if f := &d.stack[depth-1]; f.mode == modeIgnore {
			f.skip++
			if depth+f.skip > d.r.maxDepth {
				return fmt.Errorf("%w: more than %d levels", errTooDeep, d.r.maxDepth)
			}
			return nil
		}
	}
	if depth >= d.r.maxDepth {
		return fmt.Errorf("%w: more than %d levels", errTooDeep, d.r.maxDepth)
	}

	if depth == 0 {
		if t.Name == elemXMPMeta || t.Name == elemXAPMeta || t.Name == elemRDFRoot {
			d.push(frame{mode: modeRoot, name: t.Name, owner: -1})
		} else {
			d.logElement("ignoring unrecognized element", t.Name)
			d.ignore(t)
		}
		return nil
	}

	parent := depth - 1
	p := &d.stack[parent]
	switch p.mode {
	case modeRoot:
		switch {
		case p.name != elemRDFRoot && t.Name == elemRDFRoot:
			d.push(frame{mode: modeRoot, name: t.Name, owner: -1})
		case p.name == elemRDFRoot && t.Name == elemRDFDescription:
			idx := d.push(frame{mode: modeDescription, name: t.Name, owner: -1})
			d.descriptionAttrs(t.Attr, idx)
		default:
			d.logElement("ignoring unrecognized element", t.Name)
			d.ignore(t)
		}

	case modeDescription:
		desc := d.lookup(t.Name)
		switch {
		case desc == nil:
			d.ignore(t)
		case desc.StructPart:
			d.logElement("ignoring structure field outside of a structure", t.Name)
			d.ignore(t)
		default:
			d.startProperty(t, desc, parent)
		}

	case modeSimple, modeItem, modeLangItem:
		d.startInLeaf(t, parent)

	case modeQualified:
		if t.Name == elemRDFValue {
			d.push(frame{mode: modeValue, name: t.Name, owner: p.owner})
		} else {
			// qualifiers do not contribute to the value
			d.log.Debug("ignoring qualifier",
				zap.String("ns", t.Name.Space), zap.String("name", t.Name.Local))
			d.ignore(t)
		}

	case modeValue:
		d.logElement("unexpected element in rdf:value", t.Name)
		d.stack[p.owner].invalid = true
		d.ignore(t)

	case modeContainer:
		d.startList(t, parent)

	case modeList:
		d.startListItem(t, parent)

	case modeStruct:
		if t.Name == elemRDFDescription {
			d.push(frame{mode: modeStructDesc, name: t.Name, owner: parent})
			d.structAttrs(t.Attr, parent)
			return nil
		}
		d.startField(t, parent)

	case modeStructDesc:
		d.startField(t, p.owner)
	}
	return nil
}

// lookup finds the registry entry for an element or attribute name.
// Unknown names are logged.
func (d *document) lookup(name xml.Name) *registry.Descriptor {
	if name.Space == "" {
		d.logElement("ignoring non-namespaced element", name)
		return nil
	}
	desc, ok := d.r.reg.Lookup(name.Space, name.Local)
	if !ok {
		d.logElement("ignoring unrecognized element", name)
		return nil
	}
	return desc
}

// descriptionAttrs handles the attributes of a top-level rdf:Description
// element.  Property elements with simple, unqualified values may be
// replaced by attributes, see section 7.9.2.2 of ISO 16684-1:2011.
func (d *document) descriptionAttrs(attrs []xml.Attr, owner int) {
	for _, a := range attrs {
		if isMarkupAttr(a.Name) {
			continue
		}
		desc := d.lookup(a.Name)
		if desc == nil {
			continue
		}
		if desc.StructPart {
			d.logElement("ignoring structure field outside of a structure", a.Name)
			continue
		}
		d.store(desc, a.Value, owner, "")
	}
}

// startProperty opens a frame for a recognized property element.
func (d *document) startProperty(t xml.StartElement, desc *registry.Descriptor, owner int) {
	switch desc.Shape {
	case registry.Simple:
		f := frame{mode: modeSimple, name: t.Name, desc: desc, owner: owner}
		f.leafAttrs(t.Attr)
		d.push(f)
	case registry.Seq, registry.Bag, registry.Lang, registry.BagStruct:
		d.push(frame{mode: modeContainer, name: t.Name, desc: desc, owner: owner})
	case registry.Struct:
		idx := d.push(frame{
			mode:   modeStruct,
			name:   t.Name,
			desc:   desc,
			owner:  owner,
			fields: make(Struct),
		})
		d.structAttrs(t.Attr, idx)
	default:
		d.logElement("ignoring property of unknown shape", t.Name)
		d.ignore(t)
	}
}

// leafAttrs records the value given by rdf:resource, and whether the
// element uses rdf:parseType="Resource" to attach qualifiers.
func (f *frame) leafAttrs(attrs []xml.Attr) {
	if isParseTypeResource(attrs) {
		f.resource = true
	}
	if v, ok := getAttr(attrs, attrRDFResource); ok {
		f.value = v
		f.hasValue = true
	}
}

// startInLeaf handles child elements of a simple value.  The only
// children allowed are the ones of a qualified value, see section 7.9.2.5
// of ISO 16684-1:2011.
func (d *document) startInLeaf(t xml.StartElement, leaf int) {
	f := &d.stack[leaf]
	switch {
	case f.resource && t.Name == elemRDFValue:
		d.push(frame{mode: modeValue, name: t.Name, owner: leaf})
	case f.resource:
		d.log.Debug("ignoring qualifier",
			zap.String("ns", t.Name.Space), zap.String("name", t.Name.Local))
		d.ignore(t)
	case t.Name == elemRDFDescription:
		if v, ok := getAttr(t.Attr, attrRDFValue); ok {
			f.value = v
			f.hasValue = true
		}
		d.push(frame{mode: modeQualified, name: t.Name, owner: leaf})
	default:
		d.logElement("unexpected element in simple property", t.Name)
		f.invalid = true
		d.ignore(t)
	}
}

// startList handles the rdf:Seq, rdf:Bag or rdf:Alt element of an array.
func (d *document) startList(t xml.StartElement, container int) {
	c := &d.stack[container]
	var ok bool
	switch c.desc.Shape {
	case registry.Seq:
		// Some producers write rdf:Bag where rdf:Seq is required.
		ok = t.Name == elemRDFSeq || t.Name == elemRDFBag
	case registry.Bag, registry.BagStruct:
		ok = t.Name == elemRDFBag
	case registry.Lang:
		ok = t.Name == elemRDFAlt
	}
	if !ok {
		d.log.Info("unexpected array type",
			zap.String("ns", c.name.Space),
			zap.String("name", c.name.Local),
			zap.String("shape", c.desc.Shape.String()),
			zap.String("got", t.Name.Local))
		c.invalid = true
		d.ignore(t)
		return
	}
	if c.desc.Shape == registry.Lang && c.langs == nil {
		c.langs = make(Lang)
	}
	d.push(frame{mode: modeList, name: t.Name, desc: c.desc, owner: container})
}

// startListItem handles an rdf:li element.
func (d *document) startListItem(t xml.StartElement, list int) {
	if t.Name != elemRDFLi {
		d.logElement("unexpected element in array", t.Name)
		d.ignore(t)
		return
	}
	desc := d.stack[list].desc
	container := d.stack[list].owner

	switch desc.Shape {
	case registry.Lang:
		lang, ok := getAttr(t.Attr, attrXMLLang)
		if !ok {
			d.logElement("ignoring language alternative without xml:lang", d.stack[container].name)
			d.ignore(t)
			return
		}
		f := frame{
			mode:  modeLangItem,
			name:  t.Name,
			desc:  desc,
			owner: container,
			lang:  strings.ToLower(lang),
		}
		f.leafAttrs(t.Attr)
		d.push(f)
	case registry.BagStruct:
		idx := d.push(frame{
			mode:   modeStruct,
			name:   t.Name,
			desc:   desc,
			owner:  container,
			fields: make(Struct),
		})
		d.structAttrs(t.Attr, idx)
	default:
		f := frame{mode: modeItem, name: t.Name, desc: desc, owner: container}
		f.leafAttrs(t.Attr)
		d.push(f)
	}
}

// field finds the descriptor of a structure field.  Fields which are
// unknown or do not belong to the structure are logged and ignored.
func (d *document) field(s *registry.Descriptor, name xml.Name) *registry.Descriptor {
	desc := d.lookup(name)
	if desc == nil {
		return nil
	}
	if !s.HasChild(desc) {
		d.log.Info("ignoring field which is not part of the structure",
			zap.String("ns", name.Space),
			zap.String("name", name.Local),
			zap.Stringer("struct", s))
		return nil
	}
	return desc
}

// structAttrs handles structure fields given as attributes.
func (d *document) structAttrs(attrs []xml.Attr, s int) {
	for _, a := range attrs {
		if isMarkupAttr(a.Name) {
			continue
		}
		desc := d.field(d.stack[s].desc, a.Name)
		if desc == nil {
			continue
		}
		if desc.Shape != registry.Simple {
			d.logElement("ignoring attribute for non-simple field", a.Name)
			continue
		}
		d.store(desc, a.Value, s, "")
	}
}

// startField handles a structure field given as an element.
func (d *document) startField(t xml.StartElement, s int) {
	desc := d.field(d.stack[s].desc, t.Name)
	if desc == nil {
		d.ignore(t)
		return
	}
	d.startProperty(t, desc, s)
}

func (d *document) charData(data xml.CharData) {
	n := len(d.stack)
	if n == 0 {
		if !isBlank(data) {
			d.log.Info("ignoring character data outside of the root element")
		}
		return
	}

	f := &d.stack[n-1]
	switch f.mode {
	case modeSimple, modeItem, modeLangItem, modeValue:
		f.text = append(f.text, data...)
	case modeIgnore:
		// pass
	case modeRoot, modeDescription:
		if !isBlank(data) {
			d.logElement("ignoring character data", f.name)
		}
	default:
		if isBlank(data) {
			return
		}
		d.logElement("unexpected character data", f.name)
		switch f.mode {
		case modeList, modeStructDesc, modeQualified:
			d.stack[f.owner].invalid = true
		default:
			f.invalid = true
		}
	}
}

func (d *document) endElement() {
	n := len(d.stack)
	if n == 0 {
		return
	}
	if f := &d.stack[n-1]; f.mode == modeIgnore && f.skip > 0 {
		f.skip--
		return
	}
	f := d.stack[n-1]
	d.stack[n-1] = frame{}
	d.stack = d.stack[:n-1]

	switch f.mode {
	case modeSimple, modeItem, modeLangItem:
		d.endLeaf(&f)
	case modeValue:
		leaf := &d.stack[f.owner]
		leaf.value = strings.TrimSpace(string(f.text))
		leaf.hasValue = true
	case modeContainer:
		d.endContainer(&f)
	case modeStruct:
		d.endStruct(&f)
	}
}

func (d *document) endLeaf(f *frame) {
	if f.invalid {
		d.logElement("dropping invalid property", f.name)
		return
	}
	var val string
	switch {
	case f.hasValue:
		if !isBlank(f.text) {
			d.logElement("unexpected character data", f.name)
			return
		}
		val = f.value
	case f.resource:
		d.logElement("qualified value without rdf:value", f.name)
		return
	default:
		val = strings.TrimSpace(string(f.text))
	}
	if val == "" {
		return
	}
	d.store(f.desc, val, f.owner, f.lang)
}

func (d *document) endContainer(f *frame) {
	if f.invalid {
		d.logElement("dropping invalid property", f.name)
		return
	}
	var val any
	if f.desc.Shape == registry.Lang {
		if len(f.langs) == 0 {
			return
		}
		f.langs[LangMarker] = "lang"
		val = f.langs
	} else {
		if len(f.list) == 0 {
			return
		}
		val = f.list
	}
	d.storeAggregate(f.desc, val, f.owner)
}

func (d *document) endStruct(f *frame) {
	if f.invalid {
		d.logElement("dropping invalid property", f.name)
		return
	}
	if len(f.fields) == 0 {
		d.log.Info("structure has no valid members", zap.Stringer("property", f.desc))
		return
	}
	d.storeAggregate(f.desc, map[string]any(f.fields), f.owner)
}

// store validates a simple value and passes it to the owner frame.
func (d *document) store(desc *registry.Descriptor, val string, owner int, lang string) {
	v, ok := d.r.val.Validate(desc, val, true)
	if !ok {
		d.log.Debug("failed validation", zap.Stringer("property", desc))
		return
	}
	d.deliver(desc, v, owner, lang)
}

// storeAggregate validates an array or structure and passes it to the
// owner frame.
func (d *document) storeAggregate(desc *registry.Descriptor, val any, owner int) {
	v, ok := d.r.val.Validate(desc, val, false)
	if !ok {
		d.log.Debug("failed validation", zap.Stringer("property", desc))
		return
	}
	if m, isMap := v.(map[string]any); isMap {
		v = Struct(m)
	}
	d.deliver(desc, v, owner, "")
}

func (d *document) deliver(desc *registry.Descriptor, v any, owner int, lang string) {
	o := &d.stack[owner]
	switch o.mode {
	case modeDescription:
		d.r.results.set(desc.Group.Tag(), desc.Name, v)
	case modeStruct:
		o.fields[desc.Name] = v
	case modeContainer:
		if o.desc.Shape == registry.Lang {
			o.langs[lang] = v
		} else {
			o.list = append(o.list, v)
		}
	}
}

func (d *document) logElement(msg string, name xml.Name) {
	d.log.Info(msg, zap.String("ns", name.Space), zap.String("name", name.Local))
}
