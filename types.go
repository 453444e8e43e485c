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
	"sort"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/xmpmeta/registry"
)

// Results holds extracted metadata, indexed first by group tag
// (for example "xmp-exif") and then by property name.
//
// Values have one of the following types:
//   - string for simple properties,
//   - int for packed structures like exif:Flash,
//   - float64 for GPS coordinates and altitudes,
//   - [List] for ordered and unordered arrays,
//   - [Lang] for language alternatives,
//   - [Struct] for structures.
type Results map[string]map[string]any

// List is the value of an ordered or unordered array property.
type List []any

// Struct is the value of a structure property, mapping field names to
// values.
type Struct map[string]any

// Lang is the value of a language alternative, mapping lower-case language
// codes to text.  The reserved key "_type" is set to "lang".
type Lang map[string]any

// LangMarker is the key under which a [Lang] value carries its type marker.
const LangMarker = "_type"

// DefaultPrecedence lists the groups in the order used by [Results.Flatten]
// when a name occurs in more than one group.
var DefaultPrecedence = []registry.Group{
	registry.Special,
	registry.General,
	registry.Exif,
	registry.Deprecated,
}

// Groups returns the group tags present in r, in sorted order.
func (r Results) Groups() []string {
	gg := maps.Keys(r)
	sort.Strings(gg)
	return gg
}

// Get returns the value of property name in group g.
func (r Results) Get(g registry.Group, name string) (any, bool) {
	v, ok := r[g.Tag()][name]
	return v, ok
}

// Flatten merges all groups into a single map.  If a property name occurs
// in more than one group, the value from the group which comes first in
// precedence wins.  Groups not listed in precedence are ignored.
func (r Results) Flatten(precedence []registry.Group) map[string]any {
	res := make(map[string]any)
	for i := len(precedence) - 1; i >= 0; i-- {
		for name, v := range r[precedence[i].Tag()] {
			res[name] = v
		}
	}
	return res
}

// set stores a value, creating the group if needed.
func (r Results) set(group, name string, v any) {
	m := r[group]
	if m == nil {
		m = make(map[string]any)
		r[group] = m
	}
	m[name] = v
}

// Clone returns a deep copy of r.
func (r Results) Clone() Results {
	res := make(Results, len(r))
	for g, props := range r {
		m := make(map[string]any, len(props))
		for name, v := range props {
			m[name] = cloneValue(v)
		}
		res[g] = m
	}
	return res
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case List:
		res := make(List, len(v))
		for i, x := range v {
			res[i] = cloneValue(x)
		}
		return res
	case Struct:
		res := make(Struct, len(v))
		for k, x := range v {
			res[k] = cloneValue(x)
		}
		return res
	case Lang:
		return maps.Clone(v)
	default:
		return v
	}
}
