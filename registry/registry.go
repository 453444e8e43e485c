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

import (
	"sort"
	"sync"

	"golang.org/x/exp/maps"
)

// Registry maps (namespace, local name) pairs to property descriptors.
// A Registry is immutable after construction and can be shared between
// goroutines.
type Registry struct {
	props map[string]map[string]*Descriptor
}

// Schema is the list of properties of one namespace.  Descriptors with an
// empty Name are reported under their local name.
type Schema struct {
	Namespace  string
	Properties []Descriptor
}

// New builds a registry from the given schemas.  Later definitions of the
// same property replace earlier ones.
func New(schemas ...Schema) *Registry {
	r := &Registry{
		props: make(map[string]map[string]*Descriptor),
	}
	for _, s := range schemas {
		m := r.props[s.Namespace]
		if m == nil {
			m = make(map[string]*Descriptor, len(s.Properties))
			r.props[s.Namespace] = m
		}
		for i := range s.Properties {
			d := s.Properties[i]
			d.Namespace = s.Namespace
			if d.Name == "" {
				d.Name = d.Local
			}
			m[d.Local] = &d
		}
	}
	return r
}

// Lookup returns the descriptor for a property.
func (r *Registry) Lookup(ns, local string) (*Descriptor, bool) {
	d, ok := r.props[ns][local]
	return d, ok
}

// Namespaces returns the namespace URIs known to the registry, in sorted
// order.
func (r *Registry) Namespaces() []string {
	nn := maps.Keys(r.props)
	sort.Strings(nn)
	return nn
}

// Properties returns the descriptors for the namespace ns, sorted by
// local name.
func (r *Registry) Properties(ns string) []*Descriptor {
	dd := maps.Values(r.props[ns])
	sort.Slice(dd, func(i, j int) bool {
		return dd[i].Local < dd[j].Local
	})
	return dd
}

// Default returns the registry of all properties this package knows about.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(
			exifSchema,
			tiffSchema,
			auxSchema,
			dublinCoreSchema,
			xmpBasicSchema,
			xmpRightsSchema,
			xmpMMSchema,
			ccSchema,
			xmpNoteSchema,
			photoshopSchema,
			iptcCoreSchema,
			iptcExtSchema,
			gpanoSchema,
		)
	})
	return defaultRegistry
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

func choices(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}
