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

// Package registry holds the catalog of XMP properties which are extracted
// from XMP packets.
//
// Each property is identified by a namespace URI and a local name.  The
// [Descriptor] for a property gives the name under which the value is
// reported, the output [Group], the RDF container [Shape] the value is
// expected to use and the [Check] used to validate it.  Properties which are
// not listed in the registry are never extracted.
package registry

// Group is the output group a property is filed under, independent of the
// XML namespace it was read from.
type Group uint8

// These are the output groups.
const (
	General Group = iota + 1
	Exif
	Deprecated
	Special
)

func (g Group) String() string {
	switch g {
	case General:
		return "general"
	case Exif:
		return "exif"
	case Deprecated:
		return "deprecated"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Tag returns the key used for the group in extraction results,
// for example "xmp-exif".
func (g Group) Tag() string {
	return "xmp-" + g.String()
}

// Shape is the RDF container form a property value takes.
type Shape uint8

// These are the supported shapes.
const (
	// Simple is a single text value.
	Simple Shape = iota + 1

	// Seq is an ordered array (rdf:Seq).
	Seq

	// Bag is an unordered array (rdf:Bag).
	Bag

	// Lang is a language alternative (rdf:Alt with xml:lang on every item).
	Lang

	// Struct is a structure with named fields.
	Struct

	// BagStruct is an unordered array of structures.
	BagStruct
)

func (s Shape) String() string {
	switch s {
	case Simple:
		return "simple"
	case Seq:
		return "seq"
	case Bag:
		return "bag"
	case Lang:
		return "lang"
	case Struct:
		return "struct"
	case BagStruct:
		return "bagstruct"
	default:
		return "unknown"
	}
}

// Check identifies the validation function applied to a property value.
// The functions themselves live in the validate package.
type Check uint8

// These are the available checks.
const (
	CheckNone Check = iota
	CheckBoolean
	CheckRational
	CheckRating
	CheckInteger
	CheckClosed
	CheckReal
	CheckLangCode
	CheckDate
	CheckGPS
	CheckFlash
)

func (c Check) String() string {
	switch c {
	case CheckNone:
		return "none"
	case CheckBoolean:
		return "boolean"
	case CheckRational:
		return "rational"
	case CheckRating:
		return "rating"
	case CheckInteger:
		return "integer"
	case CheckClosed:
		return "closed"
	case CheckReal:
		return "real"
	case CheckLangCode:
		return "langcode"
	case CheckDate:
		return "date"
	case CheckGPS:
		return "gps"
	case CheckFlash:
		return "flash"
	default:
		return "unknown"
	}
}

// Range is an inclusive numeric range.
type Range struct {
	Low, High float64
}

// Contains reports whether x lies in the closed interval [Low, High].
func (r *Range) Contains(x float64) bool {
	return x >= r.Low && x <= r.High
}

// Descriptor describes how one XMP property is extracted.
//
// Descriptors are shared between all users of a [Registry] and must not be
// modified.
type Descriptor struct {
	// Namespace and Local identify the property in XMP.
	Namespace string
	Local     string

	// Name is the name under which the value is reported.
	Name string

	Group Group
	Shape Shape
	Check Check

	// Choices is the set of allowed values for CheckClosed.
	Choices map[string]bool

	// Range optionally restricts numeric values, for CheckClosed and
	// CheckReal.
	Range *Range

	// Children lists the local names of the allowed fields of a Struct or
	// BagStruct property.  Fields live in the same namespace as the
	// structure.
	Children map[string]bool

	// StructPart is set for properties which may only appear as fields
	// of a structure.
	StructPart bool
}

// HasChild reports whether a property described by c may appear as a field
// of the structure described by d.
func (d *Descriptor) HasChild(c *Descriptor) bool {
	if d.Shape != Struct && d.Shape != BagStruct {
		return false
	}
	return c.Namespace == d.Namespace && d.Children[c.Local]
}

func (d *Descriptor) String() string {
	return "<" + d.Namespace + ":" + d.Local + ">"
}
