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
	"go.uber.org/zap"

	"seehuhn.de/go/xmpmeta/registry"
)

const (
	defaultMaxDepth        = 64
	defaultMaxExtendedSize = 16 << 20
)

// Option configures a [Reader].
type Option func(*Reader)

// WithLogger sets the logger which receives a record for every ignored
// element or attribute and for every rejected value.
// The default is to discard all log output.
func WithLogger(log *zap.Logger) Option {
	return func(r *Reader) {
		if log != nil {
			r.log = log
		}
	}
}

// WithRegistry sets the catalog of recognized properties.
// The default is [registry.Default].
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Reader) {
		if reg != nil {
			r.reg = reg
		}
	}
}

// WithMaxDepth limits the element nesting depth of a document.
// Documents nested more deeply are treated as malformed.
func WithMaxDepth(depth int) Option {
	return func(r *Reader) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithMaxExtendedSize limits the declared total length of an Extended XMP
// payload.  Fragments declaring a larger payload are rejected.
func WithMaxExtendedSize(size uint32) Option {
	return func(r *Reader) {
		if size > 0 {
			r.maxExtendedSize = size
		}
	}
}
