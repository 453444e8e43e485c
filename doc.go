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

// Package xmpmeta extracts metadata from Extensible Metadata Platform (XMP)
// packets, as found in JPEG, PNG, PDF and other media files.
//
// # Reading
//
// A [Reader] accumulates metadata from one or more XMP packets describing
// the same asset.  Packets are passed to [Reader.Parse], either in one piece
// or split into chunks; Extended XMP fragments are passed to
// [Reader.ParseExtended].  The extracted values are available from
// [Reader.Results] at any time.
//
// Only properties listed in a [registry.Registry] are extracted.  Every
// property is reported under a canonical name in one of the groups
// "xmp-general", "xmp-exif" and "xmp-deprecated".  Values are validated and
// normalized as described in package [seehuhn.de/go/xmpmeta/validate].
//
// # Writing
//
// [Results.Encode] writes extracted values back as a normalized XMP packet,
// suitable for use as a sidecar file.
//
// # Untrusted input
//
// Packets are assumed to come from untrusted files.  Elements and
// attributes which are not recognized, and values which fail validation,
// are logged and dropped while the rest of the packet is still used.
// Malformed XML stops extraction for the current document, but keeps the
// values extracted up to that point.  A document type declaration anywhere
// in the input makes the Reader refuse all further input.
package xmpmeta
