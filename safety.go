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

import "bytes"

// doctypeSignature starts a document type declaration.  Documents which
// contain one are refused, since a DTD can declare entities which expand
// to huge amounts of text or refer to external resources.
const doctypeSignature = "<!doctype"

// doctypeScanner looks for a document type declaration in a stream of
// bytes.  The last bytes of each chunk are kept, so that a signature split
// across chunks is still found.
type doctypeScanner struct {
	tail  []byte
	found bool
}

// scan processes the next chunk and reports whether a document type
// declaration has been seen so far.
func (s *doctypeScanner) scan(data []byte) bool {
	if s.found {
		return true
	}
	window := append(s.tail, data...)
	if indexFold(window, doctypeSignature) >= 0 {
		s.found = true
		s.tail = nil
		return true
	}
	keep := len(doctypeSignature) - 1
	if len(window) > keep {
		window = window[len(window)-keep:]
	}
	s.tail = append(s.tail[:0], window...)
	return false
}

// indexFold returns the index of the first ASCII case-insensitive match of
// the lower-case string sig in data, or -1.
func indexFold(data []byte, sig string) int {
	n := len(sig)
	for i := 0; i+n <= len(data); i++ {
		j := 0
		for j < n && lowerASCII(data[i+j]) == sig[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// stripNUL removes all NUL bytes from data.  The XML decoder rejects the
// character U+0000, which some producers emit as padding.
func stripNUL(data []byte) []byte {
	if bytes.IndexByte(data, 0) < 0 {
		return data
	}
	res := make([]byte, 0, len(data))
	for _, c := range data {
		if c != 0 {
			res = append(res, c)
		}
	}
	return res
}
