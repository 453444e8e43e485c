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
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/xmpmeta/registry"
)

// Layout of the header of an Extended XMP packet, as found in JPEG APP1
// segments.  See section 1.1.3.1 of part 3 of the XMP specification.
const (
	extGUIDLen   = 32
	extHeaderLen = extGUIDLen + 4 + 4
)

// extendedState collects the fragments of an Extended XMP payload.
type extendedState struct {
	guid   string
	length uint32
	buf    []byte
}

// ParseExtended adds one fragment of an Extended XMP payload.
//
// The packet starts with the 32 byte upper-case hexadecimal MD5 digest of
// the complete payload, followed by the total payload length and the
// offset of this fragment, both as big-endian uint32 values.  The rest of
// the packet is the fragment data.
//
// A fragment is only accepted if its digest matches the xmpNote:HasExtendedXMP
// property of the main packet and if it continues the fragments received
// so far.  Once all fragments have been received, the payload is verified
// and parsed as an XMP document, and the extracted properties are merged
// into the results.
//
// The return value reports whether the fragment was accepted.  If the
// complete payload fails verification or parsing, the return value is false
// and the results are left unchanged.
func (r *Reader) ParseExtended(packet []byte) bool {
	if r.unsafe {
		return false
	}
	if len(packet) < extHeaderLen {
		r.log.Info("extended XMP packet too short", zap.Int("length", len(packet)))
		return false
	}
	guid := string(packet[:extGUIDLen])
	length := binary.BigEndian.Uint32(packet[extGUIDLen:])
	offset := binary.BigEndian.Uint32(packet[extGUIDLen+4:])
	data := packet[extHeaderLen:]

	want, _ := r.results[registry.Special.Tag()]["HasExtendedXMP"].(string)
	if want == "" || guid != want {
		r.log.Info("extended XMP GUID mismatch",
			zap.String("guid", guid),
			zap.String("expected", want))
		return false
	}
	if length > r.maxExtendedSize {
		r.log.Info("extended XMP payload too large",
			zap.Uint32("length", length),
			zap.Uint32("limit", r.maxExtendedSize))
		return false
	}

	if r.ext == nil || r.ext.guid != guid || r.ext.length != length {
		r.ext = &extendedState{guid: guid, length: length}
	}
	ext := r.ext
	if offset != uint32(len(ext.buf)) {
		r.log.Info("ignoring out of order extended XMP fragment",
			zap.Uint32("offset", offset),
			zap.Int("expected", len(ext.buf)))
		return false
	}
	if uint64(offset)+uint64(len(data)) > uint64(length) {
		r.log.Info("extended XMP fragment exceeds declared length",
			zap.Uint32("offset", offset),
			zap.Int("size", len(data)),
			zap.Uint32("length", length))
		r.ext = nil
		return false
	}
	ext.buf = append(ext.buf, data...)
	if uint32(len(ext.buf)) < length {
		return true
	}

	r.ext = nil
	sum := md5.Sum(ext.buf)
	if got := strings.ToUpper(hex.EncodeToString(sum[:])); got != guid {
		r.log.Info("extended XMP digest mismatch",
			zap.String("digest", got),
			zap.String("expected", guid))
		return false
	}

	saved := r.results.Clone()
	d := r.newDocument()
	if err := d.parse(ext.buf, true); err != nil {
		r.results = saved
		return false
	}
	return true
}
