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

// Package jpeg locates XMP packets in JPEG files.
//
// XMP data is stored in APP1 segments.  The main packet follows the
// signature "http://ns.adobe.com/xap/1.0/\x00".  Packets which do not fit
// into a single segment are continued in Extended XMP segments, which
// follow the signature "http://ns.adobe.com/xmp/extension/\x00".
// See part 3, section 1.1.3 of the XMP specification.
package jpeg

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Packets holds the XMP data found in a JPEG file.
type Packets struct {
	// Standard is the main XMP packet, or nil if there is none.
	Standard []byte

	// Extended holds the Extended XMP segments, in file order.  Each
	// segment starts with the 40 byte header (GUID, total length, offset).
	Extended [][]byte
}

// ErrNotJPEG is returned by [Scan] if the input does not start with a JPEG
// start-of-image marker.
var ErrNotJPEG = errors.New("not a JPEG file")

var (
	sigStandard = []byte("http://ns.adobe.com/xap/1.0/\x00")
	sigExtended = []byte("http://ns.adobe.com/xmp/extension/\x00")
)

const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
	markerTEM  = 0x01
)

// Scan reads the metadata segments of a JPEG file and returns the XMP
// packets found.  Scanning stops at the first start-of-scan marker, since
// metadata segments precede the image data.
func Scan(r io.Reader) (*Packets, error) {
	br := bufio.NewReader(r)

	var soi [2]byte
	if _, err := io.ReadFull(br, soi[:]); err != nil || soi[0] != 0xFF || soi[1] != markerSOI {
		return nil, ErrNotJPEG
	}

	res := &Packets{}
	for {
		marker, err := nextMarker(br)
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return nil, err
		}

		switch {
		case marker == markerEOI || marker == markerSOS:
			return res, nil
		case marker == markerTEM || marker >= 0xD0 && marker <= 0xD7:
			// standalone markers without a length field
			continue
		}

		var length uint16
		if err := binary.Read(br, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("segment 0x%02X: %w", marker, err)
		}
		if length < 2 {
			return nil, fmt.Errorf("segment 0x%02X: invalid length %d", marker, length)
		}
		size := int(length) - 2

		if marker != markerAPP1 {
			if _, err := br.Discard(size); err != nil {
				return nil, fmt.Errorf("segment 0x%02X: %w", marker, err)
			}
			continue
		}

		body := make([]byte, size)
		if _, err := io.ReadFull(br, body); err != nil {
			return nil, fmt.Errorf("APP1 segment: %w", err)
		}
		switch {
		case bytes.HasPrefix(body, sigStandard):
			if res.Standard == nil {
				res.Standard = body[len(sigStandard):]
			}
		case bytes.HasPrefix(body, sigExtended):
			res.Extended = append(res.Extended, body[len(sigExtended):])
		}
	}
}

// nextMarker reads the next marker, skipping fill bytes.
func nextMarker(br *bufio.Reader) (byte, error) {
	c, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	if c != 0xFF {
		return 0, fmt.Errorf("expected marker, got 0x%02X", c)
	}
	for c == 0xFF {
		c, err = br.ReadByte()
		if err != nil {
			return 0, err
		}
	}
	return c, nil
}
