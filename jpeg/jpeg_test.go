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

package jpeg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func segment(marker byte, body []byte) []byte {
	n := len(body) + 2
	res := []byte{0xFF, marker, byte(n >> 8), byte(n)}
	return append(res, body...)
}

func TestScan(t *testing.T) {
	packet := []byte(`<x:xmpmeta xmlns:x="adobe:ns:meta/"/>`)
	ext1 := append([]byte("0123456789ABCDEF0123456789ABCDEF\x00\x00\x00\x08\x00\x00\x00\x00"), "abcd"...)
	ext2 := append([]byte("0123456789ABCDEF0123456789ABCDEF\x00\x00\x00\x08\x00\x00\x00\x04"), "efgh"...)

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	buf.Write(segment(0xE0, []byte("JFIF\x00\x01\x02")))
	buf.Write(segment(0xE1, []byte("Exif\x00\x00II*\x00")))
	buf.Write(segment(0xE1, append(append([]byte{}, sigStandard...), packet...)))
	buf.Write([]byte{0xFF, 0xFF}) // fill bytes
	buf.Write(segment(0xE1, append(append([]byte{}, sigExtended...), ext1...)))
	buf.Write([]byte{0xFF, 0xD0}) // restart marker
	buf.Write(segment(0xE1, append(append([]byte{}, sigExtended...), ext2...)))
	buf.Write(segment(0xDA, []byte{1, 2, 3}))
	buf.Write(segment(0xE1, append(append([]byte{}, sigStandard...), "after SOS"...)))

	got, err := Scan(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := &Packets{
		Standard: packet,
		Extended: [][]byte{ext1, ext2},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong packets (-want +got):\n%s", d)
	}
}

func TestScanNoXMP(t *testing.T) {
	in := append([]byte{0xFF, 0xD8}, segment(0xDB, make([]byte, 10))...)
	got, err := Scan(bytes.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.Standard != nil || len(got.Extended) != 0 {
		t.Errorf("unexpected packets %v", got)
	}
}

func TestScanErrors(t *testing.T) {
	if _, err := Scan(bytes.NewReader([]byte("GIF89a"))); !errors.Is(err, ErrNotJPEG) {
		t.Errorf("wrong error %v", err)
	}

	truncated := append([]byte{0xFF, 0xD8}, segment(0xE1, make([]byte, 100))[:50]...)
	if _, err := Scan(bytes.NewReader(truncated)); err == nil {
		t.Error("truncated segment accepted")
	}

	garbage := []byte{0xFF, 0xD8, 0x12, 0x34}
	if _, err := Scan(bytes.NewReader(garbage)); err == nil {
		t.Error("garbage accepted")
	}
}
