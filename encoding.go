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
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// signature is a byte sequence at the start of a document which identifies
// its character encoding.
type signature struct {
	prefix []byte
	enc    encoding.Encoding
}

// signatures lists the byte order marks, followed by the patterns produced
// by an initial "<" or "<?" in the absence of a byte order mark.
// Longer prefixes must come first.
var signatures = []signature{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)},
	{[]byte{0x00, 0x00, 0x00, 0x3C}, utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)},
	{[]byte{0x3C, 0x00, 0x00, 0x00}, utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
	{[]byte{0x00, 0x3C, 0x00, 0x3F}, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{[]byte{0x3C, 0x00, 0x3F, 0x00}, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sniffLen is the number of bytes needed to detect the encoding.
const sniffLen = 4

// detectEncoding determines the character encoding of a document from its
// first bytes.  A nil encoding means UTF-8, in which case skip gives the
// length of a byte order mark to be removed.
func detectEncoding(head []byte) (enc encoding.Encoding, skip int) {
	for _, sig := range signatures {
		if bytes.HasPrefix(head, sig.prefix) {
			return sig.enc, 0
		}
	}
	if bytes.HasPrefix(head, utf8BOM) {
		return nil, len(utf8BOM)
	}
	return nil, 0
}

// input converts the raw bytes of a document to UTF-8 and passes them on
// to the sink.
type input struct {
	sink io.Writer

	head    []byte
	decided bool
	w       io.Writer
	tw      *transform.Writer
}

func newInput(sink io.Writer) *input {
	return &input{sink: sink}
}

// write passes the next chunk of the document through the converter.
// If final is set, all buffered data is flushed.
func (in *input) write(data []byte, final bool) error {
	if !in.decided {
		in.head = append(in.head, data...)
		if len(in.head) < sniffLen && !final {
			return nil
		}
		data = in.head
		in.head = nil
		in.decided = true

		enc, skip := detectEncoding(data)
		data = data[skip:]
		if enc == nil {
			in.w = in.sink
		} else {
			in.tw = transform.NewWriter(in.sink, enc.NewDecoder())
			in.w = in.tw
		}
	}

	if len(data) > 0 {
		if _, err := in.w.Write(data); err != nil {
			return fmt.Errorf("decoding input: %w", err)
		}
	}
	if final && in.tw != nil {
		if err := in.tw.Close(); err != nil {
			return fmt.Errorf("decoding input: %w", err)
		}
		in.tw = nil
	}
	return nil
}

// charsetReader is used by the XML decoder for documents which declare an
// encoding other than UTF-8.  Since the input has already been converted
// to UTF-8 at this point, only the Unicode encodings are accepted.
func charsetReader(label string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-16", "utf-16be", "utf-16le",
		"utf-32", "utf-32be", "utf-32le",
		"ucs-2", "ucs-4", "us-ascii", "ascii", "utf8":
		return r, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", label)
}
