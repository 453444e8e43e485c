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
	"errors"
	"io"
)

// errNeedMore is returned by the feed when the XML decoder tries to read
// beyond the data received so far.
var errNeedMore = errors.New("incomplete input")

// feed holds the bytes of one document which have been received but not
// yet consumed by the XML decoder.
//
// encoding/xml pulls its input and cannot resume after a read error, while
// callers of [Reader.Parse] push data in arbitrary pieces.  To bridge the
// two, the feed tracks the end of the last complete piece of markup
// (limit), and the decoder is only asked for a new token while its input
// offset is before this limit.  All offsets are counted from the start of
// the document.
type feed struct {
	buf   []byte
	base  int64 // offset of buf[0]
	pos   int64 // read position
	limit int64
	final bool

	lex lexer
}

// append adds data to the feed and advances the limit.
func (f *feed) append(data []byte) {
	if len(data) == 0 {
		return
	}
	f.compact()
	start := f.end()
	f.buf = append(f.buf, data...)
	if k := f.lex.scan(data); k > 0 {
		f.limit = start + int64(k)
	}
}

// finish marks the end of the document.
// After finish has been called, the decoder may read all remaining data.
func (f *feed) finish() {
	f.final = true
	f.limit = f.end()
}

func (f *feed) end() int64 {
	return f.base + int64(len(f.buf))
}

// compact discards data which has already been read.
func (f *feed) compact() {
	used := int(f.pos - f.base)
	if used < 4096 || used < len(f.buf)/2 {
		return
	}
	n := copy(f.buf, f.buf[used:])
	f.buf = f.buf[:n]
	f.base = f.pos
}

// ReadByte implements the [io.ByteReader] interface.
func (f *feed) ReadByte() (byte, error) {
	if f.pos >= f.end() {
		if f.final {
			return 0, io.EOF
		}
		return 0, errNeedMore
	}
	c := f.buf[f.pos-f.base]
	f.pos++
	return c, nil
}

// Read implements the [io.Reader] interface.
func (f *feed) Read(p []byte) (int, error) {
	if f.pos >= f.end() {
		if f.final {
			return 0, io.EOF
		}
		return 0, errNeedMore
	}
	n := copy(p, f.buf[f.pos-f.base:])
	f.pos += int64(n)
	return n, nil
}

type lexState uint8

const (
	lexText    lexState = iota
	lexOpen             // after "<"
	lexBang             // after "<!", collecting the opener
	lexTag              // inside a start or end tag
	lexQuote            // inside a quoted attribute value
	lexComment          // inside "<!-- ... -->"
	lexCDATA            // inside "<![CDATA[ ... ]]>"
	lexPI               // inside "<? ... ?>"
	lexDecl             // inside any other "<! ... >"
)

const (
	commentOpener = "--"
	cdataOpener   = "[CDATA["
)

// lexer finds the ends of markup in a byte stream.  It knows just enough
// XML syntax to tell a '>' which closes a tag, comment, CDATA section or
// processing instruction apart from one which occurs inside text or inside
// an attribute value.
type lexer struct {
	state  lexState
	quote  byte
	opener []byte
	prev   [2]byte
}

// scan processes the next bytes of the stream.  It returns the number of
// bytes of data up to and including the last byte which completes a piece
// of markup, or 0 if no markup ends inside data.
func (l *lexer) scan(data []byte) int {
	last := 0
	for i, c := range data {
		if l.step(c) {
			last = i + 1
		}
	}
	return last
}

// step consumes one byte and reports whether this byte ends a piece of
// markup.
func (l *lexer) step(c byte) bool {
	done := false
	switch l.state {
	case lexText:
		if c == '<' {
			l.state = lexOpen
		}
	case lexOpen:
		switch c {
		case '?':
			l.state = lexPI
		case '!':
			l.state = lexBang
			l.opener = l.opener[:0]
		case '>':
			// "<>" is malformed; let the decoder report it
			l.state = lexText
			done = true
		default:
			l.state = lexTag
		}
	case lexBang:
		l.opener = append(l.opener, c)
		s := string(l.opener)
		switch {
		case s == commentOpener:
			l.state = lexComment
		case s == cdataOpener:
			l.state = lexCDATA
		case isPrefix(s, commentOpener), isPrefix(s, cdataOpener):
			// keep collecting
		case c == '>':
			l.state = lexText
			done = true
		default:
			l.state = lexDecl
		}
		c = 0 // the opener does not count towards "-->" or "]]>"
	case lexTag:
		switch c {
		case '"', '\'':
			l.state = lexQuote
			l.quote = c
		case '>':
			l.state = lexText
			done = true
		}
	case lexQuote:
		if c == l.quote {
			l.state = lexTag
		}
	case lexComment:
		if c == '>' && l.prev == [2]byte{'-', '-'} {
			l.state = lexText
			done = true
		}
	case lexCDATA:
		if c == '>' && l.prev == [2]byte{']', ']'} {
			l.state = lexText
			done = true
		}
	case lexPI:
		if c == '>' && l.prev[1] == '?' {
			l.state = lexText
			done = true
		}
	case lexDecl:
		if c == '>' {
			l.state = lexText
			done = true
		}
	}
	l.prev[0], l.prev[1] = l.prev[1], c
	return done
}

func isPrefix(s, full string) bool {
	return len(s) < len(full) && full[:len(s)] == s
}
