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
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"seehuhn.de/go/xmpmeta/registry"
	"seehuhn.de/go/xmpmeta/validate"
)

var (
	errMalformed = errors.New("malformed XMP")
	errUnsafe    = errors.New("unsafe XMP")
	errTooDeep   = errors.New("XMP nested too deeply")
)

// IsSupported reports whether XMP extraction is available.
// The XML tokenizer is part of the Go standard library, so this is always
// the case.
func IsSupported() bool {
	return true
}

// Reader extracts metadata from one or more XMP packets describing the same
// asset.  A Reader must not be used concurrently from different goroutines.
type Reader struct {
	log             *zap.Logger
	reg             *registry.Registry
	val             *validate.Set
	maxDepth        int
	maxExtendedSize uint32

	results Results
	unsafe  bool
	err     error

	doc *document
	ext *extendedState
}

// New allocates a new Reader.
func New(opts ...Option) *Reader {
	r := &Reader{
		log:             zap.NewNop(),
		reg:             registry.Default(),
		maxDepth:        defaultMaxDepth,
		maxExtendedSize: defaultMaxExtendedSize,
		results:         make(Results),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.val = validate.New(r.log)
	return r
}

// Parse feeds the next chunk of an XMP packet to the reader.
//
// A document may be split into any number of chunks; the last chunk of
// each document must have final set.  After a final chunk, the next call
// to Parse starts a new document, whose properties are merged into the
// results of the previous ones.
//
// The return value reports whether the input received so far is usable.
// Once a document type declaration has been seen, Parse returns false for
// the rest of the lifetime of the Reader.  If a document is malformed,
// Parse returns false for the remaining chunks of this document, but
// properties extracted before the error are kept.
func (r *Reader) Parse(chunk []byte, final bool) bool {
	if r.unsafe {
		return false
	}
	d := r.doc
	if d == nil {
		d = r.newDocument()
		r.doc = d
	}
	if final {
		r.doc = nil
	}
	return d.parse(chunk, final) == nil
}

// RawResults returns a copy of all properties extracted so far, including
// the group "xmp-special" of properties used internally.
func (r *Reader) RawResults() Results {
	return r.results.Clone()
}

// Err returns the reason why the most recent failed call to Parse or
// ParseExtended returned false.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(err error) {
	r.err = err
	if errors.Is(err, errUnsafe) {
		r.unsafe = true
		r.log.Info("refusing unsafe XMP", zap.Error(err))
		return
	}
	r.log.Info("cannot parse XMP", zap.Error(err))
}

// document holds the parser state for one XML document.
type document struct {
	r   *Reader
	log *zap.Logger

	in     *input
	safety doctypeScanner
	feed   feed
	dec    *xml.Decoder

	stack      []frame
	sawElement bool
	unsafe     bool
	err        error
}

func (r *Reader) newDocument() *document {
	d := &document{
		r:   r,
		log: r.log,
	}
	d.in = newInput(d)
	d.dec = xml.NewDecoder(&d.feed)
	d.dec.CharsetReader = charsetReader
	return d
}

// Write receives the document text after conversion to UTF-8.
func (d *document) Write(p []byte) (int, error) {
	n := len(p)
	if d.unsafe {
		return n, nil
	}
	p = stripNUL(p)
	if d.safety.scan(p) {
		d.unsafe = true
		return n, nil
	}
	d.feed.append(p)
	return n, nil
}

// parse processes the next chunk of the document.
func (d *document) parse(chunk []byte, final bool) error {
	if d.err != nil {
		return d.err
	}

	err := d.in.write(chunk, final)
	if err != nil {
		err = fmt.Errorf("%w: %w", errMalformed, err)
	} else if d.unsafe {
		err = fmt.Errorf("%w: document type declaration found", errUnsafe)
	}
	if err == nil {
		if final {
			d.feed.finish()
		}
		err = d.drain()
	}
	if err == nil && final && !d.sawElement {
		err = fmt.Errorf("%w: no XML elements found", errMalformed)
	}

	if err != nil {
		d.err = err
		d.r.fail(err)
	}
	return err
}

// drain passes all complete tokens to the state machine.
func (d *document) drain() error {
	for {
		if !d.feed.final && d.dec.InputOffset() >= d.feed.limit {
			return nil
		}
		t, err := d.dec.Token()
		if err == io.EOF {
			return nil
		} else if errors.Is(err, errNeedMore) {
			return fmt.Errorf("%w: markup split at offset %d", errMalformed, d.dec.InputOffset())
		} else if err != nil {
			return fmt.Errorf("%w: %w", errMalformed, err)
		}

		switch t := t.(type) {
		case xml.StartElement:
			d.sawElement = true
			err = d.startElement(t)
		case xml.EndElement:
			d.endElement()
		case xml.CharData:
			d.charData(t)
		case xml.Directive:
			d.unsafe = true
			err = fmt.Errorf("%w: directive <!%s>", errUnsafe, truncate(t, 16))
		}
		if err != nil {
			return err
		}
	}
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		data = data[:n]
	}
	return string(data)
}
