// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
)

// Serializer wraps a [Writer], offering a single Encode entry point in the
// shape of codello.dev/asn1/ber's Encoder.
type Serializer struct {
	w *Writer
}

// NewSerializer returns a Serializer writing to w.
func NewSerializer(w io.Writer, opts ...WriterOption) *Serializer {
	return &Serializer{w: NewWriter(w, opts...)}
}

// Encode writes val, then flushes the underlying Writer.
func (s *Serializer) Encode(val any) error {
	if err := Write(s.w, val); err != nil {
		return err
	}
	return s.w.Flush()
}

// Writer returns the Serializer's underlying Writer, for callers that need
// direct access to the handle table or buffered bytes.
func (s *Serializer) Writer() *Writer { return s.w }

// Marshal encodes val and returns the resulting bytes.
func Marshal(val any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewSerializer(&buf).Encode(val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserializer wraps a [Reader], offering a single Decode entry point in the
// shape of codello.dev/asn1/ber's Decoder.
type Deserializer struct {
	r *Reader
}

// NewDeserializer returns a Deserializer reading from r.
func NewDeserializer(r io.Reader, opts ...ReaderOption) *Deserializer {
	return &Deserializer{r: NewReader(r, opts...)}
}

// Decode reads a value into target, which must be a non-nil pointer.
func (d *Deserializer) Decode(target any) error {
	return Read(d.r, target)
}

// Reader returns the Deserializer's underlying Reader.
func (d *Deserializer) Reader() *Reader { return d.r }

// Unmarshal decodes b into target, which must be a non-nil pointer.
func Unmarshal(b []byte, target any) error {
	return NewDeserializer(bytes.NewReader(b)).Decode(target)
}
