// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/vincentlao/nop-go"
)

// Writer is the push side of the codec: the dual of Reader. It buffers
// writes to an underlying io.Writer and must be Flushed (directly, or via
// Serializer.Encode) once a full value has been written.
type Writer struct {
	wr      io.Writer
	buf     []byte
	handles nop.HandleTable
}

// NewWriter returns a Writer pushing to wr.
func NewWriter(wr io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{wr: wr, buf: make([]byte, 0, 512)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reset discards any buffered, unflushed data and reconfigures w to write to
// wr.
func (w *Writer) Reset(wr io.Writer) {
	w.wr = wr
	w.buf = w.buf[:0]
}

// WriteByte buffers one byte (the spec's Write(prefix)).
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// Write buffers p verbatim (the spec's Write(begin,end)).
func (w *Writer) Write(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

// Skip buffers n zero pad bytes.
func (w *Writer) Skip(n int) error {
	for range n {
		w.buf = append(w.buf, 0)
	}
	return nil
}

// PushHandle records handle in w's configured HandleTable and returns the
// reference a caller should encode inline in its place. PushHandle panics if
// w has no configured HandleTable; configure one with WithWriterHandleTable.
func (w *Writer) PushHandle(handle any) nop.HandleRef {
	if w.handles == nil {
		panic("wire: PushHandle called on a Writer with no HandleTable configured")
	}
	return w.handles.Push(handle)
}

// Flush writes all buffered bytes to the underlying io.Writer and clears the
// buffer.
func (w *Writer) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.wr.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		return nop.IoError(err)
	}
	return nil
}

// Len returns the number of bytes currently buffered, unflushed.
func (w *Writer) Len() int { return len(w.buf) }
