// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "github.com/vincentlao/nop-go"

// ReaderOption configures a Reader at construction time.
type ReaderOption func(*Reader)

// WriterOption configures a Writer at construction time.
type WriterOption func(*Writer)

// WithReaderHandleTable configures r's HandleTable, enabling GetHandle.
func WithReaderHandleTable(t nop.HandleTable) ReaderOption {
	return func(r *Reader) { r.handles = t }
}

// WithWriterHandleTable configures w's HandleTable, enabling PushHandle.
func WithWriterHandleTable(t nop.HandleTable) WriterOption {
	return func(w *Writer) { w.handles = t }
}

// WithReaderBufferSize sets the initial size of r's internal lookahead
// buffer. The buffer still grows on demand to satisfy a single large Ensure;
// this only controls the starting allocation.
func WithReaderBufferSize(n int) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.buf = make([]byte, n)
		}
	}
}

// WithWriterBufferSize sets the initial capacity of w's internal write
// buffer.
func WithWriterBufferSize(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.buf = make([]byte, 0, n)
		}
	}
}
