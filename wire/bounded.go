// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "github.com/vincentlao/nop-go"

// BoundedReader wraps a Reader with a fixed byte budget, capacity. It
// maintains the invariant 0 <= index <= capacity: every consuming operation
// checks that the requested byte count does not exceed capacity-index before
// delegating to the wrapped Reader, so the first operation in a sequence
// whose cumulative request would exceed capacity fails with a NoBuffer error
// and leaves the inner Reader untouched by that operation. The rpc package
// reads each request's argument bytes and each response's body through a
// BoundedReader sized to the frame's declared length, so that a truncated or
// oversized payload is always an explicit error rather than a read past the
// intended frame. The value codecs in this package (structures, Variants,
// containers) do not wrap their reads in a BoundedReader.
type BoundedReader struct {
	r        *Reader
	capacity int
	index    int
}

// NewBoundedReader returns a BoundedReader scoping at most capacity bytes of
// r.
func NewBoundedReader(r *Reader, capacity int) *BoundedReader {
	return &BoundedReader{r: r, capacity: capacity}
}

// Capacity returns the total byte budget of b.
func (b *BoundedReader) Capacity() int { return b.capacity }

// Index returns the number of bytes consumed from b so far.
func (b *BoundedReader) Index() int { return b.index }

// Remaining returns the number of bytes left in b's budget.
func (b *BoundedReader) Remaining() int { return b.capacity - b.index }

// checkBudget verifies that requesting n more bytes keeps index within
// capacity, advancing index only if it does.
func (b *BoundedReader) checkBudget(n int) error {
	if n > b.Remaining() {
		return nop.NoBuffer(n, b.Remaining())
	}
	b.index += n
	return nil
}

// Ensure asserts that n bytes are available within b's remaining budget
// without consuming them.
func (b *BoundedReader) Ensure(n int) error {
	if n > b.Remaining() {
		return nop.NoBuffer(n, b.Remaining())
	}
	return b.r.Ensure(n)
}

// ReadByte consumes and returns one byte, failing with NoBuffer if doing so
// would exceed b's budget.
func (b *BoundedReader) ReadByte() (byte, error) {
	if err := b.checkBudget(1); err != nil {
		return 0, err
	}
	return b.r.ReadByte()
}

// ReadFull consumes exactly len(p) bytes into p, failing with NoBuffer if
// doing so would exceed b's budget.
func (b *BoundedReader) ReadFull(p []byte) error {
	if err := b.checkBudget(len(p)); err != nil {
		return err
	}
	return b.r.ReadFull(p)
}

// Skip consumes and discards n bytes, failing with NoBuffer if doing so
// would exceed b's budget.
func (b *BoundedReader) Skip(n int) error {
	if err := b.checkBudget(n); err != nil {
		return err
	}
	return b.r.Skip(n)
}

// GetHandle delegates to the wrapped Reader's HandleTable.
func (b *BoundedReader) GetHandle(ref nop.HandleRef) (any, bool) {
	return b.r.GetHandle(ref)
}

// ReadPadding discards capacity-index bytes: the documented way to consume
// unknown trailing bytes within a framed sub-stream. After ReadPadding,
// index == capacity.
func (b *BoundedReader) ReadPadding() error {
	return b.Skip(b.Remaining())
}

// Reader returns the underlying unbounded Reader, for use by code (such as a
// nested BoundedReader for a sub-frame) that needs to keep reading past b's
// own budget from the same stream.
func (b *BoundedReader) Reader() *Reader { return b.r }
