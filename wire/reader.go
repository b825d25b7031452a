// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/vincentlao/nop-go"
)

// maxConsecutiveEmptyReads bounds the retries Reader.fill performs against an
// underlying reader that returns (0, nil) from Read without making progress.
const maxConsecutiveEmptyReads = 100

// Reader is the pull side of the codec: it produces bytes from an underlying
// io.Reader in order, with no seek and no restart. Reader keeps a small
// internal buffer so that Ensure can assert that n bytes are available
// without consuming them, the way the spec's Reader.Ensure requires.
//
// A Reader is stateful and must not be used from more than one goroutine at
// a time.
type Reader struct {
	rd      io.Reader
	buf     []byte
	r, w    int
	handles nop.HandleTable
}

// NewReader returns a Reader pulling from rd.
func NewReader(rd io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{rd: rd, buf: make([]byte, 512)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset discards any buffered data and reconfigures r to read from rd.
func (r *Reader) Reset(rd io.Reader) {
	r.rd = rd
	r.r, r.w = 0, 0
}

// fill reads more data into r's buffer, growing it if a single read cannot
// make room for the request. It returns the first error encountered, if any.
func (r *Reader) fill(need int) error {
	if r.r > 0 {
		copy(r.buf, r.buf[r.r:r.w])
		r.w -= r.r
		r.r = 0
	}
	if cap(r.buf) < need {
		grown := make([]byte, need)
		copy(grown, r.buf[:r.w])
		r.buf = grown
	}
	r.buf = r.buf[:cap(r.buf)]
	for i := maxConsecutiveEmptyReads; i > 0 && r.w < need; i-- {
		n, err := r.rd.Read(r.buf[r.w:])
		if n < 0 {
			return nop.IoError(io.ErrNoProgress)
		}
		r.w += n
		if err != nil {
			if r.w >= need {
				return nil
			}
			if err == io.EOF {
				return io.EOF
			}
			return nop.IoError(err)
		}
		if n > 0 {
			i = maxConsecutiveEmptyReads
		}
	}
	if r.w < need {
		return nop.IoError(io.ErrNoProgress)
	}
	return nil
}

// Ensure asserts that n bytes are available to read without consuming them.
// It returns io.EOF (or io.ErrUnexpectedEOF, per the usual Go convention) if
// fewer than n bytes remain in the underlying stream.
func (r *Reader) Ensure(n int) error {
	if r.w-r.r >= n {
		return nil
	}
	err := r.fill(n)
	if err == io.EOF && r.w-r.r > 0 {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadByte consumes and returns one byte (the spec's Read(&prefix)).
func (r *Reader) ReadByte() (byte, error) {
	if err := r.Ensure(1); err != nil {
		return 0, err
	}
	b := r.buf[r.r]
	r.r++
	return b, nil
}

// ReadFull consumes exactly len(p) bytes into p (the spec's
// ReadRaw(begin,end)).
func (r *Reader) ReadFull(p []byte) error {
	for len(p) > 0 {
		if r.r == r.w {
			if err := r.fill(min(len(p), cap(r.buf))); err != nil {
				return err
			}
		}
		n := copy(p, r.buf[r.r:r.w])
		r.r += n
		p = p[n:]
	}
	return nil
}

// Skip consumes and discards n bytes.
func (r *Reader) Skip(n int) error {
	for n > 0 {
		if r.r == r.w {
			take := n
			if take > cap(r.buf) {
				take = cap(r.buf)
			}
			if err := r.fill(take); err != nil {
				return err
			}
		}
		d := min(n, r.w-r.r)
		r.r += d
		n -= d
	}
	return nil
}

// GetHandle fetches the out-of-band handle identified by ref from r's
// configured HandleTable. ok is false if no HandleTable was configured or
// ref is unknown to it.
func (r *Reader) GetHandle(ref nop.HandleRef) (handle any, ok bool) {
	if r.handles == nil {
		return nil, false
	}
	return r.handles.Get(ref)
}
