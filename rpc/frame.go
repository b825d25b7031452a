// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/wire"
)

// Request is one RPC call frame: the method selector and its argument tuple,
// already encoded to bytes by the caller (so WriteRequest never needs to know
// the argument type).
type Request struct {
	Selector uint64
	Args     []byte
}

// Response is one RPC return frame: the encoded Result<E,T> bytes the callee
// produced.
type Response struct {
	Body []byte
}

// WriteRequest writes a request frame: the 64-bit selector, then a compact
// length followed by the argument bytes, mirroring how
// codello-go-asn1/tlv's constructed encodings are scoped to their declared
// length. The argument bytes are opaque to framing; only Dispatcher and
// MethodSender interpret them.
func WriteRequest(w *wire.Writer, req Request) error {
	if _, err := wire.WriteUint(w, req.Selector); err != nil {
		return err
	}
	if _, err := wire.WriteUint(w, uint64(len(req.Args))); err != nil {
		return err
	}
	if err := w.Write(req.Args); err != nil {
		return err
	}
	return w.Flush()
}

// ReadRequest reads a request frame, scoping the argument bytes to their
// declared length via a [wire.BoundedReader] so a malformed or truncated
// length can never read past the frame.
func ReadRequest(r *wire.Reader, maxFrameLength int) (Request, error) {
	sel, err := readUintFrom(r)
	if err != nil {
		return Request{}, err
	}
	n, err := readUintFrom(r)
	if err != nil {
		return Request{}, err
	}
	args, err := readBoundedBytes(r, n, maxFrameLength)
	if err != nil {
		return Request{}, err
	}
	return Request{Selector: sel, Args: args}, nil
}

// WriteResponse writes a response frame: a compact length followed by the
// encoded Result bytes.
func WriteResponse(w *wire.Writer, resp Response) error {
	if _, err := wire.WriteUint(w, uint64(len(resp.Body))); err != nil {
		return err
	}
	if err := w.Write(resp.Body); err != nil {
		return err
	}
	return w.Flush()
}

// ReadResponse reads a response frame, scoping the body to its declared
// length.
func ReadResponse(r *wire.Reader, maxFrameLength int) (Response, error) {
	n, err := readUintFrom(r)
	if err != nil {
		return Response{}, err
	}
	body, err := readBoundedBytes(r, n, maxFrameLength)
	if err != nil {
		return Response{}, err
	}
	return Response{Body: body}, nil
}

func readUintFrom(r *wire.Reader) (uint64, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return wire.ReadUint(r, nop.EncodingByte(prefix), 64)
}

// readBoundedBytes reads n bytes from r, failing with InvalidContainerLength
// if n exceeds maxFrameLength (0 means unlimited) before ever allocating or
// reading the oversized buffer. The read itself is scoped through a
// [wire.BoundedReader] sized exactly to n, the same discipline
// codello-go-asn1/tlv applies to a definite-length constructed encoding.
func readBoundedBytes(r *wire.Reader, n uint64, maxFrameLength int) ([]byte, error) {
	if maxFrameLength > 0 && n > uint64(maxFrameLength) {
		return nil, nop.InvalidContainerLength(int(n), maxFrameLength)
	}
	br := wire.NewBoundedReader(r, int(n))
	buf := make([]byte, n)
	if err := br.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
