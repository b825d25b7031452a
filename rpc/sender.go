// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/vincentlao/nop-go/wire"
)

// MethodSender is the client side of an [Interface]: it encodes a call's
// arguments, writes the request frame, reads the response frame, and decodes
// the return value, all against a shared connection's Writer/Reader pair.
// A MethodSender is not safe for concurrent use by multiple goroutines, the
// same non-reentrant contract the underlying Writer/Reader carry.
type MethodSender struct {
	iface Interface
	w     *wire.Writer
	r     *wire.Reader
	opts  options
}

// NewMethodSender returns a MethodSender issuing calls against iface over w
// (outgoing requests) and r (incoming responses).
func NewMethodSender(iface Interface, w *wire.Writer, r *wire.Reader, opts ...Option) *MethodSender {
	return &MethodSender{iface: iface, w: w, r: r, opts: newOptions(opts)}
}

// Call invokes the named method with args, blocking until a response frame
// arrives, and decodes the response body into ret (a non-nil pointer).
func (s *MethodSender) Call(method string, args any, ret any) error {
	argBytes, err := wire.Marshal(args)
	if err != nil {
		return err
	}
	req := Request{Selector: Selector(s.iface.ID, method), Args: argBytes}
	if err := WriteRequest(s.w, req); err != nil {
		return err
	}
	resp, err := ReadResponse(s.r, s.opts.maxFrameLength)
	if err != nil {
		return err
	}
	return wire.Unmarshal(resp.Body, ret)
}

// MethodReceiver is the server-side counterpart driving a [Dispatcher] over a
// persistent connection: repeated calls to ServeOne process one request each,
// sharing the connection's Writer/Reader pair the way MethodSender does on
// the client side.
type MethodReceiver struct {
	d *Dispatcher
	w *wire.Writer
	r *wire.Reader
}

// NewMethodReceiver returns a MethodReceiver serving d over w (outgoing
// responses) and r (incoming requests).
func NewMethodReceiver(d *Dispatcher, w *wire.Writer, r *wire.Reader) *MethodReceiver {
	return &MethodReceiver{d: d, w: w, r: r}
}

// ServeOne processes exactly one request frame. Callers loop on ServeOne to
// serve a connection for its lifetime; no goroutines are spawned internally.
func (m *MethodReceiver) ServeOne() error {
	return m.d.Serve(m.r, m.w)
}
