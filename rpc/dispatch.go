// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/wire"
)

// Handler implements one method of a bound [Interface]. args is the zero
// value a [Method.New] produced, already filled in by the dispatcher. A
// domain-level failure (the method's own error case) belongs in ret itself,
// typically a nop.Result[E,T] built with NewResultErr, so it still reaches
// the caller as a decodable response; the returned err is reserved for
// failures the handler cannot express as a value of its own return type
// (e.g. an internal fault midway through the call), and aborts the request
// rather than producing a response frame — see Dispatcher.Serve.
type Handler func(args any) (ret any, err error)

// handlerFunc pairs a bound Method with its Handler.
type handlerFunc struct {
	method  Method
	handler Handler
}

// Dispatcher routes decoded request frames to handlers by selector. The
// dispatch table is built once by BindInterface and is read-only afterward,
// so a single Dispatcher may safely serve concurrent callers from multiple
// goroutines, matching the teacher's stance that codec types themselves are
// not reentrant, but a read-only dispatch table is.
type Dispatcher struct {
	iface    Interface
	handlers map[uint64]handlerFunc
	opts     options
}

// BindInterface builds a Dispatcher for iface, wiring each of its methods to
// the handler returned by bind for that method's name. bind is consulted
// once per method at bind time; it is not re-invoked per call. BindInterface
// fails with a DuplicateMethodHash-classified error if two methods of iface
// collide on their SipHash selector.
func BindInterface(iface Interface, bind func(name string) Handler, opts ...Option) (*Dispatcher, error) {
	sels, err := selectors(iface)
	if err != nil {
		return nil, err
	}
	handlers := make(map[uint64]handlerFunc, len(sels))
	for sel, m := range sels {
		handlers[sel] = handlerFunc{method: m, handler: bind(m.Name)}
	}
	return &Dispatcher{iface: iface, handlers: handlers, opts: newOptions(opts)}, nil
}

// Serve reads one request frame from r, dispatches it, and writes the
// response frame to w. A domain-level failure a Handler encodes into its own
// ret value (a nop.Result[E,T] built with NewResultErr, say) still produces
// a normal response frame and does not surface here. Serve returns an error
// for frame-level/transport failures and for a Handler's own err return — in
// both cases no response frame is written, and the caller's request is left
// unanswered; callers that want the serve loop to survive an individual
// handler's err must catch it here and decide whether to keep looping.
// Callers drive Serve in their own loop (or per-connection goroutine); Serve
// spawns no goroutines itself.
func (d *Dispatcher) Serve(r *wire.Reader, w *wire.Writer) error {
	req, err := ReadRequest(r, d.opts.maxFrameLength)
	if err != nil {
		return err
	}
	body, err := d.dispatch(req)
	if err != nil {
		return err
	}
	return WriteResponse(w, Response{Body: body})
}

// dispatch decodes req's argument bytes, invokes the bound handler, and
// encodes its return value. An unknown selector fails with
// InvalidInterfaceMethod.
func (d *Dispatcher) dispatch(req Request) ([]byte, error) {
	hf, ok := d.handlers[req.Selector]
	if !ok {
		return nil, nop.InvalidInterfaceMethod(req.Selector)
	}
	args, _ := hf.method.New()
	if len(req.Args) > 0 {
		if err := wire.Unmarshal(req.Args, args); err != nil {
			return nil, err
		}
	}
	ret, handlerErr := hf.handler(args)
	if handlerErr != nil {
		return nil, handlerErr
	}
	return wire.Marshal(ret)
}
