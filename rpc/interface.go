// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc implements the NOP RPC interface layer: selector hashing,
// request/response framing over nop/wire, and a selector-keyed dispatcher.
package rpc

import (
	"github.com/dchest/siphash"

	"github.com/vincentlao/nop-go"
)

// Method is one method of an [Interface]: its wire name and a pair of
// constructors producing zero-valued argument and return containers for the
// decoder to fill in. New must return non-nil pointers suitable as Unmarshal
// targets.
type Method struct {
	Name string
	New  func() (args any, ret any)
}

// Interface is a compile-time record of an RPC service: a string identity
// and an ordered method list. The wire order of Methods is irrelevant — each
// method is identified on the wire by its [Selector], not by position —  but
// Methods must not contain two entries with the same Name.
type Interface struct {
	ID      string
	Methods []Method
}

// Selector computes the wire selector for method name on the interface
// identified by id: SipHash-2-4 with a zero key over id || 0x00 || name,
// taken as a 64-bit value.
//
// SipHash keeps selector computation cheap and collision-resistant without
// needing a cryptographic hash; the zero key is fine here since selectors
// are a dispatch table index, not a security boundary.
func Selector(id, method string) uint64 {
	msg := make([]byte, 0, len(id)+1+len(method))
	msg = append(msg, id...)
	msg = append(msg, 0)
	msg = append(msg, method...)
	return siphash.Hash(0, 0, msg)
}

// selectors returns the selector-to-method map for iface, failing with
// a DuplicateMethodHash-classified error if two methods collide.
func selectors(iface Interface) (map[uint64]Method, error) {
	out := make(map[uint64]Method, len(iface.Methods))
	names := make(map[uint64]string, len(iface.Methods))
	for _, m := range iface.Methods {
		sel := Selector(iface.ID, m.Name)
		if prev, ok := names[sel]; ok {
			return nil, nop.DuplicateMethodHash(prev, m.Name, sel)
		}
		names[sel] = m.Name
		out[sel] = m
	}
	return out, nil
}
