// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nop implements Native Object Protocols: a binary object
// serialization format that encodes structured in-memory values to a
// compact, self-describing byte stream and decodes them back with strong
// type, size, and fungibility guarantees.
//
// # Mapping of Go Types to Wire Types
//
// The wire schema of a value is the Go type declaration itself; there is no
// separate IDL. The following Go types translate into wire productions (see
// [github.com/vincentlao/nop-go/wire] for the codec):
//
//   - A Go bool corresponds to the wire BOOLEAN production.
//   - All Go integer types correspond to the wire INTEGER production, encoded
//     using the smallest size class that fits the value (see §4.D of the
//     design). The supported range is limited by the Go type.
//   - The types float32 and float64 correspond to the wire F32/F64
//     productions.
//   - The Go string type corresponds to the wire STRING production. A byte
//     slice or byte array corresponds to the wire BINARY production.
//   - Go slices and arrays correspond to the wire ARRAY production. Their
//     elements define the contents.
//   - Go maps correspond to the wire MAP production.
//   - Go structs correspond to the wire STRUCTURE production. The struct
//     fields define the ordered members of the structure, in order of
//     definition. A field's `nop` struct tag can exclude it ("-") or, with
//     "buffer:CountField", pair an array field with a count field as one
//     LogicalBuffer member.
//   - [Variant], [Result], and [Optional] correspond to the wire VARIANT
//     production.
//   - [HandleRef] corresponds to the wire HANDLE production; the referenced
//     handle itself travels out-of-band via a [HandleTable].
//
// # Fungibility
//
// Two types are fungible when their wire productions are structurally
// identical: integers are fungible when their declared ranges coincide, a
// LogicalBuffer is fungible with a dynamic sequence of the same element
// type, two structures are fungible when they have the same arity and
// pairwise fungible members in order, and Variant is covariant across
// fungible alternative lists. A receiver may decode a value using any type
// fungible with the type used to encode it.
package nop
