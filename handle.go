// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nop

import "sync"

// HandleRef is an opaque reference to an out-of-band handle (a file
// descriptor, socket, or other OS kernel object) transmitted alongside,
// rather than within, the byte stream. A HandleRef is meaningful only to the
// [HandleTable] that produced it; the codec never inspects or duplicates the
// referenced handle.
//
// 32 bits is chosen per the spec's Open Question (b): the reference width is
// transport-defined and 32-bit is used here in the absence of a constraint.
type HandleRef uint32

// HandleTable is a side channel pairing a wire.Writer and wire.Reader on either end
// of a transport that can pass handles out-of-band (e.g. SCM_RIGHTS over a
// Unix domain socket). Implementations that lack OS handle passing may stub
// Push/Get; unused handle codecs then have no effect on the byte stream.
//
// A HandleTable is not safe for concurrent encode and decode use from
// different goroutines; a Serializer/Deserializer pair sharing one
// HandleTable must serialize their own access, per the single-threaded
// non-reentrant contract of the codec core.
type HandleTable interface {
	// Push records handle and returns the HandleRef a Writer should encode
	// inline in its place.
	Push(handle any) HandleRef
	// Get resolves ref to the handle a previous Push on the peer's
	// HandleTable recorded for it. The returned ok is false if ref is
	// unknown.
	Get(ref HandleRef) (handle any, ok bool)
}

// memoryHandleTable is the default, in-process [HandleTable] implementation:
// an append-only slice of pushed handles. It is appropriate for tests and for
// transports (such as an in-memory pipe) where the handle and the byte stream
// share an address space; real OS handle passing requires a transport-
// specific HandleTable.
type memoryHandleTable struct {
	mu      sync.Mutex
	handles []any
}

// NewHandleTable returns a [HandleTable] backed by an in-process slice. Handle
// values pushed are returned verbatim by Get; no OS-level handle passing is
// performed.
func NewHandleTable() HandleTable {
	return &memoryHandleTable{}
}

func (t *memoryHandleTable) Push(handle any) HandleRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handles = append(t.handles, handle)
	return HandleRef(len(t.handles) - 1)
}

func (t *memoryHandleTable) Get(ref HandleRef) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := int(ref)
	if i < 0 || i >= len(t.handles) {
		return nil, false
	}
	return t.handles[i], true
}
