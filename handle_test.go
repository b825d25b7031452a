// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nop

import "testing"

func TestMemoryHandleTable_PushGet(t *testing.T) {
	tbl := NewHandleTable()
	ref := tbl.Push(42)
	got, ok := tbl.Get(ref)
	if !ok || got != 42 {
		t.Fatalf("Get(%v) = %v, %v; want 42, true", ref, got, ok)
	}
}

func TestMemoryHandleTable_UnknownRef(t *testing.T) {
	tbl := NewHandleTable()
	if _, ok := tbl.Get(HandleRef(7)); ok {
		t.Fatalf("Get of unknown ref reported ok")
	}
}

func TestMemoryHandleTable_DistinctRefs(t *testing.T) {
	tbl := NewHandleTable()
	a := tbl.Push("a")
	b := tbl.Push("b")
	if a == b {
		t.Fatalf("distinct pushes got the same ref %v", a)
	}
	gotA, _ := tbl.Get(a)
	gotB, _ := tbl.Get(b)
	if gotA != "a" || gotB != "b" {
		t.Errorf("Get(a)=%v Get(b)=%v", gotA, gotB)
	}
}
