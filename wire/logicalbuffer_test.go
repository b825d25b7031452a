// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/internal/reflectschema"
)

type fixedBuffer struct {
	Data  [256]byte `nop:"buffer:Count"`
	Count int
}

// TestLogicalBuffer_S3 implements seed scenario S3: a fixed-capacity
// (data, count) pair and a dynamic byte sequence encode to identical bytes.
// The LogicalBuffer pair is exercised directly, at the member level, since
// the scenario is about the pair's own production, not a struct wrapping it.
func TestLogicalBuffer_S3(t *testing.T) {
	var fb fixedBuffer
	fb.Data[0], fb.Data[1], fb.Data[2] = 0xaa, 0xbb, 0xcc
	fb.Count = 3

	members := reflectschema.BufferPairs(reflect.ValueOf(&fb).Elem())
	if len(members) != 1 || !members[0].IsBuffer {
		t.Fatalf("BufferPairs = %+v, want a single buffer member", members)
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := writeLogicalBuffer(w, members[0]); err != nil {
		t.Fatalf("writeLogicalBuffer: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	got := buf.Bytes()
	want := []byte{byte(nop.Binary), 0x03, 0xaa, 0xbb, 0xcc}
	if !bytes.Equal(got, want) {
		t.Fatalf("encoded = % x, want % x", got, want)
	}

	dynamic := []byte{0xaa, 0xbb, 0xcc}
	got2, err := Marshal(dynamic)
	if err != nil {
		t.Fatalf("Marshal dynamic: %v", err)
	}
	if !bytes.Equal(got2, want) {
		t.Fatalf("dynamic encoded = % x, want % x", got2, want)
	}
}

func TestLogicalBuffer_RoundTrip(t *testing.T) {
	var fb fixedBuffer
	fb.Data[0], fb.Data[1] = 0x01, 0x02
	fb.Count = 2

	b, err := Marshal(fb)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got fixedBuffer
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Count != 2 || got.Data[0] != 0x01 || got.Data[1] != 0x02 {
		t.Fatalf("decoded = %+v, want Count=2 Data[0:2]=[1,2]", got)
	}
}

func TestLogicalBuffer_DecodeOverCapacity(t *testing.T) {
	type tiny struct {
		Data  [2]byte `nop:"buffer:Count"`
		Count int
	}
	dynamic := []byte{1, 2, 3}
	b, err := Marshal(dynamic)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var target tiny
	members := reflectschema.BufferPairs(reflect.ValueOf(&target).Elem())
	r := NewReader(bytes.NewReader(b))
	err = readLogicalBuffer(r, members[0])
	if err == nil {
		t.Fatal("expected InvalidContainerLength, got nil")
	}
	if nop.KindOf(err) != nop.KindInvalidContainerLength {
		t.Fatalf("KindOf(err) = %v, want KindInvalidContainerLength", nop.KindOf(err))
	}
}

type nonIntegralBuffer struct {
	Items [4]string `nop:"buffer:Count"`
	Count int
}

func TestLogicalBuffer_NonIntegral(t *testing.T) {
	var nb nonIntegralBuffer
	nb.Items[0] = "a"
	nb.Items[1] = "b"
	nb.Count = 2

	members := reflectschema.BufferPairs(reflect.ValueOf(&nb).Elem())
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := writeLogicalBuffer(w, members[0]); err != nil {
		t.Fatalf("writeLogicalBuffer: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{byte(nop.Array), 0x02,
		byte(nop.String), 0x01, 'a',
		byte(nop.String), 0x01, 'b'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded = % x, want % x", buf.Bytes(), want)
	}

	var got nonIntegralBuffer
	gotMembers := reflectschema.BufferPairs(reflect.ValueOf(&got).Elem())
	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := readLogicalBuffer(r, gotMembers[0]); err != nil {
		t.Fatalf("readLogicalBuffer: %v", err)
	}
	if got.Count != 2 || got.Items[0] != "a" || got.Items[1] != "b" {
		t.Fatalf("decoded = %+v", got)
	}
}
