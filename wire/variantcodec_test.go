// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/vincentlao/nop-go"
)

// TestVariant_S4 implements seed scenario S4: an empty Variant<int, string>
// encodes as [Variant_prefix, SInt(-1)] and round-trips as empty.
func TestVariant_S4(t *testing.T) {
	v := nop.NewVariant(reflect.TypeFor[int](), reflect.TypeFor[string]())

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := writeVariant(w, v); err != nil {
		t.Fatalf("writeVariant: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{byte(nop.Variant), 0xff}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded = % x, want % x", buf.Bytes(), want)
	}

	got := nop.NewVariant(reflect.TypeFor[int](), reflect.TypeFor[string]())
	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := readVariant(r, got); err != nil {
		t.Fatalf("readVariant: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("expected empty Variant, got index %d", got.Index())
	}
}

func TestVariant_RoundTrip(t *testing.T) {
	v := nop.NewVariant(reflect.TypeFor[int](), reflect.TypeFor[string]())
	if err := v.Emplace(1, "hello"); err != nil {
		t.Fatalf("Emplace: %v", err)
	}

	b, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := nop.NewVariant(reflect.TypeFor[int](), reflect.TypeFor[string]())
	if err := Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	val, idx := got.Get()
	if idx != 1 || val != "hello" {
		t.Fatalf("decoded (%v, %d), want (\"hello\", 1)", val, idx)
	}
}

func TestOptional_RoundTrip(t *testing.T) {
	o := nop.NewOptional(42)
	b, err := Marshal(&o)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got nop.Optional[int]
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	v, ok := got.Get()
	if !ok || v != 42 {
		t.Fatalf("decoded (%v, %v), want (42, true)", v, ok)
	}
}

func TestOptional_Empty(t *testing.T) {
	o := nop.NewOptionalEmpty[int]()
	b, err := Marshal(&o)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got := nop.NewOptionalEmpty[int]()
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatal("expected empty Optional after round trip")
	}
}

func TestResult_RoundTrip(t *testing.T) {
	r := nop.NewResultOk[string, int](7)
	b, err := Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got nop.Result[string, int]
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.IsOk() || got.Ok() != 7 {
		t.Fatalf("decoded IsOk=%v Ok=%v, want true 7", got.IsOk(), got.Ok())
	}
}

func TestResult_Err(t *testing.T) {
	r := nop.NewResultErr[string, int]("boom")
	b, err := Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got nop.Result[string, int]
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.IsErr() || got.Err() != "boom" {
		t.Fatalf("decoded IsErr=%v Err=%v, want true \"boom\"", got.IsErr(), got.Err())
	}
}
