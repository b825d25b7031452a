// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
)

func TestSerializer_Deserializer_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)
	if err := s.Encode(uint64(300)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := s.Encode("hello"); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDeserializer(bytes.NewReader(buf.Bytes()))
	var n uint64
	if err := d.Decode(&n); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 300 {
		t.Fatalf("n = %d, want 300", n)
	}
	var s2 string
	if err := d.Decode(&s2); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s2 != "hello" {
		t.Fatalf("s2 = %q, want \"hello\"", s2)
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	type pair struct {
		A int32
		B string
	}
	want := pair{A: -7, B: "nop"}
	b, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got pair
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
