// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nop

import "testing"

func TestPosFixInt_RoundTrip(t *testing.T) {
	for n := 0; n <= fixIntMax; n++ {
		b := PosFixInt(uint8(n))
		got, ok := b.IsPosFixInt()
		if !ok {
			t.Fatalf("PosFixInt(%d).IsPosFixInt() ok = false", n)
		}
		if int(got) != n {
			t.Errorf("PosFixInt(%d).IsPosFixInt() = %d", n, got)
		}
		if _, ok := b.IsNegFixInt(); ok {
			t.Errorf("PosFixInt(%d).IsNegFixInt() ok = true, want false", n)
		}
	}
}

func TestNegFixInt_RoundTrip(t *testing.T) {
	for n := fixIntMin; n < 0; n++ {
		b := NegFixInt(int8(n))
		got, ok := b.IsNegFixInt()
		if !ok {
			t.Fatalf("NegFixInt(%d).IsNegFixInt() ok = false", n)
		}
		if int(got) != n {
			t.Errorf("NegFixInt(%d).IsNegFixInt() = %d", n, got)
		}
	}
}

func TestEncodingByte_String(t *testing.T) {
	tests := map[EncodingByte]string{
		Nil:       "Nil",
		BoolTrue:  "BoolTrue",
		U8:        "U8",
		U64:       "U64",
		I16:       "I16",
		F64:       "F64",
		Structure: "Structure",
		Variant:   "Variant",
	}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", b, got, want)
		}
	}
}

func TestEncodingByte_RangesDisjoint(t *testing.T) {
	bytes := []EncodingByte{
		Nil, BoolFalse, BoolTrue, U8, U16, U32, U64, I8, I16, I32, I64,
		F32, F64, Binary, String, Array, Map, Structure, Variant, Handle,
	}
	seen := map[EncodingByte]bool{}
	for _, b := range bytes {
		if seen[b] {
			t.Fatalf("duplicate EncodingByte %v in fixed table", b)
		}
		seen[b] = true
		if _, ok := b.IsPosFixInt(); ok {
			t.Fatalf("%v collides with PosFixInt range", b)
		}
		if _, ok := b.IsNegFixInt(); ok {
			t.Fatalf("%v collides with NegFixInt range", b)
		}
	}
}
