// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/internal/reflectschema"
)

// Fungible reports whether a and b induce identical wire productions: the
// structural equivalence a receiver relies on when decoding bytes produced
// by a different, but wire-compatible, Go type.
//
// Integers are fungible across width regardless of declared size, since the
// codec already writes the narrowest class and accepts any class up to the
// target width (see MatchUint/MatchInt); signedness must agree. A
// fixed-size array is fungible with a slice of the same, fungible, element
// type — a LogicalBuffer pair and a dynamic sequence share this rule, since
// a LogicalBuffer's Array field is itself a plain Go array or slice. Two
// structs are fungible when they have the same member arity and pairwise
// fungible members in declaration order.
//
// Variant, Optional[T] and Result[E,T] are deliberately not given a
// cross-type fungibility rule here: a Variant's alternative list is fixed at
// construction time (NewVariant's argument, or the generic facade's type
// parameter), not recoverable from a bare reflect.Type of its zero value, so
// any rule built on the zero value's (empty) Types() would be vacuous rather
// than a real structural check. Variant-shaped types are fungible only with
// themselves (the a == b case above); decoding never needs a fungibility
// fallback here because readVariant (wire/variantcodec.go) is authoritative
// from the wire's explicit alternative index and never consults Fungible.
func Fungible(a, b reflect.Type) bool {
	return fungible(a, b, make(map[[2]reflect.Type]bool))
}

func fungible(a, b reflect.Type, seen map[[2]reflect.Type]bool) bool {
	for a.Kind() == reflect.Pointer {
		a = a.Elem()
	}
	for b.Kind() == reflect.Pointer {
		b = b.Elem()
	}
	if a == b {
		return true
	}
	key := [2]reflect.Type{a, b}
	if seen[key] {
		return true
	}
	seen[key] = true

	switch {
	case isIntegralKind(a.Kind()) && isIntegralKind(b.Kind()):
		return signedKind(a.Kind()) == signedKind(b.Kind())
	case a.Kind() == reflect.Float32 && b.Kind() == reflect.Float32,
		a.Kind() == reflect.Float64 && b.Kind() == reflect.Float64:
		return true
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return true
	case isByteSequence(a) && isByteSequence(b):
		return true
	case isSequenceKind(a.Kind()) && isSequenceKind(b.Kind()):
		return fungible(a.Elem(), b.Elem(), seen)
	case isVariantShaped(a) || isVariantShaped(b):
		// a == b was already handled above; distinct Variant-shaped types
		// have no statically recoverable alternative list to compare, so
		// they are never considered fungible with each other.
		return false
	case a.Kind() == reflect.Struct && b.Kind() == reflect.Struct:
		return fungibleStructs(a, b, seen)
	default:
		return false
	}
}

// variantType is nop.Variant's reflect.Type, used to recognize Variant
// itself and the unexported `variant Variant` field every Optional[T]/
// Result[E,T] facade carries.
var variantType = reflect.TypeFor[nop.Variant]()

// isVariantShaped reports whether t is nop.Variant or a struct carrying one
// (Optional[T], Result[E,T], or any type built the same way).
func isVariantShaped(t reflect.Type) bool {
	if t == variantType {
		return true
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		if t.Field(i).Type == variantType {
			return true
		}
	}
	return false
}

func signedKind(k reflect.Kind) bool {
	return k == reflect.Int || k == reflect.Int8 || k == reflect.Int16 ||
		k == reflect.Int32 || k == reflect.Int64
}

func isSequenceKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func isByteSequence(t reflect.Type) bool {
	return isSequenceKind(t.Kind()) && t.Elem().Kind() == reflect.Uint8
}

func fungibleStructs(a, b reflect.Type, seen map[[2]reflect.Type]bool) bool {
	am := reflectschema.BufferPairs(reflect.New(a).Elem())
	bm := reflectschema.BufferPairs(reflect.New(b).Elem())
	if len(am) != len(bm) {
		return false
	}
	for i := range am {
		if !fungible(am[i].Array.Type(), bm[i].Array.Type(), seen) {
			return false
		}
	}
	return true
}
