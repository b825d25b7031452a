// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/internal/reflectschema"
)

// isIntegralKind reports whether k is one of the fixed-width integer kinds a
// LogicalBuffer treats as a raw byte blob rather than an element-wise Array.
func isIntegralKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// writeLogicalBuffer encodes m, a (array, count) member pair, as the live
// first m.Count elements of m.Array: a Binary blob if the element kind is
// integral, an Array production element-wise otherwise.
func writeLogicalBuffer(w byteWriter, m reflectschema.Member) error {
	var n int
	if m.Count.Kind() >= reflect.Uint && m.Count.Kind() <= reflect.Uintptr {
		n = int(m.Count.Uint())
	} else {
		n = int(m.Count.Int())
	}
	if n < 0 || n > m.Array.Len() {
		return nop.InvalidContainerLength(n, m.Array.Len())
	}
	live := sliceLive(m.Array, n)

	elemKind := m.Array.Type().Elem().Kind()
	if isIntegralKind(elemKind) {
		return writeBinary(w, integralBytes(live))
	}
	if err := w.WriteByte(byte(nop.Array)); err != nil {
		return err
	}
	if _, err := WriteUint(w, uint64(n)); err != nil {
		return err
	}
	for i := range n {
		if err := writeValue(w, live.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// readLogicalBuffer decodes into m, restoring m.Count and filling the live
// prefix of m.Array. A declared length exceeding m.Array's capacity fails
// with InvalidContainerLength rather than writing past it.
func readLogicalBuffer(r byteReader, m reflectschema.Member) error {
	elemKind := m.Array.Type().Elem().Kind()
	if isIntegralKind(elemKind) {
		prefix, err := r.ReadByte()
		if err != nil {
			return err
		}
		bs, err := readBinary(r, nop.EncodingByte(prefix))
		if err != nil {
			return err
		}
		elemBytes := m.Array.Type().Elem().Bits() / 8
		if elemBytes == 0 {
			elemBytes = 1
		}
		if len(bs)%elemBytes != 0 {
			return nop.InvalidContainerLength(len(bs), m.Array.Len()*elemBytes)
		}
		n := len(bs) / elemBytes
		if n > m.Array.Len() {
			return nop.InvalidContainerLength(n, m.Array.Len())
		}
		ek := m.Array.Type().Elem().Kind()
		signed := ek >= reflect.Int && ek <= reflect.Int64
		for i := range n {
			var u uint64
			for b := range elemBytes {
				u |= uint64(bs[i*elemBytes+b]) << (8 * b)
			}
			elem := m.Array.Index(i)
			if signed {
				if elemBytes < 8 {
					signBit := uint64(1) << (elemBytes*8 - 1)
					if u&signBit != 0 {
						u |= ^uint64(0) << (elemBytes * 8)
					}
				}
				elem.SetInt(int64(u))
			} else {
				elem.SetUint(u)
			}
		}
		setCount(m.Count, n)
		return nil
	}

	prefix, err := r.ReadByte()
	if err != nil {
		return err
	}
	if nop.EncodingByte(prefix) != nop.Array {
		return nop.UnexpectedEncodingType(prefix)
	}
	n, err := readLength(r)
	if err != nil {
		return err
	}
	if n > m.Array.Len() {
		return nop.InvalidContainerLength(n, m.Array.Len())
	}
	elemType := m.Array.Type().Elem()
	for i := range n {
		elem := reflect.New(elemType).Elem()
		if err := readValue(r, elem); err != nil {
			return err
		}
		m.Array.Index(i).Set(elem)
	}
	setCount(m.Count, n)
	return nil
}

// sliceLive returns the first n elements of v as a Value usable with .Index
// and .Len. v.Slice(0, n) panics on an unaddressable Array (a fixed-array
// LogicalBuffer field encoded by value rather than through a pointer), so
// that case is built via MakeSlice+Copy instead, mirroring addressableBytes
// in wire/codec.go.
func sliceLive(v reflect.Value, n int) reflect.Value {
	if v.Kind() == reflect.Array && !v.CanAddr() {
		live := reflect.MakeSlice(reflect.SliceOf(v.Type().Elem()), n, n)
		reflect.Copy(live, v)
		return live
	}
	return v.Slice(0, n)
}

// integralBytes packs the live elements of v (a slice of some fixed-width
// integer kind) as little-endian raw bytes, one byte per 8 bits of element
// width.
func integralBytes(v reflect.Value) []byte {
	elemBits := v.Type().Elem().Bits()
	elemBytes := elemBits / 8
	n := v.Len()
	out := make([]byte, 0, n*elemBytes)
	for i := range n {
		e := v.Index(i)
		var u uint64
		if e.CanInt() {
			u = uint64(e.Int())
		} else {
			u = e.Uint()
		}
		for b := range elemBytes {
			out = append(out, byte(u>>(8*b)))
		}
	}
	return out
}

// setCount writes n back into the count field, which may be any integer
// kind.
func setCount(count reflect.Value, n int) {
	if count.Kind() >= reflect.Uint && count.Kind() <= reflect.Uintptr {
		count.SetUint(uint64(n))
		return
	}
	count.SetInt(int64(n))
}
