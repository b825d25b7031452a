// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/vincentlao/nop-go"
)

// writeArray encodes v (a slice or array, already known not to be a byte
// sequence) as the Array production: prefix, compact element count, then
// each element's own encoding in order.
func writeArray(w byteWriter, v reflect.Value) error {
	if err := w.WriteByte(byte(nop.Array)); err != nil {
		return err
	}
	n := v.Len()
	if _, err := WriteUint(w, uint64(n)); err != nil {
		return err
	}
	for i := range n {
		if err := writeValue(w, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// readArray decodes an Array production into v, a slice or array. For a
// slice, v is resized to the declared element count; for an array, the
// declared count must match v's length exactly.
func readArray(r byteReader, prefix nop.EncodingByte, v reflect.Value) error {
	if prefix != nop.Array {
		return nop.UnexpectedEncodingType(byte(prefix))
	}
	n, err := readLength(r)
	if err != nil {
		return err
	}
	elemType := v.Type().Elem()
	switch v.Kind() {
	case reflect.Slice:
		v.Set(reflect.MakeSlice(v.Type(), n, n))
	case reflect.Array:
		if n != v.Len() {
			return nop.InvalidContainerLength(n, v.Len())
		}
	}
	for i := range n {
		elem := reflect.New(elemType).Elem()
		if err := readValue(r, elem); err != nil {
			return err
		}
		v.Index(i).Set(elem)
	}
	return nil
}

// writeMap encodes v as the Map production: prefix, compact pair count, then
// alternating key/value encodings. Map key order on the wire is Go's
// (unspecified) map iteration order; NOP places no ordering requirement on
// Map, unlike Structure.
func writeMap(w byteWriter, v reflect.Value) error {
	if err := w.WriteByte(byte(nop.Map)); err != nil {
		return err
	}
	if _, err := WriteUint(w, uint64(v.Len())); err != nil {
		return err
	}
	iter := v.MapRange()
	for iter.Next() {
		if err := writeValue(w, iter.Key()); err != nil {
			return err
		}
		if err := writeValue(w, iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

// readMap decodes a Map production into v, a map value.
func readMap(r byteReader, prefix nop.EncodingByte, v reflect.Value) error {
	if prefix != nop.Map {
		return nop.UnexpectedEncodingType(byte(prefix))
	}
	n, err := readLength(r)
	if err != nil {
		return err
	}
	mt := v.Type()
	m := reflect.MakeMapWithSize(mt, n)
	for range n {
		key := reflect.New(mt.Key()).Elem()
		if err := readValue(r, key); err != nil {
			return err
		}
		val := reflect.New(mt.Elem()).Elem()
		if err := readValue(r, val); err != nil {
			return err
		}
		m.SetMapIndex(key, val)
	}
	v.Set(m)
	return nil
}
