// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the NOP wire encoding: the prefix-byte grammar,
// the type-directed codec dispatch, and the structure/collection/variant
// productions built on top of it.
package wire

import (
	"fmt"
	"math"
	"reflect"

	"github.com/vincentlao/nop-go"
)

// variantHolder is implemented by [nop.Optional] and [nop.Result]: it
// exposes the private Variant backing either façade so the codec can encode
// and decode them without knowing their type parameters at compile time.
type variantHolder interface {
	AsVariant() *nop.Variant
}

var handleRefType = reflect.TypeFor[nop.HandleRef]()

// Write encodes val and writes it to w, dispatching on val's concrete type.
func Write(w *Writer, val any) error {
	v := reflect.ValueOf(val)
	if !v.IsValid() {
		return w.WriteByte(byte(nop.Nil))
	}
	return writeValue(w, v)
}

// Read decodes a value into target, which must be a non-nil pointer.
func Read(r *Reader, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("nop/wire: Read target must be a non-nil pointer, got %T", target)
	}
	return readValue(r, v.Elem())
}

// writeValue encodes v to w. v must be valid (not the zero Value).
func writeValue(w byteWriter, v reflect.Value) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return w.WriteByte(byte(nop.Nil))
		}
		v = v.Elem()
	}

	if v.CanAddr() {
		if vh, ok := v.Addr().Interface().(variantHolder); ok {
			return writeVariant(w, vh.AsVariant())
		}
	} else if reflect.PointerTo(v.Type()).Implements(reflect.TypeFor[variantHolder]()) {
		// An Optional or Result passed by value is copied so that its
		// pointer-receiver AsVariant can be called.
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		return writeVariant(w, cp.Interface().(variantHolder).AsVariant())
	}
	if variant, ok := v.Interface().(nop.Variant); ok {
		return writeVariant(w, &variant)
	}
	if vp, ok := v.Interface().(*nop.Variant); ok {
		return writeVariant(w, vp)
	}

	if v.Type() == handleRefType {
		return writeHandleRef(w, nop.HandleRef(v.Uint()))
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return w.WriteByte(byte(nop.BoolTrue))
		}
		return w.WriteByte(byte(nop.BoolFalse))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err := WriteInt(w, v.Int())
		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, err := WriteUint(w, v.Uint())
		return err
	case reflect.Float32:
		return writeFloat32(w, float32(v.Float()))
	case reflect.Float64:
		return writeFloat64(w, v.Float())
	case reflect.String:
		return writeString(w, v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return writeBinary(w, v.Bytes())
		}
		return writeArray(w, v)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return writeBinary(w, addressableBytes(v))
		}
		return writeArray(w, v)
	case reflect.Map:
		return writeMap(w, v)
	case reflect.Struct:
		return writeStruct(w, v)
	default:
		return fmt.Errorf("nop/wire: cannot encode value of kind %s", v.Kind())
	}
}

// readValue decodes a prefix-led value from r into the addressable,
// settable value v.
func readValue(r byteReader, v reflect.Value) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	if v.CanAddr() {
		if vh, ok := v.Addr().Interface().(variantHolder); ok {
			return readVariant(r, vh.AsVariant())
		}
		if vp, ok := v.Addr().Interface().(*nop.Variant); ok {
			return readVariant(r, vp)
		}
	}

	if v.Type() == handleRefType {
		ref, err := readHandleRef(r)
		if err != nil {
			return err
		}
		v.SetUint(uint64(ref))
		return nil
	}

	prefix, err := r.ReadByte()
	if err != nil {
		return err
	}
	p := nop.EncodingByte(prefix)

	switch v.Kind() {
	case reflect.Bool:
		switch p {
		case nop.BoolTrue:
			v.SetBool(true)
		case nop.BoolFalse:
			v.SetBool(false)
		default:
			return nop.UnexpectedEncodingType(prefix)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := ReadInt(r, p, int(v.Type().Bits()))
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := ReadUint(r, p, int(v.Type().Bits()))
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	case reflect.Float32:
		f, err := readFloat32(r, p)
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
		return nil
	case reflect.Float64:
		f, err := readFloat64(r, p)
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	case reflect.String:
		s, err := readString(r, p)
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			bs, err := readBinary(r, p)
			if err != nil {
				return err
			}
			v.SetBytes(bs)
			return nil
		}
		return readArray(r, p, v)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			bs, err := readBinary(r, p)
			if err != nil {
				return err
			}
			if len(bs) != v.Len() {
				return nop.InvalidContainerLength(len(bs), v.Len())
			}
			reflect.Copy(v, reflect.ValueOf(bs))
			return nil
		}
		return readArray(r, p, v)
	case reflect.Map:
		return readMap(r, p, v)
	case reflect.Struct:
		return readStruct(r, p, v)
	default:
		return fmt.Errorf("nop/wire: cannot decode into value of kind %s", v.Kind())
	}
}

// addressableBytes returns the contents of a byte array v as a []byte,
// without requiring v itself to be addressable.
func addressableBytes(v reflect.Value) []byte {
	bs := make([]byte, v.Len())
	for i := range bs {
		bs[i] = byte(v.Index(i).Uint())
	}
	return bs
}

func writeFloat32(w byteWriter, f float32) error {
	if err := w.WriteByte(byte(nop.F32)); err != nil {
		return err
	}
	var buf [4]byte
	bits := math.Float32bits(f)
	buf[0], buf[1], buf[2], buf[3] = byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)
	return w.Write(buf[:])
}

func writeFloat64(w byteWriter, f float64) error {
	if err := w.WriteByte(byte(nop.F64)); err != nil {
		return err
	}
	var buf [8]byte
	bits := math.Float64bits(f)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	return w.Write(buf[:])
}

func readFloat32(r byteReader, prefix nop.EncodingByte) (float32, error) {
	if prefix != nop.F32 {
		return 0, nop.UnexpectedEncodingType(byte(prefix))
	}
	var buf [4]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return math.Float32frombits(bits), nil
}

func readFloat64(r byteReader, prefix nop.EncodingByte) (float64, error) {
	if prefix != nop.F64 {
		return 0, nop.UnexpectedEncodingType(byte(prefix))
	}
	var buf [8]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	var bits uint64
	for i, b := range buf {
		bits |= uint64(b) << (8 * i)
	}
	return math.Float64frombits(bits), nil
}

func writeString(w byteWriter, s string) error {
	if err := w.WriteByte(byte(nop.String)); err != nil {
		return err
	}
	if _, err := WriteUint(w, uint64(len(s))); err != nil {
		return err
	}
	return w.Write([]byte(s))
}

func readString(r byteReader, prefix nop.EncodingByte) (string, error) {
	if prefix != nop.String {
		return "", nop.UnexpectedEncodingType(byte(prefix))
	}
	n, err := readLength(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeBinary(w byteWriter, b []byte) error {
	if err := w.WriteByte(byte(nop.Binary)); err != nil {
		return err
	}
	if _, err := WriteUint(w, uint64(len(b))); err != nil {
		return err
	}
	return w.Write(b)
}

func readBinary(r byteReader, prefix nop.EncodingByte) ([]byte, error) {
	if prefix != nop.Binary {
		return nil, nop.UnexpectedEncodingType(byte(prefix))
	}
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// readLength reads the compact length integer that follows a container
// prefix byte (Binary, String, Array, Map, Structure all share this shape).
func readLength(r byteReader) (int, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	n, err := ReadUint(r, nop.EncodingByte(prefix), 64)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 {
		return 0, nop.InvalidContainerLength(int(n), math.MaxInt32)
	}
	return int(n), nil
}

func writeHandleRef(w byteWriter, ref nop.HandleRef) error {
	if err := w.WriteByte(byte(nop.Handle)); err != nil {
		return err
	}
	_, err := WriteUint(w, uint64(ref))
	return err
}

func readHandleRef(r byteReader) (nop.HandleRef, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if nop.EncodingByte(prefix) != nop.Handle {
		return 0, nop.UnexpectedEncodingType(prefix)
	}
	lenPrefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	n, err := ReadUint(r, nop.EncodingByte(lenPrefix), 32)
	if err != nil {
		return 0, err
	}
	return nop.HandleRef(n), nil
}
