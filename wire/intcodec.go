// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vincentlao/nop-go"
)

// byteReader is the subset of Reader and BoundedReader that a value codec
// needs once it already holds a prefix byte: enough to pull a fixed-size
// payload, or to skip one it doesn't want. Structure, Variant, and container
// codecs are written against this interface rather than concrete Reader or
// BoundedReader, so the same decode logic runs whether or not the caller has
// scoped a sub-frame.
type byteReader interface {
	ReadByte() (byte, error)
	ReadFull(p []byte) error
	Skip(n int) error
}

// byteWriter is the dual of byteReader.
type byteWriter interface {
	WriteByte(b byte) error
	Write(p []byte) error
	Skip(n int) error
}

var (
	_ byteReader = (*Reader)(nil)
	_ byteReader = (*BoundedReader)(nil)
	_ byteWriter = (*Writer)(nil)
)

// uintClass returns the most compact EncodingByte class able to hold v and
// the number of little-endian payload bytes that follow it (0 for a
// PosFixInt, which carries its value inline in the prefix byte).
func uintClass(v uint64) (nop.EncodingByte, int) {
	switch {
	case v <= nop.FixIntMax:
		return nop.PosFixInt(uint8(v)), 0
	case v <= math.MaxUint8:
		return nop.U8, 1
	case v <= math.MaxUint16:
		return nop.U16, 2
	case v <= math.MaxUint32:
		return nop.U32, 4
	default:
		return nop.U64, 8
	}
}

// intClass is uintClass's signed counterpart.
func intClass(v int64) (nop.EncodingByte, int) {
	if v >= 0 {
		return uintClass(uint64(v))
	}
	switch {
	case v >= nop.FixIntMin:
		return nop.NegFixInt(int8(v)), 0
	case v >= math.MinInt8:
		return nop.I8, 1
	case v >= math.MinInt16:
		return nop.I16, 2
	case v >= math.MinInt32:
		return nop.I32, 4
	default:
		return nop.I64, 8
	}
}

// SizeUint returns the number of bytes, prefix included, that WriteUint(v)
// would emit.
func SizeUint(v uint64) int {
	_, n := uintClass(v)
	return n + 1
}

// SizeInt is SizeUint's signed counterpart.
func SizeInt(v int64) int {
	_, n := intClass(v)
	return n + 1
}

// WriteUint writes v in the smallest size class that can hold it: a
// PosFixInt if v <= 127, otherwise the narrowest of U8/U16/U32/U64. It
// returns the number of bytes written.
func WriteUint(w byteWriter, v uint64) (int, error) {
	class, n := uintClass(v)
	if err := w.WriteByte(byte(class)); err != nil {
		return 0, err
	}
	if n == 0 {
		return 1, nil
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	if err := w.Write(buf[:n]); err != nil {
		return 0, err
	}
	return n + 1, nil
}

// WriteInt is WriteUint's signed counterpart. A non-negative v is written
// exactly as WriteUint writes it (a PosFixInt or the narrowest of
// U8/U16/U32/U64); a negative v uses the smallest of a NegFixInt or
// I8/I16/I32/I64.
func WriteInt(w byteWriter, v int64) (int, error) {
	class, n := intClass(v)
	if err := w.WriteByte(byte(class)); err != nil {
		return 0, err
	}
	if n == 0 {
		return 1, nil
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	if err := w.Write(buf[:n]); err != nil {
		return 0, err
	}
	return n + 1, nil
}

// unsignedWidth returns the bit width an unsigned integer production prefix
// commits to, and reports whether prefix is one at all.
func unsignedWidth(prefix nop.EncodingByte) (bits int, ok bool) {
	if _, isPos := prefix.IsPosFixInt(); isPos {
		return 7, true
	}
	switch prefix {
	case nop.U8:
		return 8, true
	case nop.U16:
		return 16, true
	case nop.U32:
		return 32, true
	case nop.U64:
		return 64, true
	}
	return 0, false
}

// signedWidth is unsignedWidth's signed counterpart.
func signedWidth(prefix nop.EncodingByte) (bits int, ok bool) {
	if _, isPos := prefix.IsPosFixInt(); isPos {
		return 7, true
	}
	if _, isNeg := prefix.IsNegFixInt(); isNeg {
		return 8, true
	}
	switch prefix {
	case nop.I8:
		return 8, true
	case nop.I16:
		return 16, true
	case nop.I32:
		return 32, true
	case nop.I64:
		return 64, true
	}
	return 0, false
}

// MatchUint reports whether prefix is an integer production that can be read
// into an unsigned target of the given bit width without loss: "most compact
// write, permissive read" means any narrower class is accepted.
func MatchUint(prefix nop.EncodingByte, targetBits int) bool {
	bits, ok := unsignedWidth(prefix)
	return ok && bits <= targetBits
}

// MatchInt is MatchUint's signed counterpart.
func MatchInt(prefix nop.EncodingByte, targetBits int) bool {
	bits, ok := signedWidth(prefix)
	return ok && bits <= targetBits
}

// payloadSize maps an integer class prefix to the number of little-endian
// bytes that follow it (0 for any fixint).
func payloadSize(prefix nop.EncodingByte) int {
	switch prefix {
	case nop.U8, nop.I8:
		return 1
	case nop.U16, nop.I16:
		return 2
	case nop.U32, nop.I32:
		return 4
	case nop.U64, nop.I64:
		return 8
	default:
		return 0
	}
}

// ReadUint decodes the payload of an already-consumed unsigned integer
// prefix into a uint64, failing with InvalidIntegerClass if prefix commits
// to more bits than targetBits allows.
func ReadUint(r byteReader, prefix nop.EncodingByte, targetBits int) (uint64, error) {
	if n, ok := prefix.IsPosFixInt(); ok {
		return uint64(n), nil
	}
	bits, ok := unsignedWidth(prefix)
	if !ok {
		return 0, nop.UnexpectedEncodingType(byte(prefix))
	}
	if bits > targetBits {
		return 0, nop.InvalidIntegerClass(prefix.String(), fmt.Sprintf("uint%d", targetBits))
	}
	var buf [8]byte
	n := payloadSize(prefix)
	if err := r.ReadFull(buf[:n]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadInt is ReadUint's signed counterpart: it sign-extends a narrow payload
// to the full 64 bits. It also accepts the unsigned classes WriteInt uses
// for non-negative values, failing with InvalidIntegerClass if the value
// does not fit a signed target of targetBits.
func ReadInt(r byteReader, prefix nop.EncodingByte, targetBits int) (int64, error) {
	if n, ok := prefix.IsPosFixInt(); ok {
		return int64(n), nil
	}
	if n, ok := prefix.IsNegFixInt(); ok {
		return int64(n), nil
	}
	if ubits, ok := unsignedWidth(prefix); ok {
		if ubits > targetBits {
			return 0, nop.InvalidIntegerClass(prefix.String(), fmt.Sprintf("int%d", targetBits))
		}
		u, err := ReadUint(r, prefix, 64)
		if err != nil {
			return 0, err
		}
		if u > uint64(math.MaxInt64)>>(64-targetBits) {
			return 0, nop.InvalidIntegerClass(prefix.String(), fmt.Sprintf("int%d", targetBits))
		}
		return int64(u), nil
	}
	bits, ok := signedWidth(prefix)
	if !ok {
		return 0, nop.UnexpectedEncodingType(byte(prefix))
	}
	if bits > targetBits {
		return 0, nop.InvalidIntegerClass(prefix.String(), fmt.Sprintf("int%d", targetBits))
	}
	var buf [8]byte
	n := payloadSize(prefix)
	if err := r.ReadFull(buf[:n]); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(buf[:])
	if n < 8 {
		signBit := uint64(1) << (uint(n)*8 - 1)
		if v&signBit != 0 {
			v |= ^uint64(0) << (uint(n) * 8)
		}
	}
	return int64(v), nil
}
