// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/vincentlao/nop-go"
)

// writeVariant encodes v as the Variant production: prefix, a signed compact
// index (-1 for empty), then the active alternative's own encoding, if any.
func writeVariant(w byteWriter, v *nop.Variant) error {
	if err := w.WriteByte(byte(nop.Variant)); err != nil {
		return err
	}
	idx := v.Index()
	if _, err := WriteInt(w, int64(idx)); err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}
	val, _ := v.Get()
	return writeValue(w, reflect.ValueOf(val))
}

// readVariant decodes a Variant production into v, reconstructing the
// alternative named by the decoded index. An index of -1 leaves v empty.
//
// The decoded index is authoritative: unlike the codec dispatch law that
// retries the next candidate type on UnexpectedEncodingType, the Variant
// production already names its alternative explicitly on the wire, so there
// is nothing to retry against. Fungible (fungibility.go) is a separate,
// static type-equivalence check used by callers comparing two Go types'
// wire shapes; it is never consulted here, and deliberately does not
// attempt to compare Variant alternative lists (see its doc comment).
func readVariant(r byteReader, v *nop.Variant) error {
	prefix, err := r.ReadByte()
	if err != nil {
		return err
	}
	if nop.EncodingByte(prefix) != nop.Variant {
		return nop.UnexpectedEncodingType(prefix)
	}
	idxPrefix, err := r.ReadByte()
	if err != nil {
		return err
	}
	idx64, err := ReadInt(r, nop.EncodingByte(idxPrefix), 64)
	if err != nil {
		return err
	}
	idx := int(idx64)
	if idx < 0 {
		v.Reset()
		return nil
	}
	types := v.Types()
	if idx >= len(types) {
		return nop.InvalidContainerLength(idx, len(types))
	}
	elem := reflect.New(types[idx]).Elem()
	if err := readValue(r, elem); err != nil {
		return err
	}
	return v.Emplace(idx, elem.Interface())
}
