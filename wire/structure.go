// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/internal/reflectschema"
)

// writeStruct encodes v, a struct value, as the Structure production: prefix,
// compact member count, then each member's encoding in declaration order.
// A LogicalBuffer pair (an array/slice field paired with a `nop:"buffer:..."`
// count sibling) counts, and encodes, as a single member.
func writeStruct(w byteWriter, v reflect.Value) error {
	members := reflectschema.BufferPairs(v)
	if err := w.WriteByte(byte(nop.Structure)); err != nil {
		return err
	}
	if _, err := WriteUint(w, uint64(len(members))); err != nil {
		return err
	}
	for _, m := range members {
		if m.IsBuffer {
			if err := writeLogicalBuffer(w, m); err != nil {
				return err
			}
			continue
		}
		if err := writeValue(w, m.Array); err != nil {
			return err
		}
	}
	return nil
}

// readStruct decodes a Structure production into v, a struct value. The
// decoded member count must match the target type's own member count
// exactly; members are read back in the same declaration order writeStruct
// uses.
func readStruct(r byteReader, prefix nop.EncodingByte, v reflect.Value) error {
	if prefix != nop.Structure {
		return nop.UnexpectedEncodingType(byte(prefix))
	}
	n, err := readLength(r)
	if err != nil {
		return err
	}
	members := reflectschema.BufferPairs(v)
	if n != len(members) {
		return nop.InvalidMemberCount(n, len(members))
	}
	for _, m := range members {
		if m.IsBuffer {
			if err := readLogicalBuffer(r, m); err != nil {
				return err
			}
			continue
		}
		if err := readValue(r, m.Array); err != nil {
			return err
		}
	}
	return nil
}
