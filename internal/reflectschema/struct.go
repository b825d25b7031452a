// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectschema parses the `nop:"..."` struct tag vocabulary and
// walks a struct's fields in declaration order, the way a Structure
// declaration names its ordered members (see the schema/reflection
// component of the design).
package reflectschema

import (
	"iter"
	"reflect"
	"strings"
)

// FieldParams is the parsed representation of the `nop:"..."` tag on a
// struct field.
type FieldParams struct {
	Ignore bool // true iff this field should be ignored (tag "-")

	// Buffer, if non-empty, names the sibling field holding the live count
	// for this field, which is itself the backing array/slice. Together they
	// form a LogicalBuffer: only the first Buffer-named-field elements of
	// this field are encoded, and on decode the count is restored alongside
	// the elements. Set via `nop:"buffer:CountField"`.
	Buffer string

	// Handle marks this field as carrying a nop.HandleRef (or a type that
	// wraps one). Set via `nop:"handle"`. The wire codec does not consult
	// this flag: a field is encoded with the handle codec only when its Go
	// type is nop.HandleRef.
	Handle bool
}

// ParseFieldParams parses str, the value of a field's `nop` struct tag,
// ignoring unrecognized parts.
func ParseFieldParams(str string) (ret FieldParams) {
	for part := range strings.SplitSeq(str, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "-":
			ret.Ignore = true
		case part == "handle":
			ret.Handle = true
		case strings.HasPrefix(part, "buffer:"):
			ret.Buffer = part[len("buffer:"):]
		}
	}
	return ret
}

// Field pairs a struct field's reflect.Value with its parsed FieldParams.
type Field struct {
	Value  reflect.Value
	Params FieldParams
	Name   string
}

// StructFields returns a sequence iterating over the encoded members of the
// struct identified by v, in declaration order. Fields with a `nop:"-"` tag
// are skipped, as are unexported fields. Fields of an embedded (anonymous)
// struct are flattened into the sequence as if they were fields of the
// surrounding struct, unless the embedded field itself carries a `nop` tag;
// this holds even when the embedded struct type is itself unexported.
func StructFields(v reflect.Value) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		t := v.Type()
		for i := range t.NumField() {
			sf := t.Field(i)
			params := ParseFieldParams(sf.Tag.Get("nop"))
			if params.Ignore {
				continue
			}
			if sf.Anonymous && sf.Tag.Get("nop") == "" && sf.Type.Kind() == reflect.Struct {
				for inner := range StructFields(v.Field(i)) {
					if !yield(inner) {
						return
					}
				}
				continue
			}
			if !sf.IsExported() {
				continue
			}
			if !yield(Field{Value: v.Field(i), Params: params, Name: sf.Name}) {
				return
			}
		}
	}
}

// BufferPairs groups the fields of v into LogicalBuffer (array, count) pairs
// and plain members, preserving declaration order. Each returned Member is
// either a Plain field or a Buffer pair; a field named as another field's
// count sibling via `nop:"buffer:..."` is consumed into that pair and does
// not appear again as a Plain member at its own position.
func BufferPairs(v reflect.Value) []Member {
	fields := make([]Field, 0)
	byName := make(map[string]int)
	for f := range StructFields(v) {
		byName[f.Name] = len(fields)
		fields = append(fields, f)
	}

	// A field is consumed (and must not appear as its own Plain member) when
	// some other field's `nop:"buffer:..."` tag names it as the count
	// sibling. This is found up front so the result does not depend on
	// whether the array field or its count field is declared first.
	consumed := make([]bool, len(fields))
	for _, f := range fields {
		if f.Params.Buffer == "" {
			continue
		}
		if ci, ok := byName[f.Params.Buffer]; ok {
			consumed[ci] = true
		}
	}

	members := make([]Member, 0, len(fields))
	for i, f := range fields {
		if consumed[i] {
			continue
		}
		if f.Params.Buffer != "" {
			if ci, ok := byName[f.Params.Buffer]; ok {
				members = append(members, Member{
					Array:    f.Value,
					Count:    fields[ci].Value,
					Name:     f.Name,
					IsBuffer: true,
				})
				continue
			}
		}
		members = append(members, Member{Array: f.Value, Name: f.Name})
	}
	return members
}

// Member is one encoded member of a structure: either a plain field (IsBuffer
// false, Array holds the field) or a LogicalBuffer pair (IsBuffer true, Array
// the backing array/slice field and Count the sibling count field).
type Member struct {
	Array    reflect.Value
	Count    reflect.Value
	Name     string
	IsBuffer bool
}
