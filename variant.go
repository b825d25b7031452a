// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nop

import (
	"fmt"
	"reflect"
)

// Variant is a closed tagged union over a fixed list of alternative types,
// plus a distinguished empty state. At most one alternative is alive at a
// time; Index names which (or -1 for empty). The zero value of Variant is
// not usable; construct one with [NewVariant].
//
// Go has no variadic generics, so unlike the spec's Variant<T...> the
// alternative list here is a runtime []reflect.Type fixed at construction
// rather than a compile-time type list. Result and Optional, below, recover
// compile-time type safety for the common two- and one-alternative cases.
type Variant struct {
	types []reflect.Type
	index int
	value any
}

// NewVariant returns an empty Variant over the given closed list of
// alternative types. types must not contain duplicates.
func NewVariant(types ...reflect.Type) *Variant {
	seen := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if seen[t] {
			panic(fmt.Sprintf("nop: duplicate alternative type %v in Variant", t))
		}
		seen[t] = true
	}
	cp := make([]reflect.Type, len(types))
	copy(cp, types)
	return &Variant{types: cp, index: -1}
}

// Types returns the closed list of alternative types of v.
func (v *Variant) Types() []reflect.Type { return v.types }

// Index returns the index of the currently active alternative, or -1 if v is
// empty.
func (v *Variant) Index() int { return v.index }

// IsEmpty reports whether v currently holds no alternative.
func (v *Variant) IsEmpty() bool { return v.index < 0 }

// Reset destroys the active alternative, if any, leaving v empty.
func (v *Variant) Reset() {
	v.index = -1
	v.value = nil
}

// Emplace destroys the active alternative, if any, and constructs the i-th
// alternative from val. It returns an error if i is out of range or val is
// not assignable to the i-th alternative type.
func (v *Variant) Emplace(i int, val any) error {
	if i < 0 || i >= len(v.types) {
		return fmt.Errorf("nop: alternative index %d out of range [0,%d)", i, len(v.types))
	}
	if val != nil {
		vt := reflect.TypeOf(val)
		if !vt.AssignableTo(v.types[i]) {
			return fmt.Errorf("nop: value of type %v not assignable to alternative %d (%v)", vt, i, v.types[i])
		}
	}
	v.index = i
	v.value = val
	return nil
}

// EmplaceValue selects an alternative for val using the spec's selection
// rule: if val is structurally a direct member of the alternative list, that
// member is chosen; otherwise the unique alternative that val's type is
// assignable to is chosen. If more than one alternative would accept val by
// assignability, EmplaceValue returns an error (the spec requires this
// ambiguity to be rejected).
func (v *Variant) EmplaceValue(val any) error {
	if val == nil {
		return fmt.Errorf("nop: cannot select a Variant alternative for a nil value")
	}
	vt := reflect.TypeOf(val)
	for i, t := range v.types {
		if t == vt {
			return v.Emplace(i, val)
		}
	}
	match := -1
	for i, t := range v.types {
		if vt.AssignableTo(t) {
			if match >= 0 {
				return fmt.Errorf("nop: value of type %v is ambiguous between alternatives %d and %d", vt, match, i)
			}
			match = i
		}
	}
	if match < 0 {
		return fmt.Errorf("nop: value of type %v matches no alternative of Variant", vt)
	}
	return v.Emplace(match, val)
}

// Get returns the active alternative's value and index. If v is empty, Get
// returns (nil, -1).
func (v *Variant) Get() (any, int) { return v.value, v.index }

// GetAt returns the value at alternative i if it is the active alternative.
// ok is false if i is not currently active.
func (v *Variant) GetAt(i int) (val any, ok bool) {
	if v.index != i {
		return nil, false
	}
	return v.value, true
}

// emptySentinel is passed to Visit's op when v is empty.
type emptySentinel struct{}

// EmptySentinel is the value passed to a Visit callback when the Variant is
// empty.
var EmptySentinel = emptySentinel{}

// Visit invokes op with the active alternative's index and value, or with
// (-1, EmptySentinel) if v is empty, and returns op's result.
func (v *Variant) Visit(op func(index int, val any) any) any {
	if v.IsEmpty() {
		return op(-1, EmptySentinel)
	}
	return op(v.index, v.value)
}

// Become makes v become the i-th alternative, constructed by calling
// construct. If construct returns an error, v is left empty and Become
// returns nil: the construction error is not passed on to the caller.
// Become is a no-op if v is already the i-th alternative. It returns an
// error if i is out of range (leaving v empty) or if the constructed value
// is not assignable to the i-th alternative type.
func (v *Variant) Become(i int, construct func() (any, error)) error {
	if v.index == i {
		return nil
	}
	if i < 0 || i >= len(v.types) {
		v.Reset()
		return fmt.Errorf("nop: alternative index %d out of range [0,%d)", i, len(v.types))
	}
	val, err := construct()
	if err != nil {
		v.Reset()
		return nil
	}
	return v.Emplace(i, val)
}

// IfAnyOf restricts a Visit to the subset of v's alternatives named by
// indices. If v's active alternative (or empty, index -1) is not in indices,
// IfAnyOf returns (nil, false) without invoking op.
func IfAnyOf(v *Variant, indices []int, op func(index int, val any) any) (result any, ok bool) {
	idx := v.Index()
	for _, i := range indices {
		if i == idx {
			return v.Visit(op), true
		}
	}
	return nil, false
}

// Optional is a thin façade over a two-state Variant<empty, T>: a value of T
// that may be absent.
type Optional[T any] struct {
	variant Variant
}

// NewOptional returns an Optional holding val.
func NewOptional[T any](val T) Optional[T] {
	o := Optional[T]{variant: Variant{types: []reflect.Type{reflect.TypeFor[T]()}, index: -1}}
	_ = o.variant.Emplace(0, val)
	return o
}

// NewOptionalEmpty returns an empty Optional.
func NewOptionalEmpty[T any]() Optional[T] {
	return Optional[T]{variant: Variant{types: []reflect.Type{reflect.TypeFor[T]()}, index: -1}}
}

// IsEmpty reports whether o holds no value.
func (o Optional[T]) IsEmpty() bool { return o.variant.IsEmpty() }

// Get returns o's value and whether it is present.
func (o Optional[T]) Get() (val T, ok bool) {
	v, present := o.variant.GetAt(0)
	if !present {
		return val, false
	}
	return v.(T), true
}

// Set replaces o's value with val.
func (o *Optional[T]) Set(val T) { _ = o.variant.Emplace(0, val) }

// Clear empties o.
func (o *Optional[T]) Clear() { o.variant.Reset() }

// AsVariant exposes o's underlying one-alternative Variant, so that wire
// code can encode and decode an Optional without knowing T at compile time.
// If o is the zero Optional, AsVariant first makes it an empty Optional, so
// a zero-value Optional can be decoded into.
func (o *Optional[T]) AsVariant() *Variant {
	if o.variant.types == nil {
		o.variant = Variant{types: []reflect.Type{reflect.TypeFor[T]()}, index: -1}
	}
	return &o.variant
}

// Result is a thin façade over a three-state Variant<empty, E, T>: either no
// value, an error of type E, or a success value of type T.
type Result[E any, T any] struct {
	variant Variant
}

// NewResultOk returns a Result holding the success value val.
func NewResultOk[E any, T any](val T) Result[E, T] {
	r := newResult[E, T]()
	_ = r.variant.Emplace(1, val)
	return r
}

// NewResultErr returns a Result holding the error value err.
func NewResultErr[E any, T any](err E) Result[E, T] {
	r := newResult[E, T]()
	_ = r.variant.Emplace(0, err)
	return r
}

// NewResultEmpty returns an empty Result.
func NewResultEmpty[E any, T any]() Result[E, T] {
	return newResult[E, T]()
}

func newResult[E any, T any]() Result[E, T] {
	return Result[E, T]{variant: Variant{
		types: []reflect.Type{reflect.TypeFor[E](), reflect.TypeFor[T]()},
		index: -1,
	}}
}

// IsEmpty reports whether r holds neither an error nor a success value.
func (r Result[E, T]) IsEmpty() bool { return r.variant.IsEmpty() }

// IsErr reports whether r holds an error value.
func (r Result[E, T]) IsErr() bool { return r.variant.Index() == 0 }

// IsOk reports whether r holds a success value.
func (r Result[E, T]) IsOk() bool { return r.variant.Index() == 1 }

// Err returns r's error value. It panics if r does not hold an error.
func (r Result[E, T]) Err() E {
	v, ok := r.variant.GetAt(0)
	if !ok {
		panic("nop: Result.Err called on a Result that does not hold an error")
	}
	return v.(E)
}

// Ok returns r's success value. It panics if r does not hold a success
// value.
func (r Result[E, T]) Ok() T {
	v, ok := r.variant.GetAt(1)
	if !ok {
		panic("nop: Result.Ok called on a Result that does not hold a success value")
	}
	return v.(T)
}

// AsVariant exposes r's underlying two-alternative Variant (index 0 is the
// error alternative, index 1 the success alternative), so that wire code can
// encode and decode a Result without knowing E or T at compile time. If r is
// the zero Result, AsVariant first makes it an empty Result, so a zero-value
// Result can be decoded into.
func (r *Result[E, T]) AsVariant() *Variant {
	if r.variant.types == nil {
		r.variant = newResult[E, T]().variant
	}
	return &r.variant
}
