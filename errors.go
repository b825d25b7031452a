// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nop

import (
	"errors"
	"fmt"
)

// Kind names one of the closed set of error conditions a codec operation can
// fail with. Kind is the realization of the spec's Status error taxonomy as
// an idiomatic Go error classification: callers branch on Kind, never on an
// error string.
type Kind uint8

const (
	// KindNone indicates success. KindOf returns KindNone for a nil error.
	KindNone Kind = iota
	// KindIoError indicates the underlying Reader or Writer failed.
	KindIoError
	// KindNoBuffer indicates a BoundedReader would exceed its byte budget.
	KindNoBuffer
	// KindUnexpectedEncodingType indicates a read prefix byte does not Match
	// the target codec.
	KindUnexpectedEncodingType
	// KindInvalidIntegerClass indicates an integer size class too wide for
	// the target type.
	KindInvalidIntegerClass
	// KindInvalidContainerLength indicates a declared length exceeds
	// capacity or is otherwise malformed.
	KindInvalidContainerLength
	// KindInvalidMemberCount indicates a structure's member count does not
	// match its declaration.
	KindInvalidMemberCount
	// KindInvalidInterfaceMethod indicates an RPC dispatcher received an
	// unknown method selector.
	KindInvalidInterfaceMethod
	// KindDuplicateMethodHash indicates two methods of an RPC interface
	// collide on their SipHash selector.
	KindDuplicateMethodHash
	// KindSystemError indicates a transport setup failure.
	KindSystemError
)

// String returns a diagnostic name for k. The returned string is for
// diagnostics only; programs must branch on the Kind value, not this string.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIoError:
		return "io error"
	case KindNoBuffer:
		return "no buffer"
	case KindUnexpectedEncodingType:
		return "unexpected encoding type"
	case KindInvalidIntegerClass:
		return "invalid integer class"
	case KindInvalidContainerLength:
		return "invalid container length"
	case KindInvalidMemberCount:
		return "invalid member count"
	case KindInvalidInterfaceMethod:
		return "invalid interface method"
	case KindDuplicateMethodHash:
		return "duplicate method hash"
	case KindSystemError:
		return "system error"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by every nop codec operation. It carries a
// closed [Kind] plus an optional message and underlying cause, and implements
// [errors.Unwrap] so [errors.Is] and [errors.As] work against the wrapped
// cause.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// newError constructs an *Error of the given kind. msg, if non-empty, is used
// verbatim; otherwise Error falls back to the kind's name. err's message, if
// err is non-nil, is appended after it.
func newError(k Kind, msg string, err error) *Error {
	return &Error{kind: k, msg: msg, err: err}
}

// Kind returns e's error kind.
func (e *Error) Kind() Kind { return e.kind }

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error { return e.err }

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.msg
	if msg == "" {
		msg = e.kind.String()
	}
	if e.err != nil {
		return fmt.Sprintf("nop: %s: %s", msg, e.err.Error())
	}
	return "nop: " + msg
}

// KindOf classifies err as a [Kind]. If err is nil, KindOf returns KindNone.
// If err (or any error in its Unwrap chain) is an *Error, its Kind is
// returned. Otherwise KindOf returns KindIoError, treating any unclassified
// error as an underlying transport failure.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindIoError
}

// IoError wraps err (from an underlying Reader or Writer) as a KindIoError.
func IoError(err error) *Error {
	return newError(KindIoError, "io error", err)
}

// NoBuffer reports that a BoundedReader operation requesting n bytes would
// exceed its remaining capacity of remaining bytes.
func NoBuffer(n, remaining int) *Error {
	return newError(KindNoBuffer, fmt.Sprintf("requested %d bytes, %d remaining in bound", n, remaining), nil)
}

// UnexpectedEncodingType reports that the prefix byte got did not match any
// accepted production for the target type.
func UnexpectedEncodingType(got byte) *Error {
	return newError(KindUnexpectedEncodingType, fmt.Sprintf("unexpected encoding byte 0x%02x", got), nil)
}

// InvalidIntegerClass reports that a decoded integer size class is wider than
// the target type can represent.
func InvalidIntegerClass(class string, target string) *Error {
	return newError(KindInvalidIntegerClass, fmt.Sprintf("integer class %s too wide for %s", class, target), nil)
}

// InvalidContainerLength reports a malformed or over-capacity declared
// length for an array, map, string, binary, or LogicalBuffer production.
func InvalidContainerLength(length, capacity int) *Error {
	return newError(KindInvalidContainerLength, fmt.Sprintf("declared length %d exceeds capacity %d", length, capacity), nil)
}

// InvalidMemberCount reports that a decoded structure's member count does
// not match the number of members its Go type declares.
func InvalidMemberCount(got, want int) *Error {
	return newError(KindInvalidMemberCount, fmt.Sprintf("structure has %d members, want %d", got, want), nil)
}

// InvalidInterfaceMethod reports that an RPC dispatcher received a selector
// not present in its method table.
func InvalidInterfaceMethod(selector uint64) *Error {
	return newError(KindInvalidInterfaceMethod, fmt.Sprintf("unknown method selector %#016x", selector), nil)
}

// DuplicateMethodHash reports that two methods of an interface declaration
// collide on their SipHash-2-4 selector.
func DuplicateMethodHash(a, b string, selector uint64) *Error {
	return newError(KindDuplicateMethodHash, fmt.Sprintf("methods %q and %q collide on selector %#016x", a, b, selector), nil)
}

// SystemError wraps a transport setup failure (e.g. establishing a pipe or
// socket) as a KindSystemError.
func SystemError(err error) *Error {
	return newError(KindSystemError, "system error", err)
}
