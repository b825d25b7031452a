// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

// Option configures a Dispatcher or MethodSender at construction time.
type Option func(*options)

type options struct {
	maxFrameLength int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxFrameLength caps the argument/return byte length a single request
// or response frame may declare; a declared length beyond n fails with
// InvalidContainerLength before any allocation. n <= 0 means unlimited,
// the default.
func WithMaxFrameLength(n int) Option {
	return func(o *options) { o.maxFrameLength = n }
}
