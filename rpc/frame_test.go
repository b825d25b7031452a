// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"testing"

	"github.com/vincentlao/nop-go"
	"github.com/vincentlao/nop-go/wire"
)

func TestRequestResponse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	req := Request{Selector: 1234, Args: []byte{0x01, 0x02, 0x03}}
	if err := WriteRequest(w, req); err != nil {
		t.Fatalf("WriteRequest: %v", err)
	}

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadRequest(r, 0)
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	if got.Selector != req.Selector || !bytes.Equal(got.Args, req.Args) {
		t.Fatalf("got %+v, want %+v", got, req)
	}
}

func TestReadRequest_RejectsOversizedFrame(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	req := Request{Selector: 1, Args: make([]byte, 100)}
	if err := WriteRequest(w, req); err != nil {
		t.Fatalf("WriteRequest: %v", err)
	}

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	_, err := ReadRequest(r, 10)
	if err == nil {
		t.Fatal("expected InvalidContainerLength, got nil")
	}
	if nop.KindOf(err) != nop.KindInvalidContainerLength {
		t.Fatalf("KindOf(err) = %v, want KindInvalidContainerLength", nop.KindOf(err))
	}
}

func TestResponse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	resp := Response{Body: []byte{0xaa, 0xbb}}
	if err := WriteResponse(w, resp); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}

	r := wire.NewReader(bytes.NewReader(buf.Bytes()))
	got, err := ReadResponse(r, 0)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if !bytes.Equal(got.Body, resp.Body) {
		t.Fatalf("got %+v, want %+v", got, resp)
	}
}
