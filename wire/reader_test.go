// Copyright 2025 The NOP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/vincentlao/nop-go"
)

func TestReader_ReadByte(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	for _, want := range []byte{0x01, 0x02, 0x03} {
		got, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadByte() = %#x, want %#x", got, want)
		}
	}
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte() at end = %v, want io.EOF", err)
	}
}

func TestReader_ReadFull_AcrossSmallBuffer(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 1000)
	r := NewReader(bytes.NewReader(data), WithReaderBufferSize(8))
	got := make([]byte, len(data))
	if err := r.ReadFull(got); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFull() did not round-trip %d bytes", len(data))
	}
}

func TestReader_ReadFull_ShortStream(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	got := make([]byte, 4)
	err := r.ReadFull(got)
	if !errors.Is(err, io.ErrUnexpectedEOF) && err != io.EOF {
		t.Errorf("ReadFull() on short stream = %v, want io.ErrUnexpectedEOF or io.EOF", err)
	}
}

func TestReader_Skip(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))
	if err := r.Skip(3); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	got, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte() error = %v", err)
	}
	if got != 0x04 {
		t.Errorf("ReadByte() after Skip = %#x, want 0x04", got)
	}
}

func TestReader_GetHandle_NoTable(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, ok := r.GetHandle(0); ok {
		t.Errorf("GetHandle() with no table = ok, want !ok")
	}
}

func TestReader_GetHandle(t *testing.T) {
	table := nop.NewHandleTable()
	ref := table.Push("payload")
	r := NewReader(bytes.NewReader(nil), WithReaderHandleTable(table))
	got, ok := r.GetHandle(ref)
	if !ok || got != "payload" {
		t.Errorf("GetHandle(%d) = (%v, %v), want (\"payload\", true)", ref, got, ok)
	}
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

func TestReader_Ensure_WrapsUnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(errReader{boom})
	err := r.Ensure(1)
	if err == nil || nop.KindOf(err) != nop.KindIoError {
		t.Errorf("Ensure() error = %v, want KindIoError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Ensure() error does not wrap %v", boom)
	}
}
