// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x64

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"gate.computer/x64/buffer"
	"golang.org/x/xerrors"
)

func TestAssemblerPrimitives(t *testing.T) {
	a := NewAssembler(nil)
	if a.Addr() != 0 {
		t.Error(a.Addr())
	}

	a.PutByte(0x90)
	if a.Addr() != 1 {
		t.Error(a.Addr())
	}

	a.PutUint32(0x11223344)
	a.PutUint64(0x1122334455667788)
	if a.Addr() != 13 {
		t.Error(a.Addr())
	}

	want := []byte{0x90, 0x44, 0x33, 0x22, 0x11, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}
	if data := a.FinalText(); !bytes.Equal(data, want) {
		t.Errorf("% x", data)
	}
}

func TestFinalText(t *testing.T) {
	a := NewAssembler(nil)
	a.Ret()

	if data := a.FinalText(); !bytes.Equal(data, []byte{0xc3}) {
		t.Errorf("% x", data)
	}

	if a.Addr() != 0 {
		t.Error("assembler not consumed")
	}
}

func TestConfigBuffer(t *testing.T) {
	b := buffer.NewDynamic(nil)
	b.PutUint32(0x90909090)

	a := NewAssembler(&Config{Text: b})
	if a.Addr() != 4 { // Continues after the existing code.
		t.Error(a.Addr())
	}

	a.Ret()
	if !bytes.Equal(b.Bytes(), []byte{0x90, 0x90, 0x90, 0x90, 0xc3}) {
		t.Errorf("% x", b.Bytes())
	}
}

func TestAssemble(t *testing.T) {
	text, err := Assemble(nil, func(a *Assembler) error {
		a.Enter(0)
		if err := a.Mov(RegOp(RAX), Imm64(42)); err != nil {
			return err
		}
		a.Leave()
		a.Ret()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x48, 0x55,
		0x48, 0x89, 0xe5,
		0x48, 0xb8, 0x2a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xc9,
		0xc3,
	}
	if !bytes.Equal(text, want) {
		t.Errorf("encoded % x, expected % x", text, want)
	}
}

func TestAssembleError(t *testing.T) {
	sentinel := errors.New("test error")

	if _, err := Assemble(nil, func(a *Assembler) error {
		return sentinel
	}); err != sentinel {
		t.Error(err)
	}
}

func TestAssembleTextOverflow(t *testing.T) {
	config := &Config{
		Text: buffer.NewStatic(make([]byte, 0, 4)),
	}

	_, err := Assemble(config, func(a *Assembler) error {
		a.Enter(16)
		return nil
	})
	if err == nil {
		t.Fatal("no error")
	}
	if !xerrors.Is(err, buffer.ErrStaticSize) {
		t.Error(err)
	}
}

func TestAssembleRuntimePanic(t *testing.T) {
	defer func() {
		if _, ok := recover().(runtime.Error); !ok {
			t.Error("runtime error did not propagate")
		}
	}()

	Assemble(nil, func(a *Assembler) error {
		var b []byte
		_ = b[0]
		return nil
	})
}

func TestAssemblePatchPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()

	Assemble(nil, func(a *Assembler) error {
		a.Patch32(0, 123)
		return nil
	})
}
