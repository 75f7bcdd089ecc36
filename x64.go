// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x64 generates x86-64 machine code.
//
// The instruction set is a small 64-bit subset: mov, add, sub, xor, push,
// pop, near jumps, and stack frame setup and teardown.  Operand size is
// always 64 bits, memory operands always carry a full-width displacement,
// and arithmetic immediates are always 32 bits wide, so every supported
// operand combination has exactly one encoding.
//
// Instruction methods return an error implementing errors.CodeError when
// the requested operand combination has no encoding.  No bytes are emitted
// in that case.  Code buffer capacity exhaustion surfaces as a panic which
// the Assemble function converts to an errors.ResourceLimit error.
package x64

import (
	"encoding/binary"
	"fmt"

	"gate.computer/x64/buffer"
	"gate.computer/x64/internal/code"
	"gate.computer/x64/internal/errorpanic"
)

// CodeBuffer is the destination of generated code.
type CodeBuffer = code.Buffer

// Config for assembler construction.
type Config struct {
	// Text is the code buffer.  If nil, a buffer.Dynamic is allocated.
	Text CodeBuffer
}

// Assembler appends instructions to a code buffer.  Bytes are never
// modified after emission, except through Patch32.  Methods which can fail
// emit nothing when they return an error.  An Assembler must not be used
// concurrently.
type Assembler struct {
	text code.Buf
}

// NewAssembler with the given configuration.  config may be nil.
func NewAssembler(config *Config) *Assembler {
	var b CodeBuffer
	if config != nil {
		b = config.Text
	}
	if b == nil {
		b = buffer.NewDynamic(nil)
	}

	a := &Assembler{
		text: code.Buf{Buffer: b},
	}
	a.text.Addr = int32(len(b.Bytes()))
	return a
}

// Addr is the offset of the next byte to be emitted.
func (a *Assembler) Addr() int32 {
	return a.text.Addr
}

// PutByte appends a raw byte.
func (a *Assembler) PutByte(b byte) {
	a.text.PutByte(b)
}

// PutUint32 appends a 32-bit value in little-endian byte order.
func (a *Assembler) PutUint32(val uint32) {
	a.text.PutUint32(val)
}

// PutUint64 appends a 64-bit value in little-endian byte order.
func (a *Assembler) PutUint64(val uint64) {
	binary.LittleEndian.PutUint64(a.text.Extend(8), val)
}

// Patch32 overwrites 4 previously emitted bytes at offset with a 32-bit
// value in little-endian byte order.  An out-of-range offset is a
// programming error: Patch32 panics, and the panic is not converted to an
// error by Assemble.
func (a *Assembler) Patch32(value uint32, offset int32) {
	text := a.text.Bytes()
	if offset < 0 || int(offset)+4 > len(text) {
		panic(fmt.Sprintf("patch offset out of range: %d", offset))
	}
	binary.LittleEndian.PutUint32(text[offset:], value)
}

// FinalText returns the generated code.  The assembler must not be used
// afterwards.
func (a *Assembler) FinalText() []byte {
	text := a.text.Bytes()
	a.text = code.Buf{}
	return text
}

// Assemble a code fragment.  fn is invoked with a new assembler, and the
// generated code is returned if fn succeeds.  Buffer capacity panics are
// recovered and returned as errors; runtime errors and foreign panics
// propagate.
func Assemble(config *Config, fn func(*Assembler) error) (text []byte, err error) {
	defer func() {
		if x := recover(); x != nil {
			err = errorpanic.Handle(x)
		}
	}()

	a := NewAssembler(config)

	err = fn(a)
	if err != nil {
		return
	}

	text = a.FinalText()
	return
}
