// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"encoding/binary"

	"gate.computer/x64/internal/code"
	"gate.computer/x64/internal/reg"
)

type output struct {
	buf    [16]byte
	offset uint8
}

func (o *output) len() int    { return int(o.offset) }
func (o *output) debugPrint() { debugPrintInsn(o.buf[:o.offset]) }

func (o *output) copy(target []byte) {
	copy(target, o.buf[:o.offset])
	o.debugPrint()
}

func (o *output) byte(b byte) {
	o.buf[o.offset] = b
	o.offset++
}

func (o *output) rex(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset++
}

func (o *output) mod(mod Mod, ro ModRO, rm ModRM) {
	o.buf[o.offset] = byte(mod) | byte(ro) | byte(rm)
	o.offset++
}

func (o *output) sib(s Scale, i Index, b Base) {
	o.buf[o.offset] = byte(s) | byte(i) | byte(b)
	o.offset++
}

func (o *output) int8(val int8) {
	o.buf[o.offset] = uint8(val)
	o.offset++
}

func (o *output) int32(val int32) {
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += 4
}

func (o *output) int64(val int64) {
	binary.LittleEndian.PutUint64(o.buf[o.offset:], uint64(val))
	o.offset += 8
}

// NP

type NP byte

func (op NP) Simple(text *code.Buf) {
	text.PutByte(byte(op))
}

// O

type O byte

func (op O) Reg(text *code.Buf, r reg.R) {
	var o output
	o.rex(RexW | regRexB(r)) // Redundant with the default operand size, but uniform.
	o.byte(byte(op) + byte(r)&7)
	o.copy(text.Extend(o.len()))
}

// I

type I byte

func (op I) Imm32(text *code.Buf, val int32) {
	var o output
	o.byte(byte(op))
	o.int32(val)
	o.copy(text.Extend(o.len()))
}

// OI

type OI byte

func (op OI) RegImm64(text *code.Buf, r reg.R, val int64) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op) + byte(r)&7)
	o.int64(val)
	o.copy(text.Extend(o.len()))
}

// RM (MR)

type RM byte

func (op RM) RegReg(text *code.Buf, r, r2 reg.R) {
	var o output
	o.rex(RexW | regRexR(r) | regRexB(r2))
	o.byte(byte(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

func (op RM) RegMemDisp(text *code.Buf, r, base reg.R, disp int32) {
	var o output
	o.rex(RexW | regRexR(r) | regRexB(base))
	o.byte(byte(op))
	if regRM(base) == ModRMSIB {
		// The r/m value 4 selects a SIB byte, so rsp and r12 bases go
		// through one.
		o.mod(ModMemDisp32, regRO(r), ModRMSIB)
		o.sib(Scale0, noIndex, regBase(base))
	} else {
		o.mod(ModMemDisp32, regRO(r), regRM(base))
	}
	o.int32(disp)
	o.copy(text.Extend(o.len()))
}

// MI

type MI uint16 // opcode byte and ModRO byte

func (op MI) RegImm32(text *code.Buf, r reg.R, val int32) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op >> 8))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.int32(val)
	o.copy(text.Extend(o.len()))
}

// D

type Db byte // opcode byte
type Dd byte // opcode byte

func (op Db) Disp8(text *code.Buf, disp int8) {
	var o output
	o.byte(byte(op))
	o.int8(disp)
	o.copy(text.Extend(o.len()))
}

func (op Dd) Disp32(text *code.Buf, disp int32) {
	var o output
	o.byte(byte(op))
	o.int32(disp)
	o.copy(text.Extend(o.len()))
}
