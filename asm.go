// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x64

import (
	"gate.computer/x64/internal/errors"
	"gate.computer/x64/internal/in"
	"gate.computer/x64/internal/reg"
)

// Each instruction method matches the operand kinds exhaustively:
// combinations without an arm have no encoding, and adding an instruction
// means adding a method with its own match.

// Mov emits a 64-bit move.  The supported combinations are register to
// register, memory to register, 64-bit immediate to register, and register
// to memory.  A move between identical register operands emits nothing.
func (a *Assembler) Mov(dst, src Operand) error {
	switch dst.kind {
	case KindReg:
		switch src.kind {
		case KindReg:
			if src.reg == dst.reg {
				return nil // Nothing to do.
			}
			in.MOVmr.RegReg(&a.text, reg.R(src.reg), reg.R(dst.reg))
			return nil

		case KindMem:
			in.MOV.RegMemDisp(&a.text, reg.R(dst.reg), reg.R(src.reg), int32(src.disp))
			return nil

		case KindImm64:
			in.MOV64i.RegImm64(&a.text, reg.R(dst.reg), int64(src.imm))
			return nil
		}

		return errors.BadOperandf("mov: invalid source operand: %s", src)

	case KindMem:
		switch src.kind {
		case KindReg:
			in.MOVmr.RegMemDisp(&a.text, reg.R(src.reg), reg.R(dst.reg), int32(dst.disp))
			return nil

		case KindMem:
			return errors.BadOperandf("mov: cannot move memory to memory: %s, %s", dst, src)
		}

		return errors.BadOperandf("mov: cannot move immediate to memory: %s", src)
	}

	return errors.BadOperandf("mov: invalid destination operand: %s", dst)
}

// Add emits a 64-bit add.  The destination must be a register; the source
// may be a register, a memory reference, or a 32-bit immediate.
func (a *Assembler) Add(dst, src Operand) error {
	switch dst.kind {
	case KindReg:
		switch src.kind {
		case KindReg:
			in.ADDmr.RegReg(&a.text, reg.R(src.reg), reg.R(dst.reg))
			return nil

		case KindMem:
			in.ADD.RegMemDisp(&a.text, reg.R(dst.reg), reg.R(src.reg), int32(src.disp))
			return nil

		case KindImm32:
			in.ADDi.RegImm32(&a.text, reg.R(dst.reg), int32(src.imm))
			return nil
		}

		return errors.BadOperandf("add: invalid source operand: %s", src)
	}

	return errors.BadOperandf("add: invalid destination operand: %s", dst)
}

// Sub emits a 64-bit subtract.  The destination must be a register; the
// source may be a register, a memory reference, or a 32-bit immediate.
func (a *Assembler) Sub(dst, src Operand) error {
	switch dst.kind {
	case KindReg:
		switch src.kind {
		case KindReg:
			in.SUBmr.RegReg(&a.text, reg.R(src.reg), reg.R(dst.reg))
			return nil

		case KindMem:
			in.SUB.RegMemDisp(&a.text, reg.R(dst.reg), reg.R(src.reg), int32(src.disp))
			return nil

		case KindImm32:
			in.SUBi.RegImm32(&a.text, reg.R(dst.reg), int32(src.imm))
			return nil
		}

		return errors.BadOperandf("sub: invalid source operand: %s", src)
	}

	return errors.BadOperandf("sub: invalid destination operand: %s", dst)
}

// Xor emits a 64-bit exclusive or.  A register destination accepts a
// register, a memory reference, or a 32-bit immediate source; a memory
// destination accepts a register source.
func (a *Assembler) Xor(dst, src Operand) error {
	switch dst.kind {
	case KindReg:
		switch src.kind {
		case KindReg:
			in.XORmr.RegReg(&a.text, reg.R(src.reg), reg.R(dst.reg))
			return nil

		case KindMem:
			in.XOR.RegMemDisp(&a.text, reg.R(dst.reg), reg.R(src.reg), int32(src.disp))
			return nil

		case KindImm32:
			in.XORi.RegImm32(&a.text, reg.R(dst.reg), int32(src.imm))
			return nil
		}

		return errors.BadOperandf("xor: invalid source operand: %s", src)

	case KindMem:
		if src.kind == KindReg {
			in.XORmr.RegMemDisp(&a.text, reg.R(src.reg), reg.R(dst.reg), int32(dst.disp))
			return nil
		}

		return errors.BadOperandf("xor: invalid source operand for memory destination: %s", src)
	}

	return errors.BadOperandf("xor: invalid destination operand: %s", dst)
}

// Push emits a 64-bit register push, or a push of a 32-bit immediate.  The
// immediate form is encoded without a REX prefix.
func (a *Assembler) Push(src Operand) error {
	switch src.kind {
	case KindReg:
		in.PUSHo.Reg(&a.text, reg.R(src.reg))
		return nil

	case KindImm32:
		in.PUSHi.Imm32(&a.text, int32(src.imm))
		return nil
	}

	return errors.BadOperandf("push: invalid operand: %s", src)
}

// Pop emits a 64-bit register pop.
func (a *Assembler) Pop(dst Operand) error {
	if dst.kind == KindReg {
		in.POPo.Reg(&a.text, reg.R(dst.reg))
		return nil
	}

	return errors.BadOperandf("pop: invalid operand: %s", dst)
}

// JumpNear emits a relative jump with an 8-bit (imm8 operand) or 32-bit
// (imm32 operand) displacement, and returns the offset of the displacement
// field.  The displacement is typically a placeholder which the caller
// patches once the jump target is known.
func (a *Assembler) JumpNear(target Operand) (int32, error) {
	switch target.kind {
	case KindImm8:
		in.JMPcb.Disp8(&a.text, int8(target.imm))
		return a.text.Addr - 1, nil

	case KindImm32:
		in.JMPcd.Disp32(&a.text, int32(target.imm))
		return a.text.Addr - 4, nil
	}

	return 0, errors.BadOperandf("jmp: invalid target operand: %s", target)
}

// Enter emits a function prologue: the caller's frame pointer is saved and
// a new frame is established, and frameSize bytes of stack space (rounded
// up to 16-byte alignment) are reserved.  Enter(0) reserves nothing.
func (a *Assembler) Enter(frameSize uint32) {
	in.PUSHo.Reg(&a.text, reg.R(RBP))
	in.MOVmr.RegReg(&a.text, reg.R(RSP), reg.R(RBP))
	if frameSize > 0 {
		in.SUBi.RegImm32(&a.text, reg.R(RSP), int32((frameSize+15)&^15))
	}
}

// Leave emits a function epilogue which undoes Enter.
func (a *Assembler) Leave() {
	in.LEAVE.Simple(&a.text)
}

// Ret emits a near return.
func (a *Assembler) Ret() {
	in.RET.Simple(&a.text)
}
