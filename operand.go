// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x64

import (
	"fmt"
)

// Kind of operand.
type Kind byte

const (
	KindReg = Kind(iota)
	KindMem
	KindImm64
	KindImm32
	KindImm8
)

func (k Kind) String() string {
	switch k {
	case KindReg:
		return "reg"
	case KindMem:
		return "mem"
	case KindImm64:
		return "imm64"
	case KindImm32:
		return "imm32"
	case KindImm8:
		return "imm8"
	default:
		return fmt.Sprintf("kind%d", byte(k))
	}
}

// Operand is a register, a memory reference through a base register, or an
// immediate.  Operands are comparable values.
type Operand struct {
	kind Kind
	reg  Reg
	disp uint32
	imm  uint64
}

// RegOp makes a register operand.
func RegOp(r Reg) Operand {
	return Operand{kind: KindReg, reg: r}
}

// Mem makes a memory operand which addresses [base + disp].  The
// displacement is always encoded in full width.
func Mem(base Reg, disp uint32) Operand {
	return Operand{kind: KindMem, reg: base, disp: disp}
}

// Imm64 makes a 64-bit immediate operand.
func Imm64(val uint64) Operand {
	return Operand{kind: KindImm64, imm: val}
}

// Imm32 makes a 32-bit immediate operand.
func Imm32(val uint32) Operand {
	return Operand{kind: KindImm32, imm: uint64(val)}
}

// Imm8 makes an 8-bit immediate operand.
func Imm8(val uint8) Operand {
	return Operand{kind: KindImm8, imm: uint64(val)}
}

// Kind of the operand.
func (o Operand) Kind() Kind { return o.kind }

func (o Operand) String() string {
	switch o.kind {
	case KindReg:
		return o.reg.String()
	case KindMem:
		if o.disp == 0 {
			return fmt.Sprintf("[%s]", o.reg)
		}
		return fmt.Sprintf("[%s+%#x]", o.reg, o.disp)
	case KindImm64:
		return fmt.Sprintf("%#x", o.imm)
	case KindImm32:
		return fmt.Sprintf("%#x", uint32(o.imm))
	case KindImm8:
		return fmt.Sprintf("%#x", uint8(o.imm))
	default:
		return o.kind.String()
	}
}
