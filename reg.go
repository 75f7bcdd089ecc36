// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package x64

import (
	"fmt"
)

// Reg is a general-purpose 64-bit register id.  Ids 8-15 require a REX
// prefix extension bit.
type Reg byte

const (
	RAX = Reg(0)
	RCX = Reg(1)
	RDX = Reg(2)
	RBX = Reg(3)
	RSP = Reg(4)
	RBP = Reg(5)
	RSI = Reg(6)
	RDI = Reg(7)
	R8  = Reg(8)
	R9  = Reg(9)
	R10 = Reg(10)
	R11 = Reg(11)
	R12 = Reg(12)
	R13 = Reg(13)
	R14 = Reg(14)
	R15 = Reg(15)
)

var regStrings = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

func (r Reg) String() string {
	if int(r) < len(regStrings) {
		return regStrings[r]
	}
	return fmt.Sprintf("reg%d", byte(r))
}
