// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

const (
	// Opcode bits of some instructions are located at this offset in the ModRM
	// byte (ModRO part).
	opcodeBase = 3
)

const (
	// GP opcodes.  The mr suffix is the store form: the register operand is
	// in the ModRM reg field and the destination in the r/m field.
	ADDmr  = RM(0x01)
	ADD    = RM(0x03)
	SUBmr  = RM(0x29)
	SUB    = RM(0x2b)
	XORmr  = RM(0x31)
	XOR    = RM(0x33)
	PUSHo  = O(0x50)
	POPo   = O(0x58)
	PUSHi  = I(0x68)
	ADDi   = MI(0x81<<8 | 0<<opcodeBase)
	SUBi   = MI(0x81<<8 | 5<<opcodeBase)
	XORi   = MI(0x81<<8 | 6<<opcodeBase)
	MOVmr  = RM(0x89)
	MOV    = RM(0x8b)
	MOV64i = OI(0xb8)
	RET    = NP(0xc3)
	LEAVE  = NP(0xc9)
	JMPcd  = Dd(0xe9)
	JMPcb  = Db(0xeb)
)
