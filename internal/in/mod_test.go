// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"testing"

	"gate.computer/x64/internal/reg"
)

func TestRegRO(t *testing.T) {
	for _, pair := range [][2]byte{
		{0, 0},
		{1, 0x08},
		{4, 0x20},
		{7, 0x38},
		{8, 0},
		{9, 0x08},
		{12, 0x20},
		{15, 0x38},
	} {
		if ro := regRO(reg.R(pair[0])); ro != ModRO(pair[1]) {
			t.Errorf("regRO(r%d) = 0x%x", pair[0], ro)
		}
	}
}

func TestRegRM(t *testing.T) {
	for _, pair := range [][2]byte{
		{0, 0},
		{1, 1},
		{4, 4},
		{7, 7},
		{8, 0},
		{9, 1},
		{12, 4},
		{15, 7},
	} {
		if rm := regRM(reg.R(pair[0])); rm != ModRM(pair[1]) {
			t.Errorf("regRM(r%d) = 0x%x", pair[0], rm)
		}
	}
}

func TestModByte(t *testing.T) {
	var o output
	o.mod(ModReg, regRO(reg.R(9)), regRM(reg.R(13)))
	if b := o.buf[0]; b != 0xcd {
		t.Errorf("mod byte = 0x%x", b)
	}

	o = output{}
	o.mod(ModMemDisp32, regRO(reg.R(0)), regRM(reg.R(1)))
	if b := o.buf[0]; b != 0x81 {
		t.Errorf("mod byte = 0x%x", b)
	}
}
