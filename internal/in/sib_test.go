// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"testing"

	"gate.computer/x64/internal/reg"
)

func TestRegBase(t *testing.T) {
	for _, pair := range [][2]byte{
		{0, 0},
		{4, 4},
		{5, 5},
		{7, 7},
		{8, 0},
		{12, 4},
		{13, 5},
		{15, 7},
	} {
		if b := regBase(reg.R(pair[0])); b != Base(pair[1]) {
			t.Errorf("regBase(r%d) = 0x%x", pair[0], b)
		}
	}
}

func TestSIBByte(t *testing.T) {
	var o output
	o.sib(Scale0, noIndex, regBase(reg.R(4)))
	if b := o.buf[0]; b != 0x24 {
		t.Errorf("sib byte = 0x%x", b)
	}

	o = output{}
	o.sib(Scale0, noIndex, regBase(reg.R(12)))
	if b := o.buf[0]; b != 0x24 {
		t.Errorf("sib byte = 0x%x", b)
	}
}
