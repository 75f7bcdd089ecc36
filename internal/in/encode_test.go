// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"testing"

	"gate.computer/x64/buffer"
	"gate.computer/x64/internal/code"
	"gate.computer/x64/internal/reg"
	"golang.org/x/arch/x86/x86asm"
)

// memArg is an expected memory argument.  The scale field of the decoded
// argument is not compared because the decoder reports one even when there
// is no index register.
type memArg struct {
	base x86asm.Reg
	disp int64
}

func xreg(r reg.R) x86asm.Reg {
	return x86asm.RAX + x86asm.Reg(r)
}

func args(xs ...interface{}) []interface{} {
	return xs
}

func testEncode(t *testing.T, expectOp x86asm.Op, expectArgs []interface{}, encodeInsn func(*code.Buf)) {
	t.Helper()

	text := code.Buf{
		Buffer: buffer.NewStatic(make([]byte, 0, 16)),
	}

	encodeInsn(&text)

	data := text.Bytes()

	inst, err := x86asm.Decode(data, 64)
	if err != nil {
		t.Errorf("expect %v: %v (% x)", expectOp, err, data)
		return
	}
	if inst.Len != len(data) {
		t.Errorf("expect %v: %d bytes decoded of % x", expectOp, inst.Len, data)
		return
	}
	if inst.Op != expectOp {
		t.Errorf("expect %v: decoded %v (% x)", expectOp, inst.Op, data)
		return
	}

	for i, arg := range inst.Args {
		var want interface{}
		if i < len(expectArgs) {
			want = expectArgs[i]
		}

		switch want := want.(type) {
		case nil:
			if arg != nil {
				t.Errorf("%v: unexpected argument %d: %v (% x)", expectOp, i, arg, data)
			}

		case memArg:
			m, ok := arg.(x86asm.Mem)
			if !ok || m.Base != want.base || m.Index != 0 || m.Disp != want.disp {
				t.Errorf("%v: argument %d is %v, expected [%v%+d] (% x)", expectOp, i, arg, want.base, want.disp, data)
			}

		default:
			if arg != want {
				t.Errorf("%v: argument %d is %v, expected %v (% x)", expectOp, i, arg, want, data)
			}
		}
	}
}
