// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm decodes generated machine code for inspection.
package disasm

import (
	"fmt"
	"io"

	"golang.org/x/arch/x86/x86asm"
)

// Insn is a decoded instruction.
type Insn struct {
	Addr int32
	Data []byte // Raw encoding.
	Text string // GNU assembly syntax.
}

// Disassemble machine code.  An error is returned if the text contains a
// sequence which doesn't decode.
func Disassemble(text []byte) ([]Insn, error) {
	var insns []Insn

	for addr := 0; addr < len(text); {
		inst, err := x86asm.Decode(text[addr:], 64)
		if err != nil {
			return insns, fmt.Errorf("disassembly error at offset %#x: %w", addr, err)
		}

		insns = append(insns, Insn{
			Addr: int32(addr),
			Data: text[addr : addr+inst.Len],
			Text: x86asm.GNUSyntax(inst, uint64(addr), nil),
		})

		addr += inst.Len
	}

	return insns, nil
}

// Fprint writes a listing of the machine code to w.  Bytes which don't
// decode are listed one per line.
func Fprint(w io.Writer, text []byte) error {
	for addr := 0; addr < len(text); {
		inst, err := x86asm.Decode(text[addr:], 64)
		if err != nil {
			if _, err := fmt.Fprintf(w, "%#06x: %02x\n", addr, text[addr]); err != nil {
				return err
			}
			addr++
			continue
		}

		hex := fmt.Sprintf("% x", text[addr:addr+inst.Len])
		syntax := x86asm.GNUSyntax(inst, uint64(addr), nil)

		if _, err := fmt.Fprintf(w, "%#06x: %-29s %s\n", addr, hex, syntax); err != nil {
			return err
		}

		addr += inst.Len
	}

	return nil
}
