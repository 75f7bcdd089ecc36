// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program x64demo assembles a sample routine and writes the raw machine code
// to a file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gate.computer/x64"
	"gate.computer/x64/disasm"
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	var (
		output   = "test.o"
		dumpText = false
		run      = false
	)

	flag.StringVar(&output, "o", output, "output file for the raw code blob")
	flag.BoolVar(&dumpText, "dump", dumpText, "disassemble the generated code to stdout")
	flag.BoolVar(&run, "exec", run, "execute the generated code and print the result")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	text, err := x64.Assemble(nil, program)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(output, text, 0666); err != nil {
		log.Fatal(err)
	}

	if dumpText {
		if err := disasm.Fprint(os.Stdout, text); err != nil {
			log.Fatal(err)
		}
	}

	if run {
		result, err := execute(program, len(text))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(result)
	}
}

// program computes 42, touching every instruction form on the way.
func program(a *x64.Assembler) error {
	emit := func(err error) {
		if err != nil {
			panic(err) // Recovered by Assemble.
		}
	}

	a.Enter(32)

	emit(a.Mov(x64.RegOp(x64.RAX), x64.Imm64(30)))
	emit(a.Add(x64.RegOp(x64.RAX), x64.Imm32(10)))
	emit(a.Mov(x64.Mem(x64.RSP, 8), x64.RegOp(x64.RAX)))
	emit(a.Xor(x64.RegOp(x64.RAX), x64.RegOp(x64.RAX)))
	emit(a.Add(x64.RegOp(x64.RAX), x64.Mem(x64.RSP, 8)))
	emit(a.Mov(x64.RegOp(x64.RCX), x64.RegOp(x64.RAX)))
	emit(a.Sub(x64.RegOp(x64.RCX), x64.Imm32(38)))

	emit(a.Push(x64.RegOp(x64.R12)))
	emit(a.Mov(x64.RegOp(x64.R12), x64.RegOp(x64.RSP)))
	emit(a.Mov(x64.Mem(x64.R12, 16), x64.RegOp(x64.RCX)))
	emit(a.Mov(x64.RegOp(x64.RDX), x64.Mem(x64.R12, 16)))
	emit(a.Pop(x64.RegOp(x64.R12)))
	emit(a.Add(x64.RegOp(x64.RAX), x64.RegOp(x64.RDX)))

	emit(a.Push(x64.Imm32(7)))
	emit(a.Pop(x64.RegOp(x64.RCX)))
	emit(a.Xor(x64.RegOp(x64.RCX), x64.Imm32(7)))
	emit(a.Mov(x64.Mem(x64.RSP, 16), x64.RegOp(x64.RCX)))
	emit(a.Xor(x64.Mem(x64.RSP, 16), x64.RegOp(x64.RCX)))
	emit(a.Xor(x64.RegOp(x64.RDX), x64.Mem(x64.RSP, 16)))
	emit(a.Sub(x64.RegOp(x64.RAX), x64.Mem(x64.RSP, 16)))
	emit(a.Sub(x64.RegOp(x64.RAX), x64.RegOp(x64.RCX)))

	// Dead store skipped over with a fixed-width jump.
	_, err := a.JumpNear(x64.Imm8(10))
	emit(err)
	emit(a.Mov(x64.RegOp(x64.RAX), x64.Imm64(0)))

	// The same with a displacement patched in afterwards.
	off, err := a.JumpNear(x64.Imm32(0))
	emit(err)
	emit(a.Mov(x64.RegOp(x64.RAX), x64.Imm64(0)))
	a.Patch32(uint32(a.Addr()-(off+4)), off)

	a.Leave()
	a.Ret()
	return nil
}
