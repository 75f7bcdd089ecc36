// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"gate.computer/x64"
	"gate.computer/x64/buffer"
)

// call jumps to the code at entry and returns its result register.  Defined
// in assembly.
//
//go:noescape
func call(entry uintptr) uint64

func execute(program func(*x64.Assembler) error, textSize int) (uint64, error) {
	textMem, err := unix.Mmap(-1, 0, textSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(textMem)

	config := &x64.Config{
		Text: buffer.NewStatic(textMem[:0:len(textMem)]),
	}
	if _, err := x64.Assemble(config, program); err != nil {
		return 0, err
	}

	if err := unix.Mprotect(textMem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return 0, err
	}

	return call(uintptr(unsafe.Pointer(&textMem[0]))), nil
}
