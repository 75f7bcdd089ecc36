// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux && amd64)
// +build !linux !amd64

package main

import (
	"errors"

	"gate.computer/x64"
)

func execute(program func(*x64.Assembler) error, textSize int) (uint64, error) {
	return 0, errors.New("code execution requires linux/amd64")
}
