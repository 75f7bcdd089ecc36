// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program disx64 disassembles a raw x86-64 code blob.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gate.computer/x64/disasm"
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s blobfile\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	text, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if err := disasm.Fprint(os.Stdout, text); err != nil {
		log.Fatal(err)
	}
}
