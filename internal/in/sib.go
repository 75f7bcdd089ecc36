// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"gate.computer/x64/internal/reg"
)

type (
	Scale byte
	Index byte
	Base  byte
)

const (
	Scale0 = Scale(0 << 6)

	noIndex = Index(4 << 3)
)

func regBase(r reg.R) Base { return Base(r & 7) }
