// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
)

// CodeError indicates that an instruction was requested with an operand
// combination which has no encoding.
type CodeError interface {
	error
	PublicError() string
	CodeError() bool
}

type codeError struct {
	text string
}

func BadOperand(text string) error {
	return &codeError{text}
}

func BadOperandf(format string, args ...interface{}) error {
	return &codeError{fmt.Sprintf(format, args...)}
}

func (e *codeError) Error() string       { return e.text }
func (e *codeError) PublicError() string { return e.text }
func (e *codeError) CodeError() bool     { return true }
