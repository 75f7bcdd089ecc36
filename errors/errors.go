// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary dependencies.
package errors

import (
	internal "gate.computer/x64/internal/errors"
)

// PublicError is an error with a message that can be shown to the client.
type PublicError interface {
	error
	PublicError() string
}

// CodeError indicates that an instruction was requested with an operand
// combination which has no encoding.
type CodeError = internal.CodeError

// ResourceLimit indicates that a code buffer size or capacity limit was
// reached.
type ResourceLimit interface {
	CodeError
	BufferSizeLimit() string
}
