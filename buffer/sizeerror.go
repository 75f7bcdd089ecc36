// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements x64.CodeBuffer.
package buffer

// SizeError is a buffer capacity or allocation limit error.
type SizeError struct {
	text string
}

func (e *SizeError) Error() string           { return e.text }
func (e *SizeError) PublicError() string     { return e.text }
func (e *SizeError) CodeError() bool         { return true }
func (e *SizeError) BufferSizeLimit() string { return e.text }

// Errors implementing interface{ BufferSizeLimit() string }.
var (
	ErrSizeLimit  = &SizeError{"buffer size limit exceeded"}
	ErrStaticSize = &SizeError{"static buffer capacity exceeded"}
)
