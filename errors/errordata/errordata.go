// Copyright (c) 2022 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errordata helps with error serialization.
package errordata

import (
	"errors"

	"gate.computer/x64/buffer"
	werrors "gate.computer/x64/errors"
)

// Internal details of an error.
type Internal struct {
	Error  string  `json:"error,omitempty"` // Omitted if same as public error.
	Public *Public `json:"public,omitempty"`
}

// Deconstruct an error on best-effort basis.
func Deconstruct(err error) *Internal {
	if pub := deconstructResourceLimit(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructCode(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructPublic(err); pub != nil { // Must be last.
		return newInternalWithPublic(err, pub)
	}

	return &Internal{
		Error: err.Error(),
	}
}

func newInternalWithPublic(err error, pub *Public) *Internal {
	x := &Internal{
		Public: pub,
	}
	if s := err.Error(); s != pub.Error {
		x.Error = s
	}
	return x
}

// GetPublic representation which is well-formed even if there are no public
// details.
func (x *Internal) GetPublic() *Public {
	if x.Public != nil {
		return x.Public
	}

	return &Public{
		Error: "internal error",
	}
}

// Reconstruct an error.
func (x *Internal) Reconstruct() error {
	if x.Public == nil {
		return errors.New(x.Error)
	}

	s := x.Public.Error
	if x.Error != "" {
		s = x.Error
	}
	return reconstructError(s, x.Public)
}

// Public details of an error.
type Public struct {
	Error         string         `json:"error"`
	Code          *Code          `json:"code,omitempty"`
	ResourceLimit *ResourceLimit `json:"resource_limit,omitempty"`
}

func deconstructPublic(err error) *Public {
	var e werrors.PublicError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
	}
}

// Reconstruct an error without internal details.
func (x *Public) Reconstruct() error {
	return reconstructError(x.Error, x)
}

// Code error details.
type Code struct{}

func deconstructCode(err error) *Public {
	var e werrors.CodeError
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		Code:  &Code{},
	}
}

// ResourceLimit error details.
type ResourceLimit struct {
	BufferSizeExceeded bool `json:"buffer_size_exceeded,omitempty"`
	BufferCapExceeded  bool `json:"buffer_cap_exceeded,omitempty"`
}

func deconstructResourceLimit(err error) *Public {
	var e werrors.ResourceLimit
	if !errors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		ResourceLimit: &ResourceLimit{
			BufferSizeExceeded: errors.Is(err, buffer.ErrSizeLimit),
			BufferCapExceeded:  errors.Is(err, buffer.ErrStaticSize),
		},
	}
}

func reconstructError(s string, x *Public) error {
	if x.ResourceLimit != nil {
		return newResourceLimit(s, x)
	}
	if x.Code != nil {
		return newCodeError(s, x)
	}
	return newPublicError(s, x)
}

type publicError struct {
	s       string
	public  string
	wrapped error
}

var _ werrors.PublicError = (*publicError)(nil)

func (e *publicError) Error() string       { return e.s }
func (e *publicError) PublicError() string { return e.public }
func (e *publicError) Unwrap() error       { return e.wrapped }

func newPublicError(s string, x *Public) error {
	return &publicError{
		s:      s,
		public: x.Error,
	}
}

type codeError struct {
	publicError
}

func (*codeError) CodeError() bool { return true }

var _ werrors.CodeError = (*codeError)(nil)

func newCodeError(s string, x *Public) error {
	return &codeError{publicError{
		s:      s,
		public: x.Error,
	}}
}

type resourceLimit struct {
	codeError
}

func (e *resourceLimit) BufferSizeLimit() string { return e.public }

var _ werrors.ResourceLimit = (*resourceLimit)(nil)

func newResourceLimit(s string, x *Public) error {
	e := &resourceLimit{codeError{publicError{
		s:      s,
		public: x.Error,
	}}}

	switch {
	case x.ResourceLimit.BufferSizeExceeded:
		e.wrapped = buffer.ErrSizeLimit
	case x.ResourceLimit.BufferCapExceeded:
		e.wrapped = buffer.ErrStaticSize
	}
	return e
}
