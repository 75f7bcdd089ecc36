// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "gate.computer/x64/errors"
)

var (
	_ werrors.ResourceLimit = ErrSizeLimit
	_ werrors.ResourceLimit = ErrStaticSize
)

func TestDynamic(t *testing.T) {
	var d Dynamic // Zero value is a valid empty buffer.
	assert.Equal(t, 0, d.Len())

	d.PutByte(1)
	d.PutUint32(0x11223344)
	copy(d.Extend(3), []byte{7, 8, 9})

	require.Equal(t, []byte{1, 0x44, 0x33, 0x22, 0x11, 7, 8, 9}, d.Bytes())
	assert.Equal(t, 8, d.Len())
}

func TestDynamicHint(t *testing.T) {
	d := NewDynamicHint(nil, 16)

	for i := 0; i < 32; i++ {
		d.PutByte(byte(i))
	}

	require.Equal(t, 32, d.Len()) // The hint doesn't limit growth.
	assert.Equal(t, byte(31), d.Bytes()[31])
}

func TestStatic(t *testing.T) {
	s := NewStatic(make([]byte, 0, 4))
	assert.Equal(t, 4, s.Cap())
	assert.Equal(t, 0, s.Len())

	s.PutUint32(0x11223344)
	require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, s.Bytes())

	assert.Panics(t, func() { s.PutByte(0) })
	assert.Equal(t, 4, s.Len())
}

func TestStaticExtendOverflow(t *testing.T) {
	s := NewStatic(make([]byte, 0, 8))
	s.PutByte(0)

	assert.Panics(t, func() { s.Extend(8) })
	assert.Equal(t, 1, s.Len()) // Unchanged after the failed extension.
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 6)

	l.PutUint32(1)
	assert.Panics(t, func() { l.PutUint32(2) })

	l.PutByte(5)
	l.PutByte(6)
	assert.Panics(t, func() { l.PutByte(7) })

	assert.Equal(t, 6, l.Len())
	require.Equal(t, []byte{1, 0, 0, 0, 5, 6}, l.Bytes())
}
