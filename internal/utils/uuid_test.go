// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("0192a3b4-5c6d-7e8f-9a0b-1c2d3e4f5a6b"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("123"))
	assert.False(t, IsUUID("urn:uuid:0192a3b4-5c6d-7e8f-9a0b-1c2d3e4f5a6b"))
	assert.False(t, IsUUID("0192a3b45c6d7e8f9a0b1c2d3e4f5a6b"))
	assert.False(t, IsUUID("zzzzzzzz-5c6d-7e8f-9a0b-1c2d3e4f5a6b"))
}
