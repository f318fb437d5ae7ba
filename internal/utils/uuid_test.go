package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestUUIDGenerator_FallsBackToV4(t *testing.T) {
	g := &UUIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	parsed, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
