package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, a < b, "ids must be lexicographically increasing")
}

func TestNewLower(t *testing.T) {
	t.Parallel()

	got := NewLower()
	assert.Len(t, got, 26)
	assert.Equal(t, strings.ToLower(got), got)
}
