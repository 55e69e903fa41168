package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.True(t, IsValidSessionID(a))
}

func TestIsValidSessionID_Rejects(t *testing.T) {
	assert.False(t, IsValidSessionID(""))
	assert.False(t, IsValidSessionID("abc"))
	assert.False(t, IsValidSessionID("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"))
}
