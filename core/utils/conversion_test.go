package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt32(t *testing.T) {
	tests := []struct {
		in     string
		want   int32
		wantOK bool
	}{
		{"42", 42, true},
		{"  42\n", 42, true},
		{"-7", -7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"4.5", 0, false},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
	}

	for _, tt := range tests {
		got, ok := ToInt32(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t "))
	assert.False(t, IsBlank(" x "))
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "Action", FirstSegment("Action; Adventure", ";"))
	assert.Equal(t, "Action", FirstSegment("  Action  ", ";"))
	assert.Equal(t, "", FirstSegment("; Adventure", ";"))
	assert.Equal(t, "", FirstSegment("", ";"))
}
