package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a/b", JoinPath("a", "", "b"))
	assert.Empty(t, JoinPath("", ""))
	assert.Equal(t, "a", JoinPath("a"))
}

func TestUniqueName(t *testing.T) {
	taken := map[string]bool{"Layer": true, "Layer 2": true}
	assert.Equal(t, "Layer 3", UniqueName("Layer", func(s string) bool { return taken[s] }))
	assert.Equal(t, "Other", UniqueName("Other", func(s string) bool { return taken[s] }))
}

func TestMakeFilenameSafe(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Avatar", "Avatar"},
		{"My/Avatar:1", "My_Avatar_1"},
		{"  ", "_"},
		{"Ünï", "_n_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MakeFilenameSafe(tt.input))
		})
	}
}

func TestReversedAndAppendUnique(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, Reversed([]int{1, 2, 3}))
	assert.Equal(t, []string{"a", "b"}, AppendUnique([]string{"a", "b"}, "a"))
	assert.Equal(t, []string{"a", "b"}, AppendUnique([]string{"a"}, "b"))

	v, ok := First([]int{})
	assert.False(t, ok)
	assert.Zero(t, v)
}
