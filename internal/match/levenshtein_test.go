package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"hips", "hips", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"spine", "spin", 1},
		{"chest", "chast", 1},
		{"neck", "necks", 1},

		// Runes count once
		{"kopf", "köpf", 1},

		// Classic
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 1e-9)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, LevenshteinNormalized("neck", "nick"), 1e-9)
}

func TestBoneSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, BoneSimilarity("UpperArm_L", "LeftUpperArm"), 1e-9)
	assert.Greater(t, BoneSimilarity("LeftUpperArm", "LeftUpperArms"), 0.9)
	assert.Less(t, BoneSimilarity("Head", "RightFoot"), 0.6)
}

func BenchmarkBoneSimilarity(b *testing.B) {
	for b.Loop() {
		BoneSimilarity("mixamorig:LeftUpperArm", "upper_arm.L")
	}
}
