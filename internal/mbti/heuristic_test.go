package mbti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicScore_RatingLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Excellent", "Compatibility Rating: Excellent", 95},
		{"Header form", "## Compatibility Rating:\nExcellent", 95},
		{"No colon", "compatibility rating good overall", 85},
		{"High", "Compatibility Rating: High", 85},
		{"Moderate", "Compatibility Rating: Moderate", 70},
		{"Average", "Compatibility Rating: average", 70},
		{"Challenging", "Compatibility Rating: Challenging", 55},
		{"Low", "Compatibility Rating: Low", 55},
		{"Difficult", "Compatibility Rating: Difficult", 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HeuristicScore(tt.text))
		})
	}
}

func TestHeuristicScore_UnmatchedRatingFallsThrough(t *testing.T) {
	// "Strong" is not a rating keyword, so word counting decides.
	text := "Compatibility Rating: Strong"
	// "Strong" matches the positive prefix "strong": 1 positive, 0 negative.
	assert.Equal(t, 95, HeuristicScore(text))
}

func TestHeuristicScore_WordCounts(t *testing.T) {
	// complement, share, respect (positive); conflict (negative)
	text := "They complement each other, share goals and respect boundaries, but conflict arises."
	assert.Equal(t, 83, HeuristicScore(text))
}

func TestHeuristicScore_Clamped(t *testing.T) {
	assert.Equal(t, 40, HeuristicScore("Conflict, tension and stress everywhere."))
	assert.Equal(t, 95, HeuristicScore("Harmony and balance, mutual respect and support."))
}

func TestHeuristicScore_Defaults(t *testing.T) {
	assert.Equal(t, 70, HeuristicScore(""))
	assert.Equal(t, 70, HeuristicScore("The quick brown fox jumps over the lazy dog."))
}

func TestHeuristicScore_WordBoundaries(t *testing.T) {
	// "misunderstand" must not count as "understand"; "strengths" counts as "strength".
	assert.Equal(t, 1, countMatches("misunderstandings", negativePatterns))
	assert.Equal(t, 0, countMatches("misunderstandings", positivePatterns))
	assert.Equal(t, 1, countMatches("Key STRENGTHS", positivePatterns))
	assert.Equal(t, 2, countMatches("frustrating and frustrated", negativePatterns))
}
