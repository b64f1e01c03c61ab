package analysis

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFor_TableTakesPrecedence(t *testing.T) {
	// The rating line says Challenging, but the table wins when both types are known.
	text := "## Compatibility Rating:\nChallenging"
	assert.Equal(t, 85, ScoreFor(text, "INTJ", "INTP"))
	assert.Equal(t, 85, ScoreFor("", "INTJ", "INTP"))
}

func TestScoreFor_HeuristicFallback(t *testing.T) {
	assert.Equal(t, 95, ScoreFor("Compatibility Rating: Excellent", "", ""))
	assert.Equal(t, 95, ScoreFor("Compatibility Rating: Excellent", "INTJ", ""))
	assert.Equal(t, 70, ScoreFor("", "", "ENFP"))
}

func TestScoreFor_LowercaseCodes(t *testing.T) {
	assert.Equal(t, 85, ScoreFor("", "intj", " Intp "))
}

func TestScoreFor_UnknownCodesUseDefault(t *testing.T) {
	assert.Equal(t, mbti.DefaultScore, ScoreFor("Compatibility Rating: Excellent", "ABCD", "INTJ"))
}

func TestNewResult(t *testing.T) {
	r := NewResult(wellFormed, " INTJ ", "INTP")

	assert.Equal(t, "INTJ", r.TypeA)
	assert.Equal(t, "INTP", r.TypeB)
	assert.Equal(t, 85, r.Score)
	assert.Equal(t, mbti.LabelExcellent, r.Label)
	assert.Equal(t, "Excellent", r.Rating)
	assert.Equal(t, 6, r.Len())
	assert.Len(t, r.Strengths, 3)
	assert.Len(t, r.Challenges, 3)
	assert.Equal(t, wellFormed, r.Raw)
}

func TestNewResult_LowercaseCodes(t *testing.T) {
	r := NewResult("## Overview: x", "intj", "intp")

	assert.Equal(t, "INTJ", r.TypeA)
	assert.Equal(t, "INTP", r.TypeB)
	assert.Equal(t, 85, r.Score)
	assert.Equal(t, mbti.LabelExcellent, r.Label)
}

func TestNewResult_RatingFallsBackToLabel(t *testing.T) {
	r := NewResult("## Overview:\nBrief.", "ESTJ", "ENFP")

	assert.Equal(t, 40, r.Score)
	assert.Equal(t, mbti.LabelChallenging, r.Label)
	assert.Equal(t, "Challenging", r.Rating)
}

func TestResult_JSONShape(t *testing.T) {
	r := NewResult(wellFormed, "INTJ", "INTP")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "INTJ", doc["mbtiOne"])
	assert.Equal(t, float64(85), doc["score"])
	assert.Equal(t, "Excellent", doc["label"])
	assert.Contains(t, doc, "sections")
	assert.Contains(t, doc, "strengths")
	assert.Contains(t, doc, "challenges")
	assert.Equal(t, wellFormed, doc["result"])

	sections, ok := doc["sections"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Excellent", sections["Compatibility Rating"])
}

func TestMeterBucket(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{40, 40},
		{42, 40},
		{43, 45},
		{85, 85},
		{88, 90},
		{100, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MeterBucket(tt.score), "score %d", tt.score)
	}
}
