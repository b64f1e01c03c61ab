package analysis

import "github.com/jonathan/mbti-compat/internal/mbti"

// Result is one fully-derived analysis. It is built per request and never stored.
type Result struct {
	TypeA  string     `json:"mbtiOne,omitempty"`
	TypeB  string     `json:"mbtiTwo,omitempty"`
	Score  int        `json:"score"`
	Label  mbti.Label `json:"label"`
	Rating string     `json:"rating"`
	Sections
	Raw string `json:"result"`
}

// ScoreFor returns the table score when both codes are given, and falls back
// to the text heuristic otherwise. The text is never consulted when both
// codes are present. Codes are matched case-insensitively.
func ScoreFor(text, typeA, typeB string) int {
	typeA = mbti.Normalize(typeA)
	typeB = mbti.Normalize(typeB)
	if typeA != "" && typeB != "" {
		return mbti.LookupScore(mbti.Type(typeA), mbti.Type(typeB))
	}
	return mbti.HeuristicScore(text)
}

// NewResult parses raw and scores it for the given pair. Either code may be empty.
func NewResult(raw, typeA, typeB string) *Result {
	typeA = mbti.Normalize(typeA)
	typeB = mbti.Normalize(typeB)

	score := ScoreFor(raw, typeA, typeB)
	label := mbti.Classify(score)
	sections := Parse(raw)

	return &Result{
		TypeA:    typeA,
		TypeB:    typeB,
		Score:    score,
		Label:    label,
		Rating:   sections.Rating(label),
		Sections: *sections,
		Raw:      raw,
	}
}

// MeterBucket rounds score to the nearest multiple of five.
func MeterBucket(score int) int {
	return ((score + 2) / 5) * 5
}
