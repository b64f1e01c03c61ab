package mbti

import (
	"math"
	"regexp"
	"strings"
)

const (
	heuristicMin = 40
	heuristicMax = 95
	// positiveBias nudges the ratio so mixed analyses do not read as negative
	positiveBias = 1.1
)

var ratingPattern = regexp.MustCompile(`(?i)Compatibility Rating:?\s*([a-z]+)`)

// ratingKeywords is checked in order; the first keyword contained in the rating word wins.
var ratingKeywords = []struct {
	keywords []string
	score    int
}{
	{[]string{"excellent", "very high"}, 95},
	{[]string{"good", "high"}, 85},
	{[]string{"moderate", "average"}, 70},
	{[]string{"challenging", "low"}, 55},
	{[]string{"difficult", "very low"}, 45},
}

var positiveTerms = []string{
	"compatible", "complement", "harmony", "balance", "strength", "positive", "benefit",
	"understand", "communicate", "valuable", "enjoy", "appreciate", "respect", "support",
	"growth", "learn", "share", "connect", "effective", "successful", "strong", "ideal",
	"well", "advantage", "enhance", "excel", "favorable", "healthy", "helpful", "productive",
}

var negativeTerms = []string{
	"conflict", "clash", "tension", "difficult", "challenge", "struggle", "misunderstand",
	"frustrat", "stress", "problem", "differ", "opposite", "disagree", "incompatible",
	"complicated", "overwhelming", "exhausting", "drain", "negative", "issue", "obstacle",
	"confuse", "ineffective", "miscommunication", "dissatisfaction", "uncomfortable",
}

var (
	positivePatterns = compileTerms(positiveTerms)
	negativePatterns = compileTerms(negativeTerms)
)

// compileTerms builds one case-insensitive whole-word-prefix matcher per term.
func compileTerms(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\w*\b`))
	}
	return out
}

// HeuristicScore estimates a score from generated text alone. It is only used
// when one or both type codes are unknown.
func HeuristicScore(text string) int {
	if text == "" {
		return DefaultScore
	}

	if score, ok := scoreFromRatingLine(text); ok {
		return score
	}

	positive := countMatches(text, positivePatterns)
	negative := countMatches(text, negativePatterns)
	total := positive + negative
	if total == 0 {
		return DefaultScore
	}

	ratio := float64(positive) / float64(total) * positiveBias
	score := int(math.Floor(ratio*100 + 0.5))
	return max(heuristicMin, min(heuristicMax, score))
}

func scoreFromRatingLine(text string) (int, bool) {
	m := ratingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	rating := strings.ToLower(m[1])
	for _, rk := range ratingKeywords {
		for _, kw := range rk.keywords {
			if strings.Contains(rating, kw) {
				return rk.score, true
			}
		}
	}
	return 0, false
}

func countMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, re := range patterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}
