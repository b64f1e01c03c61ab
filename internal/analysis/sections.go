// Package analysis turns a generated compatibility write-up into named sections
// and combines them with the table score into a Result.
package analysis

import (
	"strings"

	"github.com/jonathan/mbti-compat/internal/mbti"
)

// SectionName is one of the six headers the generator is asked to emit.
type SectionName string

// Section headers, in the order the prompt requests them.
const (
	SectionOverview      SectionName = "Overview"
	SectionCommunication SectionName = "Communication Styles"
	SectionStrengths     SectionName = "Key Strengths"
	SectionChallenges    SectionName = "Potential Challenges"
	SectionGrowth        SectionName = "Growth Opportunities"
	SectionRating        SectionName = "Compatibility Rating"
)

const (
	headerMarker    = "##"
	strengthMarker  = "+"
	challengeMarker = "-"
)

// SectionOrder lists every section in prompt order.
var SectionOrder = []SectionName{
	SectionOverview,
	SectionCommunication,
	SectionStrengths,
	SectionChallenges,
	SectionGrowth,
	SectionRating,
}

var knownSections = func() map[SectionName]bool {
	m := make(map[SectionName]bool, len(SectionOrder))
	for _, name := range SectionOrder {
		m[name] = true
	}
	return m
}()

// Sections holds the text found under each header. A header that was not in
// the input has no entry in Text.
type Sections struct {
	Text       map[SectionName]string `json:"sections"`
	Strengths  []string               `json:"strengths"`
	Challenges []string               `json:"challenges"`
}

// Get returns the trimmed content of a section and whether the header was present.
func (s *Sections) Get(name SectionName) (string, bool) {
	text, ok := s.Text[name]
	return text, ok
}

// Has reports whether the header was present.
func (s *Sections) Has(name SectionName) bool {
	_, ok := s.Text[name]
	return ok
}

// Len returns how many of the six headers were found.
func (s *Sections) Len() int {
	return len(s.Text)
}

// Rating returns the generator's own rating text, or fallback when the
// Compatibility Rating section is absent or empty.
func (s *Sections) Rating(fallback mbti.Label) string {
	if text, ok := s.Text[SectionRating]; ok && text != "" {
		return text
	}
	return string(fallback)
}

// parser states
const (
	stateNoSection = iota
	stateInSection
	stateSkipping // inside a repeated header; the first occurrence already won
)

// Parse splits text into sections. Each section runs from its "## Name:" header
// to the next line starting with "##" or the end of text. It never fails:
// missing headers are simply absent from the result.
func Parse(text string) *Sections {
	s := &Sections{
		Text:       make(map[SectionName]string),
		Strengths:  []string{},
		Challenges: []string{},
	}

	state := stateNoSection
	var current SectionName
	var buf []string

	flush := func() {
		if state == stateInSection {
			s.Text[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")

		if !strings.HasPrefix(trimmed, headerMarker) {
			if state == stateInSection {
				buf = append(buf, line)
			}
			continue
		}

		flush()
		name, rest, ok := parseHeader(trimmed)
		switch {
		case !ok:
			state = stateNoSection
		case s.Has(name):
			state = stateSkipping
		default:
			state = stateInSection
			current = name
			buf = append(buf, rest)
		}
	}
	flush()

	if text, ok := s.Text[SectionStrengths]; ok {
		s.Strengths = bullets(text, strengthMarker)
	}
	if text, ok := s.Text[SectionChallenges]; ok {
		s.Challenges = bullets(text, challengeMarker)
	}

	return s
}

// parseHeader recognises "## Name: rest". Extra leading '#' and spaces after
// the marker are tolerated; the name itself must match exactly.
func parseHeader(line string) (SectionName, string, bool) {
	body := strings.TrimLeft(line, "#")
	body = strings.TrimLeft(body, " \t")

	idx := strings.Index(body, ":")
	if idx < 0 {
		return "", "", false
	}

	name := SectionName(body[:idx])
	if !knownSections[name] {
		return "", "", false
	}
	return name, body[idx+1:], true
}

// bullets keeps only the lines that start with marker, with the marker
// (once) and the whitespace after it removed.
func bullets(text, marker string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, marker) {
			continue
		}
		out = append(out, strings.TrimSpace(strings.TrimPrefix(line, marker)))
	}
	return out
}
