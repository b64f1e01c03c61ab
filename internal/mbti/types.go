// Package mbti provides the MBTI type enumeration, the directional compatibility
// table, the score classifier and the text-based fallback scorer.
package mbti

import (
	"fmt"
	"strings"
)

// Type is one of the 16 four-letter MBTI codes.
type Type string

// The 16 MBTI types.
const (
	INTJ Type = "INTJ"
	INTP Type = "INTP"
	ENTJ Type = "ENTJ"
	ENTP Type = "ENTP"
	INFJ Type = "INFJ"
	INFP Type = "INFP"
	ENFJ Type = "ENFJ"
	ENFP Type = "ENFP"
	ISTJ Type = "ISTJ"
	ISFJ Type = "ISFJ"
	ESTJ Type = "ESTJ"
	ESFJ Type = "ESFJ"
	ISTP Type = "ISTP"
	ISFP Type = "ISFP"
	ESTP Type = "ESTP"
	ESFP Type = "ESFP"
)

// Group is the temperament family a type belongs to.
type Group string

// Temperament groups, in selector order.
const (
	GroupAnalysts  Group = "Analysts"
	GroupDiplomats Group = "Diplomats"
	GroupSentinels Group = "Sentinels"
	GroupExplorers Group = "Explorers"
)

// Profile describes a single type for display purposes.
type Profile struct {
	Code      Type   `json:"code"`
	Archetype string `json:"archetype"`
	Group     Group  `json:"group"`
	Famous    string `json:"famous"`
}

// UnknownTypeError is returned when a code is not one of the 16 types.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown MBTI type: %q", e.Code)
}

// allTypes lists the types grouped as Analysts, Diplomats, Sentinels, Explorers.
var allTypes = []Type{
	INTJ, INTP, ENTJ, ENTP,
	INFJ, INFP, ENFJ, ENFP,
	ISTJ, ISFJ, ESTJ, ESFJ,
	ISTP, ISFP, ESTP, ESFP,
}

var profiles = map[Type]Profile{
	INTJ: {Code: INTJ, Archetype: "Architect", Group: GroupAnalysts, Famous: "Elon Musk, Nikola Tesla"},
	INTP: {Code: INTP, Archetype: "Logician", Group: GroupAnalysts, Famous: "Albert Einstein, Marie Curie"},
	ENTJ: {Code: ENTJ, Archetype: "Commander", Group: GroupAnalysts, Famous: "Steve Jobs, Margaret Thatcher"},
	ENTP: {Code: ENTP, Archetype: "Debater", Group: GroupAnalysts, Famous: "Robert Downey Jr., Leonardo da Vinci"},
	INFJ: {Code: INFJ, Archetype: "Advocate", Group: GroupDiplomats, Famous: "Martin Luther King Jr., Nicole Kidman"},
	INFP: {Code: INFP, Archetype: "Mediator", Group: GroupDiplomats, Famous: "Johnny Depp, Audrey Hepburn"},
	ENFJ: {Code: ENFJ, Archetype: "Protagonist", Group: GroupDiplomats, Famous: "Barack Obama, Oprah Winfrey"},
	ENFP: {Code: ENFP, Archetype: "Campaigner", Group: GroupDiplomats, Famous: "Robin Williams, Ellen DeGeneres"},
	ISTJ: {Code: ISTJ, Archetype: "Logistician", Group: GroupSentinels, Famous: "Warren Buffett, Queen Victoria"},
	ISFJ: {Code: ISFJ, Archetype: "Defender", Group: GroupSentinels, Famous: "Queen Elizabeth II, Beyoncé"},
	ESTJ: {Code: ESTJ, Archetype: "Executive", Group: GroupSentinels, Famous: "Sonia Sotomayor, Judge Judy"},
	ESFJ: {Code: ESFJ, Archetype: "Consul", Group: GroupSentinels, Famous: "Taylor Swift, Bill Clinton"},
	ISTP: {Code: ISTP, Archetype: "Virtuoso", Group: GroupExplorers, Famous: "Clint Eastwood, Scarlett Johansson"},
	ISFP: {Code: ISFP, Archetype: "Adventurer", Group: GroupExplorers, Famous: "Michael Jackson, Bob Dylan"},
	ESTP: {Code: ESTP, Archetype: "Entrepreneur", Group: GroupExplorers, Famous: "Madonna, Donald Trump"},
	ESFP: {Code: ESFP, Archetype: "Entertainer", Group: GroupExplorers, Famous: "Jamie Foxx, Marilyn Monroe"},
}

// All returns the 16 types in selector order. The returned slice is a copy.
func All() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Profiles returns the profile of every type in selector order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(allTypes))
	for _, t := range allTypes {
		out = append(out, profiles[t])
	}
	return out
}

// Normalize trims and uppercases a type code. Unknown codes keep their letters.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseType normalizes s and returns the matching Type.
func ParseType(s string) (Type, error) {
	t := Type(Normalize(s))
	if !t.Valid() {
		return "", &UnknownTypeError{Code: s}
	}
	return t, nil
}

// Valid reports whether t is one of the 16 types.
func (t Type) Valid() bool {
	_, ok := profiles[t]
	return ok
}

// Profile returns the profile for t and whether t is known.
func (t Type) Profile() (Profile, bool) {
	p, ok := profiles[t]
	return p, ok
}

// DisplayName returns the archetype label, or the code itself for unknown types.
func DisplayName(code string) string {
	if p, ok := profiles[Type(Normalize(code))]; ok {
		return p.Archetype
	}
	return code
}

func (t Type) String() string {
	return string(t)
}
