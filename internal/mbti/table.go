package mbti

// DefaultScore is returned for pairs missing from the table.
const DefaultScore = 70

// Pair is an ordered (A, B) lookup key. Pair{A, B} and Pair{B, A} are distinct.
type Pair struct {
	A Type
	B Type
}

// rows is the hand-authored table, one row per first type.
// Rows are not symmetric by contract; do not mirror them.
var rows = map[Type]map[Type]int{
	INTJ: {INTJ: 75, INTP: 85, ENTJ: 80, ENTP: 80, INFJ: 80, INFP: 70, ENFJ: 65, ENFP: 75, ISTJ: 70, ISFJ: 55, ESTJ: 65, ESFJ: 45, ISTP: 60, ISFP: 50, ESTP: 50, ESFP: 40},
	INTP: {INTJ: 85, INTP: 75, ENTJ: 85, ENTP: 85, INFJ: 75, INFP: 70, ENFJ: 70, ENFP: 70, ISTJ: 60, ISFJ: 50, ESTJ: 60, ESFJ: 45, ISTP: 80, ISFP: 55, ESTP: 65, ESFP: 50},
	ENTJ: {INTJ: 80, INTP: 85, ENTJ: 75, ENTP: 80, INFJ: 75, INFP: 65, ENFJ: 70, ENFP: 65, ISTJ: 75, ISFJ: 55, ESTJ: 80, ESFJ: 50, ISTP: 65, ISFP: 50, ESTP: 60, ESFP: 45},
	ENTP: {INTJ: 80, INTP: 85, ENTJ: 80, ENTP: 70, INFJ: 85, INFP: 75, ENFJ: 65, ENFP: 75, ISTJ: 60, ISFJ: 50, ESTJ: 70, ESFJ: 55, ISTP: 75, ISFP: 60, ESTP: 75, ESFP: 65},
	INFJ: {INTJ: 80, INTP: 75, ENTJ: 75, ENTP: 85, INFJ: 75, INFP: 85, ENFJ: 90, ENFP: 85, ISTJ: 60, ISFJ: 70, ESTJ: 55, ESFJ: 65, ISTP: 60, ISFP: 70, ESTP: 50, ESFP: 65},
	INFP: {INTJ: 70, INTP: 70, ENTJ: 65, ENTP: 75, INFJ: 85, INFP: 75, ENFJ: 85, ENFP: 85, ISTJ: 50, ISFJ: 65, ESTJ: 45, ESFJ: 70, ISTP: 50, ISFP: 70, ESTP: 40, ESFP: 65},
	ENFJ: {INTJ: 65, INTP: 70, ENTJ: 70, ENTP: 65, INFJ: 90, INFP: 85, ENFJ: 75, ENFP: 80, ISTJ: 60, ISFJ: 75, ESTJ: 50, ESFJ: 80, ISTP: 50, ISFP: 70, ESTP: 45, ESFP: 70},
	ENFP: {INTJ: 75, INTP: 70, ENTJ: 65, ENTP: 75, INFJ: 85, INFP: 85, ENFJ: 80, ENFP: 70, ISTJ: 45, ISFJ: 65, ESTJ: 40, ESFJ: 75, ISTP: 55, ISFP: 65, ESTP: 60, ESFP: 75},
	ISTJ: {INTJ: 70, INTP: 60, ENTJ: 75, ENTP: 60, INFJ: 60, INFP: 50, ENFJ: 60, ENFP: 45, ISTJ: 75, ISFJ: 80, ESTJ: 85, ESFJ: 80, ISTP: 75, ISFP: 65, ESTP: 70, ESFP: 55},
	ISFJ: {INTJ: 55, INTP: 50, ENTJ: 55, ENTP: 50, INFJ: 70, INFP: 65, ENFJ: 75, ENFP: 65, ISTJ: 80, ISFJ: 75, ESTJ: 80, ESFJ: 90, ISTP: 65, ISFP: 80, ESTP: 55, ESFP: 75},
	ESTJ: {INTJ: 65, INTP: 60, ENTJ: 80, ENTP: 70, INFJ: 55, INFP: 45, ENFJ: 50, ENFP: 40, ISTJ: 85, ISFJ: 80, ESTJ: 75, ESFJ: 80, ISTP: 70, ISFP: 60, ESTP: 75, ESFP: 65},
	ESFJ: {INTJ: 45, INTP: 45, ENTJ: 50, ENTP: 55, INFJ: 65, INFP: 70, ENFJ: 80, ENFP: 75, ISTJ: 80, ISFJ: 90, ESTJ: 80, ESFJ: 75, ISTP: 55, ISFP: 75, ESTP: 60, ESFP: 80},
	ISTP: {INTJ: 60, INTP: 80, ENTJ: 65, ENTP: 75, INFJ: 60, INFP: 50, ENFJ: 50, ENFP: 55, ISTJ: 75, ISFJ: 65, ESTJ: 70, ESFJ: 55, ISTP: 80, ISFP: 70, ESTP: 85, ESFP: 70},
	ISFP: {INTJ: 50, INTP: 55, ENTJ: 50, ENTP: 60, INFJ: 70, INFP: 70, ENFJ: 70, ENFP: 65, ISTJ: 65, ISFJ: 80, ESTJ: 60, ESFJ: 75, ISTP: 70, ISFP: 75, ESTP: 70, ESFP: 80},
	ESTP: {INTJ: 50, INTP: 65, ENTJ: 60, ENTP: 75, INFJ: 50, INFP: 40, ENFJ: 45, ENFP: 60, ISTJ: 70, ISFJ: 55, ESTJ: 75, ESFJ: 60, ISTP: 85, ISFP: 70, ESTP: 70, ESFP: 80},
	ESFP: {INTJ: 40, INTP: 50, ENTJ: 45, ENTP: 65, INFJ: 65, INFP: 65, ENFJ: 70, ENFP: 75, ISTJ: 55, ISFJ: 75, ESTJ: 65, ESFJ: 80, ISTP: 70, ISFP: 80, ESTP: 80, ESFP: 70},
}

// table is the flattened ordered-pair view of rows, built once at startup.
var table = flatten(rows)

func flatten(rows map[Type]map[Type]int) map[Pair]int {
	out := make(map[Pair]int, len(rows)*len(rows))
	for a, row := range rows {
		for b, score := range row {
			out[Pair{A: a, B: b}] = score
		}
	}
	return out
}

// LookupScore returns the directional compatibility score of a toward b.
// Pairs missing from the table, including unknown codes, return DefaultScore.
func LookupScore(a, b Type) int {
	if score, ok := table[Pair{A: a, B: b}]; ok {
		return score
	}
	return DefaultScore
}

// Row returns the scores of a toward every type, in selector order.
func Row(a Type) []int {
	out := make([]int, 0, len(allTypes))
	for _, b := range allTypes {
		out = append(out, LookupScore(a, b))
	}
	return out
}
