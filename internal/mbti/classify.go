package mbti

// Label is the qualitative rating derived from a score.
type Label string

// Labels from weakest to strongest.
const (
	LabelChallenging Label = "Challenging"
	LabelModerate    Label = "Moderate"
	LabelGood        Label = "Good"
	LabelStrong      Label = "Strong"
	LabelExcellent   Label = "Excellent"
)

// thresholds are checked from the top; the first one the score reaches wins.
var thresholds = []struct {
	min   int
	label Label
}{
	{85, LabelExcellent},
	{75, LabelStrong},
	{65, LabelGood},
	{50, LabelModerate},
}

// Classify maps a score onto its label.
func Classify(score int) Label {
	for _, th := range thresholds {
		if score >= th.min {
			return th.label
		}
	}
	return LabelChallenging
}

// Rank orders labels: Challenging is 0, Excellent is 4. Unknown labels rank -1.
func (l Label) Rank() int {
	switch l {
	case LabelChallenging:
		return 0
	case LabelModerate:
		return 1
	case LabelGood:
		return 2
	case LabelStrong:
		return 3
	case LabelExcellent:
		return 4
	default:
		return -1
	}
}

func (l Label) String() string {
	return string(l)
}
