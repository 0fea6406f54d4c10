package word

// MasteryLevel is the coarse tier a word sits in. It drives sort priority
// for due lists and display badges; the SM-2 math never reads it.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryMastered MasteryLevel = "mastered"
)

// Rank orders tiers for list sorting: new words surface first, mastered last.
func (m MasteryLevel) Rank() int {
	switch m {
	case MasteryNew:
		return 0
	case MasteryLearning:
		return 1
	case MasteryMastered:
		return 2
	}
	return 0
}

// Advance returns the tier after one answer. A correct answer promotes one
// step (new -> learning -> mastered); any incorrect answer lands the word
// in learning regardless of where it was.
func (m MasteryLevel) Advance(correct bool) MasteryLevel {
	if !correct {
		return MasteryLearning
	}
	switch m {
	case MasteryNew:
		return MasteryLearning
	case MasteryLearning:
		return MasteryMastered
	}
	return m
}
