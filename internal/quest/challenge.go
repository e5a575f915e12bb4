// Package quest holds coding challenges and the sequencer that walks a
// kingdom's curriculum.
package quest

// Challenge is one coding exercise. Values are immutable once built.
type Challenge struct {
	QuestName     string
	ProblemText   string
	CorrectAnswer string
	XPReward      int
}

// HintPrompt builds the text handed to the assistant when the player asks
// for help with this challenge.
func (c Challenge) HintPrompt() string {
	return "I need a hint for this problem: \"" + c.ProblemText + "\"."
}

// Curriculum is the ordered, read-only list of challenges for one kingdom.
type Curriculum struct {
	challenges []Challenge
}

// NewCurriculum copies the given challenges into a curriculum.
func NewCurriculum(challenges ...Challenge) Curriculum {
	c := make([]Challenge, len(challenges))
	copy(c, challenges)
	return Curriculum{challenges: c}
}

// Len returns the number of challenges.
func (c Curriculum) Len() int {
	return len(c.challenges)
}

// At returns the i-th challenge and whether it exists.
func (c Curriculum) At(i int) (Challenge, bool) {
	if i < 0 || i >= len(c.challenges) {
		return Challenge{}, false
	}
	return c.challenges[i], true
}
