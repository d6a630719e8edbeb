package problemgen

// Question represents one arithmetic question ready for display.
type Question struct {
	// Prompt is the text displayed to the player, e.g. "7 + 12 = ?".
	Prompt string

	// Correct is the right answer.
	Correct int

	// Choices contains exactly 4 distinct non-negative values in shuffled
	// presentation order. Exactly one equals Correct.
	Choices []int
}

// CorrectIndex returns the position of the correct answer within Choices,
// or -1 if the question is malformed.
func (q *Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c == q.Correct {
			return i
		}
	}
	return -1
}

// Check reports whether the choice at the given index is the correct answer.
// Out-of-range indexes are simply wrong, never a panic.
func (q *Question) Check(index int) bool {
	if index < 0 || index >= len(q.Choices) {
		return false
	}
	return q.Choices[index] == q.Correct
}
