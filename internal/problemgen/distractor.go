package problemgen

import "math/rand"

// NumChoices is how many answer options every question presents.
const NumChoices = 4

// offsetPool holds the preferred distractor offsets. Each is used at most
// once per question so the distractors stay plausible and close to the
// correct answer.
var offsetPool = []int{-3, -2, -1, 1, 2, 3, 4, 5}

// fallbackOffsetRange bounds the uniform fallback offsets used when the pool
// cannot produce enough unique values (small correct answers collapse
// negative offsets onto zero).
const fallbackOffsetRange = 5

// synthesizeChoices builds NumChoices distinct non-negative values that
// include correct exactly once, in shuffled presentation order.
func synthesizeChoices(correct int, rng *rand.Rand) []int {
	seen := map[int]bool{correct: true}
	values := []int{correct}

	pool := make([]int, len(offsetPool))
	copy(pool, offsetPool)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for _, off := range pool {
		if len(values) == NumChoices {
			break
		}
		v := correct + off
		if v < 0 {
			v = 0
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	for len(values) < NumChoices {
		off := rng.Intn(2*fallbackOffsetRange+1) - fallbackOffsetRange
		v := correct + off
		if v < 0 {
			v = 0
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}

	// Fisher-Yates over the final set so the correct answer's position
	// carries no signal.
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}
