package wordle

// Mark is the feedback for one guessed letter.
type Mark int

const (
	// Unknown is a letter not guessed yet.
	Unknown Mark = iota
	// Miss means the letter is not in the answer, or all its copies are used.
	Miss
	// Present means the letter is in the answer at another position.
	Present
	// Hit means the letter is in the right position.
	Hit
)

func (m Mark) String() string {
	switch m {
	case Miss:
		return "miss"
	case Present:
		return "present"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}

// Score marks guess against answer in two passes. Exact matches are
// marked first; the remaining answer letters are then handed out left to
// right, so repeated letters are never over-counted. Both words must be
// uppercase A-Z of equal length.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = Hit
		} else {
			counts[answer[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Hit {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Miss
		}
	}
	return res
}

func allHit(marks []Mark) bool {
	for _, m := range marks {
		if m != Hit {
			return false
		}
	}
	return true
}
