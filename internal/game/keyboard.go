package game

// Keyboard tracks the best status seen for each letter across a session.
// Priority is Correct > Present > Absent and a letter is never downgraded.
type Keyboard map[byte]LetterStatus

// Apply folds one evaluated guess into the keyboard.
func (k Keyboard) Apply(guess string, eval Evaluation) {
	for i := 0; i < len(guess) && i < WordLength; i++ {
		c := guess[i]
		if eval[i].rank() > k[c].rank() {
			k[c] = eval[i]
		}
	}
}

// Status returns the recorded status for letter c, or "" if never guessed.
func (k Keyboard) Status(c byte) LetterStatus {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return k[c]
}

func (k Keyboard) export() map[string]LetterStatus {
	out := make(map[string]LetterStatus, len(k))
	for c, s := range k {
		out[string(c)] = s
	}
	return out
}
