// internal/game/engine.go
//
// Guess scoring. Evaluate implements the two-pass Wordle algorithm:
//
// Pass 1:
//   - Mark exact matches Correct and consume one count of that letter.
//
// Pass 2:
//   - For each remaining position: if the letter still has count left,
//     mark Present and consume it; otherwise mark Absent.
//
// Reserving exact matches first keeps repeated guess letters from being
// credited more often than they occur in the target.
package game

import "strings"

// Evaluate compares guess against target. Both are normalized to uppercase.
// Inputs shorter than WordLength leave the missing tail Absent.
func Evaluate(guess, target string) Evaluation {
	g := strings.ToUpper(guess)
	t := strings.ToUpper(target)

	var res Evaluation
	n := min(len(g), len(t), WordLength)

	// Letter frequency over the whole target (A–Z).
	var counts [26]int
	for i := 0; i < n; i++ {
		if j := idx(t[i]); j >= 0 {
			counts[j]++
		}
	}

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			res[i] = Correct
			if j := idx(g[i]); j >= 0 {
				counts[j]--
			}
		}
	}

	// Second pass: present/absent for the rest.
	for i := 0; i < WordLength; i++ {
		if res[i] == Correct {
			continue
		}
		if i < n {
			if j := idx(g[i]); j >= 0 && counts[j] > 0 {
				res[i] = Present
				counts[j]--
				continue
			}
		}
		res[i] = Absent
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, anything else to -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
