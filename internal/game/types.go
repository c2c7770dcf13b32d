// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/present/absent).
//   - Status: coarse session state (playing/won/lost).
//   - Result: structured outcome of a single submission.
//   - Snapshot: defensive copy of a session for presentation layers.

package game

import (
	"errors"

	"github.com/robalobadob/wordle-engine/internal/words"
)

const (
	// MaxRows is the number of guesses allowed per session.
	MaxRows = 6
	// WordLength is the number of letters per guess.
	WordLength = words.WordLength
)

var (
	// ErrGameOver is returned when a guess is submitted to a finished session.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidWord is returned for guesses that are not 5-letter list words.
	ErrInvalidWord = errors.New("invalid word")
)

// Error codes carried in Result.Error.
const (
	CodeGameOver    = "game_over"
	CodeInvalidWord = "invalid_word"
)

// LetterStatus represents the evaluation result for a single letter in a guess.
// The zero value means "unset" (no guess written in that cell yet).
type LetterStatus string

const (
	Correct LetterStatus = "correct" // right letter, right position
	Present LetterStatus = "present" // in the target, different position
	Absent  LetterStatus = "absent"  // not credited
)

// rank orders statuses for keyboard coloring; unset ranks lowest.
func (s LetterStatus) rank() int {
	switch s {
	case Correct:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	}
	return 0
}

// Evaluation is the per-letter status array of one guess.
type Evaluation [WordLength]LetterStatus

// Solved reports whether every letter is Correct.
func (e Evaluation) Solved() bool {
	for _, s := range e {
		if s != Correct {
			return false
		}
	}
	return true
}

// Status is the state of a session.
type Status string

const (
	Playing Status = "playing"
	Won     Status = "won"
	Lost    Status = "lost"
)

// Result is what SubmitGuess hands back to the presentation layer.
// Evaluation and Row are set only on success; TargetWord only when Lost.
type Result struct {
	Success    bool           `json:"success"`
	Evaluation []LetterStatus `json:"evaluation,omitempty"`
	Status     Status         `json:"status"`
	Row        *int           `json:"row,omitempty"`
	Error      string         `json:"error,omitempty"`
	TargetWord string         `json:"targetWord,omitempty"`
}

// Snapshot is an independent copy of a session's state.
type Snapshot struct {
	ID          string                  `json:"id"`
	TargetWord  string                  `json:"targetWord,omitempty"`
	CurrentRow  int                     `json:"currentRow"`
	Guesses     [][]string              `json:"guesses"`
	Evaluations [][]LetterStatus        `json:"evaluations"`
	Status      Status                  `json:"status"`
	Keyboard    map[string]LetterStatus `json:"keyboard"`
}
