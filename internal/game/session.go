// internal/game/session.go
//
// Game session state machine.
//
// State transitions:
//   - playing → playing: valid, non-winning guess on rows 0..4 (row advances).
//   - playing → won:     all letters Correct.
//   - playing → lost:    non-winning guess on the last row.
//
// Won and Lost are terminal; only StartGame leaves them, by replacing the
// whole session state.
package game

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WordSource supplies target words and answers membership queries.
// *words.Source and *daily.Picker implement it.
type WordSource interface {
	RandomWord() (string, error)
	Contains(word string) bool
}

// Session holds the state of a single game. All methods are safe for
// concurrent use; each one runs under the session lock.
type Session struct {
	mu sync.Mutex

	id          string
	src         WordSource
	targetWord  string
	currentRow  int
	guesses     [MaxRows][WordLength]byte
	evaluations [MaxRows]Evaluation
	status      Status
	keyboard    Keyboard
}

// NewSession constructs a session over src and starts the first game.
// It fails only if src cannot produce a target word.
func NewSession(src WordSource) (*Session, error) {
	s := &Session{id: uuid.NewString(), src: src}
	if err := s.StartGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// StartGame picks a new target and resets every field, whatever the
// previous outcome was. On error the session is left untouched.
func (s *Session) StartGame() error {
	target, err := s.src.RandomWord()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetWord = target
	s.currentRow = 0
	s.guesses = [MaxRows][WordLength]byte{}
	s.evaluations = [MaxRows]Evaluation{}
	s.status = Playing
	s.keyboard = Keyboard{}

	log.Debug().Str("session", s.id).Msg("game started")
	return nil
}

// IsValidGuess reports whether word has exactly WordLength characters and
// is in the word list, ignoring case. Characters are counted as runes; a
// word only passes if its uppercase form is a list entry, which is ASCII.
func (s *Session) IsValidGuess(word string) bool {
	return utf8.RuneCountInString(word) == WordLength && s.src.Contains(word)
}

// SubmitGuess validates, scores and records a guess.
//
// Failures return a Result with Success=false and a matching error
// (ErrGameOver or ErrInvalidWord); session state is not modified.
func (s *Session) SubmitGuess(guess string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Playing {
		return Result{Status: s.status, Error: CodeGameOver}, ErrGameOver
	}
	if !s.IsValidGuess(guess) {
		return Result{Status: s.status, Error: CodeInvalidWord}, ErrInvalidWord
	}

	guess = strings.ToUpper(guess)
	eval := Evaluate(guess, s.targetWord)
	row := s.currentRow
	copy(s.guesses[row][:], guess)
	s.evaluations[row] = eval
	s.keyboard.Apply(guess, eval)

	res := Result{Success: true, Evaluation: eval[:], Row: &row}
	switch {
	case eval.Solved():
		s.status = Won
	case row == MaxRows-1:
		s.status = Lost
		res.TargetWord = s.targetWord
	default:
		s.currentRow++
	}
	res.Status = s.status

	log.Debug().Str("session", s.id).Int("row", row).Str("status", string(s.status)).Msg("guess applied")
	return res, nil
}

// State returns a deep copy of the session. Mutating it never affects
// the session.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		TargetWord:  s.targetWord,
		CurrentRow:  s.currentRow,
		Guesses:     make([][]string, MaxRows),
		Evaluations: make([][]LetterStatus, MaxRows),
		Status:      s.status,
		Keyboard:    s.keyboard.export(),
	}
	for r := 0; r < MaxRows; r++ {
		cells := make([]string, WordLength)
		for c, b := range s.guesses[r] {
			if b != 0 {
				cells[c] = string(b)
			}
		}
		snap.Guesses[r] = cells
		snap.Evaluations[r] = append([]LetterStatus(nil), s.evaluations[r][:]...)
	}
	return snap
}

// Status returns the current session status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
