package game

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// fixedSource always picks target and validates against list.
type fixedSource struct {
	target string
	list   *words.Source
}

func (f *fixedSource) RandomWord() (string, error) { return f.target, nil }
func (f *fixedSource) Contains(w string) bool      { return f.list.Contains(w) }

const testWords = "SPEED\nERASE\nCRANE\nABOUT\nABOVE\nABUSE\nMOULD\nEERIE\nPIANO"

func newTestSession(t *testing.T, target string) *Session {
	t.Helper()
	list, err := words.Load(testWords)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s, err := NewSession(&fixedSource{target: target, list: list})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, "CRANE")
	st := s.State()

	if st.ID == "" {
		t.Fatal("expected session ID")
	}
	if st.TargetWord != "CRANE" || st.CurrentRow != 0 || st.Status != Playing {
		t.Fatalf("unexpected initial state: %+v", st)
	}
	if len(st.Guesses) != MaxRows || len(st.Evaluations) != MaxRows {
		t.Fatalf("grid rows = %d/%d, want %d", len(st.Guesses), len(st.Evaluations), MaxRows)
	}
	for r := 0; r < MaxRows; r++ {
		for c := 0; c < WordLength; c++ {
			if st.Guesses[r][c] != "" || st.Evaluations[r][c] != "" {
				t.Fatalf("cell %d,%d not empty", r, c)
			}
		}
	}
}

func TestNewSessionNotLoaded(t *testing.T) {
	if _, err := NewSession(&words.Source{}); !errors.Is(err, words.ErrNotLoaded) {
		t.Fatalf("NewSession(unloaded) error = %v, want ErrNotLoaded", err)
	}
}

func TestIsValidGuess(t *testing.T) {
	s := newTestSession(t, "CRANE")
	tests := []struct {
		word string
		want bool
	}{
		{"ABOUT", true},
		{"about", true},
		{"AbOvE", true},
		{"ZZZZZ", false},
		{"ABOUTS", false},
		{"ABOU", false},
		{"", false},
		{"ſPEED", true}, // long s uppercases to S
		{"ÉRASE", false},
	}
	for _, tt := range tests {
		if got := s.IsValidGuess(tt.word); got != tt.want {
			t.Errorf("IsValidGuess(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestSubmitGuessAdvancesRow(t *testing.T) {
	s := newTestSession(t, "SPEED")

	res, err := s.SubmitGuess("erase")
	if err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if !res.Success || res.Status != Playing || res.Row == nil || *res.Row != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.TargetWord != "" {
		t.Fatal("target must not be revealed while playing")
	}
	want := []LetterStatus{P, A, A, P, P}
	if !reflect.DeepEqual(res.Evaluation, want) {
		t.Fatalf("Evaluation = %v, want %v", res.Evaluation, want)
	}

	st := s.State()
	if st.CurrentRow != 1 {
		t.Fatalf("CurrentRow = %d, want 1", st.CurrentRow)
	}
	if got := st.Guesses[0]; !reflect.DeepEqual(got, []string{"E", "R", "A", "S", "E"}) {
		t.Fatalf("Guesses[0] = %v", got)
	}
	if !reflect.DeepEqual(st.Evaluations[0], want) {
		t.Fatalf("Evaluations[0] = %v", st.Evaluations[0])
	}
}

func TestSubmitGuessNormalizesMultibyteInput(t *testing.T) {
	s := newTestSession(t, "SPEED")

	res, err := s.SubmitGuess("ſpeed")
	if err != nil {
		t.Fatalf("SubmitGuess() error = %v", err)
	}
	if res.Status != Won {
		t.Fatalf("Status = %s, want won", res.Status)
	}
	if got := s.State().Guesses[0]; !reflect.DeepEqual(got, []string{"S", "P", "E", "E", "D"}) {
		t.Fatalf("Guesses[0] = %v", got)
	}
}

func TestSubmitGuessWinAtEveryRow(t *testing.T) {
	for winRow := 0; winRow < MaxRows; winRow++ {
		s := newTestSession(t, "CRANE")
		for i := 0; i < winRow; i++ {
			if _, err := s.SubmitGuess("ABOUT"); err != nil {
				t.Fatalf("row %d: SubmitGuess() error = %v", i, err)
			}
		}

		res, err := s.SubmitGuess("CRANE")
		if err != nil {
			t.Fatalf("winning SubmitGuess() error = %v", err)
		}
		if res.Status != Won || *res.Row != winRow || res.TargetWord != "" {
			t.Fatalf("win at row %d: unexpected result %+v", winRow, res)
		}

		before := s.State()
		res, err = s.SubmitGuess("CRANE")
		if !errors.Is(err, ErrGameOver) || res.Success || res.Error != CodeGameOver {
			t.Fatalf("post-win SubmitGuess() = %+v, %v", res, err)
		}
		if !reflect.DeepEqual(before, s.State()) {
			t.Fatal("submission after win changed state")
		}
	}
}

func TestSubmitGuessLoseAfterSixRows(t *testing.T) {
	s := newTestSession(t, "CRANE")

	var res Result
	var err error
	for i := 0; i < MaxRows; i++ {
		res, err = s.SubmitGuess("ABOUT")
		if err != nil {
			t.Fatalf("row %d: SubmitGuess() error = %v", i, err)
		}
		if i < MaxRows-1 && res.Status != Playing {
			t.Fatalf("row %d: Status = %s, want playing", i, res.Status)
		}
	}
	if res.Status != Lost || res.TargetWord != "CRANE" || *res.Row != MaxRows-1 {
		t.Fatalf("final result = %+v", res)
	}
	if st := s.State(); st.Status != Lost || st.CurrentRow != MaxRows-1 {
		t.Fatalf("final state = %+v", st)
	}

	before := s.State()
	if _, err := s.SubmitGuess("CRANE"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("post-loss SubmitGuess() error = %v, want ErrGameOver", err)
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Fatal("submission after loss changed state")
	}
}

func TestSubmitGuessInvalidWordLeavesState(t *testing.T) {
	s := newTestSession(t, "CRANE")
	if _, err := s.SubmitGuess("ABOUT"); err != nil {
		t.Fatal(err)
	}
	before := s.State()

	for _, w := range []string{"ZZZZZ", "ABOUTS", "", "abc"} {
		res, err := s.SubmitGuess(w)
		if !errors.Is(err, ErrInvalidWord) {
			t.Fatalf("SubmitGuess(%q) error = %v, want ErrInvalidWord", w, err)
		}
		if res.Success || res.Error != CodeInvalidWord || res.Row != nil || res.Evaluation != nil {
			t.Fatalf("SubmitGuess(%q) result = %+v", w, res)
		}
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Fatal("invalid guesses changed state")
	}
}

func TestStateIsDefensiveCopy(t *testing.T) {
	s := newTestSession(t, "CRANE")
	if _, err := s.SubmitGuess("ABOUT"); err != nil {
		t.Fatal(err)
	}

	st := s.State()
	st.Guesses[0][0] = "Z"
	st.Evaluations[0][0] = Correct
	st.Guesses[1] = []string{"X"}
	st.Keyboard["A"] = Correct
	st.TargetWord = "HACKS"

	again := s.State()
	if again.Guesses[0][0] != "A" || again.Evaluations[0][0] != Present {
		t.Fatalf("grid mutated through snapshot: %v %v", again.Guesses[0], again.Evaluations[0])
	}
	if len(again.Guesses[1]) != WordLength || again.TargetWord != "CRANE" {
		t.Fatal("snapshot mutation leaked into session")
	}
	if again.Keyboard["A"] != Present {
		t.Fatalf("keyboard A = %s, want present", again.Keyboard["A"])
	}
}

func TestStartGameResets(t *testing.T) {
	t.Run("mid-session", func(t *testing.T) {
		s := newTestSession(t, "CRANE")
		_, _ = s.SubmitGuess("ABOUT")
		_, _ = s.SubmitGuess("ABOVE")

		if err := s.StartGame(); err != nil {
			t.Fatal(err)
		}
		assertFresh(t, s)
	})

	t.Run("after win", func(t *testing.T) {
		s := newTestSession(t, "CRANE")
		_, _ = s.SubmitGuess("CRANE")
		if err := s.StartGame(); err != nil {
			t.Fatal(err)
		}
		assertFresh(t, s)
		if _, err := s.SubmitGuess("ABOUT"); err != nil {
			t.Fatalf("SubmitGuess() after restart error = %v", err)
		}
	})
}

func assertFresh(t *testing.T, s *Session) {
	t.Helper()
	st := s.State()
	if st.CurrentRow != 0 || st.Status != Playing || len(st.Keyboard) != 0 {
		t.Fatalf("not reset: row=%d status=%s keys=%d", st.CurrentRow, st.Status, len(st.Keyboard))
	}
	for r := range st.Guesses {
		for c := range st.Guesses[r] {
			if st.Guesses[r][c] != "" || st.Evaluations[r][c] != "" {
				t.Fatalf("cell %d,%d not cleared", r, c)
			}
		}
	}
}

func TestSubmitGuessConcurrent(t *testing.T) {
	s := newTestSession(t, "CRANE")

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.SubmitGuess("ABOUT"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != MaxRows {
		t.Fatalf("accepted = %d, want %d", accepted, MaxRows)
	}
	if s.Status() != Lost {
		t.Fatalf("Status() = %s, want lost", s.Status())
	}
}
