// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Parse newline-delimited text into a list of valid 5-letter words.
//   - Fall back to a fixed minimal list when nothing usable survives parsing.
//   - Supply RandomWord and Contains for the Guess Engine.
//
// Constraints:
//   • Words must be exactly 5 ASCII letters; lists are normalized to uppercase.
//   • A Source is immutable once loaded, so it is safe to share between sessions.
//   • The zero Source is "not loaded": RandomWord fails with ErrNotLoaded.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle-engine/assets"
)

// WordLength is the number of letters in every playable word.
const WordLength = 5

var (
	// ErrEmptyWordList is returned when parsing yields no valid words.
	ErrEmptyWordList = errors.New("words: no valid 5-letter words in list")

	// ErrNotLoaded is returned when a word is requested from an unloaded Source.
	ErrNotLoaded = errors.New("words: word list not loaded")
)

// FallbackWords is used whenever the primary list yields zero valid entries.
var FallbackWords = []string{"HELLO", "WORLD", "GAMES", "PIANO", "LIGHT"}

// Source holds a loaded word list. Construct it with Load, LoadOrFallback,
// ReadFile or Embedded.
type Source struct {
	list []string            // uppercase, deduplicated, in input order
	set  map[string]struct{} // lookup set over list
}

// Parse splits raw on newlines, trims and uppercases every token and keeps
// only tokens made of exactly WordLength letters. Duplicates are collapsed.
func Parse(raw string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		w := strings.ToUpper(strings.TrimSpace(line))
		if !isWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyWordList
	}
	return out, nil
}

// Load parses raw into a Source. It fails with ErrEmptyWordList when no word
// survives filtering; use LoadOrFallback to recover from that automatically.
func Load(raw string) (*Source, error) {
	list, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return newSource(list), nil
}

// LoadOrFallback behaves like Load but substitutes FallbackWords when raw
// holds no valid words. fellBack reports whether the substitution happened.
func LoadOrFallback(raw string) (src *Source, fellBack bool) {
	src, err := Load(raw)
	if err != nil {
		return newSource(append([]string(nil), FallbackWords...)), true
	}
	return src, false
}

// ReadFile loads a newline-delimited word file. I/O failures are returned;
// a readable file without valid words falls back to FallbackWords.
func ReadFile(path string) (*Source, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read word list %s: %w", path, err)
	}
	src, fellBack := LoadOrFallback(string(b))
	return src, fellBack, nil
}

// Embedded returns a Source over the word bank bundled in the binary.
func Embedded() (*Source, bool) {
	return LoadOrFallback(assets.WordsText())
}

func newSource(list []string) *Source {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return &Source{list: list, set: set}
}

// RandomWord returns a uniformly chosen word from the list.
func (s *Source) RandomWord() (string, error) {
	if s == nil || len(s.list) == 0 {
		return "", ErrNotLoaded
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.list))))
	if err != nil {
		return "", fmt.Errorf("pick random word: %w", err)
	}
	return s.list[n.Int64()], nil
}

// Contains reports whether word is in the list, ignoring case.
// An unloaded Source contains nothing.
func (s *Source) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[strings.ToUpper(word)]
	return ok
}

// Len returns the number of loaded words.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// Words returns a copy of the loaded list.
func (s *Source) Words() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.list...)
}

// At returns the word at index i, used for deterministic (daily) picks.
func (s *Source) At(i int) (string, error) {
	if s.Len() == 0 {
		return "", ErrNotLoaded
	}
	if i < 0 || i >= len(s.list) {
		return "", fmt.Errorf("words: index %d out of range [0,%d)", i, len(s.list))
	}
	return s.list[i], nil
}

// isWord reports whether w is exactly WordLength uppercase ASCII letters.
func isWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
