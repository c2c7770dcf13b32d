// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// The index for a date is HMAC-SHA256(salt, YYYY-MM-DD) modulo the list
// length, so every player sees the same target on the same UTC day while the
// sequence stays unpredictable without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker serves the day's word as the session target and delegates
// membership checks to Source. It satisfies game.WordSource.
type Picker struct {
	Source *words.Source
	Salt   string
	Now    func() time.Time // defaults to time.Now
}

// RandomWord returns today's word; the name matches the engine contract.
func (p *Picker) RandomWord() (string, error) {
	return p.Word(p.now())
}

// Word returns the word for the given date.
func (p *Picker) Word(date time.Time) (string, error) {
	n := p.Source.Len()
	if n == 0 {
		return "", words.ErrNotLoaded
	}
	return p.Source.At(WordIndex(date, p.Salt, n))
}

// Contains reports whether word is a valid guess.
func (p *Picker) Contains(word string) bool {
	return p.Source.Contains(word)
}

// Today returns the current date key.
func (p *Picker) Today() string {
	return DateKey(p.now())
}

func (p *Picker) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
