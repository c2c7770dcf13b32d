// assets/embed.go
//
// Bundled data files. The default word bank ships inside the binary so the
// engine can run without any external files configured.

package assets

import (
	"embed"
)

//go:embed words.txt
var FS embed.FS

// WordsText returns the raw, newline-delimited default word bank.
// Lines starting with '#' are comments; they never survive word filtering.
func WordsText() string {
	b, err := FS.ReadFile("words.txt")
	if err != nil {
		return ""
	}
	return string(b)
}
