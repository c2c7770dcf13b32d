package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-engine/internal/game"
)

// Theme holds the tile styles for each letter status.
type Theme struct {
	Correct lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
	Unset   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultTheme returns the classic green/yellow/grey palette.
func DefaultTheme() Theme {
	tile := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return Theme{
		Correct: tile.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("15")),
		Present: tile.Background(lipgloss.Color("178")).Foreground(lipgloss.Color("0")),
		Absent:  tile.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")),
		Unset:   tile.Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
	}
}

func (t Theme) style(s game.LetterStatus) lipgloss.Style {
	switch s {
	case game.Correct:
		return t.Correct
	case game.Present:
		return t.Present
	case game.Absent:
		return t.Absent
	}
	return t.Unset
}

// Row renders one guess as a line of tiles.
func (t Theme) Row(letters []string, eval []game.LetterStatus) string {
	tiles := make([]string, len(letters))
	for i, l := range letters {
		if l == "" {
			l = "_"
		}
		var st game.LetterStatus
		if i < len(eval) {
			st = eval[i]
		}
		tiles[i] = t.style(st).Render(l)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Keyboard renders the three keyboard rows colored by best status.
func (t Theme) Keyboard(kb map[string]game.LetterStatus) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j, c := range row {
			keys[j] = t.style(kb[string(c)]).Render(string(c))
		}
		lines[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return strings.Join(lines, "\n")
}
