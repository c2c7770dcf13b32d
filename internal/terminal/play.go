// internal/terminal/play.go
//
// Line-oriented terminal adapter. Reads one guess per line, renders the
// evaluated row plus the keyboard, and reports the outcome. Rendering lives
// here; the session itself knows nothing about terminals.

package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/game"
)

// Game is the subset of *game.Session the adapter drives.
type Game interface {
	StartGame() error
	SubmitGuess(guess string) (game.Result, error)
	State() game.Snapshot
}

const (
	cmdNew  = ":new"
	cmdQuit = ":quit"
)

// Play runs the read-evaluate-render loop until input ends, :quit is
// entered or ctx is cancelled.
func Play(ctx context.Context, in io.Reader, out io.Writer, g Game, theme Theme) error {
	sc := bufio.NewScanner(in)
	intro(out, theme)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdNew:
			if err := g.StartGame(); err != nil {
				return fmt.Errorf("start game: %w", err)
			}
			intro(out, theme)
			continue
		}

		res, err := g.SubmitGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidWord):
			fmt.Fprintf(out, "Not in word list: %s\n", strings.ToUpper(line))
			continue
		case errors.Is(err, game.ErrGameOver):
			fmt.Fprintf(out, "Game is over. Type %s to play again or %s to exit.\n", cmdNew, cmdQuit)
			continue
		case err != nil:
			return err
		}

		render(out, g.State(), theme)
		switch res.Status {
		case game.Won:
			fmt.Fprintf(out, "You won in %d/%d!\n", *res.Row+1, game.MaxRows)
			log.Debug().Int("row", *res.Row).Msg("terminal game won")
		case game.Lost:
			fmt.Fprintf(out, "Out of guesses. The word was %s.\n", res.TargetWord)
			log.Debug().Msg("terminal game lost")
		}
	}
}

func intro(out io.Writer, theme Theme) {
	fmt.Fprintf(out, "New game: guess the %d-letter word in %d tries.\n", game.WordLength, game.MaxRows)
	fmt.Fprintln(out, theme.Help.Render(fmt.Sprintf("%s restarts, %s exits", cmdNew, cmdQuit)))
}

// render prints every written row followed by the keyboard.
func render(out io.Writer, st game.Snapshot, theme Theme) {
	for r := range st.Guesses {
		if st.Evaluations[r][0] == "" {
			break
		}
		fmt.Fprintln(out, theme.Row(st.Guesses[r], st.Evaluations[r]))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Keyboard(st.Keyboard))
	fmt.Fprintln(out)
}
