// commands.go
//
// Command line surface:
//   - wordle play   → interactive game in the terminal
//   - wordle serve  → HTTP/JSON adapter
//   - wordle words  → word list diagnostics
//
// Flags and WORDLE_* env vars are described in internal/config.

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/config"
	"github.com/robalobadob/wordle-engine/internal/daily"
	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/httpserver"
	"github.com/robalobadob/wordle-engine/internal/store"
	"github.com/robalobadob/wordle-engine/internal/terminal"
	"github.com/robalobadob/wordle-engine/internal/words"
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Five-letter word guessing game engine.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.Level())
			return nil
		},
	}
	config.Register(cmd.PersistentFlags(), cfg)

	cmd.AddCommand(newPlayCmd(cfg))
	cmd.AddCommand(newServeCmd(cfg))
	cmd.AddCommand(newWordsCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("wordle v{{.Version}}\n")
	return cmd
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

			src, err := loadWords(cfg)
			if err != nil {
				return err
			}
			sess, err := game.NewSession(wordSource(cfg, src))
			if err != nil {
				return fmt.Errorf("start game: %w", err)
			}
			return terminal.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), sess, terminal.DefaultTheme())
		},
	}
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := loadWords(cfg)
			if err != nil {
				return err
			}
			srv := httpserver.New(store.NewMemoryStore(), src, httpserver.Options{
				ClientOrigin: cfg.ClientOrigin,
				DailySalt:    cfg.DailySalt,
				Timeout:      cfg.Timeout,
				Mode:         cfg.Mode,
			})
			log.Info().Str("addr", cfg.Addr()).Msg("starting wordle server")
			return srv.Start(cfg.Addr())
		},
	}
}

func newWordsCmd(cfg *config.Config) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Report the loaded word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := loadWords(cfg)
			if err != nil {
				return err
			}
			return reportWords(cmd.OutOrStdout(), cfg, src, list)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print every word")
	return cmd
}

func reportWords(out io.Writer, cfg *config.Config, src *words.Source, list bool) error {
	picker := &daily.Picker{Source: src, Salt: cfg.DailySalt}
	if _, err := fmt.Fprintf(out, "words: %d\ndaily: %s\n", src.Len(), picker.Today()); err != nil {
		return err
	}
	if !list {
		return nil
	}
	for _, w := range src.Words() {
		if _, err := fmt.Fprintln(out, w); err != nil {
			return err
		}
	}
	return nil
}

// loadWords reads cfg.WordsFile, or the embedded list when unset. Empty
// lists fall back to words.FallbackWords with a warning.
func loadWords(cfg *config.Config) (*words.Source, error) {
	var (
		src      *words.Source
		fellBack bool
		err      error
	)
	if cfg.WordsFile != "" {
		src, fellBack, err = words.ReadFile(cfg.WordsFile)
		if err != nil {
			return nil, err
		}
	} else {
		src, fellBack = words.Embedded()
	}
	if fellBack {
		log.Warn().Str("file", cfg.WordsFile).Strs("fallback", words.FallbackWords).Msg("no valid words found; using fallback list")
	}
	log.Debug().Int("count", src.Len()).Msg("word list loaded")
	return src, nil
}

// wordSource selects the target picker for cfg.Mode.
func wordSource(cfg *config.Config, src *words.Source) game.WordSource {
	if cfg.Mode == config.ModeDaily {
		return &daily.Picker{Source: src, Salt: cfg.DailySalt}
	}
	return src
}
