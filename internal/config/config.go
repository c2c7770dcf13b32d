// internal/config/config.go
//
// Runtime configuration shared by the play and serve commands.
//
// Every flag can also be supplied through the environment with the WORDLE_
// prefix (dashes become underscores), e.g. WORDLE_WORDS_FILE=/path/words.txt.
// Explicit flags win over the environment. A `.env` file in the working
// directory is loaded by main before flags are registered.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Game modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds all application configuration.
type Config struct {
	Bind         string
	Port         int
	WordsFile    string // empty means the embedded word bank
	DailySalt    string
	ClientOrigin string
	LogLevel     string
	Mode         string
	Timeout      time.Duration
}

// Register adds the configuration flags to fs and applies WORDLE_* env
// values to every flag not set on the command line.
func Register(fs *pflag.FlagSet, cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: WORDLE_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 5175, "port to listen on (env: WORDLE_PORT)")
	fs.StringVarP(&cfg.WordsFile, "words-file", "w", "", "newline-delimited word list; embedded list if empty (env: WORDLE_WORDS_FILE)")
	fs.StringVar(&cfg.DailySalt, "daily-salt", "local_dev_salt", "secret mixed into the daily word selection (env: WORDLE_DAILY_SALT)")
	fs.StringVar(&cfg.ClientOrigin, "client-origin", "http://localhost:5173", "allowed CORS origin (env: WORDLE_CLIENT_ORIGIN)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "trace|debug|info|warn|error (env: WORDLE_LOG_LEVEL)")
	fs.StringVarP(&cfg.Mode, "mode", "m", ModeRandom, "target selection: random|daily (env: WORDLE_MODE)")
	fs.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "per-request handler timeout (env: WORDLE_TIMEOUT)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.Mode != ModeRandom && c.Mode != ModeDaily {
		return fmt.Errorf("invalid mode %q (want %s or %s)", c.Mode, ModeRandom, ModeDaily)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
