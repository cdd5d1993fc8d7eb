package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TERMMATCH_DATA.
const EnvPrefix = "TERMMATCH"

// Config holds the game's runtime settings.
type Config struct {
	DataFile   string
	Width      int
	Height     int
	Seed       int64 // 0 = seed from the clock
	LogLevel   string
	Fullscreen bool
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		DataFile: "data.json",
		Width:    1280,
		Height:   800,
		LogLevel: "info",
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// RegisterFlags declares the shared flags on fs, writing into c.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.StringVarP(&c.DataFile, "data", "d", def.DataFile, "path to the pairs document (env: TERMMATCH_DATA)")
	fs.IntVar(&c.Width, "width", def.Width, "window width in pixels (env: TERMMATCH_WIDTH)")
	fs.IntVar(&c.Height, "height", def.Height, "window height in pixels (env: TERMMATCH_HEIGHT)")
	fs.Int64Var(&c.Seed, "seed", 0, "shuffle seed, 0 for a random seed (env: TERMMATCH_SEED)")
	fs.StringVar(&c.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error (env: TERMMATCH_LOG_LEVEL)")
	fs.BoolVar(&c.Fullscreen, "fullscreen", false, "start in fullscreen (env: TERMMATCH_FULLSCREEN)")
}

// BindEnv loads a .env file if present, then lets TERMMATCH_* variables
// fill any flag the user did not set on the command line.
func BindEnv(fs *pflag.FlagSet) error {
	// Missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var firstErr error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("env override for --%s: %w", f.Name, err)
			}
		}
	})
	return firstErr
}
