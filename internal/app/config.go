package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/testimage/internal/fixture"
	"github.com/rook-computer/testimage/internal/render"
)

const (
	EnvOutput   = "TESTIMAGE_OUT"
	EnvFont     = "TESTIMAGE_FONT"
	EnvFontSize = "TESTIMAGE_FONT_SIZE"
	EnvDebug    = "TESTIMAGE_DEBUG"
)

// Config contains settings for a generator run.
//
// The zero-argument defaults reproduce the demo fixture exactly; the
// overrides exist for local experiments.
type Config struct {
	OutputPath string
	// FontPath selects a TrueType/OpenType file. Empty means the built-in
	// bitmap face.
	FontPath string
	FontSize float64
	Debug    bool
}

func DefaultConfig() Config {
	return Config{
		OutputPath: fixture.Filename,
		FontSize:   render.DefaultFontSize,
	}
}

// DefaultConfigFromEnv returns DefaultConfig with any environment
// overrides applied.
func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if out := os.Getenv(EnvOutput); out != "" {
		cfg.OutputPath = out
	}
	cfg.FontPath = os.Getenv(EnvFont)

	if raw := os.Getenv(EnvFontSize); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a number (got %q): %w", EnvFontSize, raw, err)
		}
		if size <= 0 {
			return Config{}, fmt.Errorf("%s must be positive (got %q)", EnvFontSize, raw)
		}
		cfg.FontSize = size
	}

	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}

	return cfg, nil
}
