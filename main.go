package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rook-computer/testimage/internal/app"
)

const debugLogPath = "./testimage-debug.log"

func main() {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	// Flags
	out := flag.String("out", defaults.OutputPath, "output PNG path; also configurable via "+app.EnvOutput)
	fontPath := flag.String("font", defaults.FontPath, "TrueType/OpenType font file (optional); when empty, the built-in 7x13 face is used; also configurable via "+app.EnvFont)
	fontSize := flag.Float64("font-size", defaults.FontSize, "font size in points when -font is set; also configurable via "+app.EnvFontSize)
	debug := flag.Bool("debug", defaults.Debug, "enable debug logging to "+debugLogPath+"; also configurable via "+app.EnvDebug)
	flag.Parse()

	cfg := app.Config{OutputPath: *out, FontPath: *fontPath, FontSize: *fontSize, Debug: *debug}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	gen := app.New(cfg)
	gen.Logger = logger
	if err := gen.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
