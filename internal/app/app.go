package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rook-computer/testimage/internal/fixture"
	"github.com/rook-computer/testimage/internal/output"
	"github.com/rook-computer/testimage/internal/render"
	"golang.org/x/image/font"
)

// Generator renders the fixture and writes it to disk.
type Generator struct {
	Config Config
	Logger Logger
	// Stdout receives the confirmation line.
	Stdout io.Writer
}

func New(cfg Config) *Generator {
	return &Generator{Config: cfg, Logger: NoopLogger{}, Stdout: os.Stdout}
}

// Run performs one render-and-write cycle. The confirmation line is only
// printed once the file is in place.
func (g *Generator) Run() error {
	logger := g.logger()
	path := g.Config.OutputPath
	if path == "" {
		path = fixture.Filename
	}

	face, err := g.loadFace()
	if err != nil {
		logger.Errorf("font", "load %s failed: %v", g.Config.FontPath, err)
		return err
	}

	canvas := fixture.NewCanvas(face)
	canvas.Logger = logger
	img := fixture.Render(canvas)

	if err := output.WritePNG(path, img); err != nil {
		logger.Errorf("output", "write %s failed: %v", path, err)
		return fmt.Errorf("write %s: %w", path, err)
	}
	bounds := img.Bounds()
	logger.Infof("output", "wrote %s, %dx%d", path, bounds.Dx(), bounds.Dy())

	if g.Stdout != nil {
		fmt.Fprintf(g.Stdout, "Created %s\n", path)
	}
	return nil
}

func (g *Generator) loadFace() (font.Face, error) {
	if g.Config.FontPath == "" {
		return render.DefaultFace(), nil
	}
	face, err := render.LoadFaceFile(g.Config.FontPath, g.Config.FontSize)
	if err != nil {
		return nil, err
	}
	g.logger().Infof("font", "loaded %s at %gpt", g.Config.FontPath, g.Config.FontSize)
	return face, nil
}

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return NoopLogger{}
	}
	return g.Logger
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
