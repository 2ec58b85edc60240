// Package output writes rendered images to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ErrNotWritable is returned when the destination directory rejects writes.
var ErrNotWritable = errors.New("output directory not writable")

// FileMode is the permission set on written images.
const FileMode = 0o644

// WritePNG encodes img and replaces path with it. The data goes to a
// temporary file in the same directory first and is renamed into place,
// so a failed write never leaves a truncated image at path.
func WritePNG(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)
	if err := checkWritable(dir); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotWritable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = png.Encode(tmp, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), FileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
