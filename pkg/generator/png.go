// png.go — PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// writePNG encodes img to a PNG file at the given path, creating parent
// directories as needed. A file that fails to encode is removed.
func writePNG(output string, img image.Image) (err error) {
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", output, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(output)
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
