// Package generator writes rendered images to disk.
//
// All output follows a unified pipeline: create an image.Image first,
// then encode it in the format implied by the output extension.
package generator

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// Config holds parameters for media generation.
type Config struct {
	Image image.Image // Rendered image; required
}

// ErrNoImage is returned when Config.Image is nil.
var ErrNoImage = errors.New("no image to write")

// Generate creates an output file. The format is inferred from the file extension;
// only ".png" is supported. Missing parent directories are created and an
// existing file at output is overwritten.
func Generate(output string, cfg Config) error {
	if cfg.Image == nil {
		return ErrNoImage
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, cfg.Image)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}

// GenerateToWriter writes media to an io.Writer. The format is specified by ext.
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	if cfg.Image == nil {
		return ErrNoImage
	}

	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, cfg.Image)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}
