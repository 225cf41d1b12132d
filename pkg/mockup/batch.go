package mockup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Batch banners.
const (
	StartBanner = "🖼️  Création des images placeholder pour la documentation..."
	DoneBanner  = "✅ Toutes les images placeholder ont été créées!"
)

// BatchOptions controls RunAll.
type BatchOptions struct {
	Root      string    // prefix for relative spec paths; "" means working directory
	KeepGoing bool      // continue past failed images and report them at the end
	Stderr    io.Writer // warnings when KeepGoing; nil means os.Stderr
}

// RunAll generates every spec sequentially, in order, bracketed by the
// start and done banners. By default the first failure aborts the batch.
// With KeepGoing, every spec is attempted and the failures are returned
// joined; the done banner is printed only when nothing failed.
func RunAll(r *Renderer, specs []Spec, opts BatchOptions) error {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	fmt.Fprintln(r.out, StartBanner)

	var errs []error
	for _, s := range specs {
		err := r.Generate(s.Title, s.Description, resolvePath(opts.Root, s.Path))
		if err == nil {
			continue
		}
		if !opts.KeepGoing {
			return err
		}
		fmt.Fprintf(stderr, "Warning: %v\n", err)
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d images failed: %w", len(errs), len(specs), errors.Join(errs...))
	}

	fmt.Fprintln(r.out, DoneBanner)
	return nil
}

func resolvePath(root, p string) string {
	if root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
