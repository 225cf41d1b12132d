// fonts.go - Font resolution with an ordered fallback chain.
// Each source either yields faces at every requested size or is skipped;
// the built-in bitmap face ends every chain so resolution cannot fail.
package mockup

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font file preferred on macOS, and the generic name tried everywhere else.
const (
	PreferredFontPath = "/System/Library/Fonts/Helvetica.ttc"
	FallbackFontName  = "arial.ttf"
)

// ErrFontNotFound is returned by sources whose font file cannot be located.
var ErrFontNotFound = errors.New("font not found")

// FontSource yields font faces, one per requested size.
type FontSource interface {
	Name() string
	Faces(sizes ...float64) ([]font.Face, error)
}

// DefaultFontChain returns the chain used for documentation images.
func DefaultFontChain() []FontSource {
	return []FontSource{
		FileFont{Path: PreferredFontPath},
		NamedFont{File: FallbackFontName},
		DefaultFont{},
	}
}

// FileFont loads a TrueType/OpenType file or the first face of a collection.
type FileFont struct {
	Path string
}

func (f FileFont) Name() string { return f.Path }

func (f FileFont) Faces(sizes ...float64) ([]font.Face, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", f.Path, ErrFontNotFound)
		}
		return nil, fmt.Errorf("read font: %w", err)
	}

	parsed, err := parseFontData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return scalableFaces(parsed, sizes)
}

// NamedFont looks a bare font file name up in the working directory and
// then in the platform font directories.
type NamedFont struct {
	File string
	Dirs []string // nil means SystemFontDirs()
}

func (n NamedFont) Name() string { return n.File }

func (n NamedFont) Faces(sizes ...float64) ([]font.Face, error) {
	path, err := n.locate()
	if err != nil {
		return nil, err
	}
	return FileFont{Path: path}.Faces(sizes...)
}

func (n NamedFont) locate() (string, error) {
	if fi, err := os.Stat(n.File); err == nil && !fi.IsDir() {
		return n.File, nil
	}

	dirs := n.Dirs
	if dirs == nil {
		dirs = SystemFontDirs()
	}

	want := filepath.Base(n.File)
	for _, dir := range dirs {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, not fatal.
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), want) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%s: %w", n.File, ErrFontNotFound)
}

// SystemFontDirs lists the directories searched for named fonts.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		dirs := []string{"/Library/Fonts", "/System/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		data := os.Getenv("XDG_DATA_DIRS")
		if data == "" {
			data = "/usr/local/share:/usr/share"
		}
		var dirs []string
		for _, d := range filepath.SplitList(data) {
			if d != "" {
				dirs = append(dirs, filepath.Join(d, "fonts"))
			}
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// EmbeddedFont is the Go Regular font compiled into the binary.
type EmbeddedFont struct{}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func (EmbeddedFont) Name() string { return "go-regular" }

func (EmbeddedFont) Faces(sizes ...float64) ([]font.Face, error) {
	parsed, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return scalableFaces(parsed, sizes)
}

// DefaultFont is the built-in 7x13 bitmap face. It ignores the requested
// sizes and never fails.
type DefaultFont struct{}

func (DefaultFont) Name() string { return "default" }

func (DefaultFont) Faces(sizes ...float64) ([]font.Face, error) {
	faces := make([]font.Face, len(sizes))
	for i := range faces {
		faces[i] = basicfont.Face7x13
	}
	return faces, nil
}

// Faces is the outcome of font resolution for one image.
type Faces struct {
	Title  font.Face
	Desc   font.Face
	Source string  // name of the source that succeeded
	Misses []error // why earlier sources were skipped
}

// Close releases both faces.
func (f Faces) Close() error {
	var errs []error
	if f.Title != nil {
		errs = append(errs, f.Title.Close())
	}
	if f.Desc != nil && f.Desc != f.Title {
		errs = append(errs, f.Desc.Close())
	}
	return errors.Join(errs...)
}

// ResolveFonts tries sources in order and returns faces from the first one
// that loads at both sizes. DefaultFont is appended when the chain does not
// already end with it, so the result is always usable.
func ResolveFonts(sources []FontSource, titleSize, descSize float64) Faces {
	var misses []error
	for _, src := range withDefault(sources) {
		faces, err := src.Faces(titleSize, descSize)
		if err != nil {
			misses = append(misses, err)
			continue
		}
		if len(faces) < 2 {
			for _, f := range faces {
				f.Close()
			}
			misses = append(misses, fmt.Errorf("%s: got %d faces, want 2", src.Name(), len(faces)))
			continue
		}
		return Faces{Title: faces[0], Desc: faces[1], Source: src.Name(), Misses: misses}
	}
	// unreachable: DefaultFont never fails
	return Faces{Title: basicfont.Face7x13, Desc: basicfont.Face7x13, Source: DefaultFont{}.Name(), Misses: misses}
}

func withDefault(sources []FontSource) []FontSource {
	if n := len(sources); n > 0 {
		if _, ok := sources[n-1].(DefaultFont); ok {
			return sources
		}
	}
	out := make([]FontSource, 0, len(sources)+1)
	out = append(out, sources...)
	return append(out, DefaultFont{})
}

// parseFontData parses a single font or the first font of a collection.
func parseFontData(data []byte) (*opentype.Font, error) {
	if bytes.HasPrefix(data, []byte("ttcf")) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}
		if coll.NumFonts() == 0 {
			return nil, errors.New("empty font collection")
		}
		return coll.Font(0)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return parsed, nil
}

// scalableFaces creates one face per size at 72 DPI, so sizes are pixels.
func scalableFaces(parsed *opentype.Font, sizes []float64) ([]font.Face, error) {
	faces := make([]font.Face, 0, len(sizes))
	for _, size := range sizes {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			for _, f := range faces {
				f.Close()
			}
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		faces = append(faces, face)
	}
	return faces, nil
}
