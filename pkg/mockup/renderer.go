// renderer.go - Paints the mock UI onto a fresh canvas and writes it out.
// Layers: background -> header band -> centred title/description ->
// outlines -> button -> static body text -> footer.
package mockup

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/clockpilot/docshots/pkg/generator"
)

// Renderer draws placeholder images from a fixed Config.
type Renderer struct {
	cfg Config
	out io.Writer

	// Verbose adds the resolved font source, and the sources skipped before
	// it, after each confirmation line.
	Verbose bool
}

// NewRenderer creates a renderer. Progress lines go to out, or stdout if nil.
func NewRenderer(cfg Config, out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{cfg: cfg, out: out}
}

// FontReport tells which font source a render ended up using.
type FontReport struct {
	Source string
	Misses []error
}

// Render paints one image. It never fails: font problems degrade to the
// built-in face.
func (r *Renderer) Render(title, description string) (*image.RGBA, FontReport) {
	cfg := r.cfg
	th, ly := cfg.Theme, cfg.Layout
	w, h := cfg.Width, cfg.Height

	img := generator.NewSolidImage(w, h, th.Background)

	faces := ResolveFonts(cfg.Fonts, cfg.TitleSize(), cfg.DescSize())
	defer faces.Close()

	fillRect(img, inclusive(0, 0, w, ly.HeaderHeight), th.Header)

	title = norm.NFC.String(title)
	titleX := CenterOffset(w, textWidth(faces.Title, title))
	drawText(img, title, titleX, ly.TitleY, th.OnAccent, faces.Title)

	description = norm.NFC.String(description)
	descX := CenterOffset(w, textWidth(faces.Desc, description))
	drawText(img, description, descX, ly.DescY, th.Text, faces.Desc)

	strokeRect(img, inclusive(ly.NavInset, ly.NavTop, w-ly.NavInset, ly.NavBottom), ly.OutlineWidth, th.Border)
	strokeRect(img, inclusive(ly.ContentInset, ly.ContentTop, w-ly.ContentInset, h-ly.ContentPad), ly.OutlineWidth, th.Border)

	b := ly.Button
	fillRect(img, inclusive(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y), th.Accent)
	drawText(img, norm.NFC.String(cfg.Labels.Button), ly.ButtonLabel.X, ly.ButtonLabel.Y, th.OnAccent, faces.Desc)

	bodyColors := [2]color.RGBA{th.Text, th.Muted}
	for i, line := range cfg.Labels.Body {
		p := ly.BodyLines[i]
		drawText(img, norm.NFC.String(line), p.X, p.Y, bodyColors[i], faces.Desc)
	}

	drawText(img, norm.NFC.String(cfg.Labels.Footer), ly.FooterX, h-ly.FooterRise, th.Footer, faces.Desc)

	return img, FontReport{Source: faces.Source, Misses: faces.Misses}
}

// Generate renders one image, writes it to outputPath (creating parent
// directories, overwriting any existing file) and prints a confirmation.
func (r *Renderer) Generate(title, description, outputPath string) error {
	img, report := r.Render(title, description)

	if err := generator.Generate(outputPath, generator.Config{Image: img}); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	fmt.Fprintf(r.out, "✅ Image créée: %s\n", outputPath)
	if r.Verbose {
		fmt.Fprintf(r.out, "   font: %s\n", report.Source)
		for _, miss := range report.Misses {
			fmt.Fprintf(r.out, "   skipped: %v\n", miss)
		}
	}
	return nil
}

// CenterOffset returns the x offset that centres textWidth pixels on a
// canvas canvasWidth wide. Text wider than the canvas starts at 0.
func CenterOffset(canvasWidth, textWidth int) int {
	off := (canvasWidth - textWidth) / 2
	return min(max(off, 0), canvasWidth)
}

// textWidth is the advance width of s in whole pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s with its top-left corner at (x, y).
func drawText(img *image.RGBA, s string, x, y int, col color.Color, face font.Face) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	drawer.DrawString(s)
}

// inclusive converts corner coordinates where both corners are painted.
func inclusive(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1+1, y1+1)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

// strokeRect draws an unfilled rectangle whose border grows inward.
func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.RGBA) {
	if width <= 0 {
		return
	}
	width = min(width, r.Dx(), r.Dy())
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}
