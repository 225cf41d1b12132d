// merge.go — Merge manifest colour overrides onto the default theme.
package mockup

import (
	"fmt"
	"image/color"

	"github.com/clockpilot/docshots/pkg/generator"
)

// ThemeOverride holds optional "#rrggbb" replacements for Theme colours.
type ThemeOverride struct {
	Background string `json:"background,omitempty"`
	Header     string `json:"header,omitempty"`
	Text       string `json:"text,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Border     string `json:"border,omitempty"`
	Muted      string `json:"muted,omitempty"`
	Footer     string `json:"footer,omitempty"`
	OnAccent   string `json:"onAccent,omitempty"`
}

// MergeTheme applies non-empty overrides to base.
func MergeTheme(base Theme, over ThemeOverride) (Theme, error) {
	fields := []struct {
		name string
		val  string
		dst  *color.RGBA
	}{
		{"background", over.Background, &base.Background},
		{"header", over.Header, &base.Header},
		{"text", over.Text, &base.Text},
		{"accent", over.Accent, &base.Accent},
		{"border", over.Border, &base.Border},
		{"muted", over.Muted, &base.Muted},
		{"footer", over.Footer, &base.Footer},
		{"onAccent", over.OnAccent, &base.OnAccent},
	}

	for _, f := range fields {
		if f.val == "" {
			continue
		}
		c, err := generator.ParseColor(f.val)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return base, nil
}
