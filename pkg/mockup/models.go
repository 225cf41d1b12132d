// Package mockup renders placeholder "screenshots" for the documentation:
// a fixed mock UI with a centred title and description.
package mockup

import (
	"image"
	"image/color"

	"github.com/clockpilot/docshots/pkg/generator"
)

// Spec describes one placeholder image.
type Spec struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"` // "login", "employee", "admin"
}

// Theme holds the mock UI palette.
type Theme struct {
	Background color.RGBA
	Header     color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
	Border     color.RGBA
	Muted      color.RGBA
	Footer     color.RGBA
	OnAccent   color.RGBA // text drawn on header and button
}

// DefaultTheme returns the ClockPilot colours.
func DefaultTheme() Theme {
	return Theme{
		Background: generator.MustColor("#f8fafc"),
		Header:     generator.MustColor("#3b82f6"),
		Text:       generator.MustColor("#1f2937"),
		Accent:     generator.MustColor("#ef4444"),
		Border:     generator.MustColor("#e5e7eb"),
		Muted:      generator.MustColor("#6b7280"),
		Footer:     generator.MustColor("#9ca3af"),
		OnAccent:   generator.MustColor("white"),
	}
}

// Layout holds the fixed geometry of the mock UI. Rectangles use inclusive
// corner coordinates. Text positions are the top-left of the text.
type Layout struct {
	HeaderHeight int
	TitleY       int
	DescY        int

	NavInset     int // horizontal inset of the navigation outline
	NavTop       int
	NavBottom    int
	ContentInset int // horizontal inset of the content outline
	ContentTop   int
	ContentPad   int // gap between the content outline and the canvas bottom
	OutlineWidth int

	Button      image.Rectangle
	ButtonLabel image.Point
	BodyLines   [2]image.Point
	FooterX     int
	FooterRise  int // distance of the footer text from the canvas bottom
}

// DefaultLayout returns the geometry used for every documentation image.
func DefaultLayout() Layout {
	return Layout{
		HeaderHeight: 100,
		TitleY:       30,
		DescY:        200,
		NavInset:     50,
		NavTop:       150,
		NavBottom:    180,
		ContentInset: 100,
		ContentTop:   250,
		ContentPad:   100,
		OutlineWidth: 2,
		Button:       image.Rect(120, 270, 250, 310),
		ButtonLabel:  image.Pt(135, 285),
		BodyLines:    [2]image.Point{{120, 350}, {120, 380}},
		FooterX:      50,
		FooterRise:   50,
	}
}

// Labels are the static strings painted on every image.
type Labels struct {
	Button string
	Body   [2]string
	Footer string
}

// DefaultLabels returns the French ClockPilot labels.
func DefaultLabels() Labels {
	return Labels{
		Button: "Action",
		Body:   [2]string{"Interface ClockPilot", "Gestion des temps et planning"},
		Footer: "© 2024 ClockPilot",
	}
}

// Config is everything the renderer needs. It is passed by value and
// never mutated by the renderer.
type Config struct {
	Width        int
	Height       int
	BaseFontSize float64
	Theme        Theme
	Layout       Layout
	Labels       Labels
	Fonts        []FontSource // tried in order; DefaultFont is always the last resort
}

// DefaultConfig returns the 1200×800 documentation setup.
func DefaultConfig() Config {
	return Config{
		Width:        1200,
		Height:       800,
		BaseFontSize: 24,
		Theme:        DefaultTheme(),
		Layout:       DefaultLayout(),
		Labels:       DefaultLabels(),
		Fonts:        DefaultFontChain(),
	}
}

// TitleSize is the point size of the title font.
func (c Config) TitleSize() float64 { return c.BaseFontSize + 8 }

// DescSize is the point size of the description and body font.
func (c Config) DescSize() float64 { return c.BaseFontSize - 4 }
