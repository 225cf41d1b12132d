package mockup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clockpilot/docshots/pkg/generator"
)

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()
	if len(specs) != 14 {
		t.Fatalf("got %d specs, want 14", len(specs))
	}

	counts := map[string]int{}
	for _, s := range specs {
		counts[s.Category]++
		prefix := "docs/screenshots/" + s.Category + "/"
		if !strings.HasPrefix(s.Path, prefix) {
			t.Errorf("%s is not under %s", s.Path, prefix)
		}
		if s.Title == "" || s.Description == "" {
			t.Errorf("%s has empty text", s.Path)
		}
	}
	if counts[CategoryLogin] != 3 || counts[CategoryEmployee] != 6 || counts[CategoryAdmin] != 5 {
		t.Errorf("category counts = %v, want login 3, employee 6, admin 5", counts)
	}

	if specs[0].Path != "docs/screenshots/login/login-page.png" {
		t.Errorf("first spec = %s", specs[0].Path)
	}
	if specs[13].Path != "docs/screenshots/admin/export-dialog.png" {
		t.Errorf("last spec = %s", specs[13].Path)
	}

	specs[0].Title = "changed"
	if DefaultSpecs()[0].Title == "changed" {
		t.Error("DefaultSpecs returned shared storage")
	}

	if w := ValidateSpecs(DefaultSpecs()); len(w) != 0 {
		t.Errorf("default specs produce warnings: %v", w)
	}
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(ExampleManifest()))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	if len(m.Specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(m.Specs))
	}
	if m.Specs[1].Category != CategoryEmployee {
		t.Errorf("category = %q", m.Specs[1].Category)
	}
	if w := ValidateSpecs(m.Specs); len(w) != 0 {
		t.Errorf("example manifest produces warnings: %v", w)
	}

	if _, err := ParseManifest([]byte(`{"specs": []}`)); err == nil {
		t.Error("expected error for empty specs")
	}
	if _, err := ParseManifest([]byte(`{"specs": [`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(ExampleManifest()), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.BaseFontSize != 24 {
		t.Errorf("BaseFontSize = %v, want 24", m.BaseFontSize)
	}

	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestManifestApply(t *testing.T) {
	m := &Manifest{
		BaseFontSize: 30,
		Fonts:        []string{"go", "default"},
		Theme:        ThemeOverride{Header: "#000000", Accent: "#0f0"},
	}

	base := DefaultConfig()
	cfg, err := m.Apply(base)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.TitleSize() != 38 || cfg.DescSize() != 26 {
		t.Errorf("sizes = %v/%v, want 38/26", cfg.TitleSize(), cfg.DescSize())
	}
	if cfg.Theme.Header != generator.MustColor("#000000") {
		t.Errorf("header = %v", cfg.Theme.Header)
	}
	if cfg.Theme.Accent != generator.MustColor("#00ff00") {
		t.Errorf("accent = %v", cfg.Theme.Accent)
	}
	if cfg.Theme.Background != base.Theme.Background {
		t.Error("background changed without an override")
	}
	if len(cfg.Fonts) != 2 || cfg.Fonts[0].Name() != "go-regular" || cfg.Fonts[1].Name() != "default" {
		t.Errorf("fonts = %v", cfg.Fonts)
	}
	if len(base.Fonts) != 3 {
		t.Error("Apply mutated the base font chain")
	}
}

func TestManifestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		m    Manifest
	}{
		{"bad colour", Manifest{Theme: ThemeOverride{Text: "#12"}}},
		{"tiny font", Manifest{BaseFontSize: 4}},
	}
	for _, tt := range tests {
		if _, err := tt.m.Apply(DefaultConfig()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestFontSourceFor(t *testing.T) {
	tests := []struct {
		in   string
		want FontSource
	}{
		{"go", EmbeddedFont{}},
		{"Default", DefaultFont{}},
		{"/System/Library/Fonts/Helvetica.ttc", FileFont{Path: "/System/Library/Fonts/Helvetica.ttc"}},
		{"fonts/brand.ttf", FileFont{Path: "fonts/brand.ttf"}},
		{"arial.ttf", NamedFont{File: "arial.ttf"}},
	}
	for _, tt := range tests {
		got := FontSourceFor(tt.in)
		if got.Name() != tt.want.Name() {
			t.Errorf("FontSourceFor(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
		switch tt.want.(type) {
		case FileFont:
			if _, ok := got.(FileFont); !ok {
				t.Errorf("FontSourceFor(%q) = %T, want FileFont", tt.in, got)
			}
		case NamedFont:
			if _, ok := got.(NamedFont); !ok {
				t.Errorf("FontSourceFor(%q) = %T, want NamedFont", tt.in, got)
			}
		}
	}
}

func TestValidateSpecs(t *testing.T) {
	specs := []Spec{
		{Path: "a/one.png", Title: "One"},
		{Path: "", Title: "No path"},
		{Path: "a/two.jpg", Title: "Two"},
		{Path: "a/three.png", Title: ""},
		{Path: "a/./one.png", Title: "Dup"},
	}

	warnings := ValidateSpecs(specs)
	if len(warnings) != 4 {
		t.Fatalf("got %d warnings, want 4: %v", len(warnings), warnings)
	}
	for i, want := range []string{"no output path", "not a .png", "empty title", "overwrites spec 1"} {
		if !strings.Contains(warnings[i], want) {
			t.Errorf("warning %d = %q, want it to mention %q", i, warnings[i], want)
		}
	}
}

func TestFormatCatalog(t *testing.T) {
	out := FormatCatalog(DefaultSpecs())
	for _, want := range []string{"[login]\n", "[employee]\n", "[admin]\n", "docs/screenshots/admin/validation.png", "Validation des Heures"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
	if n := strings.Count(out, "\n"); n != 14+3 {
		t.Errorf("catalog has %d lines, want 17", n)
	}
}
