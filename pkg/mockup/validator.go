// validator.go — Sanity checks and listings for spec catalogues.
package mockup

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateSpecs reports suspicious entries. Returns warnings (never fatal
// errors); the batch still runs.
func ValidateSpecs(specs []Spec) []string {
	var warnings []string
	seen := make(map[string]int, len(specs))

	for i, s := range specs {
		n := i + 1
		if s.Path == "" {
			warnings = append(warnings, fmt.Sprintf("spec %d has no output path", n))
			continue
		}
		if s.Title == "" {
			warnings = append(warnings, fmt.Sprintf("spec %d (%s) has an empty title", n, s.Path))
		}
		if !strings.EqualFold(filepath.Ext(s.Path), ".png") {
			warnings = append(warnings, fmt.Sprintf("spec %d (%s) is not a .png path", n, s.Path))
		}

		key := filepath.Clean(s.Path)
		if first, dup := seen[key]; dup {
			warnings = append(warnings, fmt.Sprintf("spec %d (%s) overwrites spec %d", n, s.Path, first))
		} else {
			seen[key] = n
		}
	}

	return warnings
}

// FormatCatalog returns a human-readable listing of specs.
func FormatCatalog(specs []Spec) string {
	var b strings.Builder
	category := "\x00"
	for _, s := range specs {
		if s.Category != category {
			category = s.Category
			name := category
			if name == "" {
				name = "other"
			}
			fmt.Fprintf(&b, "[%s]\n", name)
		}
		fmt.Fprintf(&b, "  %-48s %s\n", s.Path, s.Title)
	}
	return b.String()
}
