// Package theme provides the design tokens shared by every dashboard
// component: palette, corner radius and typeface.
package theme

import (
	"fmt"
	"regexp"

	"github.com/MUA122/IOT-Project/internal/models"
)

// Palette holds the color tokens of the dark theme
type Palette struct {
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Error      string `yaml:"error" json:"error"`
	Success    string `yaml:"success" json:"success"`
	Warning    string `yaml:"warning" json:"warning"`
	Background string `yaml:"background" json:"background"`
	Paper      string `yaml:"paper" json:"paper"`
	Neutral    string `yaml:"neutral" json:"neutral"`
}

// Theme is the design-token set consumed by all components
type Theme struct {
	Palette      Palette `yaml:"palette" json:"palette"`
	BorderRadius int     `yaml:"border_radius" json:"border_radius"`
	FontFamily   string  `yaml:"font_family" json:"font_family"`
}

// Default returns the dark fire-monitoring theme
func Default() Theme {
	return Theme{
		Palette: Palette{
			Primary:    "#1976d2",
			Secondary:  "#ff7043",
			Error:      "#ff5252",
			Success:    "#4caf50",
			Warning:    "#ffb300",
			Background: "#0b1020",
			Paper:      "#14182b",
			Neutral:    "#9e9e9e",
		},
		BorderRadius: 14,
		FontFamily:   `"Inter", system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
	}
}

// ApplyDefaults fills any unset token from Default
func (t *Theme) ApplyDefaults() {
	d := Default()
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&t.Palette.Primary, d.Palette.Primary)
	fill(&t.Palette.Secondary, d.Palette.Secondary)
	fill(&t.Palette.Error, d.Palette.Error)
	fill(&t.Palette.Success, d.Palette.Success)
	fill(&t.Palette.Warning, d.Palette.Warning)
	fill(&t.Palette.Background, d.Palette.Background)
	fill(&t.Palette.Paper, d.Palette.Paper)
	fill(&t.Palette.Neutral, d.Palette.Neutral)
	fill(&t.FontFamily, d.FontFamily)
	if t.BorderRadius == 0 {
		t.BorderRadius = d.BorderRadius
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks every palette entry is a hex color
func (t *Theme) Validate() error {
	colors := map[string]string{
		"primary":    t.Palette.Primary,
		"secondary":  t.Palette.Secondary,
		"error":      t.Palette.Error,
		"success":    t.Palette.Success,
		"warning":    t.Palette.Warning,
		"background": t.Palette.Background,
		"paper":      t.Palette.Paper,
		"neutral":    t.Palette.Neutral,
	}
	for name, c := range colors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("theme color %s %q is not a hex color", name, c)
		}
	}
	if t.BorderRadius < 0 {
		return fmt.Errorf("border radius must not be negative")
	}
	return nil
}

// ChipColor returns the palette color for a chip color token.
// The neutral default token maps to the neutral color.
func (t *Theme) ChipColor(c models.ChipColor) string {
	switch c {
	case models.ChipSuccess:
		return t.Palette.Success
	case models.ChipWarning:
		return t.Palette.Warning
	case models.ChipError:
		return t.Palette.Error
	default:
		return t.Palette.Neutral
	}
}
