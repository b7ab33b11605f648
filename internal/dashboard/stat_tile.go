package dashboard

import (
	"fmt"
	"strconv"
)

// Icon tokens understood by the templates
const (
	IconSensors  = "sensors"
	IconTimeline = "timeline"
	IconShield   = "shield"
	IconFlame    = "flame"
)

// Accent tokens for the tile icon background
const (
	AccentSuccess = "success"
	AccentWarning = "warning"
	AccentPrimary = "primary"
)

// StatTile is the view model of one aggregate metric
type StatTile struct {
	Label  string
	Value  string
	Icon   string
	Accent string
}

// NewCountTile renders a count verbatim
func NewCountTile(label string, n int, icon, accent string) StatTile {
	return StatTile{Label: label, Value: strconv.Itoa(n), Icon: icon, Accent: accent}
}

// NewLabelTile renders an already formatted text value
func NewLabelTile(label, text, icon, accent string) StatTile {
	return StatTile{Label: label, Value: text, Icon: icon, Accent: accent}
}

// FormatPercent formats pct as e.g. "99.2%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
