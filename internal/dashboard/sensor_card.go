package dashboard

import (
	"fmt"
	"strings"

	"github.com/MUA122/IOT-Project/internal/models"
)

// SensorKind selects the layout used for a sensor card
type SensorKind string

const (
	SensorKindGas   SensorKind = "gas"
	SensorKindFlame SensorKind = "flame"
)

// SensorCard is the view model of one sensor's summary card
type SensorCard struct {
	Kind      SensorKind
	Overline  string
	Title     string
	ChipColor models.ChipColor
	ChipLabel string
	Value     string
	Unit      string
	UpdatedAt string
	Caption   string
	Icon      string

	// Level is the raw value clamped to [0,100]. Only the gas card renders
	// it as a bar; the flame card carries the same clamped raw value (0 or 1)
	// but shows Yes/No and the raw value instead.
	Level float64

	FlameDetected string
	RawValue      string
}

// NewSensorCard builds the card for a reading. Fields are not validated.
func NewSensorCard(r models.Reading, kind SensorKind) SensorCard {
	color, label := r.Status.Resolve()

	card := SensorCard{
		Kind:      kind,
		ChipColor: color,
		ChipLabel: label,
		Value:     formatWhole(r.Value),
		Unit:      r.Unit,
		UpdatedAt: r.UpdatedAt,
		Level:     ClampLevel(r.Value),
	}

	switch kind {
	case SensorKindGas:
		card.Overline = "Gas Sensor"
		card.Title = "MQ-2 Smoke & Gas"
		card.Unit = strings.ToUpper(r.Unit)
		card.Caption = "Safe Range (0-35 PPM)"
	case SensorKindFlame:
		card.Overline = "Flame Sensor"
		card.Title = "IR Flame Detection"
		card.Icon = IconFlame
		card.FlameDetected = "No"
		if r.Value > 0 {
			card.FlameDetected = "Yes"
		}
		card.RawValue = formatWhole(r.Value)
	default:
		card.Overline = "Sensor"
		card.Title = r.Label
	}

	return card
}

// ClampLevel bounds v to the [0,100] range of the level bar
func ClampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// formatWhole formats v with zero decimal places
func formatWhole(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	if s == "-0" {
		return "0"
	}
	return s
}
