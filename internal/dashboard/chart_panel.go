package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MUA122/IOT-Project/internal/models"
	"github.com/MUA122/IOT-Project/internal/theme"
)

// ChartKind is the visual form of a series
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartArea ChartKind = "area"
)

const (
	tickColor    = "#cccccc"
	gridColor    = "rgba(255,255,255,0.05)"
	tooltipColor = "rgba(255,255,255,0.1)"
)

// ChartSpec is the declarative description of one chart. Drawing, scaling
// and tooltips are left to the browser-side charting library.
type ChartSpec struct {
	ID          string
	Title       string
	Kind        ChartKind
	DataKey     string
	Labels      []string
	Values      []float64
	YMin        float64
	YMax        float64
	XLabel      string
	YLabel      string
	Stroke      string
	StrokeWidth int
	ShowGrid    bool
	// FillTop and FillBottom are the gradient stops of an area chart
	FillTop    string
	FillBottom string
	Tooltip    string
	Height     int
}

// ChartPanel holds the gas and flame charts
type ChartPanel struct {
	Gas   ChartSpec
	Flame ChartSpec
}

// NewChartPanel builds both chart specs from the history sequences.
// The sequences are copied; the panel renders them once.
func NewChartPanel(gas []models.GasPoint, flame []models.FlamePoint, th theme.Theme) ChartPanel {
	gas = models.CopyGasSeries(gas)
	flame = models.CopyFlameSeries(flame)

	gasSpec := ChartSpec{
		ID:          "gas-chart",
		Title:       "MQ-2 Gas Level (History)",
		Kind:        ChartLine,
		DataKey:     "value",
		Labels:      make([]string, len(gas)),
		Values:      make([]float64, len(gas)),
		YMin:        0,
		YMax:        100,
		XLabel:      "Time",
		YLabel:      "Value",
		Stroke:      th.Palette.Secondary,
		StrokeWidth: 3,
		ShowGrid:    true,
		Tooltip:     th.Palette.Paper,
		Height:      280,
	}
	for i, p := range gas {
		gasSpec.Labels[i] = p.Time
		gasSpec.Values[i] = p.Value
	}

	flameSpec := ChartSpec{
		ID:          "flame-chart",
		Title:       "Flame Sensor Detection (History)",
		Kind:        ChartArea,
		DataKey:     "flame",
		Labels:      make([]string, len(flame)),
		Values:      make([]float64, len(flame)),
		YMin:        0,
		YMax:        1,
		XLabel:      "Time",
		YLabel:      "Value",
		Stroke:      th.Palette.Error,
		StrokeWidth: 2,
		ShowGrid:    false,
		FillTop:     withAlpha(th.Palette.Error, 0.9),
		FillBottom:  withAlpha(th.Palette.Error, 0.05),
		Tooltip:     th.Palette.Paper,
		Height:      260,
	}
	for i, p := range flame {
		flameSpec.Labels[i] = p.Time
		flameSpec.Values[i] = float64(p.Flame)
	}

	return ChartPanel{Gas: gasSpec, Flame: flameSpec}
}

// Specs returns the charts in display order
func (p ChartPanel) Specs() []ChartSpec {
	return []ChartSpec{p.Gas, p.Flame}
}

// ChartConfig mirrors the configuration object of the charting library
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    chartData    `json:"data"`
	Options chartOptions `json:"options"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	BorderColor string    `json:"borderColor"`
	BorderWidth int       `json:"borderWidth"`
	PointRadius int       `json:"pointRadius"`
	Tension     float64   `json:"tension"`
	Fill        bool      `json:"fill"`
	FillTop     string    `json:"fillTop,omitempty"`
	FillBottom  string    `json:"fillBottom,omitempty"`
}

type chartOptions struct {
	Responsive          bool                  `json:"responsive"`
	MaintainAspectRatio bool                  `json:"maintainAspectRatio"`
	Scales              map[string]chartScale `json:"scales"`
	Plugins             chartPlugins          `json:"plugins"`
}

type chartScale struct {
	Min   *float64   `json:"min,omitempty"`
	Max   *float64   `json:"max,omitempty"`
	Title chartTitle `json:"title"`
	Grid  chartGrid  `json:"grid"`
	Ticks chartTicks `json:"ticks"`
}

type chartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type chartGrid struct {
	Display bool   `json:"display"`
	Color   string `json:"color,omitempty"`
}

type chartTicks struct {
	Color string    `json:"color"`
	Font  chartFont `json:"font"`
}

type chartFont struct {
	Size int `json:"size"`
}

type chartPlugins struct {
	Legend  chartLegend  `json:"legend"`
	Tooltip chartTooltip `json:"tooltip"`
}

type chartLegend struct {
	Display bool `json:"display"`
}

type chartTooltip struct {
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
	TitleColor      string `json:"titleColor"`
	BodyColor       string `json:"bodyColor"`
}

// Config converts the spec to the charting library's configuration
func (s ChartSpec) Config() ChartConfig {
	yMin, yMax := s.YMin, s.YMax
	ticks := chartTicks{Color: tickColor, Font: chartFont{Size: 11}}

	return ChartConfig{
		// an area chart is a filled line chart in the charting library
		Type: string(ChartLine),
		Data: chartData{
			Labels: s.Labels,
			Datasets: []chartDataset{{
				Label:       s.Title,
				Data:        s.Values,
				BorderColor: s.Stroke,
				BorderWidth: s.StrokeWidth,
				PointRadius: 0,
				Tension:     0.4,
				Fill:        s.Kind == ChartArea,
				FillTop:     s.FillTop,
				FillBottom:  s.FillBottom,
			}},
		},
		Options: chartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: map[string]chartScale{
				"x": {
					Title: chartTitle{Display: true, Text: s.XLabel},
					Grid:  chartGrid{Display: false},
					Ticks: ticks,
				},
				"y": {
					Min:   &yMin,
					Max:   &yMax,
					Title: chartTitle{Display: true, Text: s.YLabel},
					Grid:  chartGrid{Display: s.ShowGrid, Color: gridColor},
					Ticks: ticks,
				},
			},
			Plugins: chartPlugins{
				Legend: chartLegend{Display: false},
				Tooltip: chartTooltip{
					BackgroundColor: s.Tooltip,
					BorderColor:     tooltipColor,
					BorderWidth:     1,
					TitleColor:      "#ffffff",
					BodyColor:       "#ffffff",
				},
			},
		},
	}
}

// ConfigJSON returns the marshalled configuration
func (s ChartSpec) ConfigJSON() ([]byte, error) {
	b, err := json.Marshal(s.Config())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart %s: %w", s.ID, err)
	}
	return b, nil
}

// withAlpha converts a #rgb or #rrggbb color to an rgba() string
func withAlpha(hex string, alpha float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return hex
	}
	rgb, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		(rgb>>16)&0xff,
		(rgb>>8)&0xff,
		rgb&0xff,
		strconv.FormatFloat(alpha, 'f', -1, 64))
}
