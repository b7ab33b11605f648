// Package dashboard composes the single-page fire and smoke dashboard from
// a static dataset. Every component here is a plain view model; the
// templates in internal/web turn them into HTML.
package dashboard

import (
	"github.com/MUA122/IOT-Project/internal/models"
	"github.com/MUA122/IOT-Project/internal/theme"
)

// Options are the page settings coming from configuration
type Options struct {
	Title        string
	Description  string
	ScrollOffset int
	ChartLibURL  string
}

// StatusBanner is the system status summary next to the page heading
type StatusBanner struct {
	Label     string
	ChipColor models.ChipColor
	ChipText  string
}

// Summary is the dashboard region: sensor cards, banner and stat tiles
type Summary struct {
	Banner StatusBanner
	Cards  []SensorCard
	Tiles  []StatTile
}

// Page is the root composition in fixed vertical order
type Page struct {
	Title       string
	Description string
	ChartLibURL string
	Theme       theme.Theme
	Nav         *NavBar
	Summary     Summary
	Charts      ChartPanel
	Roster      RosterGrid
}

// NewPage composes every region from the dataset. Nothing is conditional;
// the same regions always render.
func NewPage(data models.Dataset, th theme.Theme, opts Options) Page {
	if opts.Title == "" {
		opts.Title = "Realtime Monitoring"
	}

	return Page{
		Title:       opts.Title,
		Description: opts.Description,
		ChartLibURL: opts.ChartLibURL,
		Theme:       th,
		Nav:         NewNavBar(opts.ScrollOffset),
		Summary:     NewSummary(data.GasReading, data.FlameReading, data.Stats),
		Charts:      NewChartPanel(data.GasHistory, data.FlameHistory, th),
		Roster:      NewRosterGrid(data.Members),
	}
}

// NewSummary builds the dashboard region
func NewSummary(gas, flame models.Reading, stats models.DashboardStats) Summary {
	color, label := stats.SystemStatus.Resolve()

	return Summary{
		Banner: StatusBanner{
			Label:     label,
			ChipColor: color,
			ChipText:  FormatPercent(stats.UptimePercentage) + " Uptime",
		},
		Cards: []SensorCard{
			NewSensorCard(gas, SensorKindGas),
			NewSensorCard(flame, SensorKindFlame),
		},
		Tiles: []StatTile{
			NewCountTile("Alerts today", stats.AlertsToday, IconSensors, AccentSuccess),
			NewCountTile("Incidents this week", stats.IncidentsThisWeek, IconTimeline, AccentWarning),
			NewLabelTile("Overall system status", label, IconShield, AccentPrimary),
		},
	}
}

// Regions returns the scroll-target region ids in page order
func (p Page) Regions() []string {
	return []string{RegionDashboard, RegionCharts, RegionAbout}
}
