package dashboard

import (
	"time"

	"github.com/MUA122/IOT-Project/internal/models"
)

// UpdatedAtLayout is the clock format shown as "Last updated"
const UpdatedAtLayout = "3:04:05 PM"

// MockDataset returns the static dataset displayed by the dashboard.
// now is the page load time used for the readings' UpdatedAt.
func MockDataset(now time.Time) models.Dataset {
	updatedAt := now.Format(UpdatedAtLayout)

	return models.Dataset{
		GasReading: models.Reading{
			ID:        "mq2",
			Label:     "MQ-2 Gas Sensor",
			Value:     65,
			Unit:      "ppm",
			Status:    models.StatusWarning,
			UpdatedAt: updatedAt,
		},
		FlameReading: models.Reading{
			ID:        "flame",
			Label:     "Flame Sensor",
			Value:     1,
			Unit:      "bool",
			Status:    models.StatusDanger,
			UpdatedAt: updatedAt,
		},
		Stats: models.DashboardStats{
			SystemStatus:      models.StatusDanger,
			AlertsToday:       3,
			IncidentsThisWeek: 5,
			UptimePercentage:  99.2,
		},
		GasHistory: []models.GasPoint{
			{Time: "1:20", Value: 35},
			{Time: "1:21", Value: 42},
			{Time: "1:22", Value: 50},
			{Time: "1:23", Value: 60},
			{Time: "1:24", Value: 65},
			{Time: "1:25", Value: 58},
		},
		FlameHistory: []models.FlamePoint{
			{Time: "1:20", Flame: 0},
			{Time: "1:21", Flame: 0},
			{Time: "1:22", Flame: 1},
			{Time: "1:23", Flame: 1},
			{Time: "1:24", Flame: 0},
			{Time: "1:25", Flame: 0},
		},
		Members: []models.TeamMember{
			{ID: 1, Name: "Mahmoud Usama", Role: "Frontend Developer", Image: "/static/img/myPic2.png"},
			{ID: 2, Name: "Omar Abdelaal", Role: "Backend Developer"},
			{ID: 3, Name: "Mariam Khalil", Role: "IOT Hardware Specialist"},
			{ID: 4, Name: "Menna Mostafa", Role: "IOT Software Specialist"},
			{ID: 5, Name: "Samira Gamal", Role: "IOT Software Specialist"},
		},
	}
}
