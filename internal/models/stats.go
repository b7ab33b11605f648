package models

// DashboardStats holds the aggregate figures shown in the summary region
type DashboardStats struct {
	SystemStatus      Status  `json:"system_status"`
	AlertsToday       int     `json:"alerts_today"`
	IncidentsThisWeek int     `json:"incidents_this_week"`
	UptimePercentage  float64 `json:"uptime_percentage"`
}

// IsValid checks counts are non-negative and uptime is a percentage
func (s *DashboardStats) IsValid() bool {
	if s.AlertsToday < 0 || s.IncidentsThisWeek < 0 {
		return false
	}
	if s.UptimePercentage < 0 || s.UptimePercentage > 100 {
		return false
	}
	return s.SystemStatus.IsValid()
}
