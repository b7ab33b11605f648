package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MUA122/IOT-Project/internal/models"
)

// APIHandler handles HTTP API requests for the dashboard
type APIHandler struct {
	source DatasetSource
	logger zerolog.Logger
	now    func() time.Time
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(source DatasetSource, logger zerolog.Logger) *APIHandler {
	return &APIHandler{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// ReadingView is a reading with its status resolved for display
type ReadingView struct {
	models.Reading
	StatusLabel string           `json:"status_label"`
	StatusColor models.ChipColor `json:"status_color"`
}

func newReadingView(r models.Reading) ReadingView {
	color, label := r.Status.Resolve()
	return ReadingView{Reading: r, StatusLabel: label, StatusColor: color}
}

// DashboardData contains all data for the dashboard
type DashboardData struct {
	Readings     []ReadingView         `json:"readings"`
	Stats        models.DashboardStats `json:"stats"`
	SystemLabel  string                `json:"system_label"`
	SystemColor  models.ChipColor      `json:"system_color"`
	GasHistory   []models.GasPoint     `json:"gas_history"`
	FlameHistory []models.FlamePoint   `json:"flame_history"`
	Members      []models.TeamMember   `json:"members"`
	SensorIDs    []string              `json:"sensor_ids"`
	LastUpdate   time.Time             `json:"last_update"`
}

// HandleDashboardData returns combined data for the dashboard
func (api *APIHandler) HandleDashboardData(w http.ResponseWriter, r *http.Request) {
	now := api.now()
	data := api.source.Snapshot(now)

	readings := data.Readings()
	views := make([]ReadingView, 0, len(readings))
	ids := make([]string, 0, len(readings))
	for _, rd := range readings {
		views = append(views, newReadingView(rd))
		ids = append(ids, rd.ID)
	}

	color, label := data.Stats.SystemStatus.Resolve()
	api.writeJSON(w, http.StatusOK, DashboardData{
		Readings:     views,
		Stats:        data.Stats,
		SystemLabel:  label,
		SystemColor:  color,
		GasHistory:   data.GasHistory,
		FlameHistory: data.FlameHistory,
		Members:      data.Members,
		SensorIDs:    ids,
		LastUpdate:   now,
	})
}

// HandleCurrent returns the current reading for a sensor, the first one
// when no sensor_id is given
func (api *APIHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	data := api.source.Snapshot(api.now())

	sensorID := r.URL.Query().Get("sensor_id")
	if sensorID == "" {
		sensorID = data.GasReading.ID
	}

	reading, ok := data.Reading(sensorID)
	if !ok {
		http.Error(w, "Unknown sensor", http.StatusNotFound)
		return
	}

	api.writeJSON(w, http.StatusOK, newReadingView(reading))
}

// HistoryResponse is the chart series of one sensor
type HistoryResponse struct {
	SensorID string `json:"sensor_id"`
	Points   any    `json:"points"`
}

// HandleHistory returns the chart series for a sensor
func (api *APIHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	data := api.source.Snapshot(api.now())

	sensorID := r.URL.Query().Get("sensor_id")
	if sensorID == "" {
		sensorID = data.GasReading.ID
	}

	var points any
	switch sensorID {
	case data.GasReading.ID:
		points = data.GasHistory
	case data.FlameReading.ID:
		points = data.FlameHistory
	default:
		http.Error(w, "Unknown sensor", http.StatusNotFound)
		return
	}

	api.writeJSON(w, http.StatusOK, HistoryResponse{SensorID: sensorID, Points: points})
}

func (api *APIHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		api.logger.Error().Err(err).Msg("Failed to encode response")
	}
}
