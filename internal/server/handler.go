package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Version is reported by /health
const Version = "v0.3.0"

// Routes served by NewHandler, used as metric labels
const (
	RouteIndex         = "/"
	RouteIndexHTML     = "/index.html"
	RouteDashboardData = "/api/dashboard-data"
	RouteCurrent       = "/api/sensors/current"
	RouteHistory       = "/api/history"
	RouteHealth        = "/health"
)

// Deps are the collaborators wired into the HTTP handler
type Deps struct {
	Page     *PageHandler
	API      *APIHandler
	Recorder Recorder
	Logger   zerolog.Logger

	// Extra mounts, e.g. /metrics or /static/
	Mounts map[string]http.Handler
}

// NewHandler builds the mux with every dashboard route behind the
// request logging middleware
func NewHandler(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", d.Page)
	mux.HandleFunc(RouteDashboardData, d.API.HandleDashboardData)
	mux.HandleFunc(RouteCurrent, d.API.HandleCurrent)
	mux.HandleFunc(RouteHistory, d.API.HandleHistory)
	mux.HandleFunc(RouteHealth, HandleHealth)

	routes := []string{RouteIndex, RouteIndexHTML, RouteDashboardData, RouteCurrent, RouteHistory, RouteHealth}
	for pattern, h := range d.Mounts {
		mux.Handle(pattern, h)
		routes = append(routes, pattern)
	}

	return WithRequestLogging(mux, d.Logger, d.Recorder, routes)
}

// HandleHealth reports liveness
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","version":"%s"}`, Version)
}
