package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MUA122/IOT-Project/internal/models"
)

// Metrics holds the Prometheus collectors of the dashboard server
type Metrics struct {
	registry *prometheus.Registry

	pageRenders  prometheus.Counter
	renderErrors prometheus.Counter
	renderTime   prometheus.Histogram
	requests     *prometheus.CounterVec
	sensorValue  *prometheus.GaugeVec
	sensorStatus *prometheus.GaugeVec
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_page_renders_total",
			Help: "Total dashboard pages rendered successfully.",
		}),
		renderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_render_errors_total",
			Help: "Dashboard renders that failed in template execution.",
		}),
		renderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_render_duration_seconds",
			Help:    "Time spent composing and executing the dashboard page.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		sensorValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_sensor_value",
			Help: "Current value displayed for each sensor.",
		}, []string{"sensor"}),
		sensorStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_sensor_status",
			Help: "1 for the status currently displayed for each sensor, 0 otherwise.",
		}, []string{"sensor", "status"}),
	}

	m.registry.MustRegister(
		m.pageRenders,
		m.renderErrors,
		m.renderTime,
		m.requests,
		m.sensorValue,
		m.sensorStatus,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRender records one page render
func (m *Metrics) ObserveRender(seconds float64, err error) {
	if err != nil {
		m.renderErrors.Inc()
		return
	}
	m.pageRenders.Inc()
	m.renderTime.Observe(seconds)
}

// CountRequest records one HTTP response
func (m *Metrics) CountRequest(path string, code int) {
	m.requests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// SetReadings publishes the displayed value and status of each reading
func (m *Metrics) SetReadings(readings []models.Reading) {
	statuses := []models.Status{models.StatusSafe, models.StatusWarning, models.StatusDanger}
	for _, r := range readings {
		m.sensorValue.WithLabelValues(r.ID).Set(r.Value)
		for _, s := range statuses {
			v := 0.0
			if r.Status == s {
				v = 1
			}
			m.sensorStatus.WithLabelValues(r.ID, string(s)).Set(v)
		}
	}
}
