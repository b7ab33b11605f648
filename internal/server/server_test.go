package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/MUA122/IOT-Project/internal/dashboard"
	"github.com/MUA122/IOT-Project/internal/models"
	"github.com/MUA122/IOT-Project/internal/theme"
)

type fakeRenderer struct {
	err   error
	pages []dashboard.Page
}

func (f *fakeRenderer) Render(w io.Writer, page dashboard.Page) error {
	f.pages = append(f.pages, page)
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "<html>"+page.Title+"</html>")
	return err
}

type fakeRecorder struct {
	renders  int
	errs     int
	requests map[string]int
	readings []models.Reading
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{requests: make(map[string]int)}
}

func (f *fakeRecorder) ObserveRender(_ float64, err error) {
	if err != nil {
		f.errs++
		return
	}
	f.renders++
}

func (f *fakeRecorder) CountRequest(path string, code int) {
	f.requests[path+" "+http.StatusText(code)]++
}

func (f *fakeRecorder) SetReadings(r []models.Reading) {
	f.readings = r
}

var fixedNow = time.Date(2024, 1, 1, 13, 25, 7, 0, time.UTC)

func newTestHandler(r PageRenderer, rec Recorder) http.Handler {
	logger := zerolog.Nop()
	source := SourceFunc(dashboard.MockDataset)

	page := NewPageHandler(source, r, theme.Default(), dashboard.Options{}, rec, logger)
	page.now = func() time.Time { return fixedNow }
	api := NewAPIHandler(source, logger)
	api.now = func() time.Time { return fixedNow }

	return NewHandler(Deps{Page: page, API: api, Recorder: rec, Logger: logger})
}

func TestPageHandler_Paths(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"root", http.MethodGet, "/", http.StatusOK},
		{"index", http.MethodGet, "/index.html", http.StatusOK},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound},
		{"post", http.MethodPost, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeRenderer{}, nil)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestPageHandler_RendersMockPage(t *testing.T) {
	r := &fakeRenderer{}
	metrics := newFakeRecorder()
	h := newTestHandler(r, metrics)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if len(r.pages) != 1 {
		t.Fatalf("rendered %d pages, want 1", len(r.pages))
	}
	if got := r.pages[0].Summary.Cards[0].UpdatedAt; got != "1:25:07 PM" {
		t.Errorf("UpdatedAt = %q, want request time", got)
	}
	if metrics.renders != 1 {
		t.Errorf("renders = %d, want 1", metrics.renders)
	}
	if len(metrics.readings) != 2 {
		t.Errorf("readings recorded = %d, want 2", len(metrics.readings))
	}
}

func TestPageHandler_RenderError(t *testing.T) {
	metrics := newFakeRecorder()
	h := newTestHandler(&fakeRenderer{err: errors.New("boom")}, metrics)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<html>") {
		t.Error("partial page written on render error")
	}
	if metrics.errs != 1 {
		t.Errorf("render errors = %d, want 1", metrics.errs)
	}
}

func TestAPI_DashboardData(t *testing.T) {
	h := newTestHandler(&fakeRenderer{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteDashboardData, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var data DashboardData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Readings) != 2 {
		t.Fatalf("readings = %d, want 2", len(data.Readings))
	}
	if data.Readings[0].StatusLabel != "Warning" || data.Readings[1].StatusColor != models.ChipError {
		t.Errorf("resolved readings = %+v", data.Readings)
	}
	if data.SystemLabel != "Danger" {
		t.Errorf("SystemLabel = %q", data.SystemLabel)
	}
	if len(data.GasHistory) != 6 || len(data.Members) != 5 {
		t.Errorf("history %d, members %d", len(data.GasHistory), len(data.Members))
	}
	if !data.LastUpdate.Equal(fixedNow) {
		t.Errorf("LastUpdate = %v", data.LastUpdate)
	}
}

func TestAPI_Current(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   int
		wantID string
	}{
		{"default sensor", "", http.StatusOK, "mq2"},
		{"gas", "?sensor_id=mq2", http.StatusOK, "mq2"},
		{"flame", "?sensor_id=flame", http.StatusOK, "flame"},
		{"unknown", "?sensor_id=co2", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeRenderer{}, nil)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteCurrent+tt.query, nil))

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want != http.StatusOK {
				return
			}

			var view ReadingView
			if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if view.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", view.ID, tt.wantID)
			}
		})
	}
}

func TestAPI_History(t *testing.T) {
	h := newTestHandler(&fakeRenderer{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHistory+"?sensor_id=flame", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		SensorID string              `json:"sensor_id"`
		Points   []models.FlamePoint `json:"points"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.SensorID != "flame" || len(resp.Points) != 6 {
		t.Errorf("history = %+v", resp)
	}
	if resp.Points[2].Flame != 1 {
		t.Errorf("points[2].Flame = %d, want 1", resp.Points[2].Flame)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHistory+"?sensor_id=co2", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown sensor status = %d, want 404", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&fakeRenderer{}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHealth, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestMiddleware_RequestID(t *testing.T) {
	metrics := newFakeRecorder()
	h := newTestHandler(&fakeRenderer{}, metrics)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHealth, nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("missing generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, RouteHealth, nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))

	if metrics.requests["/health OK"] != 2 {
		t.Errorf("health count = %d, want 2", metrics.requests["/health OK"])
	}
	if metrics.requests["other Not Found"] != 1 {
		t.Errorf("unknown path count = %d, want 1", metrics.requests["other Not Found"])
	}
}

func TestStaticStore(t *testing.T) {
	store := NewStaticStore(dashboard.MockDataset(fixedNow))

	a := store.Snapshot(time.Now())
	a.GasHistory[0].Value = 999
	a.Members[0].Name = "changed"

	b := store.Snapshot(time.Now())
	if b.GasHistory[0].Value != 35 || b.Members[0].Name != "Mahmoud Usama" {
		t.Error("snapshot mutation leaked into the store")
	}
	if store.Snapshots() != 2 {
		t.Errorf("Snapshots() = %d, want 2", store.Snapshots())
	}

	replaced := dashboard.MockDataset(fixedNow)
	replaced.GasReading.Value = 10
	store.Replace(replaced)
	if got := store.Snapshot(time.Now()).GasReading.Value; got != 10 {
		t.Errorf("after Replace value = %v, want 10", got)
	}
}

func TestMiddleware_SubtreeLabels(t *testing.T) {
	metrics := newFakeRecorder()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := WithRequestLogging(ok, zerolog.Nop(), metrics, []string{RouteIndex, RouteHealth, "/assets/", "/static/", "/static/img/"})

	for _, path := range []string{
		"/assets/dashboard.css",
		"/assets/dashboard.js",
		"/static/logo.png",
		"/static/img/myPic2.png",
		"/health",
		"/nowhere",
	} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := map[string]int{
		"/assets/ OK":     2,
		"/static/ OK":     1,
		"/static/img/ OK": 1,
		"/health OK":      1,
		"other OK":        1,
	}
	for label, n := range want {
		if metrics.requests[label] != n {
			t.Errorf("requests[%q] = %d, want %d", label, metrics.requests[label], n)
		}
	}
}

func TestNewSource(t *testing.T) {
	capture := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	later := capture.Add(3 * time.Hour)

	live := NewSource(dashboard.MockDataset, false, capture)
	if got := live.Snapshot(later).GasReading.UpdatedAt; got != "12:00:00 PM" {
		t.Errorf("live UpdatedAt = %q, want request time", got)
	}

	frozen := NewSource(dashboard.MockDataset, true, capture)
	store, ok := frozen.(*StaticStore)
	if !ok {
		t.Fatalf("frozen source is %T, want *StaticStore", frozen)
	}
	if got := store.Snapshot(later).GasReading.UpdatedAt; got != "9:00:00 AM" {
		t.Errorf("frozen UpdatedAt = %q, want capture time", got)
	}
}

func TestPageHandler_FrozenSource(t *testing.T) {
	r := &fakeRenderer{}
	store := NewStaticStore(dashboard.MockDataset(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))

	page := NewPageHandler(store, r, theme.Default(), dashboard.Options{}, nil, zerolog.Nop())
	page.now = func() time.Time { return fixedNow }

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		page.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := r.pages[1].Summary.Cards[0].UpdatedAt; got != "9:00:00 AM" {
		t.Errorf("UpdatedAt = %q, want capture time", got)
	}
	if store.Snapshots() != 2 {
		t.Errorf("Snapshots() = %d, want 2", store.Snapshots())
	}
}
