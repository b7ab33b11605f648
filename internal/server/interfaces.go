package server

import (
	"io"
	"time"

	"github.com/MUA122/IOT-Project/internal/dashboard"
	"github.com/MUA122/IOT-Project/internal/models"
)

// DatasetSource supplies the values shown on the dashboard.
// SourceFunc(dashboard.MockDataset) implements this interface
type DatasetSource interface {
	// Snapshot returns the dataset as of now. The result is owned by the caller.
	Snapshot(now time.Time) models.Dataset
}

// PageRenderer turns a composed page into HTML.
// web.Renderer implements this interface
type PageRenderer interface {
	Render(w io.Writer, page dashboard.Page) error
}

// Recorder receives request and render observations.
// metrics.Metrics implements this interface
type Recorder interface {
	ObserveRender(seconds float64, err error)
	CountRequest(path string, code int)
	SetReadings(readings []models.Reading)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRender(float64, error) {}
func (nopRecorder) CountRequest(string, int)     {}
func (nopRecorder) SetReadings([]models.Reading) {}
