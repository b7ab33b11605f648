package models

import (
	"fmt"
)

// Reading represents the current value reported by one sensor.
// Value is unit dependent: ppm for the gas sensor, 0/1 for the flame sensor.
type Reading struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Status    Status  `json:"status"`
	UpdatedAt string  `json:"updated_at"`
}

// IsValid checks that the reading carries an id and a recognized status
func (r *Reading) IsValid() bool {
	if r.ID == "" {
		return false
	}
	return r.Status.IsValid()
}

// get the reading as a string
func (r *Reading) String() string {
	return fmt.Sprintf("ID: %s, Label: %s, Value: %.0f %s, Status: %s, UpdatedAt: %s",
		r.ID,
		r.Label,
		r.Value,
		r.Unit,
		r.Status,
		r.UpdatedAt)
}

// Copy returns a copy of the Reading
func (r *Reading) Copy() *Reading {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
