package models

// Dataset is the complete set of values the dashboard displays.
// It is built once per page load and never mutated afterwards.
type Dataset struct {
	GasReading   Reading        `json:"gas_reading"`
	FlameReading Reading        `json:"flame_reading"`
	Stats        DashboardStats `json:"stats"`
	GasHistory   []GasPoint     `json:"gas_history"`
	FlameHistory []FlamePoint   `json:"flame_history"`
	Members      []TeamMember   `json:"members"`
}

// Readings returns the current sensor readings in display order
func (d *Dataset) Readings() []Reading {
	return []Reading{d.GasReading, d.FlameReading}
}

// Reading looks up a current reading by sensor id
func (d *Dataset) Reading(id string) (Reading, bool) {
	for _, r := range d.Readings() {
		if r.ID == id {
			return r, true
		}
	}
	return Reading{}, false
}

// Copy returns a deep copy of the Dataset
func (d *Dataset) Copy() *Dataset {
	if d == nil {
		return nil
	}
	c := *d
	c.GasHistory = CopyGasSeries(d.GasHistory)
	c.FlameHistory = CopyFlameSeries(d.FlameHistory)
	if d.Members != nil {
		c.Members = make([]TeamMember, len(d.Members))
		copy(c.Members, d.Members)
	}
	return &c
}
