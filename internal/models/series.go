package models

// GasPoint is one sample of the gas sensor history
type GasPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// FlamePoint is one sample of the flame sensor history. Flame is 0 or 1.
type FlamePoint struct {
	Time  string `json:"time"`
	Flame int    `json:"flame"`
}

// CopyGasSeries returns a copy of the series preserving order
func CopyGasSeries(points []GasPoint) []GasPoint {
	if points == nil {
		return nil
	}
	out := make([]GasPoint, len(points))
	copy(out, points)
	return out
}

// CopyFlameSeries returns a copy of the series preserving order
func CopyFlameSeries(points []FlamePoint) []FlamePoint {
	if points == nil {
		return nil
	}
	out := make([]FlamePoint, len(points))
	copy(out, points)
	return out
}
