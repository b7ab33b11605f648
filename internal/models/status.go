package models

// Status is the three-valued safety classification shared by sensor
// readings and the overall system state.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// ChipColor is the semantic color token used for a status chip
type ChipColor string

const (
	ChipSuccess ChipColor = "success"
	ChipWarning ChipColor = "warning"
	ChipError   ChipColor = "error"
	ChipDefault ChipColor = "default"
)

// IsValid reports whether s is one of the three recognized statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusSafe, StatusWarning, StatusDanger:
		return true
	default:
		return false
	}
}

// Resolve maps a status to its chip color and human label.
// Unrecognized values resolve to the neutral color and "Unknown".
func (s Status) Resolve() (ChipColor, string) {
	switch s {
	case StatusSafe:
		return ChipSuccess, "Safe"
	case StatusWarning:
		return ChipWarning, "Warning"
	case StatusDanger:
		return ChipError, "Danger"
	default:
		return ChipDefault, "Unknown"
	}
}

// Color returns only the chip color of the status
func (s Status) Color() ChipColor {
	color, _ := s.Resolve()
	return color
}

// Label returns only the human label of the status
func (s Status) Label() string {
	_, label := s.Resolve()
	return label
}
