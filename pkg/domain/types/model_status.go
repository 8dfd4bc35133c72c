package types

// ModelStatus represents the availability of a catalog model
type ModelStatus string

const (
	ModelStatusActive   ModelStatus = "active"
	ModelStatusInactive ModelStatus = "inactive"
)

// IsValid checks if the model status is valid
func (s ModelStatus) IsValid() bool {
	switch s {
	case ModelStatusActive, ModelStatusInactive:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ModelStatusActive
func (s ModelStatus) Normalize() ModelStatus {
	if s == "" {
		return ModelStatusActive
	}
	return s
}

// String returns the string representation of the model status
func (s ModelStatus) String() string {
	return string(s)
}
