package domain

import "strings"

// SourceMarker identifies the business line whose chat messages are parsed.
const SourceMarker = "Box Silvassa"

// SensorType is the category assigned to an extracted product.
type SensorType string

const (
	SensorReedSwitch    SensorType = "Reed Switch"
	SensorProximity     SensorType = "Proximity"
	SensorPhotoelectric SensorType = "Photoelectric"
	SensorCapacitive    SensorType = "Capacitive"
	SensorInductive     SensorType = "Inductive"
	SensorPressure      SensorType = "Pressure"
	SensorTemperature   SensorType = "Temperature"
	SensorOther         SensorType = "Other" // fallback when no keyword matches
)

// SupportedSensorTypes lists every category a record can carry, fallback last.
var SupportedSensorTypes = []SensorType{
	SensorReedSwitch,
	SensorProximity,
	SensorPhotoelectric,
	SensorCapacitive,
	SensorInductive,
	SensorPressure,
	SensorTemperature,
	SensorOther,
}

// ValidateSensorType reports whether s names one of the supported categories.
func ValidateSensorType(s string) bool {
	s = strings.TrimSpace(s)
	for _, t := range SupportedSensorTypes {
		if strings.EqualFold(string(t), s) {
			return true
		}
	}
	return false
}

// Record is one sensor query extracted from a transcript line.
type Record struct {
	SourceLine  string     `json:"source_line"`
	ProductName string     `json:"product_name"`
	SensorType  SensorType `json:"sensor_type"`
	Quantity    *string    `json:"quantity"`
	Date        *string    `json:"date"`
}

// QuantityOrEmpty returns the quantity token, or "" when absent.
func (r Record) QuantityOrEmpty() string {
	if r.Quantity == nil {
		return ""
	}
	return *r.Quantity
}

// DateOrEmpty returns the ISO date, or "" when absent.
func (r Record) DateOrEmpty() string {
	if r.Date == nil {
		return ""
	}
	return *r.Date
}

// ProcessingStats tallies what happened to each input line during a run.
type ProcessingStats struct {
	TotalLines    int `json:"total_lines"`
	BlankLines    int `json:"blank_lines"`
	MissingMarker int `json:"missing_marker"`
	Discarded     int `json:"discarded"`
	Undated       int `json:"undated"`
	TooSparse     int `json:"too_sparse"`
	Accepted      int `json:"accepted"`
}

// Add merges other into s.
func (s *ProcessingStats) Add(other ProcessingStats) {
	s.TotalLines += other.TotalLines
	s.BlankLines += other.BlankLines
	s.MissingMarker += other.MissingMarker
	s.Discarded += other.Discarded
	s.Undated += other.Undated
	s.TooSparse += other.TooSparse
	s.Accepted += other.Accepted
}

// Rejected is the number of lines that produced no record.
func (s ProcessingStats) Rejected() int {
	return s.TotalLines - s.Accepted
}
