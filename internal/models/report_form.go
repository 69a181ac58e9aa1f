package models

import "strings"

// HazardType represents the kind of water hazard being reported
type HazardType string

const (
	HazardTypeNone          HazardType = ""
	HazardTypeFlooding      HazardType = "flooding"
	HazardTypeWaterLogging  HazardType = "waterLogging"
	HazardTypeContamination HazardType = "contamination"
	HazardTypeLeakage       HazardType = "leakage"
)

// HazardTypes lists the selectable hazard types in display order
var HazardTypes = []HazardType{
	HazardTypeFlooding,
	HazardTypeWaterLogging,
	HazardTypeContamination,
	HazardTypeLeakage,
}

// ParseHazardType returns the hazard type for a form value. Unknown values map to HazardTypeNone.
func ParseHazardType(s string) HazardType {
	t := HazardType(strings.TrimSpace(s))
	for _, known := range HazardTypes {
		if t == known {
			return t
		}
	}
	return HazardTypeNone
}

// Label returns the human readable name used by the form and the map legend
func (t HazardType) Label() string {
	switch t {
	case HazardTypeFlooding:
		return "Flooding"
	case HazardTypeWaterLogging:
		return "Water Logging"
	case HazardTypeContamination:
		return "Water Contamination"
	case HazardTypeLeakage:
		return "Pipeline Leakage"
	}
	return "Select hazard type"
}

// CSSClass returns the legend dot class for the hazard type
func (t HazardType) CSSClass() string {
	switch t {
	case HazardTypeWaterLogging:
		return "water-logging"
	case HazardTypeNone:
		return ""
	}
	return string(t)
}

// ReportForm holds the transient state of the hazard report screen.
// Image is the selected file name, empty when no file was picked.
type ReportForm struct {
	Location    string
	HazardType  HazardType
	Description string
	Image       string
}

func (f ReportForm) WithLocation(location string) ReportForm {
	f.Location = location
	return f
}

func (f ReportForm) WithHazardType(t HazardType) ReportForm {
	f.HazardType = t
	return f
}

func (f ReportForm) WithDescription(description string) ReportForm {
	f.Description = description
	return f
}

func (f ReportForm) WithImage(name string) ReportForm {
	f.Image = name
	return f
}
