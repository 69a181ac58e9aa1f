package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHazardType(t *testing.T) {
	tests := []struct {
		input string
		want  HazardType
	}{
		{"flooding", HazardTypeFlooding},
		{"waterLogging", HazardTypeWaterLogging},
		{"contamination", HazardTypeContamination},
		{"leakage", HazardTypeLeakage},
		{"", HazardTypeNone},
		{"tsunami", HazardTypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHazardType(tt.input))
		})
	}
}

func TestReportForm_Updates(t *testing.T) {
	var empty ReportForm

	form := empty.
		WithLocation("Kochi").
		WithHazardType(HazardTypeLeakage).
		WithDescription("Burst main on MG Road").
		WithImage("leak.jpg")

	assert.Equal(t, ReportForm{}, empty)
	assert.Equal(t, ReportForm{
		Location:    "Kochi",
		HazardType:  HazardTypeLeakage,
		Description: "Burst main on MG Road",
		Image:       "leak.jpg",
	}, form)
}

func TestHazardType_Labels(t *testing.T) {
	assert.Equal(t, "Water Logging", HazardTypeWaterLogging.Label())
	assert.Equal(t, "water-logging", HazardTypeWaterLogging.CSSClass())
	assert.Equal(t, "leakage", HazardTypeLeakage.CSSClass())
	assert.Equal(t, "Select hazard type", HazardTypeNone.Label())
}
