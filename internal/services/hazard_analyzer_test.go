package services

import (
	"testing"
)

func TestAnalyzeText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantScore float64
		wantRisk  RiskLevel
	}{
		{
			name:      "critical keyword with exclamation",
			input:     "Huge tsunami warning issued for coastal areas!",
			wantScore: 11.5,
			wantRisk:  RiskHigh,
		},
		{
			name:      "no hazard words",
			input:     "calm day at the beach",
			wantScore: 0,
			wantRisk:  RiskLow,
		},
		{
			name:      "contextual keywords add up",
			input:     "High waves reported along the coast",
			wantScore: 6,
			wantRisk:  RiskHigh,
		},
		{
			name:      "medium",
			input:     "rain and wind all evening",
			wantScore: 4,
			wantRisk:  RiskMedium,
		},
		{
			name:      "urgency bonus is capped",
			input:     "STORM SURGE!!!",
			wantScore: 18,
			wantRisk:  RiskHigh,
		},
		{
			name:      "urls are ignored",
			input:     "see http://flood.example.com now",
			wantScore: 0,
			wantRisk:  RiskLow,
		},
		{
			name:      "repeated keywords count each time",
			input:     "flood, flood and more flood",
			wantScore: 24,
			wantRisk:  RiskHigh,
		},
		{
			name:      "shouted non-ascii words are urgent",
			input:     "ВОДА ПОВСЮДУ",
			wantScore: 3,
			wantRisk:  RiskMedium,
		},
		{
			name:      "lower-case non-ascii words are not urgent",
			input:     "вода повсюду",
			wantScore: 0,
			wantRisk:  RiskLow,
		},
		{
			name:      "accented capitals count as shouting",
			input:     "ÉTÉ flood",
			wantScore: 9.5,
			wantRisk:  RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeText(tt.input)
			if result.Score != tt.wantScore {
				t.Errorf("AnalyzeText(%q).Score = %v; want %v", tt.input, result.Score, tt.wantScore)
			}
			if result.Risk != tt.wantRisk {
				t.Errorf("AnalyzeText(%q).Risk = %q; want %q", tt.input, result.Risk, tt.wantRisk)
			}
		})
	}
}

func TestAnalyzeText_Matches(t *testing.T) {
	result := AnalyzeText("Storm surge and flood near the shore")
	want := []string{"flood", "shore", "storm", "surge"}

	if len(result.Matches) != len(want) {
		t.Fatalf("Matches = %v; want %v", result.Matches, want)
	}
	for i := range want {
		if result.Matches[i] != want[i] {
			t.Errorf("Matches[%d] = %q; want %q", i, result.Matches[i], want[i])
		}
	}
}

func TestRiskFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{2.9, RiskLow},
		{3, RiskMedium},
		{5.9, RiskMedium},
		{6, RiskHigh},
		{40, RiskHigh},
	}

	for _, tt := range tests {
		if got := RiskFromScore(tt.score); got != tt.want {
			t.Errorf("RiskFromScore(%v) = %q; want %q", tt.score, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("  FLOOD!! at https://x.io/a   Marine-Drive ")
	want := "flood at marine drive"
	if got != want {
		t.Errorf("CleanText() = %q; want %q", got, want)
	}
}
