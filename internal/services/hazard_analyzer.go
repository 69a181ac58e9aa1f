package services

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// RiskLevel is the coarse risk bucket derived from a hazard score
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// hazardWeights scores whole-word keyword matches in a report description
var hazardWeights = map[string]float64{
	// critical
	"tsunami":    10,
	"earthquake": 10,
	"cyclone":    9,
	"hurricane":  9,
	"volcano":    9,
	"eruption":   9,
	"wildfire":   9,

	// severe
	"flood":     8,
	"flooding":  8,
	"landslide": 8,
	"mudslide":  8,
	"avalanche": 8,
	"storm":     7,
	"typhoon":   7,
	"surge":     7,

	// medium
	"tornado":    6,
	"drought":    6,
	"heatwave":   6,
	"hailstorm":  5,
	"snowstorm":  5,
	"inundation": 5,

	// contextual
	"wave":  3,
	"waves": 3,
	"coast": 2,
	"shore": 2,
	"sea":   2,
	"rain":  2,
	"wind":  2,
	"high":  1,
	"water": 1,
}

const maxUrgencyBonus = 4.0

var (
	urlPattern        = regexp.MustCompile(`http\S+`)
	nonWordPattern    = regexp.MustCompile(`[^A-Za-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// HazardAssessment is the outcome of scoring a free-text description
type HazardAssessment struct {
	Score   float64
	Risk    RiskLevel
	Matches []string
}

// CleanText strips URLs and punctuation, collapses whitespace and lower-cases the text
func CleanText(text string) string {
	t := urlPattern.ReplaceAllString(text, " ")
	t = nonWordPattern.ReplaceAllString(t, " ")
	t = whitespacePattern.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

// AnalyzeText scores text by keyword weight plus an urgency bonus for
// exclamation marks and shouted words.
func AnalyzeText(text string) HazardAssessment {
	counts := make(map[string]int)
	for _, word := range strings.Fields(CleanText(text)) {
		if _, ok := hazardWeights[word]; ok {
			counts[word]++
		}
	}

	score := 0.0
	matches := make([]string, 0, len(counts))
	for word, n := range counts {
		score += float64(n) * hazardWeights[word]
		matches = append(matches, word)
	}
	sort.Strings(matches)

	score += math.Min(float64(urgency(text))*1.5, maxUrgencyBonus)

	return HazardAssessment{
		Score:   score,
		Risk:    RiskFromScore(score),
		Matches: matches,
	}
}

// RiskFromScore maps a score to its risk bucket
func RiskFromScore(score float64) RiskLevel {
	switch {
	case score >= 6:
		return RiskHigh
	case score >= 3:
		return RiskMedium
	default:
		return RiskLow
	}
}

func urgency(text string) int {
	n := strings.Count(text, "!")
	for _, w := range strings.Fields(text) {
		if len(w) > 1 && isShouted(w) {
			n++
		}
	}
	return n
}

// isShouted reports whether w has a cased letter and every cased letter is upper-case
func isShouted(w string) bool {
	hasUpper := false
	for _, r := range w {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
