package assessment

// Qualitative bands derived from the total score.
const (
	BandLow      = "Low"
	BandModerate = "Moderate"
	BandHigh     = "High"
)

// Outcome is the result of scoring one submission. Partial is true when at
// least one question received no valid answer; it feeds telemetry only and is
// never part of the API response.
type Outcome struct {
	Score   int
	Band    string
	Partial bool
}

// Score sums the selected option score per question. A missing or
// out-of-range answer index contributes zero for that question; extra answer
// entries beyond the question count are ignored.
func Score(t Test, answers []int) Outcome {
	total := 0
	partial := false
	for i, q := range t.Questions {
		if i >= len(answers) {
			partial = true
			continue
		}
		idx := answers[i]
		if idx < 0 || idx >= len(q.Options) {
			partial = true
			continue
		}
		total += q.Options[idx].Score
	}
	return Outcome{Score: total, Band: BandFor(total), Partial: partial}
}

// BandFor maps a total score to its band. Thresholds are strict
// greater-than: 15 is still Low, 25 is still Moderate.
func BandFor(total int) string {
	switch {
	case total <= 15:
		return BandLow
	case total <= 25:
		return BandModerate
	default:
		return BandHigh
	}
}
