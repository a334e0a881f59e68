package metrics

import (
	"fmt"
	"math"
)

// RecentWindow is the number of trailing answers shown in the dashboard.
const RecentWindow = 5

// Accuracy summarizes the answer history as a percentage plus raw counts.
type Accuracy struct {
	Correct int
	Total   int
	Percent int
}

// Ratio returns the raw "correct/total" form.
func (a Accuracy) Ratio() string {
	return fmt.Sprintf("%d/%d", a.Correct, a.Total)
}

// ComputeAccuracy derives the accuracy from an answer history. An empty
// history yields 0 percent rather than dividing by zero.
func ComputeAccuracy(history []bool) Accuracy {
	correct := 0
	for _, ok := range history {
		if ok {
			correct++
		}
	}

	percent := 0
	if len(history) > 0 {
		percent = int(math.Round(float64(correct) / float64(len(history)) * 100))
	}

	return Accuracy{Correct: correct, Total: len(history), Percent: percent}
}

// RecentAnswers returns the last min(k, len) entries in original order.
func RecentAnswers(history []bool, k int) []bool {
	if k > len(history) {
		k = len(history)
	}
	return history[len(history)-k:]
}

// PassFailGlyph renders one answer outcome.
func PassFailGlyph(correct bool) string {
	if correct {
		return "✓"
	}
	return "✗"
}
