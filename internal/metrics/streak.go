package metrics

import "fmt"

// Streak is the maximal trailing run of answer outcomes identical to the
// most recent outcome. Length 0 is the "no streak" sentinel for an empty
// history.
//
// Note this is deliberately a trailing-run rule, not a longest-run search:
// every entry is compared to the last entry, and counting stops at the
// first mismatch from the end.
type Streak struct {
	Length  int
	Correct bool
}

// Label returns the display form: "-" for no streak, otherwise the length
// tagged with the run's outcome.
func (s Streak) Label() string {
	if s.Length == 0 {
		return "-"
	}
	if s.Correct {
		return fmt.Sprintf("%d correct", s.Length)
	}
	return fmt.Sprintf("%d incorrect", s.Length)
}

// ComputeStreak derives the trailing streak from an answer history.
func ComputeStreak(history []bool) Streak {
	if len(history) == 0 {
		return Streak{}
	}

	last := history[len(history)-1]
	length := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i] != last {
			break
		}
		length++
	}

	return Streak{Length: length, Correct: last}
}
