package metrics

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/adaptiq/internal/api"
)

// Comparison insight thresholds. The cascade below is order-sensitive;
// clauses are appended in a fixed order.
const (
	agreementPoints    = 5.0 // percentage-point gap treated as agreement
	lowConfidence      = 0.7
	lowConsistency     = 0.6
	trendRisingRate    = 0.6
	trendPlateauRate   = 0.4
	stableConsistency  = 0.8
	erraticConsistency = 0.5
)

// BuildComparisonInsight produces a short narrative contrasting the BKT
// knowledge estimate with the generative model's user model. A nil user
// model short-circuits to a single need-more-data sentence.
func BuildComparisonInsight(bktKnowledge float64, um *api.UserModel) string {
	if um == nil {
		return "Not enough data yet to compare the two models."
	}

	bktPct := bktKnowledge * 100
	llmPct := um.KnowledgeLevel * 100

	var clauses []string

	switch {
	case math.Abs(llmPct-bktPct) < agreementPoints:
		clauses = append(clauses, fmt.Sprintf("Both models agree on your knowledge level (around %.0f%%).", bktPct))
	case llmPct > bktPct:
		clause := "The LLM estimates your knowledge higher than the BKT model."
		if um.Confidence < lowConfidence {
			clause += " Its confidence in this estimate is low."
		}
		clauses = append(clauses, clause)
	default:
		clause := "The BKT model estimates your knowledge higher than the LLM."
		if um.PatternConsistency < lowConsistency {
			clause += " Your answer pattern has been inconsistent."
		}
		clauses = append(clauses, clause)
	}

	if um.LearningRate > trendRisingRate {
		clauses = append(clauses, "Your learning shows a positive trajectory.")
	} else if um.LearningRate < trendPlateauRate {
		clauses = append(clauses, "Your progress has plateaued.")
	}

	if um.PatternConsistency > stableConsistency {
		clauses = append(clauses, "Your performance is stable.")
	} else if um.PatternConsistency < erraticConsistency {
		clauses = append(clauses, "Your performance is erratic.")
	}

	return strings.TrimSpace(strings.Join(clauses, " "))
}
