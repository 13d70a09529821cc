package student

import (
	"math"

	"github.com/equibridge/backend/internal/models"
)

// ComputeFunding sums the estimated fee of every roadmap step whose number
// appears in completedSteps. The total is always derived from scratch, so
// removing a step can never leave a stale total.
func ComputeFunding(roadmap []models.RoadmapStep, completedSteps []int) int64 {
	completed := stepSet(completedSteps)
	var total int64
	for _, step := range roadmap {
		if _, ok := completed[step.Step]; ok {
			total += step.EstimatedFeePaise
		}
	}
	return total
}

// ProgressPct is the completed share of the roadmap as a rounded percentage.
func ProgressPct(completedCount, totalSteps int) int {
	if totalSteps == 0 {
		return 0
	}
	return int(math.Round(float64(completedCount) / float64(totalSteps) * 100))
}

// monthlyRepayment is the fixed salary share that services the debt each
// month, rounded half-up to the paisa.
func monthlyRepayment(salaryPaise, rateBps int64) int64 {
	return (salaryPaise*rateBps + 5_000) / 10_000
}

// monthsToRepay is how many monthly installments clear the remaining debt
// (the last one may be partial).
func monthsToRepay(remainingPaise, monthlyPaise int64) int {
	if remainingPaise <= 0 || monthlyPaise <= 0 {
		return 0
	}
	return int((remainingPaise + monthlyPaise - 1) / monthlyPaise)
}

// stepSet deduplicates step numbers; completion is set membership, order
// and repetition carry no meaning.
func stepSet(steps []int) map[int]struct{} {
	set := make(map[int]struct{}, len(steps))
	for _, s := range steps {
		set[s] = struct{}{}
	}
	return set
}

// uniqueSteps returns steps with duplicates dropped, preserving first
// occurrence order for storage.
func uniqueSteps(steps []int) []int {
	seen := make(map[int]struct{}, len(steps))
	out := make([]int, 0, len(steps))
	for _, s := range steps {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
