// Package scoring holds the two deterministic scorers: the claim-trust
// aggregator and the weighted ATS formula, plus the resume completeness
// rubric that feeds the latter.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-auditor/internal/types"
)

// Trust label bands over the 0-100 aggregate score.
const (
	verifiedThreshold = 85
	partialThreshold  = 70
	moderateThreshold = 50
	flaggedThreshold  = 40
)

const (
	LabelHighlyTrustworthy     = "highly trustworthy"
	LabelPartiallyTrustworthy  = "partially trustworthy"
	LabelModeratelyTrustworthy = "moderately trustworthy"
	LabelLowTrustworthiness    = "low trustworthiness"
)

// ScoreAllClaims aggregates claim verdicts into a trust report. Scores are
// averaged arithmetically, unweighted by severity. Zero claims yields score 0
// with zero counts, never a division error. A claim is additionally counted
// as flagged when its individual score is below the flagged threshold.
func ScoreAllClaims(verdicts []types.ClaimVerdict) types.TrustReport {
	report := types.TrustReport{Verdicts: verdicts}
	if report.Verdicts == nil {
		report.Verdicts = []types.ClaimVerdict{}
	}

	total := len(verdicts)
	report.Summary.Total = total

	sum := 0
	for _, verdict := range verdicts {
		sum += verdict.TrustScore
		switch verdict.Status {
		case types.StatusVerified:
			report.Summary.Verified++
		case types.StatusPartiallyVerified:
			report.Summary.PartiallyVerified++
		case types.StatusUnverified:
			report.Summary.Unverified++
		}
		if verdict.TrustScore < flaggedThreshold {
			report.Summary.Flagged++
		}
	}

	if total == 0 {
		report.OverallLabel = LabelLowTrustworthiness
		report.Reasoning = "No claims were available to score."
		return report
	}

	average := float64(sum) / float64(total)
	report.OverallTrustScore = int(math.Round(average))
	report.OverallLabel = trustLabel(report.OverallTrustScore)
	report.Percentages = types.StatusPercentages{
		Verified:          roundPct(report.Summary.Verified, total),
		PartiallyVerified: roundPct(report.Summary.PartiallyVerified, total),
		Unverified:        roundPct(report.Summary.Unverified, total),
		Flagged:           roundPct(report.Summary.Flagged, total),
	}
	report.Reasoning = trustReasoning(report.OverallTrustScore, report.Summary)

	return report
}

func trustLabel(score int) string {
	switch {
	case score >= verifiedThreshold:
		return LabelHighlyTrustworthy
	case score >= partialThreshold:
		return LabelPartiallyTrustworthy
	case score >= moderateThreshold:
		return LabelModeratelyTrustworthy
	default:
		return LabelLowTrustworthiness
	}
}

func trustReasoning(score int, summary types.StatusCounts) string {
	unsupported := summary.Unverified + summary.Flagged
	switch {
	case score >= verifiedThreshold:
		return "Candidate claims are well supported by external verification sources."
	case score >= partialThreshold:
		if unsupported > 0 {
			return fmt.Sprintf("Most claims verified, but %d claims lack supporting evidence. Recommend human review of flagged items.", unsupported)
		}
		return "Generally trustworthy with some unverified claims."
	case score >= moderateThreshold:
		return fmt.Sprintf("Multiple claims (%d) lack verification. Recommend detailed interview validation.", unsupported)
	default:
		return "Low overall trustworthiness. Many claims unverified or contradicted by external sources."
	}
}

func roundPct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
