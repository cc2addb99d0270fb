// Package synthesis collects red flags from all analysis stages and derives
// the executive hiring recommendation.
package synthesis

import (
	"github.com/jonathan/resume-auditor/internal/types"
)

// Recommendation values for the executive summary.
const (
	RecommendStrong   = "strong recommend"
	RecommendModerate = "moderate recommend"
	RecommendWeak     = "weak recommend"
	RecommendNone     = "not recommended"
)

// missingProfileFlags maps an evidence source name to the red-flag type
// raised when the claimed profile is confirmed absent.
var missingProfileFlags = map[string]struct {
	flagType    string
	description string
}{
	"github":   {"missing_github", "GitHub username provided but profile not found"},
	"kaggle":   {"missing_kaggle", "Kaggle username provided but profile not found"},
	"linkedin": {"missing_linkedin", "LinkedIn URL provided but profile not found"},
}

// profileFlagOrder fixes the emission order of missing-profile flags.
var profileFlagOrder = []string{"github", "kaggle", "linkedin"}

// CollectRedFlags appends profile-absence flags to the flags already raised
// by the consistency stage. Only exists=false raises a flag; exists=unknown
// means the source could not answer and is not treated as absence. Flags are
// only ever appended, never removed.
func CollectRedFlags(consistencyFlags []types.RedFlag, profiles map[string]*types.EvidenceProfile) []types.RedFlag {
	flags := make([]types.RedFlag, 0, len(consistencyFlags))
	flags = append(flags, consistencyFlags...)

	for _, source := range profileFlagOrder {
		profile := profiles[source]
		if profile == nil || profile.Exists != types.ExistsFalse {
			continue
		}
		spec := missingProfileFlags[source]
		flags = append(flags, types.RedFlag{
			Type:           spec.flagType,
			Severity:       types.SeverityHigh,
			Description:    spec.description,
			SupportingData: []string{profile.Handle},
		})
	}

	return flags
}

// BuildExecutiveSummary applies the strict top-down decision table over
// (ats_score, trust_score, high-severity flag count). The first matching row
// wins.
func BuildExecutiveSummary(ats types.ATSReport, trust types.TrustReport, flags []types.RedFlag) types.ExecutiveSummary {
	highFlags := 0
	for _, flag := range flags {
		if flag.Severity == types.SeverityHigh {
			highFlags++
		}
	}

	summary := types.ExecutiveSummary{
		ATSScore:          ats.Score,
		TrustScore:        trust.OverallTrustScore,
		RedFlagCount:      len(flags),
		HighSeverityFlags: highFlags,
	}

	switch {
	case ats.Score >= 80 && trust.OverallTrustScore >= 85 && highFlags == 0:
		summary.Recommendation = RecommendStrong
		summary.Reasoning = "Excellent ATS match, high trust score, and no major red flags."
	case ats.Score >= 60 && trust.OverallTrustScore >= 70 && highFlags <= 1:
		summary.Recommendation = RecommendModerate
		summary.Reasoning = "Good ATS match with minor concerns. Recommend additional verification during interview."
	case ats.Score >= 40 || trust.OverallTrustScore >= 50:
		summary.Recommendation = RecommendWeak
		summary.Reasoning = "Moderate fit with several verification concerns. Detailed verification advised."
	default:
		summary.Recommendation = RecommendNone
		summary.Reasoning = "Low ATS match and trust score with unresolved red flags."
	}

	return summary
}
