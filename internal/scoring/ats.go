package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-auditor/internal/types"
)

// Weights configures the four ATS components. The weights must sum to 1.0;
// a malformed table is a configuration error surfaced at startup, never
// silently tolerated.
type Weights struct {
	JDSkillMatch        float64 `json:"jd_skill_match" validate:"gte=0,lte=1"`
	VerifiedClaims      float64 `json:"verified_claims" validate:"gte=0,lte=1"`
	ResumeCompleteness  float64 `json:"resume_completeness" validate:"gte=0,lte=1"`
	TimelineConsistency float64 `json:"timeline_consistency" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the standard ATS weighting.
func DefaultWeights() Weights {
	return Weights{
		JDSkillMatch:        0.4,
		VerifiedClaims:      0.3,
		ResumeCompleteness:  0.2,
		TimelineConsistency: 0.1,
	}
}

const weightSumTolerance = 1e-9

// Validate checks field ranges and that the weights sum to exactly 1.0
// within floating-point tolerance.
func (w Weights) Validate() error {
	if err := validator.New().Struct(w); err != nil {
		return fmt.Errorf("invalid ats weights: %w", err)
	}
	sum := w.JDSkillMatch + w.VerifiedClaims + w.ResumeCompleteness + w.TimelineConsistency
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("ats weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// ATS status bands.
const (
	StatusStrongMatch   = "strong match"
	StatusModerateMatch = "moderate match"
	StatusWeakMatch     = "weak match"
	StatusPoorMatch     = "poor match"
)

// overlapTimelinePenalty is subtracted from the verified-timeline count per
// overlapping period when computing the ATS timeline component. It is scaled
// differently from the overall timeline consistency score on purpose; the two
// formulas are independent.
const overlapTimelinePenalty = 5

// ClaimVerificationPct computes the weighted claim completion rate: verified
// counts 1.0, partially verified 0.5, unverified 0. No claims yields 0.
func ClaimVerificationPct(verdicts []types.ClaimVerdict) float64 {
	if len(verdicts) == 0 {
		return 0
	}
	weighted := 0.0
	for _, verdict := range verdicts {
		switch verdict.Status {
		case types.StatusVerified:
			weighted += 1.0
		case types.StatusPartiallyVerified:
			weighted += 0.5
		}
	}
	return weighted / float64(len(verdicts)) * 100
}

// TimelineConsistencyPct computes the ATS timeline component from the
// timeline report: the count of verified timeline records, less a penalty per
// overlapping period, over the total record count. No timeline records at all
// yields 100, since there is nothing to contradict.
func TimelineConsistencyPct(report *types.TimelineReport) float64 {
	if report == nil {
		return 100
	}
	total := len(report.Projects) + len(report.Employment)
	if total == 0 {
		return 100
	}

	consistent := 0
	for _, validation := range report.Projects {
		if validation.Verified {
			consistent++
		}
	}
	for _, validation := range report.Employment {
		if validation.Verified {
			consistent++
		}
	}
	consistent -= overlapTimelinePenalty * len(report.Overall.Overlaps)
	if consistent < 0 {
		consistent = 0
	}

	return float64(consistent) / float64(total) * 100
}

// ATSInputs carries the four raw component percentages plus the skill-match
// detail lists surfaced in the report.
type ATSInputs struct {
	JDSkillMatchPct        float64
	ClaimVerificationPct   float64
	CompletenessPct        float64
	TimelineConsistencyPct float64
	MatchedSkills          []string
	MissingSkills          []string
}

// CalculateATS applies the weighted ATS formula. Each component percentage is
// clamped to [0,100] before weighting and the final score is clamped and
// rounded to the nearest integer.
func CalculateATS(weights Weights, inputs ATSInputs) types.ATSReport {
	jdMatch := clampPct(inputs.JDSkillMatchPct)
	claims := clampPct(inputs.ClaimVerificationPct)
	completeness := clampPct(inputs.CompletenessPct)
	timelines := clampPct(inputs.TimelineConsistencyPct)

	raw := jdMatch*weights.JDSkillMatch +
		claims*weights.VerifiedClaims +
		completeness*weights.ResumeCompleteness +
		timelines*weights.TimelineConsistency

	score := int(math.Round(clampPct(raw)))

	return types.ATSReport{
		Score:  score,
		Status: atsStatus(score),
		Breakdown: types.ATSBreakdown{
			JDSkillMatch:        component(jdMatch, weights.JDSkillMatch),
			VerifiedClaims:      component(claims, weights.VerifiedClaims),
			ResumeCompleteness:  component(completeness, weights.ResumeCompleteness),
			TimelineConsistency: component(timelines, weights.TimelineConsistency),
		},
		MatchedSkills: inputs.MatchedSkills,
		MissingSkills: inputs.MissingSkills,
	}
}

func component(pct, weight float64) types.ATSComponent {
	return types.ATSComponent{
		Percentage:   roundTenth(pct),
		Weight:       weight,
		Contribution: roundTenth(pct * weight),
	}
}

func atsStatus(score int) string {
	switch {
	case score >= 80:
		return StatusStrongMatch
	case score >= 60:
		return StatusModerateMatch
	case score >= 40:
		return StatusWeakMatch
	default:
		return StatusPoorMatch
	}
}

func clampPct(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
