package verify

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-auditor/internal/consistency"
	"github.com/jonathan/resume-auditor/internal/timeline"
	"github.com/jonathan/resume-auditor/internal/types"
)

// Per-claim confidence assigned by the verdict rule table.
const (
	scoreSkillVerified   = 95
	scoreSkillPartial    = 70
	scoreSkillUnverified = 30
	scoreLinkVerified    = 100
	scoreNumeric         = 50
	scoreTimeline        = 90
)

// EvaluateClaims maps every claim to exactly one verdict using the rule table
// for its claim type. The output preserves the input claim order; evidence
// fetch completion order never influences it because all report data is
// already joined by the time this runs.
func EvaluateClaims(claims []types.Claim, reports *Reports) []types.ClaimVerdict {
	verdicts := make([]types.ClaimVerdict, 0, len(claims))
	for _, claim := range claims {
		verdicts = append(verdicts, evaluateClaim(claim, reports))
	}
	return verdicts
}

// Reports is the joined analyzer output a claim is evaluated against.
type Reports struct {
	Consistency *types.ConsistencyReport
	Timeline    *types.TimelineReport
	Profiles    map[string]*types.EvidenceProfile
	CurrentYear int
}

func evaluateClaim(claim types.Claim, reports *Reports) types.ClaimVerdict {
	verdict := types.ClaimVerdict{
		ClaimID:  claim.ID,
		Claim:    claim.Text,
		Type:     claim.Type,
		Value:    claim.Value,
		Status:   types.StatusUnverified,
		Evidence: []string{},
	}

	switch claim.Type {
	case types.ClaimSkillMatch:
		evaluateSkillMatch(&verdict, claim, reports.Consistency)
	case types.ClaimLinkVerification:
		evaluateLink(&verdict, claim, reports.Profiles)
	case types.ClaimNumeric:
		verdict.TrustScore = scoreNumeric
		verdict.Evidence = append(verdict.Evidence, "Numeric claim extracted from resume, no independent corroboration available")
	case types.ClaimTimeline:
		evaluateTimeline(&verdict, claim, reports.Timeline, reports.CurrentYear)
	default:
		verdict.Reasoning = fmt.Sprintf("Claim type %q is unrecognized; no verification rule applies.", claim.Type)
		return verdict
	}

	verdict.Reasoning = reasoning(verdict)
	return verdict
}

func evaluateSkillMatch(verdict *types.ClaimVerdict, claim types.Claim, report *types.ConsistencyReport) {
	verdict.TrustScore = scoreSkillUnverified
	if report == nil {
		verdict.Evidence = append(verdict.Evidence, "No consistency analysis available")
		return
	}

	skill := consistency.NormalizeTech(claim.Value)
	for _, match := range report.VerifiedSkills {
		if match.Skill == skill {
			verdict.Status = types.StatusVerified
			verdict.TrustScore = scoreSkillVerified
			verdict.Evidence = append(verdict.Evidence, fmt.Sprintf("Found in %s across %d artifacts", match.FoundIn, match.RepoCount))
			return
		}
	}
	for _, match := range report.PartiallyVerifiedSkills {
		if match.Skill == skill {
			verdict.Status = types.StatusPartiallyVerified
			verdict.TrustScore = scoreSkillPartial
			verdict.Evidence = append(verdict.Evidence, "Found in "+match.FoundIn)
			return
		}
	}
	verdict.Evidence = append(verdict.Evidence, "Not found in evidence artifacts, projects, or work experience")
}

func evaluateLink(verdict *types.ClaimVerdict, claim types.Claim, profiles map[string]*types.EvidenceProfile) {
	profile := matchProfile(claim.Value, profiles)
	if profile == nil {
		verdict.Evidence = append(verdict.Evidence, "No evidence source covers this link")
		return
	}
	switch profile.Exists {
	case types.ExistsTrue:
		verdict.Status = types.StatusVerified
		verdict.TrustScore = scoreLinkVerified
		verdict.Evidence = append(verdict.Evidence, profile.Source+" profile verified")
	case types.ExistsFalse:
		verdict.Evidence = append(verdict.Evidence, profile.Source+" profile not found")
	default:
		verdict.Evidence = append(verdict.Evidence, profile.Source+" could not be checked: "+profile.FailureReason)
	}
}

// matchProfile joins a link claim to the evidence profile whose handle
// appears in the claimed value (case-insensitive).
func matchProfile(value string, profiles map[string]*types.EvidenceProfile) *types.EvidenceProfile {
	lower := strings.ToLower(value)
	for _, source := range []string{"github", "kaggle", "linkedin"} {
		profile := profiles[source]
		if profile == nil || profile.Handle == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(profile.Handle)) {
			return profile
		}
	}
	return nil
}

func evaluateTimeline(verdict *types.ClaimVerdict, claim types.Claim, report *types.TimelineReport, currentYear int) {
	if report == nil {
		verdict.Evidence = append(verdict.Evidence, "No timeline analysis available")
		return
	}

	claimed, ok := timeline.ParseTimeline(claim.Value, currentYear)
	if !ok {
		verdict.Evidence = append(verdict.Evidence, "Claimed timeline could not be parsed")
		return
	}

	canonical := claimed.String()
	matched := false
	for _, validation := range append(append([]types.TimelineValidation{}, report.Projects...), report.Employment...) {
		if validation.ClaimedTimeline != canonical {
			continue
		}
		matched = true
		if validation.Verified {
			verdict.Status = types.StatusVerified
			verdict.TrustScore = scoreTimeline
			verdict.Evidence = append(verdict.Evidence, fmt.Sprintf("Timeline for %s confirmed by evidence (%s)", validation.Name, validation.Status))
			return
		}
	}
	if matched {
		verdict.Evidence = append(verdict.Evidence, "Matching timeline records exist but none were confirmed by evidence")
	} else {
		verdict.Evidence = append(verdict.Evidence, "No timeline record matches the claimed period")
	}
}

// reasoning renders the deterministic explanation from the fields the rule
// table already set, so text and verdict can never disagree.
func reasoning(verdict types.ClaimVerdict) string {
	joined := strings.Join(verdict.Evidence, " ")
	switch verdict.Status {
	case types.StatusVerified:
		return fmt.Sprintf("Claim verified with %d%% confidence. %s", verdict.TrustScore, joined)
	case types.StatusPartiallyVerified:
		return fmt.Sprintf("Claim partially verified (%d%% confidence). %s", verdict.TrustScore, joined)
	default:
		if joined == "" {
			joined = "No supporting evidence found."
		}
		return fmt.Sprintf("Insufficient evidence to verify claim (%d%% confidence). %s", verdict.TrustScore, joined)
	}
}
