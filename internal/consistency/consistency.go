package consistency

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-auditor/internal/types"
)

// Where a claimed skill was substantiated, strongest first.
const (
	foundInArtifacts  = "evidence_artifacts"
	foundInProjects   = "projects"
	foundInEmployment = "work_experience"
)

// Scoring weights: externally observed evidence counts full, resume-internal
// mentions count partial.
const (
	verifiedWeight = 100
	partialWeight  = 70
)

// CheckConsistency compares the claimed skill list against the demonstrated
// technology histogram (from evidence artifacts) and the technology lists
// found in project and employment sub-sections. All tokens are normalized
// before comparison.
//
// A claimed skill is verified when it appears in externally observed
// artifacts, partially verified when it appears only in resume text, and
// unverified otherwise. Technologies observed but never claimed are recorded
// as undeclared; they feed red-flag detection but do not lower the score.
func CheckConsistency(claimedSkills []string, demonstrated map[string]int, projectTechs, workTechs []string) *types.ConsistencyReport {
	claimed := normalizeAll(claimedSkills)

	demonstratedNorm := make(map[string]int, len(demonstrated))
	for tech, count := range demonstrated {
		demonstratedNorm[NormalizeTech(tech)] += count
	}

	projectSet := make(map[string]bool)
	for _, tech := range normalizeAll(projectTechs) {
		projectSet[tech] = true
	}
	workSet := make(map[string]bool)
	for _, tech := range normalizeAll(workTechs) {
		workSet[tech] = true
	}

	report := &types.ConsistencyReport{
		VerifiedSkills:          []types.SkillMatch{},
		PartiallyVerifiedSkills: []types.SkillMatch{},
		UnverifiedSkills:        []string{},
		UndeclaredTechnologies:  []string{},
	}

	claimedSet := make(map[string]bool, len(claimed))
	for _, skill := range claimed {
		if claimedSet[skill] {
			continue // Duplicate claims count once
		}
		claimedSet[skill] = true

		switch {
		case demonstratedNorm[skill] > 0:
			report.VerifiedSkills = append(report.VerifiedSkills, types.SkillMatch{
				Skill:     skill,
				FoundIn:   foundInArtifacts,
				RepoCount: demonstratedNorm[skill],
			})
		case projectSet[skill]:
			report.PartiallyVerifiedSkills = append(report.PartiallyVerifiedSkills, types.SkillMatch{
				Skill:   skill,
				FoundIn: foundInProjects,
			})
		case workSet[skill]:
			report.PartiallyVerifiedSkills = append(report.PartiallyVerifiedSkills, types.SkillMatch{
				Skill:   skill,
				FoundIn: foundInEmployment,
			})
		default:
			report.UnverifiedSkills = append(report.UnverifiedSkills, skill)
		}
	}

	// Undeclared technologies are reported in a deterministic order.
	undeclaredSet := make(map[string]bool)
	for tech := range demonstratedNorm {
		if !claimedSet[tech] {
			undeclaredSet[tech] = true
		}
	}
	for tech := range projectSet {
		if !claimedSet[tech] {
			undeclaredSet[tech] = true
		}
	}
	for tech := range workSet {
		if !claimedSet[tech] {
			undeclaredSet[tech] = true
		}
	}
	for tech := range undeclaredSet {
		report.UndeclaredTechnologies = append(report.UndeclaredTechnologies, tech)
	}
	sort.Strings(report.UndeclaredTechnologies)

	totalClaimed := len(claimedSet)
	if totalClaimed == 0 {
		report.NoClaims = true
		return report
	}

	verified := len(report.VerifiedSkills)
	partial := len(report.PartiallyVerifiedSkills)
	report.ConsistencyScore = float64(verified*verifiedWeight+partial*partialWeight) / float64(totalClaimed*verifiedWeight)

	return report
}

// DetectRedFlags evaluates the three consistency red-flag rules in order.
// The rules are independent; more than one can fire for the same report.
func DetectRedFlags(claimedSkills []string, report *types.ConsistencyReport, demonstrated map[string]int) []types.RedFlag {
	var flags []types.RedFlag

	// Rule 1: majority of claimed skills have no evidence at all.
	if total := len(normalizeAll(claimedSkills)); total > 0 {
		unverifiedPct := float64(len(report.UnverifiedSkills)) / float64(total) * 100
		if unverifiedPct > 50 {
			flags = append(flags, types.RedFlag{
				Type:           "high_unverified_rate",
				Severity:       types.SeverityHigh,
				Description:    fmt.Sprintf("%.0f%% of claimed skills have no supporting evidence", unverifiedPct),
				SupportingData: report.UnverifiedSkills,
			})
		}
	}

	// Rule 2: evidence shows technologies the resume never claims.
	if len(report.UndeclaredTechnologies) > 0 {
		supporting := report.UndeclaredTechnologies
		if len(supporting) > 5 {
			supporting = supporting[:5]
		}
		flags = append(flags, types.RedFlag{
			Type:           "undeclared_technologies",
			Severity:       types.SeverityMedium,
			Description:    "evidence sources show technologies not mentioned in claims",
			SupportingData: supporting,
		})
	}

	// Rule 3: all observed activity concentrated in one artifact and one
	// technology.
	if len(demonstrated) == 1 {
		for tech, count := range demonstrated {
			if count == 1 {
				flags = append(flags, types.RedFlag{
					Type:           "single_source_activity",
					Severity:       types.SeverityHigh,
					Description:    "all demonstrated activity is a single technology in a single artifact",
					SupportingData: []string{tech},
				})
			}
		}
	}

	return flags
}
