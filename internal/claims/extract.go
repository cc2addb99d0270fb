// Package claims derives verifiable claims from the normalized resume
// structure. Extraction is rule-based and deterministic: the same resume
// always yields the same claim list with the same IDs.
package claims

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-auditor/internal/types"
)

// Extract walks the resume sections in a fixed order and emits one claim per
// verifiable assertion. IDs encode the rule that produced them plus a running
// index, so verdicts can be traced back to their origin.
func Extract(resume *types.ExtractedResume) []types.Claim {
	var claims []types.Claim

	for _, skill := range resume.Skills {
		claims = append(claims, types.Claim{
			ID:              fmt.Sprintf("skill_%d", len(claims)),
			Text:            "Proficient in " + skill,
			Type:            types.ClaimSkillMatch,
			Value:           skill,
			SourceReference: "resume_skills",
			Severity:        types.SeverityHigh,
		})
	}

	for _, project := range resume.Projects {
		name := project.Name
		if name == "" {
			name = "unnamed project"
		}
		if len(project.Technologies) > 0 {
			techs := strings.Join(project.Technologies, ", ")
			claims = append(claims, types.Claim{
				ID:              fmt.Sprintf("tech_%d", len(claims)),
				Text:            fmt.Sprintf("Used %s in %s", techs, name),
				Type:            types.ClaimSkillMatch,
				Value:           techs,
				SourceReference: "project_" + name,
				Severity:        types.SeverityHigh,
			})
		}
		if project.Timeline != "" {
			claims = append(claims, types.Claim{
				ID:              fmt.Sprintf("timeline_%d", len(claims)),
				Text:            fmt.Sprintf("Completed %s during %s", name, project.Timeline),
				Type:            types.ClaimTimeline,
				Value:           project.Timeline,
				SourceReference: "project_" + name,
				Severity:        types.SeverityMedium,
			})
		}
		if project.Description != "" {
			claims = append(claims, types.Claim{
				ID:              fmt.Sprintf("depth_%d", len(claims)),
				Text:            fmt.Sprintf("Built %s with deep understanding", name),
				Type:            types.ClaimDepth,
				Value:           project.Description,
				SourceReference: "project_" + name,
				Severity:        types.SeverityMedium,
			})
		}
	}

	for _, experience := range resume.WorkExperience {
		company := experience.Company
		if company == "" {
			company = "unknown"
		}
		timeline := fmt.Sprintf("%s-%s", yearOrUnknown(experience.StartYear), yearOrUnknown(experience.EndYear))
		claims = append(claims, types.Claim{
			ID:              fmt.Sprintf("work_timeline_%d", len(claims)),
			Text:            fmt.Sprintf("Worked at %s from %s", company, timeline),
			Type:            types.ClaimTimeline,
			Value:           timeline,
			SourceReference: "work_experience",
			Severity:        types.SeverityHigh,
		})
		if len(experience.Technologies) > 0 {
			techs := strings.Join(experience.Technologies, ", ")
			claims = append(claims, types.Claim{
				ID:              fmt.Sprintf("work_tech_%d", len(claims)),
				Text:            fmt.Sprintf("Used %s at %s", techs, company),
				Type:            types.ClaimSkillMatch,
				Value:           techs,
				SourceReference: "work_" + company,
				Severity:        types.SeverityHigh,
			})
		}
	}

	for _, numeric := range resume.NumericClaims {
		claims = append(claims, types.Claim{
			ID:              fmt.Sprintf("numeric_%d", len(claims)),
			Text:            numeric.Text,
			Type:            types.ClaimNumeric,
			Value:           numeric.Value,
			SourceReference: "resume_text",
			Severity:        types.SeverityMedium,
		})
	}

	for _, link := range []struct {
		label string
		value string
	}{
		{"github username", resume.GitHubUsername},
		{"kaggle username", resume.KaggleUsername},
		{"linkedin url", resume.LinkedInURL},
	} {
		if link.value == "" {
			continue
		}
		claims = append(claims, types.Claim{
			ID:              fmt.Sprintf("link_%d", len(claims)),
			Text:            fmt.Sprintf("Has active %s: %s", link.label, link.value),
			Type:            types.ClaimLinkVerification,
			Value:           link.value,
			SourceReference: "resume_links",
			Severity:        types.SeverityHigh,
		})
	}

	if resume.CGPA > 0 {
		claims = append(claims, types.Claim{
			ID:              fmt.Sprintf("cgpa_%d", len(claims)),
			Text:            fmt.Sprintf("CGPA: %g/10", resume.CGPA),
			Type:            types.ClaimNumeric,
			Value:           fmt.Sprintf("%g", resume.CGPA),
			SourceReference: "education",
			Severity:        types.SeverityLow,
		})
	}

	return claims
}

func yearOrUnknown(year int) string {
	if year == 0 {
		return "?"
	}
	return fmt.Sprintf("%d", year)
}

// GroupByType buckets claims by claim type, preserving input order inside
// each bucket.
func GroupByType(claims []types.Claim) map[types.ClaimType][]types.Claim {
	grouped := make(map[types.ClaimType][]types.Claim)
	for _, claim := range claims {
		grouped[claim.Type] = append(grouped[claim.Type], claim)
	}
	return grouped
}
