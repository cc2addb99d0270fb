package scoring

import "github.com/jonathan/resume-auditor/internal/types"

// ScoreCompleteness applies the fixed completeness rubric: contact info 20,
// education 15, experience 25, skills 20, links 20, for a 100-point maximum.
func ScoreCompleteness(resume *types.ExtractedResume) types.CompletenessScore {
	sections := map[string]int{}

	contact := 0
	if resume.Email != "" {
		contact += 10
	}
	if resume.Phone != "" {
		contact += 10
	}
	sections["contact_info"] = contact

	education := 0
	if resume.University != "" {
		education += 10
	}
	if resume.CGPA > 0 {
		education += 5
	}
	sections["education"] = education

	experience := 0
	if n := len(resume.Projects); n > 0 {
		experience += min(15, n*3)
	}
	if n := len(resume.WorkExperience); n > 0 {
		experience += min(10, n*2)
	}
	sections["experience"] = experience

	skills := 0
	if n := len(resume.Skills); n > 0 {
		skills = min(20, n*2)
	}
	sections["skills"] = skills

	links := 0
	if resume.GitHubUsername != "" {
		links += 10
	}
	if resume.KaggleUsername != "" {
		links += 5
	}
	if resume.LinkedInURL != "" {
		links += 5
	}
	sections["links"] = links

	total := 0
	for _, points := range sections {
		total += points
	}

	return types.CompletenessScore{
		Sections:   sections,
		Total:      total,
		MaxScore:   100,
		Percentage: total,
	}
}
