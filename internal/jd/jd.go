// Package jd extracts required skills from job description text and matches
// them against resume skills and externally verified technologies.
package jd

import (
	"sort"
	"strings"
)

// skillKeywords is the fixed vocabulary scanned for in job description text.
// Matching is case-insensitive substring; the canonical casing is reported.
var skillKeywords = []string{
	"Python", "JavaScript", "Java", "C++", "React", "Angular", "Vue",
	"Node.js", "Django", "Flask", "Spring", "MongoDB", "PostgreSQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git",
	"SQL", "REST", "APIs", "Agile", "Scrum", "Machine Learning",
	"Deep Learning", "TensorFlow", "PyTorch", "Data Analysis",
	"Communication", "Problem Solving", "Leadership", "Team Work",
}

// similarityThreshold is the fuzzy-match cutoff for SkillsMatch.
const similarityThreshold = 0.8

// ExtractSkills scans job description text for known skill keywords. The
// result is sorted for deterministic downstream reports. Empty text yields an
// empty list, not an error.
func ExtractSkills(jdText string) []string {
	lower := strings.ToLower(jdText)
	var found []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// SkillsMatch reports whether two skill tokens refer to the same skill:
// exact match, substring containment in either direction, or similarity
// ratio above the threshold. Inputs are compared case-insensitively.
func SkillsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return similarityRatio(a, b) > similarityThreshold
}

// MatchResult is the outcome of matching JD skills against a resume.
type MatchResult struct {
	Matched    []string
	Missing    []string
	Percentage float64
}

// MatchSkills checks each JD skill against the resume skill list first, then
// against externally verified technologies. A skill found only via verified
// technologies is annotated "(verified)". No JD skills yields 0%, not NaN.
func MatchSkills(jdSkills, resumeSkills, verifiedTechs []string) MatchResult {
	result := MatchResult{Matched: []string{}, Missing: []string{}}
	if len(jdSkills) == 0 {
		return result
	}

	for _, jdSkill := range jdSkills {
		if matchAny(jdSkill, resumeSkills) {
			result.Matched = append(result.Matched, jdSkill)
			continue
		}
		if matchAny(jdSkill, verifiedTechs) {
			result.Matched = append(result.Matched, jdSkill+" (verified)")
			continue
		}
		result.Missing = append(result.Missing, jdSkill)
	}

	result.Percentage = float64(len(result.Matched)) / float64(len(jdSkills)) * 100
	return result
}

func matchAny(skill string, candidates []string) bool {
	for _, candidate := range candidates {
		if SkillsMatch(skill, candidate) {
			return true
		}
	}
	return false
}
