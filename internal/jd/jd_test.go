package jd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_FindsKeywords(t *testing.T) {
	text := "We are looking for a backend engineer with Python and AWS experience. Docker is a plus."

	skills := ExtractSkills(text)

	assert.Equal(t, []string{"AWS", "Docker", "Python"}, skills)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("must know KUBERNETES and postgresql")

	assert.Equal(t, []string{"Kubernetes", "PostgreSQL"}, skills)
}

func TestSkillsMatch(t *testing.T) {
	assert.True(t, SkillsMatch("Python", "python"))
	assert.True(t, SkillsMatch("SQL", "PostgreSQL"))
	assert.True(t, SkillsMatch("javascript", "javascripts"))
	assert.False(t, SkillsMatch("Python", "Rust"))
	assert.False(t, SkillsMatch("", "python"))
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("abc", "abc"))
	assert.Equal(t, 0.0, similarityRatio("abc", "xyz"))
	assert.Equal(t, 1.0, similarityRatio("", ""))
	// Matched blocks "ab" and "d" out of 4+4 characters.
	assert.InDelta(t, 0.75, similarityRatio("abcd", "abxd"), 1e-9)
}

func TestMatchSkills_ResumeAndVerified(t *testing.T) {
	result := MatchSkills(
		[]string{"Python", "AWS", "Rust"},
		[]string{"Python"},
		[]string{"aws"},
	)

	assert.Equal(t, []string{"Python", "AWS (verified)"}, result.Matched)
	assert.Equal(t, []string{"Rust"}, result.Missing)
	assert.InDelta(t, 200.0/3.0, result.Percentage, 1e-9)
}

func TestMatchSkills_PythonAWSScenario(t *testing.T) {
	result := MatchSkills([]string{"Python", "AWS"}, []string{"Python"}, nil)

	assert.Equal(t, []string{"Python"}, result.Matched)
	assert.Equal(t, []string{"AWS"}, result.Missing)
	assert.InDelta(t, 50.0, result.Percentage, 1e-9)
}

func TestMatchSkills_NoJDSkills(t *testing.T) {
	result := MatchSkills(nil, []string{"Python"}, nil)

	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 0.0, result.Percentage)
}
