package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-auditor/internal/types"
)

func TestScoreAllClaims_SingleVerifiedClaim(t *testing.T) {
	verdicts := []types.ClaimVerdict{
		{ClaimID: "skill_0", Status: types.StatusVerified, TrustScore: 95},
	}

	report := ScoreAllClaims(verdicts)

	assert.Equal(t, 95, report.OverallTrustScore)
	assert.Equal(t, LabelHighlyTrustworthy, report.OverallLabel)
	assert.Equal(t, 1, report.Summary.Verified)
	assert.Equal(t, 100, report.Percentages.Verified)
}

func TestScoreAllClaims_EmptyInput(t *testing.T) {
	report := ScoreAllClaims(nil)

	assert.Equal(t, 0, report.OverallTrustScore)
	assert.Equal(t, 0, report.Summary.Total)
	assert.NotNil(t, report.Verdicts)
	assert.NotEmpty(t, report.Reasoning)
}

func TestScoreAllClaims_MixedStatuses(t *testing.T) {
	verdicts := []types.ClaimVerdict{
		{Status: types.StatusVerified, TrustScore: 95},
		{Status: types.StatusPartiallyVerified, TrustScore: 70},
		{Status: types.StatusUnverified, TrustScore: 30},
		{Status: types.StatusUnverified, TrustScore: 0},
	}

	report := ScoreAllClaims(verdicts)

	// (95+70+30+0)/4 = 48.75 → 49
	assert.Equal(t, 49, report.OverallTrustScore)
	assert.Equal(t, LabelLowTrustworthiness, report.OverallLabel)
	assert.Equal(t, 2, report.Summary.Unverified)
	assert.Equal(t, 2, report.Summary.Flagged)
	assert.Equal(t, 50, report.Percentages.Flagged)
}

func TestScoreAllClaims_ScoreAlwaysInRange(t *testing.T) {
	cases := [][]types.ClaimVerdict{
		nil,
		{{Status: types.StatusVerified, TrustScore: 100}},
		{{Status: types.StatusUnverified, TrustScore: 0}},
		{{TrustScore: 50}, {TrustScore: 90}, {TrustScore: 30}},
	}
	for _, verdicts := range cases {
		report := ScoreAllClaims(verdicts)
		assert.GreaterOrEqual(t, report.OverallTrustScore, 0)
		assert.LessOrEqual(t, report.OverallTrustScore, 100)
	}
}

func TestWeights_DefaultIsValid(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeights_SumMustBeOne(t *testing.T) {
	weights := Weights{JDSkillMatch: 0.5, VerifiedClaims: 0.5, ResumeCompleteness: 0.5, TimelineConsistency: 0.1}

	err := weights.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestWeights_RejectsOutOfRange(t *testing.T) {
	weights := Weights{JDSkillMatch: 1.5, VerifiedClaims: -0.5, ResumeCompleteness: 0, TimelineConsistency: 0}

	assert.Error(t, weights.Validate())
}

func TestCalculateATS_WeakMatchScenario(t *testing.T) {
	report := CalculateATS(DefaultWeights(), ATSInputs{
		JDSkillMatchPct:        50,
		ClaimVerificationPct:   50,
		CompletenessPct:        60,
		TimelineConsistencyPct: 100,
	})

	// round(0.4*50 + 0.3*50 + 0.2*60 + 0.1*100) = 57
	assert.Equal(t, 57, report.Score)
	assert.Equal(t, StatusWeakMatch, report.Status)
	assert.InDelta(t, 20.0, report.Breakdown.JDSkillMatch.Contribution, 1e-9)
	assert.InDelta(t, 10.0, report.Breakdown.TimelineConsistency.Contribution, 1e-9)
}

func TestCalculateATS_ClampsComponents(t *testing.T) {
	report := CalculateATS(DefaultWeights(), ATSInputs{
		JDSkillMatchPct:        150,
		ClaimVerificationPct:   -20,
		CompletenessPct:        100,
		TimelineConsistencyPct: 100,
	})

	// round(0.4*100 + 0.3*0 + 0.2*100 + 0.1*100) = 70
	assert.Equal(t, 70, report.Score)
	assert.Equal(t, 100.0, report.Breakdown.JDSkillMatch.Percentage)
	assert.Equal(t, 0.0, report.Breakdown.VerifiedClaims.Percentage)
}

func TestCalculateATS_ScoreInRangeForValidWeights(t *testing.T) {
	weightSets := []Weights{
		DefaultWeights(),
		{JDSkillMatch: 1, VerifiedClaims: 0, ResumeCompleteness: 0, TimelineConsistency: 0},
		{JDSkillMatch: 0.25, VerifiedClaims: 0.25, ResumeCompleteness: 0.25, TimelineConsistency: 0.25},
	}
	inputs := []ATSInputs{
		{},
		{JDSkillMatchPct: 100, ClaimVerificationPct: 100, CompletenessPct: 100, TimelineConsistencyPct: 100},
		{JDSkillMatchPct: 33, ClaimVerificationPct: 67, CompletenessPct: 50, TimelineConsistencyPct: 90},
	}
	for _, weights := range weightSets {
		require.NoError(t, weights.Validate())
		for _, input := range inputs {
			report := CalculateATS(weights, input)
			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
		}
	}
}

func TestClaimVerificationPct(t *testing.T) {
	verdicts := []types.ClaimVerdict{
		{Status: types.StatusVerified},
		{Status: types.StatusPartiallyVerified},
		{Status: types.StatusUnverified},
		{Status: types.StatusUnverified},
	}

	// (1.0 + 0.5) / 4 = 37.5%
	assert.InDelta(t, 37.5, ClaimVerificationPct(verdicts), 1e-9)
	assert.Equal(t, 0.0, ClaimVerificationPct(nil))
}

func TestTimelineConsistencyPct(t *testing.T) {
	report := &types.TimelineReport{
		Projects: []types.TimelineValidation{
			{Verified: true}, {Verified: true}, {Verified: false},
		},
		Employment: []types.TimelineValidation{{Verified: true}},
	}

	assert.InDelta(t, 75.0, TimelineConsistencyPct(report), 1e-9)
}

func TestTimelineConsistencyPct_OverlapPenalty(t *testing.T) {
	report := &types.TimelineReport{
		Projects: []types.TimelineValidation{
			{Verified: true}, {Verified: true}, {Verified: true}, {Verified: true},
		},
		Overall: types.OverallTimeline{Overlaps: []types.Overlap{{First: "a", Second: "b"}}},
	}

	// Verified count 4 loses 5 for the overlap, floored at 0.
	assert.Equal(t, 0.0, TimelineConsistencyPct(report))
}

func TestTimelineConsistencyPct_NoTimelinesIsFull(t *testing.T) {
	assert.Equal(t, 100.0, TimelineConsistencyPct(nil))
	assert.Equal(t, 100.0, TimelineConsistencyPct(&types.TimelineReport{}))
}

func TestScoreCompleteness_FullResume(t *testing.T) {
	resume := &types.ExtractedResume{
		Email:      "jane@example.com",
		Phone:      "555-0100",
		University: "State University",
		CGPA:       8.2,
		Skills:     []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		Projects: []types.Project{
			{Name: "p1"}, {Name: "p2"}, {Name: "p3"}, {Name: "p4"}, {Name: "p5"},
		},
		WorkExperience: []types.WorkExperience{{Company: "Acme"}, {Company: "Globex"}, {Company: "Initech"}, {Company: "Umbrella"}, {Company: "Hooli"}},
		GitHubUsername: "octocat",
		KaggleUsername: "kag",
		LinkedInURL:    "https://linkedin.com/in/jane",
	}

	score := ScoreCompleteness(resume)

	assert.Equal(t, 100, score.Total)
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, 20, score.Sections["contact_info"])
	assert.Equal(t, 15, score.Sections["education"])
	assert.Equal(t, 25, score.Sections["experience"])
	assert.Equal(t, 20, score.Sections["skills"])
	assert.Equal(t, 20, score.Sections["links"])
}

func TestScoreCompleteness_EmptyResume(t *testing.T) {
	score := ScoreCompleteness(&types.ExtractedResume{})

	assert.Equal(t, 0, score.Total)
	assert.Equal(t, 0, score.Percentage)
}

func TestScoreCompleteness_SectionCaps(t *testing.T) {
	resume := &types.ExtractedResume{
		Skills: make([]string, 50),
		Projects: []types.Project{
			{Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"}, {Name: "5"}, {Name: "6"}, {Name: "7"},
		},
	}

	score := ScoreCompleteness(resume)

	assert.Equal(t, 20, score.Sections["skills"])
	assert.Equal(t, 15, score.Sections["experience"])
}
