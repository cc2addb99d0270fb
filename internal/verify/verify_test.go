package verify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-auditor/internal/types"
)

type stubSource struct {
	name      string
	profile   *types.EvidenceProfile
	artifacts []types.Artifact
	delay     time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) CheckIdentity(ctx context.Context, handle string) *types.EvidenceProfile {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return &types.EvidenceProfile{
				Source: s.name, Handle: handle,
				Exists: types.ExistsUnknown, FailureReason: "timeout",
			}
		}
	}
	return s.profile
}

func (s *stubSource) ListArtifacts(_ context.Context, _ string, limit int) []types.Artifact {
	if limit < len(s.artifacts) {
		return s.artifacts[:limit]
	}
	return s.artifacts
}

func githubStub() *stubSource {
	return &stubSource{
		name: "github",
		profile: &types.EvidenceProfile{
			Source: "github", Handle: "octocat", Exists: types.ExistsTrue,
		},
		artifacts: []types.Artifact{
			{
				Name:      "weather-dashboard",
				Languages: map[string]int{"Python": 12000, "JavaScript": 3000},
				CreatedAt: "2021-02-01T00:00:00Z",
				PushedAt:  "2022-06-01T00:00:00Z",
			},
			{
				Name:      "ml-notes",
				Languages: map[string]int{"Python": 800},
				CreatedAt: "2020-01-01T00:00:00Z",
			},
		},
	}
}

func TestRun_VerifiedSkillClaim(t *testing.T) {
	resume := &types.ExtractedResume{
		Skills:         []string{"Python"},
		GitHubUsername: "octocat",
	}
	claims := []types.Claim{
		{ID: "skill_0", Text: "Proficient in Python", Type: types.ClaimSkillMatch, Value: "python", Severity: types.SeverityHigh},
	}

	result := Run(context.Background(), resume, claims,
		[]Identity{{Source: githubStub(), Handle: "octocat"}}, Options{})

	require.Len(t, result.Verdicts, 1)
	verdict := result.Verdicts[0]
	assert.Equal(t, "skill_0", verdict.ClaimID)
	assert.Equal(t, types.StatusVerified, verdict.Status)
	assert.Equal(t, 95, verdict.TrustScore)
	assert.NotEmpty(t, verdict.Reasoning)
}

func TestRun_GhostUserProfileConfirmedAbsent(t *testing.T) {
	source := &stubSource{
		name: "github",
		profile: &types.EvidenceProfile{
			Source: "github", Handle: "ghost_user_9999", Exists: types.ExistsFalse,
		},
	}
	resume := &types.ExtractedResume{GitHubUsername: "ghost_user_9999"}
	claims := []types.Claim{
		{ID: "link_0", Text: "Has active github username: ghost_user_9999", Type: types.ClaimLinkVerification, Value: "ghost_user_9999", Severity: types.SeverityHigh},
	}

	result := Run(context.Background(), resume, claims,
		[]Identity{{Source: source, Handle: "ghost_user_9999"}}, Options{})

	require.NotNil(t, result.Profiles["github"])
	assert.Equal(t, types.ExistsFalse, result.Profiles["github"].Exists)
	assert.Empty(t, result.Artifacts["github"])

	require.Len(t, result.Verdicts, 1)
	assert.Equal(t, types.StatusUnverified, result.Verdicts[0].Status)
	assert.Equal(t, 0, result.Verdicts[0].TrustScore)
}

func TestRun_LinkClaimVerified(t *testing.T) {
	resume := &types.ExtractedResume{GitHubUsername: "octocat"}
	claims := []types.Claim{
		{ID: "link_0", Type: types.ClaimLinkVerification, Value: "octocat", Severity: types.SeverityHigh},
	}

	result := Run(context.Background(), resume, claims,
		[]Identity{{Source: githubStub(), Handle: "octocat"}}, Options{})

	require.Len(t, result.Verdicts, 1)
	assert.Equal(t, types.StatusVerified, result.Verdicts[0].Status)
	assert.Equal(t, 100, result.Verdicts[0].TrustScore)
}

func TestRun_TimelineClaimVerifiedByArtifact(t *testing.T) {
	resume := &types.ExtractedResume{
		GitHubUsername: "octocat",
		Projects: []types.Project{
			{Name: "weather-dashboard", Timeline: "2021-2022"},
		},
	}
	claims := []types.Claim{
		{ID: "timeline_0", Type: types.ClaimTimeline, Value: "2021-2022", Severity: types.SeverityMedium},
	}

	result := Run(context.Background(), resume, claims,
		[]Identity{{Source: githubStub(), Handle: "octocat"}}, Options{})

	require.Len(t, result.Timeline.Projects, 1)
	assert.True(t, result.Timeline.Projects[0].Verified)

	require.Len(t, result.Verdicts, 1)
	assert.Equal(t, types.StatusVerified, result.Verdicts[0].Status)
	assert.Equal(t, 90, result.Verdicts[0].TrustScore)
}

func TestRun_NumericAndUnknownClaimTypes(t *testing.T) {
	claims := []types.Claim{
		{ID: "numeric_0", Type: types.ClaimNumeric, Value: "500", Severity: types.SeverityMedium},
		{ID: "depth_1", Type: types.ClaimDepth, Value: "built it deeply", Severity: types.SeverityMedium},
	}

	result := Run(context.Background(), &types.ExtractedResume{}, claims, nil, Options{})

	require.Len(t, result.Verdicts, 2)
	assert.Equal(t, 50, result.Verdicts[0].TrustScore)
	assert.Equal(t, types.StatusUnverified, result.Verdicts[0].Status)

	assert.Equal(t, 0, result.Verdicts[1].TrustScore)
	assert.Contains(t, result.Verdicts[1].Reasoning, "unrecognized")
}

func TestRun_VerdictOrderFollowsSeveritySort(t *testing.T) {
	claims := []types.Claim{
		{ID: "low", Type: types.ClaimNumeric, Severity: types.SeverityLow},
		{ID: "high_a", Type: types.ClaimNumeric, Severity: types.SeverityHigh},
		{ID: "medium", Type: types.ClaimNumeric, Severity: types.SeverityMedium},
		{ID: "high_b", Type: types.ClaimNumeric, Severity: types.SeverityHigh},
	}

	result := Run(context.Background(), &types.ExtractedResume{}, claims, nil, Options{})

	require.Len(t, result.Verdicts, 4)
	assert.Equal(t, "high_a", result.Verdicts[0].ClaimID)
	assert.Equal(t, "high_b", result.Verdicts[1].ClaimID)
	assert.Equal(t, "medium", result.Verdicts[2].ClaimID)
	assert.Equal(t, "low", result.Verdicts[3].ClaimID)
}

func TestRun_SlowSourceDegradesToUnknown(t *testing.T) {
	slow := &stubSource{
		name:  "kaggle",
		delay: time.Second,
		profile: &types.EvidenceProfile{
			Source: "kaggle", Handle: "slowpoke", Exists: types.ExistsTrue,
		},
	}

	result := Run(context.Background(), &types.ExtractedResume{}, nil,
		[]Identity{{Source: slow, Handle: "slowpoke"}},
		Options{SourceTimeout: 10 * time.Millisecond})

	require.NotNil(t, result.Profiles["kaggle"])
	assert.Equal(t, types.ExistsUnknown, result.Profiles["kaggle"].Exists)
	assert.NotEmpty(t, result.Profiles["kaggle"].FailureReason)
}

func TestRun_MultipleSourcesJoinByName(t *testing.T) {
	kaggle := &stubSource{
		name: "kaggle",
		profile: &types.EvidenceProfile{
			Source: "kaggle", Handle: "kag", Exists: types.ExistsTrue,
		},
		artifacts: []types.Artifact{{Name: "titanic-entry", Kind: "competition"}},
	}

	result := Run(context.Background(), &types.ExtractedResume{}, nil, []Identity{
		{Source: githubStub(), Handle: "octocat"},
		{Source: kaggle, Handle: "kag"},
	}, Options{})

	assert.Equal(t, types.ExistsTrue, result.Profiles["github"].Exists)
	assert.Equal(t, types.ExistsTrue, result.Profiles["kaggle"].Exists)
	assert.Len(t, result.Artifacts["github"], 2)
	assert.Len(t, result.Artifacts["kaggle"], 1)
}

func TestRun_EmptyIdentitiesStillProducesReports(t *testing.T) {
	resume := &types.ExtractedResume{Skills: []string{"Python"}}

	result := Run(context.Background(), resume, nil, nil, Options{})

	require.NotNil(t, result.Consistency)
	assert.Equal(t, []string{"python"}, result.Consistency.UnverifiedSkills)
	require.NotNil(t, result.Timeline)
	assert.Equal(t, 100, result.Timeline.Overall.ConsistencyScore)
}
