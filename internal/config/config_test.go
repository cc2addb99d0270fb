package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-auditor/internal/scoring"
)

func TestLoad_ValidJSON(t *testing.T) {
	content := `{
		"resume": "testdata/resume.json",
		"job": "testdata/jd.txt",
		"artifact_limit": 5,
		"current_year": 2026,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "testdata/resume.json", cfg.Resume)
	assert.Equal(t, "testdata/jd.txt", cfg.Job)
	assert.Equal(t, 5, cfg.ArtifactLimit)
	assert.Equal(t, 2026, cfg.CurrentYear)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := &Config{
		Weights: &scoring.Weights{
			JDSkillMatch:        0.9,
			VerifiedClaims:      0.3,
			ResumeCompleteness:  0.2,
			TimelineConsistency: 0.1,
		},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_DefaultWeightsAccepted(t *testing.T) {
	weights := scoring.DefaultWeights()
	cfg := &Config{Weights: &weights}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MutuallyExclusiveBackends(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/audit",
		RedisURL:    "redis://localhost:6379",
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_RejectsNegativeLimits(t *testing.T) {
	cfg := &Config{ArtifactLimit: -1}

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Resume: "mine.json"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "mine.json", merged.Resume)
	assert.Equal(t, 10, merged.ArtifactLimit)
	assert.Equal(t, 15, merged.SourceTimeout)
	assert.Equal(t, 24, merged.CacheTTL)
	assert.Equal(t, 2026, merged.CurrentYear)
}

func TestFromEnv_FillsUnsetFieldsOnly(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("DATABASE_URL", "postgres://env/audit")

	cfg := &Config{DatabaseURL: "postgres://file/audit"}
	cfg.FromEnv()

	assert.Equal(t, "env-token", cfg.GitHubToken)
	assert.Equal(t, "postgres://file/audit", cfg.DatabaseURL)
}

func TestATSWeights_DefaultWhenUnset(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, scoring.DefaultWeights(), cfg.ATSWeights())
}
