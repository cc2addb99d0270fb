// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-auditor/internal/scoring"
)

// Config represents the auditor configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or may be
// provided via CLI flags and environment variables.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to extracted resume JSON
	Claims string `json:"claims,omitempty"` // Path to pre-extracted claims JSON (optional)
	Job    string `json:"job,omitempty"`    // Path to job description text file
	Output string `json:"output,omitempty"` // Path to write the audit report JSON

	// Evidence sources
	GitHubToken   string `json:"github_token,omitempty"`   // Optional GitHub API token
	ArtifactLimit int    `json:"artifact_limit,omitempty" validate:"gte=0"`
	SourceTimeout int    `json:"source_timeout_seconds,omitempty" validate:"gte=0"`

	// Cache backend. File cache is the default; database_url selects
	// Postgres, redis_url selects Redis.
	CacheDir    string `json:"cache_dir,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	RedisURL    string `json:"redis_url,omitempty"`
	CacheTTL    int    `json:"cache_ttl_hours,omitempty" validate:"gte=0"`

	// Scoring
	Weights *scoring.Weights `json:"ats_weights,omitempty"`
	// CurrentYear anchors open-ended timelines. A fixed constant rather
	// than wall clock so repeated runs are reproducible.
	CurrentYear int `json:"current_year,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
	JSONLog bool `json:"json_log,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ArtifactLimit: 10,
		SourceTimeout: 15,
		CacheTTL:      24,
		CurrentYear:   2026,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. Call after Load so
// file values win over the environment.
func (c *Config) FromEnv() {
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
	if c.CacheDir == "" {
		c.CacheDir = os.Getenv("AUDIT_CACHE_DIR")
	}
	if c.CurrentYear == 0 {
		if year, err := strconv.Atoi(os.Getenv("AUDIT_CURRENT_YEAR")); err == nil {
			c.CurrentYear = year
		}
	}
}

// Validate checks field ranges and the ATS weight table. A malformed weight
// table is a configuration error and must abort startup.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.DatabaseURL != "" && c.RedisURL != "" {
		return fmt.Errorf("config error: 'database_url' and 'redis_url' are mutually exclusive")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Claims == "" {
		result.Claims = defaults.Claims
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}
	if result.ArtifactLimit == 0 {
		result.ArtifactLimit = defaults.ArtifactLimit
	}
	if result.SourceTimeout == 0 {
		result.SourceTimeout = defaults.SourceTimeout
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.CurrentYear == 0 {
		result.CurrentYear = defaults.CurrentYear
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	return result
}

// ATSWeights resolves the effective weight table.
func (c *Config) ATSWeights() scoring.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}
