package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/config"
	"github.com/jonathan/resume-auditor/internal/logger"
	"github.com/jonathan/resume-auditor/internal/observability"
	"github.com/jonathan/resume-auditor/internal/pipeline"
	"github.com/jonathan/resume-auditor/internal/schemas"
	"github.com/jonathan/resume-auditor/internal/types"
)

var auditCommand = &cobra.Command{
	Use:   "audit",
	Short: "Run the full claim verification and scoring pipeline",
	Long: `Audits an extracted resume: derives verifiable claims (or loads pre-extracted
ones), checks them against external evidence sources, and writes trust, ATS,
and red-flag reports.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAuditCmd,
}

var (
	auditConfigPath string
	auditResume     string
	auditClaims     string
	auditJob        string
	auditOutput     string
	auditCacheDir   string
	auditDBURL      string
	auditRedisURL   string
	auditVerbose    bool
	auditJSONLog    bool
)

func init() {
	// Config file flag (processed first)
	auditCommand.Flags().StringVar(&auditConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	auditCommand.Flags().StringVarP(&auditResume, "resume", "r", "", "Path to extracted resume JSON (required)")
	auditCommand.Flags().StringVar(&auditClaims, "claims", "", "Path to pre-extracted claims JSON (optional, derived from resume if omitted)")
	auditCommand.Flags().StringVarP(&auditJob, "jd", "j", "", "Path to job description text file (optional)")
	auditCommand.Flags().StringVarP(&auditOutput, "output", "o", "", "Path to write the audit report JSON (defaults to stdout)")
	auditCommand.Flags().StringVar(&auditCacheDir, "cache-dir", "", "Directory for the file-based evidence cache")
	auditCommand.Flags().StringVar(&auditDBURL, "db-url", "", "PostgreSQL URL for the evidence cache (optional, defaults to DATABASE_URL env var)")
	auditCommand.Flags().StringVar(&auditRedisURL, "redis-url", "", "Redis URL for the evidence cache (optional, defaults to REDIS_URL env var)")
	auditCommand.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print formatted report sections")
	auditCommand.Flags().BoolVar(&auditJSONLog, "json-log", false, "Emit logs as JSON")

	rootCmd.AddCommand(auditCommand)
}

func runAuditCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if auditConfigPath != "" {
		loaded, err := config.Load(auditConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// CLI overrides take priority over config file values.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = auditResume
	}
	if cmd.Flags().Changed("claims") {
		cfg.Claims = auditClaims
	}
	if cmd.Flags().Changed("jd") {
		cfg.Job = auditJob
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = auditOutput
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = auditCacheDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = auditDBURL
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL = auditRedisURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = auditVerbose
	}
	if cmd.Flags().Changed("json-log") {
		cfg.JSONLog = auditJSONLog
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// A malformed weight table must abort before any network work.
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (or 'resume' in the config file)")
	}

	log, err := logger.New(cfg.JSONLog, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	var claimList []types.Claim
	if cfg.Claims != "" {
		claimList, err = loadClaims(cfg.Claims)
		if err != nil {
			return err
		}
	}

	jdText, err := loadJD(cfg.Job)
	if err != nil {
		return err
	}

	store, cleanup, err := openStore(ctx, &cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := pipeline.Run(ctx, pipeline.RunOptions{
		Resume:        resume,
		Claims:        claimList,
		JDText:        jdText,
		GitHubToken:   cfg.GitHubToken,
		ArtifactLimit: cfg.ArtifactLimit,
		SourceTimeout: time.Duration(cfg.SourceTimeout) * time.Second,
		CurrentYear:   cfg.CurrentYear,
		Weights:       cfg.ATSWeights(),
		Store:         store,
		CacheTTL:      time.Duration(cfg.CacheTTL) * time.Hour,
		Log:           log,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfiles(report.Profiles)
		printer.PrintTrustReport(&report.Trust)
		printer.PrintATSReport(&report.ATS)
		printer.PrintRedFlags(report.RedFlags)
		printer.PrintExecutiveSummary(&report.Summary)
	}

	return writeReport(report, cfg.Output)
}

// loadResume reads and schema-validates the extracted resume document.
func loadResume(path string) (*types.ExtractedResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	if err := schemas.ValidateExtractedResume(data); err != nil {
		return nil, fmt.Errorf("resume file %s: %w", path, err)
	}
	var resume types.ExtractedResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

// loadClaims reads and schema-validates a pre-extracted claims document.
func loadClaims(path string) ([]types.Claim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims file %s: %w", path, err)
	}
	if err := schemas.ValidateClaims(data); err != nil {
		return nil, fmt.Errorf("claims file %s: %w", path, err)
	}
	var claims []types.Claim
	if err := json.Unmarshal(data, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims JSON: %w", err)
	}
	return claims, nil
}

func loadJD(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}
	return string(data), nil
}

// openStore selects the cache backend: Postgres when db-url is set, Redis
// when redis-url is set, otherwise the file cache.
func openStore(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	ttl := time.Duration(cfg.CacheTTL) * time.Hour

	switch {
	case cfg.DatabaseURL != "":
		store, err := cache.ConnectPG(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect evidence cache database: %w", err)
		}
		return store, store.Close, nil
	case cfg.RedisURL != "":
		store, err := cache.ConnectRedis(ctx, cfg.RedisURL, ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect evidence cache redis: %w", err)
		}
		return store, func() {}, nil
	default:
		dir := cfg.CacheDir
		if dir == "" {
			dir = defaultCacheDir()
		}
		store, err := cache.NewFileStore(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open evidence cache directory: %w", err)
		}
		return store, func() {}, nil
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume_audit_cache"
	}
	return home + "/.resume_audit_cache"
}

func writeReport(report *types.AuditReport, output string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", output, err)
	}
	return nil
}
