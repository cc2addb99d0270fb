// Package pipeline provides the high-level orchestration for one audit run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/claims"
	"github.com/jonathan/resume-auditor/internal/evidence"
	"github.com/jonathan/resume-auditor/internal/jd"
	"github.com/jonathan/resume-auditor/internal/scoring"
	"github.com/jonathan/resume-auditor/internal/synthesis"
	"github.com/jonathan/resume-auditor/internal/types"
	"github.com/jonathan/resume-auditor/internal/verify"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one audit run.
type RunOptions struct {
	Resume *types.ExtractedResume // Required
	// Claims may be supplied pre-extracted; when nil they are derived from
	// the resume.
	Claims []types.Claim
	JDText string

	GitHubToken   string
	ArtifactLimit int
	SourceTimeout time.Duration
	CurrentYear   int
	Weights       scoring.Weights

	// Store backs the evidence cache. Nil disables caching.
	Store    cache.Store
	CacheTTL time.Duration
	// Identities overrides evidence source construction; used by tests and
	// by callers that bring their own clients.
	Identities []verify.Identity

	Log        *zap.Logger
	OnProgress ProgressCallback
}

func (opts *RunOptions) emit(runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
	}
}

// Run executes the full audit: claim extraction, concurrent evidence
// collection, the analyzers, both scorers, and synthesis. It returns an error
// only for invalid input; evidence failures degrade inside the report.
func Run(ctx context.Context, opts RunOptions) (*types.AuditReport, error) {
	if opts.Resume == nil {
		return nil, fmt.Errorf("pipeline: resume is required")
	}
	if err := opts.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.New().String()
	report := &types.AuditReport{RunID: runID}

	auditClaims := opts.Claims
	if auditClaims == nil {
		opts.emit(runID, "claims", "extracting claims from resume")
		auditClaims = claims.Extract(opts.Resume)
	}
	report.Claims = types.PrioritizeClaims(auditClaims)
	log.Info("claims ready", zap.String("run_id", runID), zap.Int("count", len(report.Claims)))

	identities := opts.Identities
	if identities == nil {
		identities = buildIdentities(opts)
	}

	opts.emit(runID, "verify", "collecting evidence and evaluating claims")
	result := verify.Run(ctx, opts.Resume, report.Claims, identities, verify.Options{
		SourceTimeout: opts.SourceTimeout,
		ArtifactLimit: opts.ArtifactLimit,
		CurrentYear:   opts.CurrentYear,
		Log:           log,
	})
	report.Profiles = result.Profiles
	report.Consistency = result.Consistency
	report.Timeline = result.Timeline

	opts.emit(runID, "scoring", "computing trust and ats scores")
	report.Trust = scoring.ScoreAllClaims(result.Verdicts)
	report.Completeness = scoring.ScoreCompleteness(opts.Resume)

	jdSkills := jd.ExtractSkills(opts.JDText)
	verifiedTechs := make([]string, 0, len(result.Consistency.VerifiedSkills))
	for _, match := range result.Consistency.VerifiedSkills {
		verifiedTechs = append(verifiedTechs, match.Skill)
	}
	matchResult := jd.MatchSkills(jdSkills, opts.Resume.Skills, verifiedTechs)

	report.ATS = scoring.CalculateATS(opts.Weights, scoring.ATSInputs{
		JDSkillMatchPct:        matchResult.Percentage,
		ClaimVerificationPct:   scoring.ClaimVerificationPct(result.Verdicts),
		CompletenessPct:        float64(report.Completeness.Percentage),
		TimelineConsistencyPct: scoring.TimelineConsistencyPct(result.Timeline),
		MatchedSkills:          matchResult.Matched,
		MissingSkills:          matchResult.Missing,
	})

	opts.emit(runID, "synthesis", "collecting red flags and building summary")
	report.RedFlags = synthesis.CollectRedFlags(result.ConsistencyFlags, result.Profiles)
	report.Summary = synthesis.BuildExecutiveSummary(report.ATS, report.Trust, report.RedFlags)

	log.Info("audit complete",
		zap.String("run_id", runID),
		zap.Int("ats_score", report.ATS.Score),
		zap.Int("trust_score", report.Trust.OverallTrustScore),
		zap.String("recommendation", report.Summary.Recommendation))

	return report, nil
}

// buildIdentities constructs an evidence client for every identity handle the
// resume claims.
func buildIdentities(opts RunOptions) []verify.Identity {
	resume := opts.Resume
	var identities []verify.Identity

	if resume.GitHubUsername != "" {
		client := evidence.NewGitHubClient(evidence.GitHubOptions{
			Token:  opts.GitHubToken,
			Store:  opts.Store,
			TTL:    opts.CacheTTL,
			Logger: opts.Log,
		})
		identities = append(identities, verify.Identity{Source: client, Handle: resume.GitHubUsername})
	}
	if resume.KaggleUsername != "" {
		client := evidence.NewKaggleClient(evidence.KaggleOptions{
			Store:  opts.Store,
			TTL:    opts.CacheTTL,
			Logger: opts.Log,
		})
		identities = append(identities, verify.Identity{Source: client, Handle: resume.KaggleUsername})
	}
	if resume.LinkedInURL != "" {
		client := evidence.NewLinkedInClient(evidence.LinkedInOptions{
			Store:  opts.Store,
			TTL:    opts.CacheTTL,
			Logger: opts.Log,
		})
		identities = append(identities, verify.Identity{Source: client, Handle: resume.LinkedInURL})
	}

	return identities
}
