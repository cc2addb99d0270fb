// Package verify coordinates evidence collection and claim evaluation for a
// single audit run. Evidence sources are fanned out concurrently, joined at a
// barrier, and only then fed into the synchronous analysis stages.
package verify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-auditor/internal/consistency"
	"github.com/jonathan/resume-auditor/internal/evidence"
	"github.com/jonathan/resume-auditor/internal/timeline"
	"github.com/jonathan/resume-auditor/internal/types"
)

// IdentitySource is one external identity system. Implementations never
// return errors from lookups; failures degrade to exists=unknown or empty
// artifact lists inside the client.
type IdentitySource interface {
	Name() string
	CheckIdentity(ctx context.Context, handle string) *types.EvidenceProfile
	ListArtifacts(ctx context.Context, handle string, limit int) []types.Artifact
}

// Identity pairs a source with the handle claimed for it.
type Identity struct {
	Source IdentitySource
	Handle string
}

// Options configures one orchestrator run.
type Options struct {
	// SourceTimeout bounds each evidence source's combined identity and
	// artifact calls. A timed-out source degrades to exists=unknown.
	SourceTimeout time.Duration
	ArtifactLimit int
	CurrentYear   int
	Log           *zap.Logger
}

const (
	defaultSourceTimeout = 15 * time.Second
	defaultCurrentYear   = 2026
)

// Result is everything one orchestrator run produced.
type Result struct {
	Profiles         map[string]*types.EvidenceProfile
	Artifacts        map[string][]types.Artifact
	Consistency      *types.ConsistencyReport
	ConsistencyFlags []types.RedFlag
	Timeline         *types.TimelineReport
	Verdicts         []types.ClaimVerdict
}

// Run fans out to every identity's evidence source concurrently, waits for
// all of them, then runs the analyzers and maps each claim to a verdict.
// Claims are processed in severity order (high first, stable); the verdict
// list preserves that order regardless of evidence arrival order.
func Run(ctx context.Context, resume *types.ExtractedResume, claims []types.Claim, identities []Identity, opts Options) *Result {
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = defaultSourceTimeout
	}
	if opts.ArtifactLimit <= 0 {
		opts.ArtifactLimit = evidence.DefaultArtifactLimit
	}
	if opts.CurrentYear == 0 {
		opts.CurrentYear = defaultCurrentYear
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	result := &Result{
		Profiles:  make(map[string]*types.EvidenceProfile, len(identities)),
		Artifacts: make(map[string][]types.Artifact, len(identities)),
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for _, identity := range identities {
		if identity.Handle == "" || identity.Source == nil {
			continue
		}
		group.Go(func() error {
			sourceCtx, cancel := context.WithTimeout(groupCtx, opts.SourceTimeout)
			defer cancel()

			name := identity.Source.Name()
			profile := identity.Source.CheckIdentity(sourceCtx, identity.Handle)

			var artifacts []types.Artifact
			if profile != nil && profile.Exists == types.ExistsTrue {
				artifacts = identity.Source.ListArtifacts(sourceCtx, identity.Handle, opts.ArtifactLimit)
			}
			log.Debug("evidence source done",
				zap.String("source", name),
				zap.String("handle", identity.Handle),
				zap.Int("artifacts", len(artifacts)))

			mu.Lock()
			result.Profiles[name] = profile
			result.Artifacts[name] = artifacts
			mu.Unlock()
			return nil
		})
	}
	// Sources never return errors; the barrier only waits for completion.
	_ = group.Wait()

	allArtifacts := collectArtifacts(result.Artifacts)
	demonstrated := evidence.LanguageHistogram(allArtifacts)

	result.Consistency = consistency.CheckConsistency(
		resume.Skills,
		demonstrated,
		resume.ProjectTechnologies(),
		resume.WorkTechnologies(),
	)
	result.ConsistencyFlags = consistency.DetectRedFlags(resume.Skills, result.Consistency, demonstrated)
	result.Timeline = buildTimelineReport(resume, allArtifacts, opts.CurrentYear)

	prioritized := types.PrioritizeClaims(claims)
	result.Verdicts = EvaluateClaims(prioritized, &Reports{
		Consistency: result.Consistency,
		Timeline:    result.Timeline,
		Profiles:    result.Profiles,
		CurrentYear: opts.CurrentYear,
	})

	return result
}

func collectArtifacts(bySource map[string][]types.Artifact) []types.Artifact {
	// Fixed source order keeps downstream reports deterministic.
	var all []types.Artifact
	for _, source := range []string{evidence.SourceGitHub, evidence.SourceKaggle, evidence.SourceLinkedIn} {
		all = append(all, bySource[source]...)
	}
	return all
}

// buildTimelineReport validates every project and employment record and the
// cross-entry overlap picture. Employment activity evidence is derived from
// artifact timestamp years.
func buildTimelineReport(resume *types.ExtractedResume, artifacts []types.Artifact, currentYear int) *types.TimelineReport {
	report := &types.TimelineReport{
		Projects:   []types.TimelineValidation{},
		Employment: []types.TimelineValidation{},
	}

	for _, project := range resume.Projects {
		report.Projects = append(report.Projects,
			timeline.ValidateProjectTimeline(project.Name, project.Timeline, artifacts, currentYear))
	}

	activity := activityByYear(artifacts)
	for _, experience := range resume.WorkExperience {
		report.Employment = append(report.Employment,
			timeline.ValidateEmploymentTimeline(experience.Position, experience.Company, experience.StartYear, experience.EndYear, activity))
	}

	report.Overall = timeline.ValidateOverallConsistency(resume.Projects, resume.WorkExperience, currentYear)
	return report
}

func activityByYear(artifacts []types.Artifact) map[int]int {
	activity := make(map[int]int)
	for _, artifact := range artifacts {
		for _, stamp := range []string{artifact.CreatedAt, artifact.UpdatedAt, artifact.PushedAt} {
			if year, ok := timestampYear(stamp); ok {
				activity[year]++
			}
		}
	}
	return activity
}

func timestampYear(stamp string) (int, bool) {
	if len(stamp) < 4 {
		return 0, false
	}
	year := 0
	for _, r := range stamp[:4] {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}
