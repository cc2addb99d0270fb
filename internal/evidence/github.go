package evidence

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/types"
)

const (
	// SourceGitHub is the cache/report key for the GitHub client.
	SourceGitHub = "github"

	defaultGitHubAPIBase = "https://api.github.com"

	// languageFetchConcurrency bounds concurrent per-repo language calls.
	languageFetchConcurrency = 4
)

// GitHubClient verifies identities and lists repositories via the GitHub REST
// API, with an optional personal access token for a higher rate limit.
type GitHubClient struct {
	baseURL string
	token   string
	client  *http.Client
	store   cache.Store
	ttl     time.Duration
	log     *zap.Logger
}

// GitHubOptions configures a GitHubClient. Zero values use defaults.
type GitHubOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Store   cache.Store
	TTL     time.Duration
	Logger  *zap.Logger
}

// NewGitHubClient builds a client from options.
func NewGitHubClient(opts GitHubOptions) *GitHubClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultGitHubAPIBase
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TTL == 0 {
		opts.TTL = cache.DefaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &GitHubClient{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		client:  &http.Client{Timeout: opts.Timeout},
		store:   opts.Store,
		ttl:     opts.TTL,
		log:     opts.Logger,
	}
}

// Name returns the source identifier.
func (c *GitHubClient) Name() string { return SourceGitHub }

func (c *GitHubClient) headers() map[string]string {
	h := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if c.token != "" {
		h["Authorization"] = "token " + c.token
	}
	return h
}

// githubUser mirrors the fields we keep from the GitHub user endpoint.
type githubUser struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// githubRepo mirrors the fields we keep from the repository list endpoint.
type githubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	PushedAt    string `json:"pushed_at"`
}

// CheckIdentity verifies that a GitHub user exists. Only a 404 yields a
// definitive "false"; transport failures and other statuses degrade to
// "unknown" with the reason attached.
func (c *GitHubClient) CheckIdentity(ctx context.Context, handle string) *types.EvidenceProfile {
	handle = NormalizeGitHubHandle(handle)
	profile := &types.EvidenceProfile{Source: SourceGitHub, Handle: handle, Exists: types.ExistsUnknown}
	if handle == "" {
		profile.FailureReason = "empty handle"
		return profile
	}

	if cached := profileFromCache(ctx, c.store, c.ttl, c.log, SourceGitHub, handle); cached != nil {
		return cached
	}

	var user githubUser
	status, err := getJSON(ctx, c.client, fmt.Sprintf("%s/users/%s", c.baseURL, handle), c.headers(), &user)
	switch {
	case err != nil:
		srcErr := &Error{Source: SourceGitHub, Handle: handle, Message: "user lookup failed", Cause: err}
		c.log.Warn("github lookup degraded", zap.String("handle", handle), zap.Error(srcErr))
		profile.FailureReason = srcErr.Error()
	case status == http.StatusOK:
		profile.Exists = types.ExistsTrue
		profile.DisplayName = user.Name
		profile.Bio = user.Bio
		profile.Location = user.Location
		profile.PublicRepos = user.PublicRepos
		profile.Followers = user.Followers
		profile.ProfileURL = user.HTMLURL
		profile.CreatedAt = user.CreatedAt
		profile.UpdatedAt = user.UpdatedAt
	case status == http.StatusNotFound:
		c.log.Info("github user not found", zap.String("handle", handle))
		profile.Exists = types.ExistsFalse
	default:
		c.log.Warn("github returned unexpected status", zap.String("handle", handle), zap.Int("status", status))
		profile.FailureReason = fmt.Sprintf("unexpected HTTP status %d", status)
	}

	profileToCache(ctx, c.store, c.log, profile)
	return profile
}

// ListArtifacts fetches the user's most recently pushed repositories, capped
// at limit, and fills in each repository's language breakdown. Failures yield
// an empty list.
func (c *GitHubClient) ListArtifacts(ctx context.Context, handle string, limit int) []types.Artifact {
	handle = NormalizeGitHubHandle(handle)
	if handle == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultArtifactLimit
	}

	cacheKey := SourceGitHub + "_repos"
	if c.store != nil {
		entry, err := c.store.Get(ctx, cacheKey, handle, c.ttl)
		if err == nil && entry != nil {
			var artifacts []types.Artifact
			if cache.Decode(entry, &artifacts) == nil {
				c.log.Debug("github repos served from cache", zap.String("handle", handle))
				return artifacts
			}
		}
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=pushed&direction=desc", c.baseURL, handle, limit)
	var repos []githubRepo
	status, err := getJSON(ctx, c.client, url, c.headers(), &repos)
	if err != nil || status != http.StatusOK {
		c.log.Warn("github repo listing degraded",
			zap.String("handle", handle), zap.Int("status", status), zap.Error(err))
		return nil
	}

	artifacts := make([]types.Artifact, len(repos))
	for i, repo := range repos {
		artifacts[i] = types.Artifact{
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Description: repo.Description,
			Kind:        "repository",
			Language:    repo.Language,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			SizeKB:      repo.Size,
			CreatedAt:   repo.CreatedAt,
			UpdatedAt:   repo.UpdatedAt,
			PushedAt:    repo.PushedAt,
		}
	}

	// Per-repo language breakdowns are fetched concurrently but bounded, to
	// stay inside the rate limit.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(languageFetchConcurrency)
	for i := range artifacts {
		group.Go(func() error {
			langURL := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, handle, artifacts[i].Name)
			languages := make(map[string]int)
			if status, err := getJSON(groupCtx, c.client, langURL, c.headers(), &languages); err == nil && status == http.StatusOK {
				artifacts[i].Languages = languages
			}
			return nil
		})
	}
	_ = group.Wait()

	if c.store != nil {
		if err := c.store.Put(ctx, cacheKey, handle, artifacts); err != nil {
			c.log.Warn("failed to cache github repos", zap.String("handle", handle), zap.Error(err))
		}
	}
	return artifacts
}
