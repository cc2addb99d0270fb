package evidence

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/types"
)

// SourceLinkedIn is the cache/report key for the LinkedIn client.
const SourceLinkedIn = "linkedin"

const defaultLinkedInBase = "https://www.linkedin.com"

// LinkedInClient performs the limited verification LinkedIn's terms allow: a
// URL reachability check on the public profile page. No scraping.
type LinkedInClient struct {
	baseURL string
	client  *http.Client
	store   cache.Store
	ttl     time.Duration
	log     *zap.Logger
}

// LinkedInOptions configures a LinkedInClient. Zero values use defaults.
type LinkedInOptions struct {
	BaseURL string
	Timeout time.Duration
	Store   cache.Store
	TTL     time.Duration
	Logger  *zap.Logger
}

// NewLinkedInClient builds a client from options.
func NewLinkedInClient(opts LinkedInOptions) *LinkedInClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultLinkedInBase
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
	return &LinkedInClient{
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
		store:   opts.Store,
		ttl:     opts.TTL,
		log:     opts.Logger,
	}
}

// Name returns the source identifier.
func (c *LinkedInClient) Name() string { return SourceLinkedIn }

// CheckIdentity checks whether the public profile page answers. LinkedIn
// routinely blocks automated clients, so anything that is neither 200 nor 404
// stays "unknown".
func (c *LinkedInClient) CheckIdentity(ctx context.Context, handle string) *types.EvidenceProfile {
	handle = NormalizeLinkedInHandle(handle)
	profile := &types.EvidenceProfile{Source: SourceLinkedIn, Handle: handle, Exists: types.ExistsUnknown}
	if handle == "" {
		profile.FailureReason = "not a linkedin profile URL"
		return profile
	}

	if cached := profileFromCache(ctx, c.store, c.ttl, c.log, SourceLinkedIn, handle); cached != nil {
		return cached
	}

	url := fmt.Sprintf("%s/in/%s", c.baseURL, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		profile.FailureReason = fmt.Sprintf("failed to create request: %v", err)
		return profile
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		srcErr := &Error{Source: SourceLinkedIn, Handle: handle, Message: "profile check failed", Cause: err}
		c.log.Warn("linkedin lookup degraded", zap.String("handle", handle), zap.Error(srcErr))
		profile.FailureReason = srcErr.Error()
		return profile
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		profile.Exists = types.ExistsTrue
		profile.ProfileURL = url
	case http.StatusNotFound:
		c.log.Info("linkedin profile not found", zap.String("handle", handle))
		profile.Exists = types.ExistsFalse
	default:
		c.log.Debug("linkedin returned non-definitive status",
			zap.String("handle", handle), zap.Int("status", resp.StatusCode))
		profile.FailureReason = fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)
	}

	profileToCache(ctx, c.store, c.log, profile)
	return profile
}

// ListArtifacts always returns nil; LinkedIn exposes no artifact listing we
// are allowed to read.
func (c *LinkedInClient) ListArtifacts(context.Context, string, int) []types.Artifact {
	return nil
}
