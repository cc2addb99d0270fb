package evidence

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/types"
)

const (
	// SourceKaggle is the cache/report key for the Kaggle client.
	SourceKaggle = "kaggle"

	defaultKaggleBase = "https://www.kaggle.com"
)

// KaggleClient verifies competition-platform identities via the public Kaggle
// API, falling back to a profile-page check when the API misbehaves.
type KaggleClient struct {
	baseURL string
	client  *http.Client
	store   cache.Store
	ttl     time.Duration
	log     *zap.Logger
}

// KaggleOptions configures a KaggleClient. Zero values use defaults.
type KaggleOptions struct {
	BaseURL string
	Timeout time.Duration
	Store   cache.Store
	TTL     time.Duration
	Logger  *zap.Logger
}

// NewKaggleClient builds a client from options.
func NewKaggleClient(opts KaggleOptions) *KaggleClient {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultKaggleBase
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
	return &KaggleClient{
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
		store:   opts.Store,
		ttl:     opts.TTL,
		log:     opts.Logger,
	}
}

// Name returns the source identifier.
func (c *KaggleClient) Name() string { return SourceKaggle }

type kaggleProfile struct {
	DisplayName string `json:"displayName"`
	Tier        string `json:"tier"`
}

type kaggleItem struct {
	Title string `json:"title"`
	Ref   string `json:"ref"`
	URL   string `json:"url"`
}

// CheckIdentity verifies that a Kaggle user exists. The JSON profile endpoint
// is authoritative; on an unexpected status the client falls back to fetching
// the public profile page and inspecting the document.
func (c *KaggleClient) CheckIdentity(ctx context.Context, handle string) *types.EvidenceProfile {
	handle = NormalizeKaggleHandle(handle)
	profile := &types.EvidenceProfile{Source: SourceKaggle, Handle: handle, Exists: types.ExistsUnknown}
	if handle == "" {
		profile.FailureReason = "empty handle"
		return profile
	}

	if cached := profileFromCache(ctx, c.store, c.ttl, c.log, SourceKaggle, handle); cached != nil {
		return cached
	}

	var user kaggleProfile
	status, err := getJSON(ctx, c.client, fmt.Sprintf("%s/api/v1/users/%s/profile", c.baseURL, handle), nil, &user)
	switch {
	case err != nil:
		srcErr := &Error{Source: SourceKaggle, Handle: handle, Message: "profile lookup failed", Cause: err}
		c.log.Warn("kaggle lookup degraded", zap.String("handle", handle), zap.Error(srcErr))
		profile.FailureReason = srcErr.Error()
	case status == http.StatusOK:
		profile.Exists = types.ExistsTrue
		profile.DisplayName = user.DisplayName
		profile.Tier = user.Tier
		profile.ProfileURL = fmt.Sprintf("%s/%s", c.baseURL, handle)
	case status == http.StatusNotFound:
		c.log.Info("kaggle user not found", zap.String("handle", handle))
		profile.Exists = types.ExistsFalse
	default:
		c.log.Debug("kaggle API unavailable, trying profile page",
			zap.String("handle", handle), zap.Int("status", status))
		c.checkProfilePage(ctx, handle, profile)
	}

	profileToCache(ctx, c.store, c.log, profile)
	return profile
}

// checkProfilePage fetches the public profile page as a fallback. A parseable
// page that is not Kaggle's not-found document counts as existence.
func (c *KaggleClient) checkProfilePage(ctx context.Context, handle string, profile *types.EvidenceProfile) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, handle), nil)
	if err != nil {
		profile.FailureReason = fmt.Sprintf("failed to create request: %v", err)
		return
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		profile.FailureReason = (&Error{Source: SourceKaggle, Handle: handle, Message: "profile page fetch failed", Cause: err}).Error()
		return
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		profile.Exists = types.ExistsFalse
	case resp.StatusCode == http.StatusOK:
		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			profile.FailureReason = fmt.Sprintf("failed to parse profile page: %v", err)
			return
		}
		title := strings.TrimSpace(doc.Find("title").First().Text())
		if strings.Contains(strings.ToLower(title), "not found") {
			profile.Exists = types.ExistsFalse
			return
		}
		profile.Exists = types.ExistsTrue
		profile.ProfileURL = fmt.Sprintf("%s/%s", c.baseURL, handle)
		if title != "" {
			profile.DisplayName = strings.TrimSuffix(title, " | Kaggle")
		}
	default:
		profile.FailureReason = fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)
	}
}

// ListArtifacts returns the user's competitions and datasets, capped at limit
// in total. Failures yield an empty list.
func (c *KaggleClient) ListArtifacts(ctx context.Context, handle string, limit int) []types.Artifact {
	handle = NormalizeKaggleHandle(handle)
	if handle == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultArtifactLimit
	}

	cacheKey := SourceKaggle + "_artifacts"
	if c.store != nil {
		entry, err := c.store.Get(ctx, cacheKey, handle, c.ttl)
		if err == nil && entry != nil {
			var artifacts []types.Artifact
			if cache.Decode(entry, &artifacts) == nil {
				c.log.Debug("kaggle artifacts served from cache", zap.String("handle", handle))
				return artifacts
			}
		}
	}

	var artifacts []types.Artifact
	for _, kind := range []string{"competitions", "datasets"} {
		var items []kaggleItem
		url := fmt.Sprintf("%s/api/v1/users/%s/%s", c.baseURL, handle, kind)
		status, err := getJSON(ctx, c.client, url, nil, &items)
		if err != nil || status != http.StatusOK {
			c.log.Warn("kaggle artifact listing degraded",
				zap.String("handle", handle), zap.String("kind", kind), zap.Int("status", status), zap.Error(err))
			continue
		}
		for _, item := range items {
			if len(artifacts) >= limit {
				break
			}
			name := item.Title
			if name == "" {
				name = item.Ref
			}
			artifacts = append(artifacts, types.Artifact{
				Name: name,
				URL:  item.URL,
				Kind: strings.TrimSuffix(kind, "s"),
			})
		}
	}

	if c.store != nil && len(artifacts) > 0 {
		if err := c.store.Put(ctx, cacheKey, handle, artifacts); err != nil {
			c.log.Warn("failed to cache kaggle artifacts", zap.String("handle", handle), zap.Error(err))
		}
	}
	return artifacts
}
