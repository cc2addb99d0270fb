// Package evidence provides clients for the external identity systems used to
// corroborate resume claims: GitHub, Kaggle, and LinkedIn.
//
// Clients never surface network failures as errors. Transport problems,
// timeouts, and unexpected statuses degrade to Existence "unknown" (or an
// empty artifact list) with the failure reason recorded for audit; only a
// source-confirmed 404 produces "false". Definitive lookups are written to a
// durable cache so repeated runs inside the validity window stay off the
// network.
package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-auditor/internal/cache"
	"github.com/jonathan/resume-auditor/internal/types"
)

const (
	// DefaultTimeout bounds each external call.
	DefaultTimeout = 10 * time.Second

	// DefaultArtifactLimit caps artifact fetches per identity. Fetching only
	// the most recently updated artifacts is a deliberate accuracy/cost
	// trade-off to respect third-party rate limits.
	DefaultArtifactLimit = 10

	userAgent = "resume-auditor/1.0"
)

// Error describes a failed call to an evidence source. It is recorded on the
// profile rather than returned to callers.
type Error struct {
	Source  string
	Handle  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s lookup for %q: %s: %v", e.Source, e.Handle, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s lookup for %q: %s", e.Source, e.Handle, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// getJSON performs a GET and decodes a JSON body on 200. It returns the HTTP
// status so callers can distinguish not-found from transport trouble. A
// non-200 status is not an error here.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// profileFromCache returns a cached profile if one is fresh, otherwise nil.
func profileFromCache(ctx context.Context, store cache.Store, ttl time.Duration, log *zap.Logger, source, handle string) *types.EvidenceProfile {
	if store == nil {
		return nil
	}
	entry, err := store.Get(ctx, source, handle, ttl)
	if err != nil || entry == nil {
		return nil
	}
	var cached types.EvidenceProfile
	if cache.Decode(entry, &cached) != nil {
		return nil
	}
	log.Debug("profile served from cache", zap.String("source", source), zap.String("handle", handle))
	cached.FetchedAt = entry.FetchedAt
	return &cached
}

// profileToCache stores definitive lookups only; "unknown" results are
// retried on the next run rather than pinned for the validity window.
func profileToCache(ctx context.Context, store cache.Store, log *zap.Logger, profile *types.EvidenceProfile) {
	if store == nil || !profile.Exists.Known() {
		return
	}
	if err := store.Put(ctx, profile.Source, profile.Handle, profile); err != nil {
		log.Warn("failed to cache profile",
			zap.String("source", profile.Source), zap.String("handle", profile.Handle), zap.Error(err))
	}
}

// LanguageHistogram counts, per technology, how many artifacts demonstrate it.
// The per-artifact language breakdown is preferred; the primary language is
// the fallback when no breakdown was fetched.
func LanguageHistogram(artifacts []types.Artifact) map[string]int {
	histogram := make(map[string]int)
	for _, artifact := range artifacts {
		if len(artifact.Languages) > 0 {
			for lang := range artifact.Languages {
				histogram[lang]++
			}
			continue
		}
		if artifact.Language != "" {
			histogram[artifact.Language]++
		}
	}
	return histogram
}
