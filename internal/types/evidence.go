package types

import "time"

// Existence is the tri-state result of an identity lookup. "unknown" means the
// source could not be reached or answered unexpectedly; it is distinct from a
// source-confirmed "false" and must propagate as insufficient evidence.
type Existence string

const (
	ExistsTrue    Existence = "true"
	ExistsFalse   Existence = "false"
	ExistsUnknown Existence = "unknown"
)

// Known reports whether the source gave a definitive answer.
func (e Existence) Known() bool {
	return e == ExistsTrue || e == ExistsFalse
}

// EvidenceProfile is the existence/metadata record for one external identity.
type EvidenceProfile struct {
	Source        string    `json:"source"`
	Handle        string    `json:"handle"`
	Exists        Existence `json:"exists"`
	DisplayName   string    `json:"display_name,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Location      string    `json:"location,omitempty"`
	PublicRepos   int       `json:"public_repos,omitempty"`
	Followers     int       `json:"followers,omitempty"`
	Tier          string    `json:"tier,omitempty"`
	ProfileURL    string    `json:"profile_url,omitempty"`
	CreatedAt     string    `json:"created_at,omitempty"`
	UpdatedAt     string    `json:"updated_at,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
}

// Artifact is a single public work item from an evidence source, such as a
// repository, competition entry, or dataset.
type Artifact struct {
	Name        string         `json:"name"`
	URL         string         `json:"url,omitempty"`
	Description string         `json:"description,omitempty"`
	Kind        string         `json:"kind,omitempty"`
	Language    string         `json:"language,omitempty"`
	Languages   map[string]int `json:"languages,omitempty"`
	Stars       int            `json:"stars,omitempty"`
	Forks       int            `json:"forks,omitempty"`
	SizeKB      int            `json:"size_kb,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
	PushedAt    string         `json:"pushed_at,omitempty"`
}
