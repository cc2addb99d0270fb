// Package types defines the shared data structures for the resume audit pipeline.
package types

import "sort"

// ClaimType identifies the verification strategy for a claim.
type ClaimType string

const (
	ClaimSkillMatch       ClaimType = "skill_match"
	ClaimNumeric          ClaimType = "numeric"
	ClaimTimeline         ClaimType = "timeline"
	ClaimDepth            ClaimType = "depth"
	ClaimLinkVerification ClaimType = "link_verification"
)

// Severity ranks how important a claim or red flag is for the audit.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// severityRank orders severities for prioritization; unknown values sort last.
var severityRank = map[Severity]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

// Claim is a single verifiable assertion extracted from the resume.
// Claims are immutable once created; the orchestrator consumes them read-only.
type Claim struct {
	ID              string    `json:"id"`
	Text            string    `json:"claim"`
	Type            ClaimType `json:"claim_type"`
	Value           string    `json:"value"`
	SourceReference string    `json:"source"`
	Severity        Severity  `json:"severity"`
}

// PrioritizeClaims returns a new slice sorted by severity (high first).
// The sort is stable: claims with equal severity keep their original order.
func PrioritizeClaims(claims []Claim) []Claim {
	prioritized := make([]Claim, len(claims))
	copy(prioritized, claims)

	sort.SliceStable(prioritized, func(i, j int) bool {
		ri, ok := severityRank[prioritized[i].Severity]
		if !ok {
			ri = len(severityRank)
		}
		rj, ok := severityRank[prioritized[j].Severity]
		if !ok {
			rj = len(severityRank)
		}
		return ri < rj
	})

	return prioritized
}

// ClaimStatus is the verification outcome for a claim.
type ClaimStatus string

const (
	StatusVerified          ClaimStatus = "verified"
	StatusPartiallyVerified ClaimStatus = "partially_verified"
	StatusUnverified        ClaimStatus = "unverified"
)

// ClaimVerdict is the verification outcome and numeric confidence for one claim.
// Verdicts are derived deterministically from the analyzer reports and never
// mutated after creation.
type ClaimVerdict struct {
	ClaimID    string      `json:"claim_id"`
	Claim      string      `json:"claim"`
	Type       ClaimType   `json:"claim_type"`
	Value      string      `json:"value"`
	Status     ClaimStatus `json:"status"`
	TrustScore int         `json:"trust_score"`
	Evidence   []string    `json:"evidence"`
	Reasoning  string      `json:"reasoning"`
}
