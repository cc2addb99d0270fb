package types

// SkillMatch records where a claimed skill was substantiated.
type SkillMatch struct {
	Skill     string `json:"skill"`
	FoundIn   string `json:"found_in"`
	RepoCount int    `json:"repo_count,omitempty"`
}

// ConsistencyReport compares claimed skills against observed technologies.
type ConsistencyReport struct {
	VerifiedSkills          []SkillMatch `json:"verified_skills"`
	PartiallyVerifiedSkills []SkillMatch `json:"partially_verified_skills"`
	UnverifiedSkills        []string     `json:"unverified_skills"`
	UndeclaredTechnologies  []string     `json:"undeclared_technologies"`
	// ConsistencyScore is in [0,1]. Zero claimed skills yields 0 and sets
	// NoClaims so downstream consumers can distinguish "nothing to verify".
	ConsistencyScore float64 `json:"consistency_score"`
	NoClaims         bool    `json:"no_claims,omitempty"`
}

// TimelineValidation is the per-project or per-employment validation record.
type TimelineValidation struct {
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	ClaimedTimeline string `json:"claimed_timeline,omitempty"`
	Status          string `json:"status"`
	Verified        bool   `json:"verified"`
	RepoCreatedYear int    `json:"repo_created_year,omitempty"`
	ActivityCount   int    `json:"activity_count,omitempty"`
}

// Overlap records one pair of overlapping timeline intervals.
type Overlap struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Period string `json:"period"`
}

// OverallTimeline is the cross-entry consistency record.
type OverallTimeline struct {
	TotalEntries    int       `json:"total_timeline_entries"`
	Overlaps        []Overlap `json:"overlapping_periods"`
	IsChronological bool      `json:"is_chronological"`
	// ConsistencyScore is in [0,100]: 100 minus 10 per overlap, floored at 0.
	ConsistencyScore int `json:"consistency_score"`
}

// TimelineReport aggregates all timeline validation output.
type TimelineReport struct {
	Projects   []TimelineValidation `json:"project_timelines"`
	Employment []TimelineValidation `json:"work_timelines"`
	Overall    OverallTimeline      `json:"overall_consistency"`
}

// StatusCounts tallies claim verdicts by status.
type StatusCounts struct {
	Total             int `json:"total_claims"`
	Verified          int `json:"verified"`
	PartiallyVerified int `json:"partially_verified"`
	Unverified        int `json:"unverified"`
	Flagged           int `json:"flagged"`
}

// StatusPercentages expresses StatusCounts as rounded percentages.
type StatusPercentages struct {
	Verified          int `json:"verified"`
	PartiallyVerified int `json:"partially_verified"`
	Unverified        int `json:"unverified"`
	Flagged           int `json:"flagged"`
}

// TrustReport is the aggregate over all claim verdicts.
type TrustReport struct {
	OverallTrustScore int               `json:"overall_trust_score"`
	OverallLabel      string            `json:"overall_label"`
	Summary           StatusCounts      `json:"summary"`
	Percentages       StatusPercentages `json:"percentages"`
	Verdicts          []ClaimVerdict    `json:"scored_claims"`
	Reasoning         string            `json:"reasoning"`
}

// ATSComponent is one weighted term of the ATS formula.
type ATSComponent struct {
	Percentage   float64 `json:"percentage"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"weighted_contribution"`
}

// ATSBreakdown shows how each component contributed to the ATS score.
type ATSBreakdown struct {
	JDSkillMatch        ATSComponent `json:"jd_skill_match"`
	VerifiedClaims      ATSComponent `json:"verified_claims"`
	ResumeCompleteness  ATSComponent `json:"resume_completeness"`
	TimelineConsistency ATSComponent `json:"timeline_consistency"`
}

// ATSReport is the weighted applicant-tracking fit score.
type ATSReport struct {
	Score         int          `json:"ats_score"`
	Status        string       `json:"ats_status"`
	Breakdown     ATSBreakdown `json:"breakdown"`
	MatchedSkills []string     `json:"matched_skills,omitempty"`
	MissingSkills []string     `json:"missing_skills,omitempty"`
}

// RedFlag is a discrete, severity-tagged concern raised during analysis.
// Flags accumulate in one ordered collection and are never removed.
type RedFlag struct {
	Type           string   `json:"type"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	SupportingData []string `json:"supporting_data,omitempty"`
}

// ExecutiveSummary is the terminal artifact of the audit.
type ExecutiveSummary struct {
	Recommendation    string `json:"recommendation"`
	Reasoning         string `json:"reasoning"`
	ATSScore          int    `json:"ats_score"`
	TrustScore        int    `json:"trust_score"`
	RedFlagCount      int    `json:"red_flags_count"`
	HighSeverityFlags int    `json:"high_severity_flags"`
}

// CompletenessScore is the resume completeness rubric result.
type CompletenessScore struct {
	Sections   map[string]int `json:"scores"`
	Total      int            `json:"total_score"`
	MaxScore   int            `json:"max_score"`
	Percentage int            `json:"percentage"`
}

// AuditReport is everything one audit run produced.
type AuditReport struct {
	RunID        string                      `json:"run_id"`
	Claims       []Claim                     `json:"claims"`
	Profiles     map[string]*EvidenceProfile `json:"profiles"`
	Consistency  *ConsistencyReport          `json:"consistency_report,omitempty"`
	Timeline     *TimelineReport             `json:"timeline_report,omitempty"`
	Completeness CompletenessScore           `json:"completeness"`
	Trust        TrustReport                 `json:"trust_report"`
	ATS          ATSReport                   `json:"ats_report"`
	RedFlags     []RedFlag                   `json:"red_flags"`
	Summary      ExecutiveSummary            `json:"executive_summary"`
}
