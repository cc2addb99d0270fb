// Package timeline parses date ranges from resume claims and validates them
// against evidence-source activity windows and against each other.
package timeline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-auditor/internal/types"
)

// Validation statuses. Absence of evidence never confirms a timeline; it only
// fails to contradict it.
const (
	StatusVerified       = "verified"
	StatusMismatch       = "mismatch"
	StatusUnparseable    = "unparseable"
	StatusNoMatchingRepo = "no_matching_repo"
	StatusNoEvidence     = "no_evidence"
)

// creationYearTolerance allows a repository to be created a year before or
// after the claimed project start.
const creationYearTolerance = 1

// overlapPenalty is deducted from the overall consistency score per
// overlapping interval pair.
const overlapPenalty = 10

var yearRE = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// YearRange is a claimed start/end year pair.
type YearRange struct {
	Start int
	End   int
}

// String renders the canonical "YYYY-YYYY" form.
func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseTimeline extracts a year range from free text. It first splits on the
// common range separators (hyphen, en dash, em dash), then falls back to
// picking 4-digit years anywhere in the string. A single year uses currentYear
// as the end; currentYear is a configured constant, not wall clock, so runs
// are reproducible. Unparseable input returns ok=false, never an error.
func ParseTimeline(text string, currentYear int) (YearRange, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return YearRange{}, false
	}

	for _, sep := range []string{"-", "–", "—"} {
		left, right, found := strings.Cut(text, sep)
		if !found {
			continue
		}
		start, okStart := yearFrom(left)
		end, okEnd := yearFrom(right)
		if okStart && okEnd {
			return YearRange{Start: start, End: end}, true
		}
	}

	years := yearRE.FindAllString(text, -1)
	switch {
	case len(years) >= 2:
		start, _ := strconv.Atoi(years[0])
		end, _ := strconv.Atoi(years[1])
		return YearRange{Start: start, End: end}, true
	case len(years) == 1:
		start, _ := strconv.Atoi(years[0])
		return YearRange{Start: start, End: currentYear}, true
	}

	return YearRange{}, false
}

// yearFrom extracts the first 4-digit year from one side of a separator.
func yearFrom(part string) (int, bool) {
	match := yearRE.FindString(part)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// ValidateProjectTimeline checks a claimed project timeline against the
// evidence artifacts. The project is matched to an artifact by
// case-insensitive substring in either direction; on a match the artifact's
// creation year must fall within the tolerance of the claimed start.
func ValidateProjectTimeline(projectName, claimedTimeline string, artifacts []types.Artifact, currentYear int) types.TimelineValidation {
	validation := types.TimelineValidation{
		Name:            projectName,
		Kind:            "project",
		ClaimedTimeline: claimedTimeline,
		Verified:        false,
	}

	claimed, ok := ParseTimeline(claimedTimeline, currentYear)
	if !ok {
		validation.Status = StatusUnparseable
		return validation
	}
	validation.ClaimedTimeline = claimed.String()

	matched, found := matchArtifact(projectName, artifacts)
	if !found {
		validation.Status = StatusNoMatchingRepo
		return validation
	}

	createdYear, ok := yearFrom(matched.CreatedAt)
	if !ok {
		validation.Status = StatusNoEvidence
		return validation
	}
	validation.RepoCreatedYear = createdYear

	if createdYear >= claimed.Start-creationYearTolerance && createdYear <= claimed.Start+creationYearTolerance {
		validation.Status = StatusVerified
		validation.Verified = true
	} else {
		validation.Status = StatusMismatch
	}
	return validation
}

// matchArtifact finds the first artifact whose name contains, or is contained
// in, the project name (case-insensitive).
func matchArtifact(projectName string, artifacts []types.Artifact) (types.Artifact, bool) {
	project := strings.ToLower(strings.TrimSpace(projectName))
	if project == "" {
		return types.Artifact{}, false
	}
	for _, artifact := range artifacts {
		name := strings.ToLower(artifact.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, project) || strings.Contains(project, name) {
			return artifact, true
		}
	}
	return types.Artifact{}, false
}

// ValidateEmploymentTimeline checks whether any unit of activity evidence
// falls inside the claimed employment period. activityByYear maps a year to an
// activity count. With no activity data the record is "no_evidence" and not
// verified: absence of evidence is not evidence of absence, but it cannot
// count as confirmation either.
func ValidateEmploymentTimeline(position, company string, startYear, endYear int, activityByYear map[int]int) types.TimelineValidation {
	name := company
	if position != "" {
		name = position + " at " + company
	}
	validation := types.TimelineValidation{
		Name:     name,
		Kind:     "employment",
		Verified: false,
	}

	if startYear == 0 || endYear == 0 {
		validation.Status = StatusUnparseable
		return validation
	}
	validation.ClaimedTimeline = YearRange{Start: startYear, End: endYear}.String()

	activity := 0
	for year, count := range activityByYear {
		if year >= startYear && year <= endYear {
			activity += count
		}
	}
	validation.ActivityCount = activity

	if activity > 0 {
		validation.Status = StatusVerified
		validation.Verified = true
	} else {
		validation.Status = StatusNoEvidence
	}
	return validation
}

// interval is one named timeline entry used for overlap detection.
type interval struct {
	kind  string
	name  string
	start int
	end   int
}

func (iv interval) label() string {
	return iv.kind + ": " + iv.name
}

// ValidateOverallConsistency builds one ordered interval list from all
// projects and employment records, flags every pairwise overlap (inclusive
// comparison, regardless of entry type), and checks chronological order.
// Unparseable timelines are excluded from the math rather than failing it.
func ValidateOverallConsistency(projects []types.Project, work []types.WorkExperience, currentYear int) types.OverallTimeline {
	var intervals []interval

	for _, project := range projects {
		if project.Timeline == "" {
			continue
		}
		claimed, ok := ParseTimeline(project.Timeline, currentYear)
		if !ok {
			continue
		}
		name := project.Name
		if name == "" {
			name = "unnamed"
		}
		intervals = append(intervals, interval{kind: "project", name: name, start: claimed.Start, end: claimed.End})
	}

	for _, experience := range work {
		if experience.StartYear == 0 {
			continue
		}
		end := experience.EndYear
		if end == 0 {
			end = currentYear
		}
		name := experience.Company
		if name == "" {
			name = "unnamed"
		}
		intervals = append(intervals, interval{kind: "work", name: name, start: experience.StartYear, end: end})
	}

	result := types.OverallTimeline{
		TotalEntries:    len(intervals),
		Overlaps:        []types.Overlap{},
		IsChronological: true,
	}

	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a.start <= b.end && b.start <= a.end {
				result.Overlaps = append(result.Overlaps, types.Overlap{
					First:  a.label(),
					Second: b.label(),
					Period: fmt.Sprintf("%d-%d", max(a.start, b.start), min(a.end, b.end)),
				})
			}
		}
	}

	result.IsChronological = sort.SliceIsSorted(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	score := 100 - overlapPenalty*len(result.Overlaps)
	if score < 0 {
		score = 0
	}
	result.ConsistencyScore = score

	return result
}
