// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfiles outputs the evidence profile results per source.
func (p *Printer) PrintProfiles(profiles map[string]*types.EvidenceProfile) {
	if len(profiles) == 0 {
		return
	}

	var sb strings.Builder
	for _, source := range []string{"github", "kaggle", "linkedin"} {
		profile := profiles[source]
		if profile == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-9s %s  exists=%s", source, profile.Handle, profile.Exists))
		if profile.FailureReason != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", profile.FailureReason))
		}
		sb.WriteString("\n")
	}

	p.printBox("EVIDENCE PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrustReport outputs the aggregate trust score and the most
// interesting verdicts.
func (p *Printer) PrintTrustReport(report *types.TrustReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n", report.OverallTrustScore, report.OverallLabel))
	sb.WriteString(fmt.Sprintf("Claims:   %d total, %d verified, %d partial, %d unverified\n",
		report.Summary.Total, report.Summary.Verified, report.Summary.PartiallyVerified, report.Summary.Unverified))
	if report.Summary.Flagged > 0 {
		sb.WriteString(fmt.Sprintf("Flagged:  %d\n", report.Summary.Flagged))
	}
	sb.WriteString("\n")

	count := min(len(report.Verdicts), maxItemsToShow)
	for i := 0; i < count; i++ {
		verdict := report.Verdicts[i]
		sb.WriteString(fmt.Sprintf("#%d  [%s] %d  %s\n", i+1, verdict.Status, verdict.TrustScore, verdict.Claim))
	}
	if len(report.Verdicts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Verdicts)-maxItemsToShow))
	}

	p.printBox("TRUST REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSReport outputs the weighted ATS breakdown.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (%s)\n\n", report.Score, report.Status))

	rows := []struct {
		name      string
		component types.ATSComponent
	}{
		{"JD skill match", report.Breakdown.JDSkillMatch},
		{"Verified claims", report.Breakdown.VerifiedClaims},
		{"Completeness", report.Breakdown.ResumeCompleteness},
		{"Timelines", report.Breakdown.TimelineConsistency},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-16s %5.1f%% × %.1f = %5.1f\n",
			row.name, row.component.Percentage, row.component.Weight, row.component.Contribution))
	}

	if len(report.MissingSkills) > 0 {
		missing := strings.Join(report.MissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMissing:  %s\n", missing))
	}

	p.printBox("ATS REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRedFlags outputs the collected red flags.
func (p *Printer) PrintRedFlags(flags []types.RedFlag) {
	if len(flags) == 0 {
		return
	}

	var sb strings.Builder
	for _, flag := range flags {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", flag.Severity, flag.Type))
		sb.WriteString(fmt.Sprintf("   %s\n", flag.Description))
	}

	p.printBox("RED FLAGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExecutiveSummary outputs the final recommendation.
func (p *Printer) PrintExecutiveSummary(summary *types.ExecutiveSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n\n", summary.Recommendation))
	sb.WriteString(fmt.Sprintf("ATS score:   %d\n", summary.ATSScore))
	sb.WriteString(fmt.Sprintf("Trust score: %d\n", summary.TrustScore))
	sb.WriteString(fmt.Sprintf("Red flags:   %d (%d high severity)\n\n", summary.RedFlagCount, summary.HighSeverityFlags))
	sb.WriteString(summary.Reasoning)

	p.printBox("EXECUTIVE SUMMARY", sb.String())
}
