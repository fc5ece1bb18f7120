package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

// Meta carries the audit header fields for a consolidated report.
type Meta struct {
	Project    string
	Scope      string
	WCAGTarget string
	Auditor    string
	Date       time.Time
}

// Build renders the consolidated markdown report. It is a pure
// function of its inputs: identical findings and date always produce
// byte-identical output.
func Build(in []model.Finding, meta Meta) string {
	// Stable sort so findings of equal severity keep their input
	// order. Unknown severities rank last but are never dropped.
	findings := make([]model.Finding, len(in))
	copy(findings, in)
	sort.SliceStable(findings, func(i, j int) bool {
		return model.Rank(findings[i].Severity) < model.Rank(findings[j].Severity)
	})

	totals := map[model.Severity]int{}
	for _, f := range findings {
		if model.Rank(f.Severity) <= model.Rank(model.SevLow) {
			totals[f.Severity]++
		}
	}

	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add(fmt.Sprintf("# Accessibility Report - %s", meta.Project))
	add("")
	add("## 1. Executive Summary")
	add("")
	add(fmt.Sprintf("- Date: %s", meta.Date.Format("2006-01-02")))
	add(fmt.Sprintf("- Auditor: %s", meta.Auditor))
	add(fmt.Sprintf("- Scope: %s", meta.Scope))
	add(fmt.Sprintf("- Target: %s", meta.WCAGTarget))
	add(fmt.Sprintf("- Total findings: %d", len(findings)))
	add(fmt.Sprintf("- Severity split: Critical %d, High %d, Medium %d, Low %d",
		totals[model.SevCritical], totals[model.SevHigh], totals[model.SevMedium], totals[model.SevLow]))
	add("")

	add("## 2. Findings Table")
	add("")
	add("| ID | Severity | WCAG | Area | Short Impact |")
	add("|---|---|---|---|---|")
	for _, f := range findings {
		add(fmt.Sprintf("| %s | %s | %s | %s | %s |", f.ID, f.Severity, f.WCAG, f.Area, f.Impact))
	}
	add("")

	add("## 3. Issue Details")
	add("")
	for _, f := range findings {
		add(fmt.Sprintf("### %s - %s", f.ID, f.Title))
		add("")
		add(fmt.Sprintf("- Severity: %s", f.Severity))
		add(fmt.Sprintf("- WCAG Criterion: %s", f.WCAG))
		add(fmt.Sprintf("- Affected Area: %s", f.Area))
		add(fmt.Sprintf("- URL: %s", f.URL))
		add(fmt.Sprintf("- Selector/Component: %s", f.Selector))
		add("")
		add("**Reproduction**")
		for i, step := range f.Reproduction {
			add(fmt.Sprintf("%d. %s", i+1, step))
		}
		add("")
		add("**Actual Behavior**")
		add(f.Actual)
		add("")
		add("**Expected Behavior**")
		add(f.Expected)
		add("")
		add("**User Impact**")
		add(f.Impact)
		add("")
		add("**Recommended Fix**")
		add(f.RecommendedFix)
		add("")
	}

	add("## 4. Remediation Plan")
	add("")
	add("- Immediate: Fix all Critical and High findings first.")
	add("- Current release: Resolve remaining Medium findings tied to affected flows.")
	add("- Backlog: Track Low findings and close during related component updates.")
	add("")

	add("## 5. Retest Checklist")
	add("")
	add("- Verify each fixed issue with keyboard-only navigation.")
	add("- Verify with screen reader spot-check.")
	add("- Re-run automated checks and compare diffs.")
	add("- Attach updated evidence for each closed issue.")
	add("")

	return strings.Join(lines, "\n")
}
