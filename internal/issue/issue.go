package issue

import (
	"fmt"
	"strings"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

// Fields holds everything a single issue document needs. Repro is a
// "|"-separated list of steps; the free-text rationale fields are
// echoed verbatim into the Severity Rationale block.
type Fields struct {
	Title    string
	Severity model.Severity
	WCAG     string
	Level    string
	Area     string
	URL      string
	Selector string
	Repro    string
	Actual   string
	Expected string
	Impact   string
	Fix      string
	Evidence string

	Rationale             string
	CoreBlocked           string
	Workaround            string
	ScopeImpact           string
	ReleaseRecommendation string
}

// Steps splits the reproduction field on "|", trimming whitespace and
// dropping empty segments. An empty result gets a placeholder step so
// the rendered section is never blank.
func (f Fields) Steps() []string {
	var steps []string
	for _, s := range strings.Split(f.Repro, "|") {
		if t := strings.TrimSpace(s); t != "" {
			steps = append(steps, t)
		}
	}
	if len(steps) == 0 {
		steps = []string{"Reproduction steps not provided."}
	}
	return steps
}

// Build renders a single issue document with a fixed section layout.
// Pure function of its inputs.
func Build(f Fields, issueID string) string {
	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add("# Accessibility Issue")
	add("")
	add("Use this template for each audit finding.")
	add("")
	add("## Issue")
	add("")
	add(fmt.Sprintf("- ID: %s", issueID))
	add(fmt.Sprintf("- Title: %s", f.Title))
	add(fmt.Sprintf("- Severity: %s", f.Severity))
	add(fmt.Sprintf("- WCAG Criterion: %s", f.WCAG))
	add(fmt.Sprintf("- WCAG Level: %s", f.Level))
	add(fmt.Sprintf("- Affected Area: %s", f.Area))
	add("")
	add("## Reproduction")
	add("")
	for i, step := range f.Steps() {
		add(fmt.Sprintf("%d. %s", i+1, step))
	}
	add("")
	add("## Actual Behavior")
	add("")
	add(f.Actual)
	add("")
	add("## Expected Behavior")
	add("")
	add(f.Expected)
	add("")
	add("## User Impact")
	add("")
	add(f.Impact)
	add("")
	add("## Severity Rationale")
	add("")
	add(fmt.Sprintf("- Why this severity is correct: %s", f.Rationale))
	add(fmt.Sprintf("- Is a core user task blocked? %s", f.CoreBlocked))
	add(fmt.Sprintf("- Is there a reasonable workaround? %s", f.Workaround))
	add(fmt.Sprintf("- Scope of impact: %s", f.ScopeImpact))
	add(fmt.Sprintf("- Release recommendation: %s", f.ReleaseRecommendation))
	add("")
	add("## Evidence")
	add("")
	add(fmt.Sprintf("- URL: %s", f.URL))
	add(fmt.Sprintf("- Screenshot / recording: %s", f.Evidence))
	add(fmt.Sprintf("- DOM selector / component ID: %s", f.Selector))
	add("- Tool output (if any):")
	add("")
	add("## Recommended Fix")
	add("")
	add(f.Fix)
	add("")
	add("## QA Retest Notes")
	add("")
	add("- Retest date:")
	add("- Retested by:")
	add("- Status: Pass | Fail | Needs follow-up")
	add("- Notes:")
	add("")

	return strings.Join(lines, "\n")
}
