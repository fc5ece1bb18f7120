package rules

import (
	"regexp"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

// Rule pairs a text pattern with the minimum severity its presence
// implies. Order is significant: rules are evaluated top-down and the
// first match wins, so a list of rules is never commutative.
type Rule struct {
	Pattern *regexp.Regexp
	Floor   model.Severity
	Reason  string
}

// Match is the outcome of a successful classification.
type Match struct {
	Floor  model.Severity
	Reason string
}

// Engine evaluates an ordered rule list against free text.
type Engine struct {
	rules []Rule
}

// Defaults returns the built-in severity floor rules in priority
// order, most severe signals first.
func Defaults() []Rule {
	return []Rule{
		{
			Pattern: regexp.MustCompile(`(?i)core task blocked|cannot complete|keyboard trap|inaccessible login`),
			Floor:   model.SevCritical,
			Reason:  "Issue text indicates a blocker for core user tasks.",
		},
		{
			Pattern: regexp.MustCompile(`(?i)checkout|payment|authentication|sign in|screen reader cannot`),
			Floor:   model.SevHigh,
			Reason:  "Issue impacts critical flow or key assistive technology behavior.",
		},
		{
			Pattern: regexp.MustCompile(`(?i)contrast|focus indicator|aria-|label missing`),
			Floor:   model.SevMedium,
			Reason:  "Issue indicates a notable accessibility barrier.",
		},
	}
}

// NewEngine builds an engine over the given rules. Callers that want
// the stock behavior pass Defaults(); extra rules loaded from a pack
// are appended after the built-ins so built-in priority is preserved.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Classify scans the full text against each rule in order and returns
// the first matching rule's floor and rationale. ok=false means no
// rule triggered; that is a valid outcome, not a Low floor.
func (e *Engine) Classify(text string) (Match, bool) {
	for _, r := range e.rules {
		if r.Pattern.MatchString(text) {
			return Match{Floor: r.Floor, Reason: r.Reason}, true
		}
	}
	return Match{}, false
}
