package guard

import (
	"fmt"
	"regexp"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
	"github.com/diegovelasquezweb/a11y-skill/internal/rules"
)

// declaredRe matches the declared-severity line of an issue document.
// The prefix is exact and the value is case-sensitive; anything else
// on the line disqualifies it.
var declaredRe = regexp.MustCompile(`(?m)^- Severity:\s*(Critical|High|Medium|Low)\s*$`)

// Result is the outcome of one consistency check. It is a value, not
// an error: a failed check never aborts a batch.
type Result struct {
	OK      bool
	Message string
}

// DeclaredSeverity extracts the declared severity from an issue
// document. When several lines parse, the first one wins; absence is
// reported via ok=false.
func DeclaredSeverity(content string) (model.Severity, bool) {
	m := declaredRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return model.Severity(m[1]), true
}

// Check validates that a document's declared severity is consistent
// with the floor the rule engine infers from its full text. Only
// under-reporting fails; declaring a severity above the floor passes.
func Check(content string, eng *rules.Engine) Result {
	declared, ok := DeclaredSeverity(content)
	if !ok {
		return Result{OK: false, Message: "Missing '- Severity: ...' line"}
	}

	match, triggered := eng.Classify(content)
	if !triggered {
		return Result{
			OK:      true,
			Message: fmt.Sprintf("OK: no rule trigger, declared severity '%s' accepted", declared),
		}
	}

	if !model.MoreSevereOrEqual(declared, match.Floor) {
		return Result{
			OK: false,
			Message: fmt.Sprintf("Declared '%s' is lower than inferred minimum '%s'. %s",
				declared, match.Floor, match.Reason),
		}
	}
	return Result{
		OK:      true,
		Message: fmt.Sprintf("OK: declared '%s' meets inferred minimum '%s'", declared, match.Floor),
	}
}
