package findings

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

// SchemaError reports a findings payload that does not satisfy the
// required-field contract. Position is the 1-based index of the
// offending finding; 0 means the failure is about the payload itself.
type SchemaError struct {
	Position int
	Missing  []string
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.Position == 0 {
		return e.Reason
	}
	if len(e.Missing) > 0 {
		return fmt.Sprintf("finding #%d is missing keys: %s", e.Position, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("finding #%d %s", e.Position, e.Reason)
}

// ParseError reports an unreadable or non-JSON input file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("read findings %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a findings JSON file and validates it against the schema
// contract. On success the findings are returned unchanged; no
// normalization is applied.
func Load(path string) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Parse(path, b)
}

// Parse validates a raw findings payload. Split from Load so tests can
// exercise validation without touching the filesystem.
func Parse(path string, b []byte) ([]model.Finding, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(b, &payload); err != nil {
		if json.Valid(b) {
			// Well-formed JSON that is not an object is a schema
			// problem, not a parse problem.
			return nil, &SchemaError{Reason: "input must be a JSON object with a 'findings' array"}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	raw, ok := payload["findings"]
	if !ok {
		return nil, &SchemaError{Reason: "input must be a JSON object with a 'findings' array"}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &SchemaError{Reason: "'findings' must be an array"}
	}

	out := make([]model.Finding, 0, len(elems))
	for i, elem := range elems {
		pos := i + 1

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			return nil, &SchemaError{Position: pos, Reason: "must be an object"}
		}

		// Report every missing key for this finding, not just the first.
		var missing []string
		for _, key := range model.RequiredKeys {
			if _, ok := fields[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, &SchemaError{Position: pos, Missing: missing}
		}

		var steps []string
		if err := json.Unmarshal(fields["reproduction"], &steps); err != nil || len(steps) == 0 {
			return nil, &SchemaError{Position: pos, Reason: "needs a non-empty 'reproduction' array"}
		}

		var f model.Finding
		if err := json.Unmarshal(elem, &f); err != nil {
			return nil, &SchemaError{Position: pos, Reason: fmt.Sprintf("has a malformed field: %v", err)}
		}
		out = append(out, f)
	}
	return out, nil
}
