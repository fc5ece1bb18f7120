package guard

import (
	"fmt"
	"os"

	"github.com/diegovelasquezweb/a11y-skill/internal/rules"
)

// FileResult pairs a checked file with its consistency result.
type FileResult struct {
	Path    string `json:"path"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// CheckFiles runs the consistency check over each file independently
// and reports whether every document passed. An empty path list is a
// trivially successful no-op. Documents share no state, so one
// failure never stops the scan of the rest; only an unreadable file
// aborts the whole invocation.
func CheckFiles(paths []string, eng *rules.Engine) ([]FileResult, bool, error) {
	results := make([]FileResult, 0, len(paths))
	allOK := true
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, false, fmt.Errorf("read issue file %s: %w", p, err)
		}
		res := Check(string(b), eng)
		results = append(results, FileResult{Path: p, OK: res.OK, Message: res.Message})
		if !res.OK {
			allOK = false
		}
	}
	return results, allOK, nil
}
