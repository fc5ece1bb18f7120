package findings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

func validFinding(id string) string {
	return `{
		"id": "` + id + `",
		"title": "Button missing accessible name",
		"severity": "High",
		"wcag": "4.1.2",
		"area": "Checkout",
		"url": "https://example.com/checkout",
		"selector": "#pay-now",
		"impact": "Screen reader users cannot identify the button",
		"reproduction": ["Open checkout", "Tab to the pay button"],
		"actual": "Button is announced as 'button'",
		"expected": "Button is announced with its visible label",
		"recommended_fix": "Add an aria-label"
	}`
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "findings.json")
	payload := `{"findings": [` + validFinding("A11Y-001") + `, ` + validFinding("A11Y-002") + `]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write findings: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d findings, want 2", len(got))
	}
	if got[0].ID != "A11Y-001" || got[0].Severity != model.SevHigh {
		t.Errorf("unexpected first finding: %+v", got[0])
	}
	if len(got[0].Reproduction) != 2 {
		t.Errorf("reproduction steps = %d, want 2", len(got[0].Reproduction))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want ParseError, got %v", err)
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "top level not an object",
			payload: `[1, 2, 3]`,
			wantMsg: "input must be a JSON object with a 'findings' array",
		},
		{
			name:    "findings key absent",
			payload: `{"items": []}`,
			wantMsg: "input must be a JSON object with a 'findings' array",
		},
		{
			name:    "findings not an array",
			payload: `{"findings": {"id": "x"}}`,
			wantMsg: "'findings' must be an array",
		},
		{
			name:    "element not an object",
			payload: `{"findings": ["just a string"]}`,
			wantMsg: "finding #1 must be an object",
		},
		{
			name:    "empty reproduction",
			payload: `{"findings": [` + strings.Replace(validFinding("A11Y-001"), `["Open checkout", "Tab to the pay button"]`, `[]`, 1) + `]}`,
			wantMsg: "finding #1 needs a non-empty 'reproduction' array",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse("test.json", []byte(c.payload))
			var serr *SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("want SchemaError, got %v", err)
			}
			if err.Error() != c.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), c.wantMsg)
			}
		})
	}
}

func TestParse_MissingKeysEnumeratesAll(t *testing.T) {
	// Finding #2 of 3 drops both wcag and url; the error must name
	// that position and both keys.
	broken := validFinding("A11Y-002")
	broken = strings.Replace(broken, `"wcag": "4.1.2",`, ``, 1)
	broken = strings.Replace(broken, `"url": "https://example.com/checkout",`, ``, 1)
	payload := `{"findings": [` + validFinding("A11Y-001") + `, ` + broken + `, ` + validFinding("A11Y-003") + `]}`

	_, err := Parse("test.json", []byte(payload))
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("want SchemaError, got %v", err)
	}
	if serr.Position != 2 {
		t.Errorf("position = %d, want 2", serr.Position)
	}
	want := "finding #2 is missing keys: wcag, url"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
