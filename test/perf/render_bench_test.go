package perf

import (
	"fmt"
	"testing"
	"time"

	"github.com/diegovelasquezweb/a11y-skill/internal/guard"
	"github.com/diegovelasquezweb/a11y-skill/internal/model"
	"github.com/diegovelasquezweb/a11y-skill/internal/report"
	"github.com/diegovelasquezweb/a11y-skill/internal/rules"
)

func benchFindings(n int) []model.Finding {
	sevs := []model.Severity{model.SevCritical, model.SevHigh, model.SevMedium, model.SevLow}
	out := make([]model.Finding, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Finding{
			ID:             fmt.Sprintf("A11Y-%03d", i+1),
			Title:          "Benchmark finding",
			Severity:       sevs[i%len(sevs)],
			WCAG:           "1.4.3",
			Area:           "Checkout",
			URL:            "https://example.com",
			Selector:       "#main",
			Impact:         "Hard to read",
			Reproduction:   []string{"Open the page", "Inspect the text"},
			Actual:         "Contrast is 2.1:1",
			Expected:       "Contrast is at least 4.5:1",
			RecommendedFix: "Darken the text color",
		})
	}
	return out
}

func BenchmarkReportBuild_100Findings(b *testing.B) {
	findings := benchFindings(100)
	meta := report.Meta{
		Project:    "Bench",
		Scope:      "All pages",
		WCAGTarget: "WCAG 2.1 AA",
		Auditor:    "Bench Team",
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out := report.Build(findings, meta)
		if len(out) == 0 {
			b.Fatal("empty report")
		}
	}
}

func BenchmarkConsistencyCheck(b *testing.B) {
	eng := rules.NewEngine(rules.Defaults())
	doc := "# Issue\n\n- Severity: High\n\nThe checkout form cannot be submitted with a keyboard.\n"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := guard.Check(doc, eng)
		if !res.OK {
			b.Fatal(res.Message)
		}
	}
}
