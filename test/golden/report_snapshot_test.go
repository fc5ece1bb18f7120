package golden

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
	"github.com/diegovelasquezweb/a11y-skill/internal/report"
)

var update = flag.Bool("update", false, "update golden snapshot")

const goldenFile = "expected_report.md"

func goldenFindings() []model.Finding {
	// Low before Critical on purpose: the snapshot locks in the
	// severity-ascending sort.
	return []model.Finding{
		{
			ID:             "A11Y-002",
			Title:          "Footer links fail contrast",
			Severity:       model.SevLow,
			WCAG:           "1.4.3",
			Area:           "Footer",
			URL:            "https://shop.example.com",
			Selector:       "footer a",
			Impact:         "Links are hard to read",
			Reproduction:   []string{"Open any page", "Scroll to the footer"},
			Actual:         "Contrast ratio is 2.4:1",
			Expected:       "Contrast ratio is at least 4.5:1",
			RecommendedFix: "Use the darker link color token",
		},
		{
			ID:             "A11Y-001",
			Title:          "Coupon modal traps keyboard focus",
			Severity:       model.SevCritical,
			WCAG:           "2.1.2",
			Area:           "Checkout",
			URL:            "https://shop.example.com/checkout",
			Selector:       ".coupon-modal",
			Impact:         "Keyboard users cannot finish checkout",
			Reproduction:   []string{"Open checkout", "Apply a coupon", "Press Escape"},
			Actual:         "Focus cannot leave the modal",
			Expected:       "Escape closes the modal and restores focus",
			RecommendedFix: "Add a close handler that restores focus",
		},
	}
}

func TestGolden_ReportSnapshot(t *testing.T) {
	meta := report.Meta{
		Project:    "Storefront",
		Scope:      "Checkout and sign-up flows",
		WCAGTarget: "WCAG 2.2 AA",
		Auditor:    "Access Works",
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), // stable date for snapshot
	}
	got := []byte(report.Build(goldenFindings(), meta))

	if *update {
		if err := os.WriteFile(goldenFile, got, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenFile)
		return
	}

	want, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("read golden (%s): %v\nRun with: go test ./test/golden -run TestGolden_ReportSnapshot -args -update", goldenFile, err)
	}

	if !bytes.Equal(bytes.TrimSpace(got), bytes.TrimSpace(want)) {
		tmp := filepath.Join(t.TempDir(), "got.md")
		_ = os.WriteFile(tmp, got, 0o644)
		t.Fatalf("golden mismatch.\n  golden: %s\n  actual: %s\nTip: update with\n  go test ./test/golden -run TestGolden_ReportSnapshot -count=1 -args -update", goldenFile, tmp)
	}
}

func TestGolden_RenderIsStableAcrossRuns(t *testing.T) {
	meta := report.Meta{
		Project:    "Storefront",
		Scope:      "Checkout and sign-up flows",
		WCAGTarget: "WCAG 2.2 AA",
		Auditor:    "Access Works",
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	a := report.Build(goldenFindings(), meta)
	b := report.Build(goldenFindings(), meta)
	if a != b {
		t.Fatal("report rendering must be byte-identical across runs")
	}
}
