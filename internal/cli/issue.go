package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diegovelasquezweb/a11y-skill/internal/issue"
	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

var (
	issueTitle    string
	issueSeverity string
	issueWCAG     string
	issueLevel    string
	issueArea     string
	issueURL      string
	issueSelector string
	issueRepro    string
	issueActual   string
	issueExpected string
	issueImpact   string
	issueFix      string
	issueEvidence string

	issueRationale   string
	issueCoreBlocked string
	issueWorkaround  string
	issueScopeImpact string
	issueReleaseRec  string

	issuePrefix string
	issueOutDir string
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Generate a single accessibility issue markdown file",
	RunE: func(cmd *cobra.Command, args []string) error {
		severity, ok := model.ParseSeverity(issueSeverity)
		if !ok {
			return fmt.Errorf("invalid --severity %q (want Critical, High, Medium or Low)", issueSeverity)
		}
		if err := oneOf("--level", issueLevel, "A", "AA", "AAA"); err != nil {
			return err
		}
		if err := oneOf("--core-blocked", issueCoreBlocked, "Yes", "No"); err != nil {
			return err
		}
		if err := oneOf("--workaround", issueWorkaround, "Yes", "No"); err != nil {
			return err
		}
		if err := oneOf("--release-recommendation", issueReleaseRec,
			"Block now", "Fix this release", "Next release", "Backlog"); err != nil {
			return err
		}

		prefix := issuePrefix
		if prefix == "" {
			prefix = cfg.Issue.Prefix
		}
		outDir := issueOutDir
		if outDir == "" {
			outDir = cfg.Issue.OutDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		issueID, err := issue.NextID(outDir, prefix)
		if err != nil {
			return err
		}
		slog.Debug("issue id allocated", "id", issueID, "dir", outDir)

		fields := issue.Fields{
			Title:    issueTitle,
			Severity: severity,
			WCAG:     issueWCAG,
			Level:    issueLevel,
			Area:     issueArea,
			URL:      issueURL,
			Selector: issueSelector,
			Repro:    issueRepro,
			Actual:   issueActual,
			Expected: issueExpected,
			Impact:   issueImpact,
			Fix:      issueFix,
			Evidence: issueEvidence,

			Rationale:             issueRationale,
			CoreBlocked:           issueCoreBlocked,
			Workaround:            issueWorkaround,
			ScopeImpact:           issueScopeImpact,
			ReleaseRecommendation: issueReleaseRec,
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%s-%s.md", issueID, issue.Slugify(issueTitle)))
		if err := os.WriteFile(outPath, []byte(issue.Build(fields, issueID)), 0o644); err != nil {
			return fmt.Errorf("write issue: %w", err)
		}

		slog.Info("issue written", "id", issueID, "path", outPath)
		fmt.Printf("Issue written to %s\n", outPath)
		return nil
	},
}

func oneOf(flag, val string, allowed ...string) error {
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of: %v)", flag, val, allowed)
}

func init() {
	issueCmd.Flags().StringVar(&issueTitle, "title", "", "Issue title (required)")
	issueCmd.Flags().StringVar(&issueSeverity, "severity", "", "Severity: Critical|High|Medium|Low (required)")
	issueCmd.Flags().StringVar(&issueWCAG, "wcag", "", "WCAG criterion, e.g. 1.4.3 (required)")
	issueCmd.Flags().StringVar(&issueLevel, "level", "AA", "WCAG level: A|AA|AAA")
	issueCmd.Flags().StringVar(&issueArea, "area", "", "Affected area (required)")
	issueCmd.Flags().StringVar(&issueURL, "url", "", "Page URL (required)")
	issueCmd.Flags().StringVar(&issueSelector, "selector", "", "DOM selector / component ID")
	issueCmd.Flags().StringVar(&issueRepro, "repro", "", "Reproduction steps separated by |")
	issueCmd.Flags().StringVar(&issueActual, "actual", "Current behavior not provided.", "Actual behavior")
	issueCmd.Flags().StringVar(&issueExpected, "expected", "Expected behavior not provided.", "Expected behavior")
	issueCmd.Flags().StringVar(&issueImpact, "impact", "User impact not provided.", "User impact")
	issueCmd.Flags().StringVar(&issueFix, "fix", "Fix guidance not provided.", "Recommended fix")
	issueCmd.Flags().StringVar(&issueEvidence, "evidence", "", "Screenshot / recording link")
	issueCmd.Flags().StringVar(&issueRationale, "rationale", "Severity rationale not provided.", "Why this severity is correct")
	issueCmd.Flags().StringVar(&issueCoreBlocked, "core-blocked", "No", "Is a core user task blocked? Yes|No")
	issueCmd.Flags().StringVar(&issueWorkaround, "workaround", "Yes", "Is there a reasonable workaround? Yes|No")
	issueCmd.Flags().StringVar(&issueScopeImpact, "scope-impact", "Single component", "Scope of impact")
	issueCmd.Flags().StringVar(&issueReleaseRec, "release-recommendation", "Fix this release",
		"Block now|Fix this release|Next release|Backlog")
	issueCmd.Flags().StringVar(&issuePrefix, "prefix", "", "Issue file prefix")
	issueCmd.Flags().StringVar(&issueOutDir, "out-dir", "", "Output directory")
	_ = issueCmd.MarkFlagRequired("title")
	_ = issueCmd.MarkFlagRequired("severity")
	_ = issueCmd.MarkFlagRequired("wcag")
	_ = issueCmd.MarkFlagRequired("area")
	_ = issueCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(issueCmd)
}
