package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/diegovelasquezweb/a11y-skill/internal/findings"
	"github.com/diegovelasquezweb/a11y-skill/internal/report"
)

var (
	reportInput   string
	reportProject string
	reportScope   string
	reportTarget  string
	reportAuditor string
	reportOutput  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a consolidated accessibility report from findings JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := reportScope
		if scope == "" {
			scope = cfg.Report.Scope
		}
		target := reportTarget
		if target == "" {
			target = cfg.Report.WCAGTarget
		}
		auditor := reportAuditor
		if auditor == "" {
			auditor = cfg.Report.Auditor
		}

		// Validation failures abort before any output is written.
		items, err := findings.Load(reportInput)
		if err != nil {
			return err
		}
		slog.Debug("findings loaded", "count", len(items), "input", reportInput)

		now := time.Now()
		markdown := report.Build(items, report.Meta{
			Project:    reportProject,
			Scope:      scope,
			WCAGTarget: target,
			Auditor:    auditor,
			Date:       now,
		})

		outPath := reportOutput
		if outPath == "" {
			outPath = filepath.Join(cfg.Report.OutDir,
				fmt.Sprintf("a11y-report-%s.md", now.Format("2006-01-02")))
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		slog.Info("report written", "path", outPath, "findings", len(items))
		fmt.Printf("Report written to %s\n", outPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "Path to findings JSON (required)")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name (required)")
	reportCmd.Flags().StringVar(&reportScope, "scope", "", "Audit scope")
	reportCmd.Flags().StringVar(&reportTarget, "wcag-target", "", "Target conformance, e.g. \"WCAG 2.1 AA\"")
	reportCmd.Flags().StringVar(&reportAuditor, "auditor", "", "Auditor name")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "Output markdown file")
	_ = reportCmd.MarkFlagRequired("input")
	_ = reportCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(reportCmd)
}
