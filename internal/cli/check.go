package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diegovelasquezweb/a11y-skill/internal/guard"
	"github.com/diegovelasquezweb/a11y-skill/internal/rules"
)

var (
	checkPath   string
	checkGlob   string
	checkPack   string
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate issue severity consistency against heuristic text signals",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := checkPath
		if path == "" {
			path = cfg.Check.Path
		}
		glob := checkGlob
		if glob == "" {
			glob = cfg.Check.Glob
		}
		pack := checkPack
		if pack == "" {
			pack = cfg.Check.RulesPack
		}

		ruleset := rules.Defaults()
		if pack != "" {
			extra, err := rules.LoadPack(pack)
			if err != nil {
				return err
			}
			slog.Debug("rules pack loaded", "path", pack, "rules", len(extra))
			ruleset = append(ruleset, extra...)
		}
		eng := rules.NewEngine(ruleset)

		files, err := discoverIssueFiles(path, glob)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No issue files found.")
			return nil
		}

		results, allOK, err := guard.CheckFiles(files, eng)
		if err != nil {
			return err
		}

		switch strings.ToLower(checkFormat) {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
		default:
			for _, r := range results {
				status := "PASS"
				if !r.OK {
					status = "FAIL"
				}
				fmt.Printf("[%s] %s: %s\n", status, r.Path, r.Message)
			}
		}

		if !allOK {
			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
				}
			}
			return fmt.Errorf("%d of %d issue files failed severity validation", failed, len(results))
		}
		return nil
	},
}

func discoverIssueFiles(path, glob string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Nothing to scan yet; the empty batch is a successful no-op.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := filepath.Glob(filepath.Join(path, glob))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", glob, err)
	}
	sort.Strings(files)
	return files, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkPath, "path", "", "Issue file or directory to validate")
	checkCmd.Flags().StringVar(&checkGlob, "glob", "", "Glob pattern for issue files when --path is a directory")
	checkCmd.Flags().StringVar(&checkPack, "rules", "", "YAML pack with extra severity rules (optional)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "Output format (text, json)")
	rootCmd.AddCommand(checkCmd)
}
