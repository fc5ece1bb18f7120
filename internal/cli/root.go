package cli

import (
	"github.com/spf13/cobra"

	"github.com/diegovelasquezweb/a11y-skill/internal/shared"
)

var (
	cfgPath   string
	debugMode bool

	cfg shared.Config
)

var rootCmd = &cobra.Command{
	Use:   "a11y",
	Short: "Accessibility audit toolkit: reports, issue files, severity checks",
	Long: `a11y turns structured accessibility-audit findings into deterministic
markdown artifacts and re-validates declared severities against
heuristic signals in the issue text.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, _ = shared.LoadConfig(cfgPath)
		level := cfg.Logging.Level
		if debugMode {
			level = "debug"
		}
		shared.InitLogger(cfg.Logging.Format, level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}
