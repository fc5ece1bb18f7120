package shared

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Report struct {
		Scope      string `yaml:"scope"`       // "In-scope pages and key user flows"
		WCAGTarget string `yaml:"wcag_target"` // "WCAG 2.1 AA"
		Auditor    string `yaml:"auditor"`     // "Accessibility Team"
		OutDir     string `yaml:"out_dir"`     // "audit"
	} `yaml:"report"`

	Issue struct {
		Prefix string `yaml:"prefix"` // "A11Y"
		OutDir string `yaml:"out_dir"`
		Level  string `yaml:"level"` // default WCAG level for new issues
	} `yaml:"issue"`

	Check struct {
		Path      string `yaml:"path"` // issue file or directory
		Glob      string `yaml:"glob"` // "A11Y-*.md"
		RulesPack string `yaml:"rules_pack"`
	} `yaml:"check"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Report.Scope = "In-scope pages and key user flows"
	c.Report.WCAGTarget = "WCAG 2.1 AA"
	c.Report.Auditor = "Accessibility Team"
	c.Report.OutDir = "audit"
	c.Issue.Prefix = "A11Y"
	c.Issue.OutDir = "audit"
	c.Issue.Level = "AA"
	c.Check.Path = "audit"
	c.Check.Glob = "A11Y-*.md"
	c.Logging.Format = "text"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("A11Y_OUT_DIR"); v != "" {
		c.Report.OutDir = v
		c.Issue.OutDir = v
	}
	if v := os.Getenv("A11Y_PREFIX"); v != "" {
		c.Issue.Prefix = v
	}
	if v := os.Getenv("A11Y_AUDITOR"); v != "" {
		c.Report.Auditor = v
	}
	if v := os.Getenv("A11Y_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("A11Y_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}
