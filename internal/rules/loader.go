package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/diegovelasquezweb/a11y-skill/internal/model"
)

type packFile struct {
	Rules []packRule `yaml:"rules"`
}

type packRule struct {
	Pattern string `yaml:"pattern"` // regex, compiled case-insensitive
	Floor   string `yaml:"floor"`   // Critical|High|Medium|Low
	Reason  string `yaml:"reason"`
}

// LoadPack reads extra severity rules from a YAML pack. The returned
// rules keep the pack's order; callers append them after Defaults().
func LoadPack(path string) ([]Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules pack: %w", err)
	}
	var pack packFile
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return nil, fmt.Errorf("parse rules pack: %w", err)
	}
	out := make([]Rule, 0, len(pack.Rules))
	for i, r := range pack.Rules {
		cr, err := compile(r)
		if err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i+1, err)
		}
		out = append(out, cr)
	}
	return out, nil
}

func compile(r packRule) (Rule, error) {
	if r.Pattern == "" || r.Floor == "" || r.Reason == "" {
		return Rule{}, fmt.Errorf("missing required fields (pattern/floor/reason)")
	}
	floor, ok := model.ParseSeverity(r.Floor)
	if !ok {
		return Rule{}, fmt.Errorf("unknown floor severity %q", r.Floor)
	}
	re, err := regexp.Compile("(?i)" + r.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("pattern: %w", err)
	}
	return Rule{Pattern: re, Floor: floor, Reason: r.Reason}, nil
}
