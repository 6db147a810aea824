// File: config.go
// Role: YAML run configuration: corpus locations, method matrix, stage
//       budgets, worker count.

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pertcj/nba-expression-synthesis/synthesis"
)

// method is one cell of the run matrix.
type method struct {
	Shape    string `yaml:"shape"`
	Backend  string `yaml:"backend"`
	Simplify bool   `yaml:"simplify"`
}

// name is the CSV column prefix for this method.
func (m method) name() string {
	n := m.Shape + " " + m.Backend
	if m.Simplify {
		n = "simplify " + n
	}

	return n
}

// options translates the cell into synthesis options.
func (m method) options(t timeouts) (synthesis.Options, error) {
	opts := synthesis.DefaultOptions()
	opts.Simplify = m.Simplify
	opts.AutBudget = time.Duration(t.Aut)
	opts.RegexBudget = time.Duration(t.Regex)
	opts.SimplifyBudget = time.Duration(t.Simplify)

	switch m.Shape {
	case "state":
		opts.Shape = synthesis.ShapeState
	case "transition":
		opts.Shape = synthesis.ShapeTransition
	case "transition_to_state":
		opts.Shape = synthesis.ShapeTransitionToState
	case "auto":
		opts.Shape = synthesis.ShapeAuto
	default:
		return opts, fmt.Errorf("config: unknown shape %q", m.Shape)
	}

	switch m.Backend {
	case "bmc":
		opts.Backend = synthesis.BMC
	case "mny":
		opts.Backend = synthesis.MNY
	default:
		return opts, fmt.Errorf("config: unknown backend %q", m.Backend)
	}

	return opts, nil
}

// duration is a time.Duration that unmarshals from "120s"-style YAML
// strings (yaml.v3 has no native duration support).
type duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = duration(v)

	return nil
}

// timeouts holds the three per-stage budgets.
type timeouts struct {
	Aut      duration `yaml:"aut"`
	Regex    duration `yaml:"regex"`
	Simplify duration `yaml:"simplify"`
}

// config is the full run configuration.
type config struct {
	// Formulas is the path of the LTL corpus: one formula per line, blank
	// lines and %-comments skipped, an optional LTLSPEC prefix stripped.
	Formulas string `yaml:"formulas"`

	// AutomataDir holds the pre-translated <index>.<shape>.hoa files.
	AutomataDir string `yaml:"automata_dir"`

	// Output is the CSV destination.
	Output string `yaml:"output"`

	// Workers bounds concurrent formula processing. Default 1.
	Workers int `yaml:"workers"`

	Methods  []method `yaml:"methods"`
	Timeouts timeouts `yaml:"timeouts"`
}

// defaultConfig mirrors the reference driver: the full shape matrix on
// both backends, 120s/120s/60s budgets.
func defaultConfig() config {
	var methods []method
	for _, shape := range []string{"state", "auto", "transition_to_state", "transition"} {
		for _, backend := range []string{"bmc", "mny"} {
			for _, simp := range []bool{false, true} {
				methods = append(methods, method{Shape: shape, Backend: backend, Simplify: simp})
			}
		}
	}

	return config{
		Formulas:    "formulas.ltl",
		AutomataDir: "automata",
		Output:      "results.csv",
		Workers:     1,
		Methods:     methods,
		Timeouts: timeouts{
			Aut:      duration(120 * time.Second),
			Regex:    duration(120 * time.Second),
			Simplify: duration(60 * time.Second),
		},
	}
}

// loadConfig reads path over the defaults and validates the method matrix.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if len(cfg.Methods) == 0 {
		return cfg, fmt.Errorf("config: %s declares no methods", path)
	}
	for _, m := range cfg.Methods {
		if _, err = m.options(cfg.Timeouts); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
