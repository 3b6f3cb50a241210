// Package config loads the optional .satprove.yaml preset file: a
// thin layer beneath CLI flags that lets a user pin a heuristic,
// selection strategy, or flag combination without retyping it on
// every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI's flag surface. Every field a flag can also
// set is a pointer so the merge step can tell "absent from the file"
// apart from "explicitly set to the zero value".
type Config struct {
	Silent              *bool   `yaml:"silent,omitempty"`
	Proof               *bool   `yaml:"proof,omitempty"`
	Index               *bool   `yaml:"index,omitempty"`
	DeleteTautologies   *bool   `yaml:"delete_tautologies,omitempty"`
	ForwardSubsumption  *bool   `yaml:"forward_subsumption,omitempty"`
	BackwardSubsumption *bool   `yaml:"backward_subsumption,omitempty"`
	GivenClauseHeuristic *string `yaml:"given_clause_heuristic,omitempty"`
	NegLitSelection     *string `yaml:"neg_lit_selection,omitempty"`
	SuppressEqAxioms    *bool   `yaml:"suppress_eq_axioms,omitempty"`
	RelevanceDistance   *int    `yaml:"relevance_distance,omitempty"`
	CPULimit            *string `yaml:"cpu_limit,omitempty"`
}

// DefaultConfig returns the compiled-in defaults: every option off or
// at its algorithmic default, matching the teacher-style
// "DefaultConfig returns defaults" entry point.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads path (a .satprove.yaml file) and merges it over
// DefaultConfig. A missing file is not an error: it returns the
// unmodified defaults, since the preset file is optional.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig resolves the config file to load: an explicit
// --config=<path> always wins; otherwise .satprove.yaml in the
// current directory is tried, and its absence is not an error.
func FindConfig(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfig(), nil
	}
	return Load(filepath.Join(cwd, ".satprove.yaml"))
}

// CPULimitDuration parses CPULimit, returning (0, true) when unset
// (no limit configured) and (0, false) when set but unparseable.
func (c *Config) CPULimitDuration() (time.Duration, bool, error) {
	if c.CPULimit == nil || *c.CPULimit == "" {
		return 0, true, nil
	}
	d, err := time.ParseDuration(*c.CPULimit)
	if err != nil {
		return 0, false, fmt.Errorf("invalid cpu-limit %q: %w", *c.CPULimit, err)
	}
	return d, false, nil
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func stringOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// Settings is the fully-resolved set of options the CLI acts on,
// after layering compiled-in defaults under an optional config file
// under explicit flags (lowest to highest precedence).
type Settings struct {
	Silent               bool
	Proof                bool
	Index                bool
	DeleteTautologies    bool
	ForwardSubsumption   bool
	BackwardSubsumption  bool
	GivenClauseHeuristic string
	NegLitSelection      string
	SuppressEqAxioms     bool
	RelevanceDistance    int
	CPULimit             time.Duration
}

// Resolve layers cfg (itself already layered over compiled-in
// defaults by Load) into a Settings with the package's algorithmic
// defaults filled in for anything neither the file nor the compiled
// defaults set.
func Resolve(cfg *Config) (Settings, error) {
	cpuLimit, unset, err := cfg.CPULimitDuration()
	if err != nil {
		return Settings{}, err
	}
	if unset {
		cpuLimit = 0
	}
	return Settings{
		Silent:               boolOr(cfg.Silent, false),
		Proof:                boolOr(cfg.Proof, false),
		Index:                boolOr(cfg.Index, false),
		DeleteTautologies:    boolOr(cfg.DeleteTautologies, false),
		ForwardSubsumption:   boolOr(cfg.ForwardSubsumption, false),
		BackwardSubsumption:  boolOr(cfg.BackwardSubsumption, false),
		GivenClauseHeuristic: stringOr(cfg.GivenClauseHeuristic, "PickGiven5"),
		NegLitSelection:      stringOr(cfg.NegLitSelection, "first"),
		SuppressEqAxioms:     boolOr(cfg.SuppressEqAxioms, false),
		RelevanceDistance:    intOr(cfg.RelevanceDistance, 0),
		CPULimit:             cpuLimit,
	}, nil
}

// ApplyFlagOverride overwrites a Settings field from an explicitly
// set CLI flag; the cmd layer calls this once per flag whose
// pflag.Flag.Changed is true, after Resolve has applied file/defaults
// precedence, giving flags the final word.
func (s *Settings) ApplyFlagOverride(name string, value any) {
	switch name {
	case "silent":
		s.Silent = value.(bool)
	case "proof":
		s.Proof = value.(bool)
	case "index":
		s.Index = value.(bool)
	case "delete-tautologies":
		s.DeleteTautologies = value.(bool)
	case "forward-subsumption":
		s.ForwardSubsumption = value.(bool)
	case "backward-subsumption":
		s.BackwardSubsumption = value.(bool)
	case "given-clause-heuristic":
		s.GivenClauseHeuristic = value.(string)
	case "neg-lit-selection":
		s.NegLitSelection = value.(string)
	case "suppress-eq-axioms":
		s.SuppressEqAxioms = value.(bool)
	case "relevance-distance":
		s.RelevanceDistance = value.(int)
	case "cpu-limit":
		s.CPULimit = value.(time.Duration)
	}
}
