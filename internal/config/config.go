// Package config loads solver configuration from HCL files
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack-solver/internal/sim"
)

// Config represents the complete solver configuration
type Config struct {
	Rules  RulesConfig  `hcl:"rules,block"`
	Solver SolverConfig `hcl:"solver,block"`
}

// RulesConfig contains the table-rule variants
type RulesConfig struct {
	Decks            int   `hcl:"decks,optional"`
	DealerHitsSoft17 bool  `hcl:"dealer_hits_soft_17,optional"`
	DoubleAfterSplit bool  `hcl:"double_after_split,optional"`
	PlayOutHits      *bool `hcl:"play_out_hits,optional"`
}

// SolverConfig contains estimation settings
type SolverConfig struct {
	Trials  int     `hcl:"trials,optional"`
	RTP     float64 `hcl:"rtp,optional"`
	Workers int     `hcl:"workers,optional"`
}

// Default returns the default configuration: a six-deck shoe, dealer
// stands on all 17s, no double after split, hits fully played out,
// 10000 trials per action scaled by a 0.995 return-to-player.
func Default() *Config {
	playOut := true
	return &Config{
		Rules: RulesConfig{
			Decks:            6,
			DealerHitsSoft17: false,
			DoubleAfterSplit: false,
			PlayOutHits:      &playOut,
		},
		Solver: SolverConfig{
			Trials:  10000,
			RTP:     0.995,
			Workers: 0, // 0 = one per CPU, capped
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// when the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if config.Rules.Decks == 0 {
		config.Rules.Decks = defaults.Rules.Decks
	}
	if config.Rules.PlayOutHits == nil {
		config.Rules.PlayOutHits = defaults.Rules.PlayOutHits
	}
	if config.Solver.Trials == 0 {
		config.Solver.Trials = defaults.Solver.Trials
	}
	if config.Solver.RTP == 0 {
		config.Solver.RTP = defaults.Solver.RTP
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Rules.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Rules.Decks)
	}
	if c.Solver.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Solver.Trials)
	}
	if c.Solver.RTP <= 0 {
		return fmt.Errorf("rtp must be positive, got %f", c.Solver.RTP)
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Solver.Workers)
	}
	return nil
}

// SimRules converts the rule variants into simulation rules
func (c *Config) SimRules() sim.Rules {
	playOut := true
	if c.Rules.PlayOutHits != nil {
		playOut = *c.Rules.PlayOutHits
	}
	return sim.Rules{
		DealerHitsSoft17: c.Rules.DealerHitsSoft17,
		DoubleAfterSplit: c.Rules.DoubleAfterSplit,
		PlayOutHits:      playOut,
	}
}
