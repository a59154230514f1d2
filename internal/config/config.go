// Package config loads match definitions and process-level settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"ipd/internal/game"
	"ipd/internal/strategy"
)

// ErrUnknownStrategy reports a StrategySpec kind that matches no built-in
// variant.
var ErrUnknownStrategy = errors.New("unknown strategy kind")

// Settings are process-level options read from the environment.
type Settings struct {
	LogLevel  string `env:"IPD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"IPD_LOG_FORMAT" envDefault:"text"`
}

// ParseSettings loads Settings from environment variables.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// StrategySpec selects a strategy variant and its parameters. Only the
// fields relevant to the chosen kind are consulted.
type StrategySpec struct {
	Kind        string  `yaml:"kind"`
	FirstAction string  `yaml:"first_action"`
	PCooperate  float64 `yaml:"p_cooperate"`
	Genome      string  `yaml:"genome"`
}

// Match describes one game: two players, a round count and a seed.
// Rounds 0 means the engine draws a random round count; Seed 0 means a
// time-based seed.
type Match struct {
	P1     StrategySpec `yaml:"p1"`
	P2     StrategySpec `yaml:"p2"`
	Rounds int          `yaml:"rounds"`
	Seed   uint64       `yaml:"seed"`
}

// LoadMatch reads a YAML match definition from path.
func LoadMatch(path string) (*Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match file: %w", err)
	}
	var m Match
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse match file: %w", err)
	}
	return &m, nil
}

// Build constructs the strategy the spec describes. Randomized variants
// draw from rng; nil means a time-seeded source.
func (s StrategySpec) Build(rng *rand.Rand) (strategy.Strategy, error) {
	switch s.Kind {
	case "uniform":
		return strategy.NewUniform(rng), nil
	case "cooperative":
		return strategy.NewCooperative(), nil
	case "defecting":
		return strategy.NewDefecting(), nil
	case "replay":
		first := game.Defect
		if s.FirstAction != "" {
			var err error
			first, err = game.ParseAction(s.FirstAction)
			if err != nil {
				return nil, fmt.Errorf("replay first action: %w", err)
			}
		}
		return strategy.NewReplay(first), nil
	case "probabilistic":
		return strategy.NewProbabilistic(s.PCooperate, rng)
	case "neural":
		f, err := os.Open(s.Genome)
		if err != nil {
			return nil, fmt.Errorf("open genome: %w", err)
		}
		defer f.Close()
		return strategy.NewNeural(f)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.Kind)
}
