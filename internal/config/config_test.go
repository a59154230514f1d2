package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ipd/internal/game"
	"ipd/internal/strategy"
)

func TestLoadMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	data := `
p1:
  kind: replay
  first_action: defect
p2:
  kind: cooperative
rounds: 100
seed: 42
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMatch(path)
	if err != nil {
		t.Fatalf("LoadMatch: %v", err)
	}

	if m.P1.Kind != "replay" || m.P1.FirstAction != "defect" {
		t.Errorf("p1 = %+v, want replay/defect", m.P1)
	}
	if m.P2.Kind != "cooperative" {
		t.Errorf("p2 kind = %q, want cooperative", m.P2.Kind)
	}
	if m.Rounds != 100 {
		t.Errorf("rounds = %d, want 100", m.Rounds)
	}
	if m.Seed != 42 {
		t.Errorf("seed = %d, want 42", m.Seed)
	}
}

func TestLoadMatchMissingFile(t *testing.T) {
	if _, err := LoadMatch(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadMatch on a missing file should fail")
	}
}

func TestBuildKinds(t *testing.T) {
	cases := []struct {
		spec StrategySpec
		want string
	}{
		{StrategySpec{Kind: "uniform"}, "Uniform"},
		{StrategySpec{Kind: "cooperative"}, "Cooperative"},
		{StrategySpec{Kind: "defecting"}, "Defecting"},
		{StrategySpec{Kind: "replay", FirstAction: "cooperate"}, "Replay(cooperate)"},
		{StrategySpec{Kind: "replay"}, "Replay(defect)"},
		{StrategySpec{Kind: "probabilistic", PCooperate: 0.5}, "Probabilistic(0.5)"},
	}
	for _, tc := range cases {
		s, err := tc.spec.Build(nil)
		if err != nil {
			t.Errorf("Build(%+v): %v", tc.spec, err)
			continue
		}
		if got := s.String(); got != tc.want {
			t.Errorf("Build(%+v) = %s, want %s", tc.spec, got, tc.want)
		}
	}
}

func TestBuildReplayFirstAction(t *testing.T) {
	s, err := StrategySpec{Kind: "replay", FirstAction: "cooperate"}.Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := s.(*strategy.Replay).TakeTurn(); got != game.Cooperate {
		t.Errorf("first turn = %s, want cooperate", got)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := (StrategySpec{Kind: "grudger"}).Build(nil); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unknown kind error = %v, want ErrUnknownStrategy", err)
	}
	if _, err := (StrategySpec{Kind: "replay", FirstAction: "betray"}).Build(nil); err == nil {
		t.Error("bad first action should fail")
	}
	_, err := StrategySpec{Kind: "probabilistic", PCooperate: 1.5}.Build(nil)
	if !errors.Is(err, strategy.ErrInvalidProbability) {
		t.Errorf("out-of-range probability error = %v, want ErrInvalidProbability", err)
	}
	if _, err := (StrategySpec{Kind: "neural", Genome: "does-not-exist.genome"}).Build(nil); err == nil {
		t.Error("missing genome file should fail")
	}
}

func TestParseSettingsDefaults(t *testing.T) {
	// t.Setenv registers the restore; unset so envDefault applies.
	t.Setenv("IPD_LOG_LEVEL", "x")
	t.Setenv("IPD_LOG_FORMAT", "x")
	os.Unsetenv("IPD_LOG_LEVEL")
	os.Unsetenv("IPD_LOG_FORMAT")

	s, err := ParseSettings()
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.LogLevel != "info" {
		t.Errorf("log level = %q, want info", s.LogLevel)
	}
	if s.LogFormat != "text" {
		t.Errorf("log format = %q, want text", s.LogFormat)
	}
}

func TestParseSettingsOverride(t *testing.T) {
	t.Setenv("IPD_LOG_LEVEL", "debug")
	t.Setenv("IPD_LOG_FORMAT", "json")

	s, err := ParseSettings()
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.LogLevel != "debug" || s.LogFormat != "json" {
		t.Errorf("settings = %+v, want debug/json", s)
	}
}
