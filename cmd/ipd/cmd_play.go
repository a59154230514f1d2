package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"ipd/internal/config"
	"ipd/internal/engine"
	"ipd/internal/format"
)

var playFlags struct {
	p1          string
	p2          string
	firstAction string
	pCooperate  float64
	genome      string
	rounds      int
	seed        uint64
	configPath  string
	markdown    bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game between two strategies",
	RunE:  runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playFlags.p1, "p1", "replay", "Player 1 strategy kind (see 'ipd strategies')")
	f.StringVar(&playFlags.p2, "p2", "cooperative", "Player 2 strategy kind")
	f.StringVar(&playFlags.firstAction, "first-action", "defect", "Opening move for replay players")
	f.Float64Var(&playFlags.pCooperate, "p-cooperate", 0.5, "Cooperation probability for probabilistic players")
	f.StringVar(&playFlags.genome, "genome", "", "Genome file for neural players")
	f.IntVar(&playFlags.rounds, "rounds", 0, "Number of rounds (0 = random within [1, 10000])")
	f.Uint64Var(&playFlags.seed, "seed", 0, "RNG seed (0 = time-based)")
	f.StringVar(&playFlags.configPath, "config", "", "YAML match file (overrides the player flags)")
	f.BoolVar(&playFlags.markdown, "markdown", false, "Render the report table as Markdown")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	match := &config.Match{
		P1: config.StrategySpec{
			Kind:        playFlags.p1,
			FirstAction: playFlags.firstAction,
			PCooperate:  playFlags.pCooperate,
			Genome:      playFlags.genome,
		},
		P2: config.StrategySpec{
			Kind:        playFlags.p2,
			FirstAction: playFlags.firstAction,
			PCooperate:  playFlags.pCooperate,
			Genome:      playFlags.genome,
		},
		Rounds: playFlags.rounds,
		Seed:   playFlags.seed,
	}
	if playFlags.configPath != "" {
		loaded, err := config.LoadMatch(playFlags.configPath)
		if err != nil {
			return err
		}
		match = loaded
	}

	seed := match.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	p1, err := match.P1.Build(rng)
	if err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	p2, err := match.P2.Build(rng)
	if err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	eng := engine.New(p1, p2, rng)
	var report *engine.GameReport
	if match.Rounds > 0 {
		report, err = eng.PlayGame(match.Rounds)
	} else {
		report, err = eng.PlayRandomGame()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, report.Summary())
	mode := format.ASCII
	if playFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprintln(out, report.Table(mode))
	return nil
}
