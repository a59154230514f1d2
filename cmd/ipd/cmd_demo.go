package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ipd/internal/engine"
	"ipd/internal/game"
	"ipd/internal/strategy"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay(defect) versus Cooperative over 100 rounds",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	eng := engine.New(
		strategy.NewReplay(game.Defect),
		strategy.NewCooperative(),
		nil,
	)
	report, err := eng.PlayGame(100)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}
