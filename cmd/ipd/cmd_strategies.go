package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ipd/internal/format"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the built-in strategy kinds",
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, _ []string) {
	t := format.NewTable(format.ASCII)
	t.Header("Kind", "Parameters", "Behavior")
	t.Row("uniform", "", "Cooperate or defect with equal probability")
	t.Row("cooperative", "", "Always cooperate")
	t.Row("defecting", "", "Always defect")
	t.Row("replay", "first_action", "Open with first_action, then mirror the opponent's last move")
	t.Row("probabilistic", "p_cooperate", "Cooperate with probability p_cooperate")
	t.Row("neural", "genome", "Decide with a NEAT network built from the genome file")
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
}
