package engine

import (
	"fmt"
	"strings"

	"ipd/internal/format"
	"ipd/internal/game"
	"ipd/internal/strategy"
)

// GameReport is the summary of one finished game. It is assembled once by
// PlayGame and treated as read-only afterwards.
type GameReport struct {
	P1, P2           strategy.Strategy
	Report1, Report2 *StrategyReport
}

// Winner returns the strategy with the strictly greater total gain, or nil
// on a tie.
func (g *GameReport) Winner() strategy.Strategy {
	switch g.WinnerPosition() {
	case 1:
		return g.P1
	case 2:
		return g.P2
	}
	return nil
}

// WinnerPosition returns 1 or 2 for the winning side, 0 on a tie.
func (g *GameReport) WinnerPosition() int {
	switch {
	case g.Report1.TotalGain > g.Report2.TotalGain:
		return 1
	case g.Report2.TotalGain > g.Report1.TotalGain:
		return 2
	}
	return 0
}

// Summary is the headline portion of the rendering: winner with its
// positional tag and the round count.
func (g *GameReport) Summary() string {
	var b strings.Builder
	switch g.WinnerPosition() {
	case 1:
		fmt.Fprintf(&b, "Winner: %s (P1)\n", g.P1)
	case 2:
		fmt.Fprintf(&b, "Winner: %s (P2)\n", g.P2)
	default:
		b.WriteString("Winner: none (tie)\n")
	}
	fmt.Fprintf(&b, "Rounds: %d\n", g.Report1.NRounds())
	return b.String()
}

// Table renders one row per player: position, strategy, round count, action
// histogram, total and average gain. A zero-round game shows "n/a" for the
// average.
func (g *GameReport) Table(mode format.Mode) string {
	t := format.NewTable(mode)
	t.Header("Player", "Strategy", "Rounds", "Cooperate", "Defect", "Total", "Average")
	t.AlignRight(3, 4, 5, 6, 7)

	sides := []struct {
		s strategy.Strategy
		r *StrategyReport
	}{
		{g.P1, g.Report1},
		{g.P2, g.Report2},
	}
	for i, side := range sides {
		avg := "n/a"
		if v, err := side.r.AverageGain(); err == nil {
			avg = fmt.Sprintf("%.2f", v)
		}
		t.Row(
			fmt.Sprintf("P%d", i+1),
			side.s.String(),
			side.r.NRounds(),
			side.r.Histogram[game.Cooperate],
			side.r.Histogram[game.Defect],
			side.r.TotalGain,
			avg,
		)
	}
	return t.String()
}

func (g *GameReport) String() string {
	return g.Summary() + g.Table(format.ASCII) + "\n"
}
