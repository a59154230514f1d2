package engine

import (
	"errors"

	"ipd/internal/game"
)

// ErrNoRounds is returned when an average is requested from a report that
// has not recorded any rounds.
var ErrNoRounds = errors.New("no rounds played")

// StrategyReport accumulates one participant's results over a single game.
// Both histogram entries exist from creation, so callers can always read
// either count. Notify is the only mutation path.
type StrategyReport struct {
	TotalGain int
	Histogram map[game.Action]int
}

func NewStrategyReport() *StrategyReport {
	return &StrategyReport{
		Histogram: map[game.Action]int{
			game.Cooperate: 0,
			game.Defect:    0,
		},
	}
}

// Notify records one completed round: the action the owner played and the
// gain it earned.
func (r *StrategyReport) Notify(action game.Action, payoff int) {
	r.Histogram[action]++
	r.TotalGain += payoff
}

// NRounds is the number of rounds recorded so far.
func (r *StrategyReport) NRounds() int {
	n := 0
	for _, count := range r.Histogram {
		n += count
	}
	return n
}

// AverageGain is the mean gain per recorded round. A report with zero
// rounds has no average; ErrNoRounds is returned rather than a sentinel
// value so an empty game stays distinguishable from an all-zero one.
func (r *StrategyReport) AverageGain() (float64, error) {
	n := r.NRounds()
	if n == 0 {
		return 0, ErrNoRounds
	}
	return float64(r.TotalGain) / float64(n), nil
}
