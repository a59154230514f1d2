// Package engine runs pairwise iterated prisoner's dilemma games and
// aggregates their results.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"ipd/internal/game"
	"ipd/internal/logging"
	"ipd/internal/strategy"
)

// MaxAutoRounds bounds the round count drawn when the caller does not
// supply one.
const MaxAutoRounds = 10000

// ErrNegativeRounds reports a caller-supplied round count below zero.
var ErrNegativeRounds = errors.New("round count must not be negative")

// Engine plays rounds between two strategies. Each participant owns a
// private StrategyReport for the duration of the game; nothing else is
// shared between the two sides.
type Engine struct {
	p1, p2           strategy.Strategy
	report1, report2 *StrategyReport
	rng              *rand.Rand
	log              *slog.Logger
}

// New builds an engine for one game between p1 and p2. rng drives the
// random round count of PlayRandomGame; nil means a time-seeded source.
func New(p1, p2 strategy.Strategy, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Engine{
		p1:      p1,
		p2:      p2,
		report1: NewStrategyReport(),
		report2: NewStrategyReport(),
		rng:     rng,
		log:     logging.New("engine"),
	}
}

// PlayRound runs one full round: both turns, the payoff, both report
// updates, then the opponent-action feedback. A round completes before the
// next begins, so feedback from round i is visible to both strategies when
// round i+1's turns are taken.
func (e *Engine) PlayRound() {
	act1 := e.p1.TakeTurn()
	act2 := e.p2.TakeTurn()

	gain1, gain2 := game.Compute(act1, act2)

	e.report1.Notify(act1, gain1)
	e.report2.Notify(act2, gain2)

	e.p1.RegisterOpponentAction(act2)
	e.p2.RegisterOpponentAction(act1)
}

// PlayGame plays exactly nRounds rounds and assembles the final report.
// nRounds may be zero, yielding a report with empty histograms.
func (e *Engine) PlayGame(nRounds int) (*GameReport, error) {
	if nRounds < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRounds, nRounds)
	}

	for i := 0; i < nRounds; i++ {
		e.PlayRound()
	}

	report := &GameReport{P1: e.p1, P2: e.p2, Report1: e.report1, Report2: e.report2}
	e.log.Debug("game finished",
		slog.Int("rounds", nRounds),
		slog.Int("p1_total", e.report1.TotalGain),
		slog.Int("p2_total", e.report2.TotalGain),
	)
	return report, nil
}

// PlayRandomGame plays a game whose length is drawn uniformly from
// [1, MaxAutoRounds].
func (e *Engine) PlayRandomGame() (*GameReport, error) {
	return e.PlayGame(e.rng.Intn(MaxAutoRounds) + 1)
}
