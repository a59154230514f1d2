// Package strategy holds the decision policies that can play the iterated
// prisoner's dilemma.
package strategy

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"ipd/internal/game"
)

// Strategy decides one action per round. TakeTurn may consult only the
// strategy's own state, never the opponent or the engine.
// RegisterOpponentAction is invoked once per round after both moves are
// known and before the next TakeTurn; variants that ignore feedback
// implement it as a no-op.
type Strategy interface {
	fmt.Stringer
	TakeTurn() game.Action
	RegisterOpponentAction(game.Action)
}

// ensureRand falls back to a time-seeded source when the caller passes nil.
func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
