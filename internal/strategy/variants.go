package strategy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"ipd/internal/game"
)

// ErrInvalidProbability reports a cooperation probability outside [0, 1].
var ErrInvalidProbability = errors.New("cooperation probability must be within [0, 1]")

// Uniform plays Cooperate or Defect with equal probability, independently
// each round.
type Uniform struct {
	rng *rand.Rand
}

func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: ensureRand(rng)}
}

func (u *Uniform) TakeTurn() game.Action {
	if u.rng.Intn(2) == 0 {
		return game.Cooperate
	}
	return game.Defect
}

func (u *Uniform) RegisterOpponentAction(game.Action) {}

func (u *Uniform) String() string { return "Uniform" }

// Cooperative always cooperates.
type Cooperative struct{}

func NewCooperative() *Cooperative { return &Cooperative{} }

func (c *Cooperative) TakeTurn() game.Action { return game.Cooperate }

func (c *Cooperative) RegisterOpponentAction(game.Action) {}

func (c *Cooperative) String() string { return "Cooperative" }

// Defecting always defects.
type Defecting struct{}

func NewDefecting() *Defecting { return &Defecting{} }

func (d *Defecting) TakeTurn() game.Action { return game.Defect }

func (d *Defecting) RegisterOpponentAction(game.Action) {}

func (d *Defecting) String() string { return "Defecting" }

// Replay opens with a fixed move and from then on mirrors whatever the
// opponent played last. With Cooperate as the opening move this is
// tit-for-tat.
type Replay struct {
	first   game.Action
	lastOpp game.Action
	seen    bool
}

func NewReplay(first game.Action) *Replay { return &Replay{first: first} }

func (r *Replay) TakeTurn() game.Action {
	if !r.seen {
		return r.first
	}
	return r.lastOpp
}

func (r *Replay) RegisterOpponentAction(a game.Action) {
	r.lastOpp = a
	r.seen = true
}

func (r *Replay) String() string { return fmt.Sprintf("Replay(%s)", r.first) }

// Probabilistic cooperates with a fixed probability, independently each
// round.
type Probabilistic struct {
	pCooperate float64
	rng        *rand.Rand
}

func NewProbabilistic(pCooperate float64, rng *rand.Rand) (*Probabilistic, error) {
	if pCooperate < 0 || pCooperate > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, pCooperate)
	}
	return &Probabilistic{pCooperate: pCooperate, rng: ensureRand(rng)}, nil
}

func (p *Probabilistic) TakeTurn() game.Action {
	if p.rng.Float64() < p.pCooperate {
		return game.Cooperate
	}
	return game.Defect
}

func (p *Probabilistic) RegisterOpponentAction(game.Action) {}

func (p *Probabilistic) String() string {
	return fmt.Sprintf("Probabilistic(%v)", p.pCooperate)
}
