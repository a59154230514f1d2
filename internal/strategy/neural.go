package strategy

import (
	"fmt"
	"io"

	"github.com/yaricom/goNEAT/v2/neat/genetics"
	"github.com/yaricom/goNEAT/v2/neat/network"

	"ipd/internal/game"
)

// Neural decides with a NEAT network whose sensors are the opponent's and
// its own previous moves. Both sensors read Cooperate until the first round
// has been played.
type Neural struct {
	net     *network.Network
	lastOwn game.Action
	lastOpp game.Action
}

// NewNeural builds the network from a genome definition in goNEAT's text
// format.
func NewNeural(genome io.Reader) (*Neural, error) {
	g, err := genetics.ReadGenome(genome, 1)
	if err != nil {
		return nil, fmt.Errorf("read genome: %w", err)
	}
	net, err := g.Genesis(1)
	if err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}
	return &Neural{net: net}, nil
}

func (n *Neural) TakeTurn() game.Action {
	_ = n.net.LoadSensors([]float64{
		float64(n.lastOpp),
		float64(n.lastOwn),
	})
	_, _ = n.net.Activate()
	outputs := n.net.ReadOutputs()

	decision := game.Cooperate
	if outputs[0] > 0.5 {
		decision = game.Defect
	}
	n.lastOwn = decision
	return decision
}

func (n *Neural) RegisterOpponentAction(a game.Action) { n.lastOpp = a }

func (n *Neural) String() string { return "Neural" }
