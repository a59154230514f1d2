// Package game defines the moves of the prisoner's dilemma and the payoff
// rule that scores a round.
package game

import (
	"fmt"
	"strings"
)

// Action is one of the two moves a player can make in a round.
type Action int

const (
	Cooperate Action = iota
	Defect
)

// Actions lists both variants in display order.
var Actions = [2]Action{Cooperate, Defect}

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "cooperate"
	case Defect:
		return "defect"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction converts a textual action name into an Action. It accepts
// "cooperate"/"defect" and the shorthands "c"/"d", case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "cooperate", "c":
		return Cooperate, nil
	case "defect", "d":
		return Defect, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}
