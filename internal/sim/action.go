package sim

import (
	"github.com/lox/blackjack-solver/internal/hand"
)

// Action is a legal player decision at a blackjack decision point.
// Declaration order doubles as the tie-break priority when two actions
// estimate to the same EV.
type Action int

const (
	Stand Action = iota
	Hit
	DoubleDown
	Split
)

// String returns the display name of an action
func (a Action) String() string {
	switch a {
	case Stand:
		return "Stand"
	case Hit:
		return "Hit"
	case DoubleDown:
		return "Double Down"
	case Split:
		return "Split"
	default:
		return "Unknown"
	}
}

// Rules captures the table-rule variants that change playout behaviour
type Rules struct {
	// DealerHitsSoft17 makes the dealer draw on a soft 17
	DealerHitsSoft17 bool
	// DoubleAfterSplit allows Double Down on the first decision of a
	// split sub-hand
	DoubleAfterSplit bool
	// PlayOutHits fully plays out a Hit (and split sub-hands) with a
	// hit-below-17 stopping rule; when false a Hit draws exactly one
	// card. The two policies are alternatives, never mixed.
	PlayOutHits bool
}

// LegalActions returns the actions available for the player's hand.
// Stand and Hit are always legal. Double Down requires exactly two
// cards on the first decision of the hand (and, unless the rules allow
// re-doubling, not a split sub-hand). Split additionally requires the
// two cards to share a value.
func LegalActions(h hand.Hand, firstDecision, splitHand bool, rules Rules) []Action {
	actions := []Action{Stand, Hit}
	if firstDecision && len(h) == 2 {
		if !splitHand || rules.DoubleAfterSplit {
			actions = append(actions, DoubleDown)
		}
		if h.IsPair() {
			actions = append(actions, Split)
		}
	}
	return actions
}

// IsLegal reports whether the action is in the legality window
func IsLegal(a Action, h hand.Hand, firstDecision, splitHand bool, rules Rules) bool {
	for _, legal := range LegalActions(h, firstDecision, splitHand, rules) {
		if legal == a {
			return true
		}
	}
	return false
}
