// Package counting tracks the card-counting state derived from
// committed card removals, and the insurance side-bet EV.
package counting

import "github.com/lox/blackjack-solver/internal/shoe"

// pointValues is the count system: low cards raise the count, tens
// lower it, eights and aces are neutral.
var pointValues = [shoe.NumRanks]float64{
	shoe.Two:   1,
	shoe.Three: 1,
	shoe.Four:  2,
	shoe.Five:  2,
	shoe.Six:   2,
	shoe.Seven: 1,
	shoe.Eight: 0,
	shoe.Nine:  -1,
	shoe.Ten:   -2,
	shoe.Jack:  -2,
	shoe.Queen: -2,
	shoe.King:  -2,
	shoe.Ace:   0,
}

// PointValue returns the count-system value of a rank
func PointValue(r shoe.Rank) float64 {
	return pointValues[r]
}

// Counter accumulates the running count. It is updated alongside every
// committed removal from the canonical shoe, never by simulations.
type Counter struct {
	running float64
}

// Observe records a committed card removal
func (c *Counter) Observe(r shoe.Rank) {
	c.running += pointValues[r]
}

// Unobserve reverses a previously observed removal (batch rollback)
func (c *Counter) Unobserve(r shoe.Rank) {
	c.running -= pointValues[r]
}

// Reset clears the running count (new shoe)
func (c *Counter) Reset() {
	c.running = 0
}

// Running returns the running count
func (c *Counter) Running() float64 {
	return c.running
}

// TrueCount returns the running count normalized by decks remaining
func (c *Counter) TrueCount(decksRemaining float64) float64 {
	return c.running / decksRemaining
}

// InsuranceEV returns the expected value of the insurance side bet
// given the current shoe composition. Insurance pays 2:1 when the
// dealer's hole card is ten-valued: EV = 2p - (1 - p).
func InsuranceEV(s *shoe.Shoe) float64 {
	total := s.RemainingTotal()
	if total == 0 {
		return 0
	}
	p := float64(s.TenValueCount()) / float64(total)
	return 2*p - (1 - p)
}
