// Package dealer simulates one completed dealer hand from a known
// upcard, drawing from a trial-local pool until the stand threshold is
// met.
package dealer

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack-solver/internal/hand"
	"github.com/lox/blackjack-solver/internal/shoe"
)

// StandThreshold is the total at which the dealer stands
const StandThreshold = 17

// PlayOut completes a dealer hand starting from the upcard, drawing
// uniformly without replacement from the pool. The pool is consumed in
// place; callers needing isolation pass a clone.
//
// The dealer draws while the total is below 17, or additionally on a
// soft 17 when hitSoft17 is set. An exhausted pool is a forced stand at
// the current total, never an error. The returned total signals a bust
// only by exceeding 21.
func PlayOut(upcard shoe.Value, pool *shoe.Pool, rng *rand.Rand, hitSoft17 bool) int {
	h := hand.New(upcard)
	for mustDraw(h, hitSoft17) {
		v, ok := pool.Draw(rng)
		if !ok {
			break
		}
		h = h.Add(v)
	}
	return h.Total()
}

func mustDraw(h hand.Hand, hitSoft17 bool) bool {
	total := h.Total()
	if total < StandThreshold {
		return true
	}
	return hitSoft17 && total == StandThreshold && h.IsSoft()
}
