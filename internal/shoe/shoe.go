// Package shoe models the finite multiset of cards remaining to be
// dealt, tracked as a per-rank count. The canonical shoe is depleted as
// cards become visible at the table; simulations never touch it
// directly, they sample from flattened per-trial copies.
package shoe

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrCardNotAvailable is returned when a removal is requested for a
// rank whose remaining count is already zero.
var ErrCardNotAvailable = errors.New("card not available in shoe")

// CardsPerDeck is the number of cards in a single deck
const CardsPerDeck = 52

// Shoe tracks the remaining count of every rank. A failed removal
// leaves the shoe unchanged; rollback of a partially applied batch is
// the caller's responsibility (snapshot with Clone, restore on error).
type Shoe struct {
	counts [NumRanks]int
	decks  int
}

// New creates a full shoe of the given number of decks (4 copies of
// each rank per deck)
func New(decks int) *Shoe {
	s := &Shoe{decks: decks}
	s.Reset()
	return s
}

// Reset reinitializes the shoe to its full multiset
func (s *Shoe) Reset() {
	for r := range s.counts {
		s.counts[r] = 4 * s.decks
	}
}

// Clone returns a deep copy of the shoe
func (s *Shoe) Clone() *Shoe {
	c := *s
	return &c
}

// Decks returns the number of decks the shoe was initialized from
func (s *Shoe) Decks() int {
	return s.decks
}

// Count returns the remaining count for a rank
func (s *Shoe) Count(r Rank) int {
	return s.counts[r]
}

// Remove decrements the count for a rank. It fails with
// ErrCardNotAvailable, leaving the shoe unchanged, when the count is
// already zero.
func (s *Shoe) Remove(r Rank) error {
	if s.counts[r] == 0 {
		return fmt.Errorf("%s: %w", r, ErrCardNotAvailable)
	}
	s.counts[r]--
	return nil
}

// RemainingTotal returns the total number of cards left in the shoe
func (s *Shoe) RemainingTotal() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// DecksRemaining returns the remaining card count expressed in decks,
// floored at 1 so downstream divisions (true count) are always defined.
func (s *Shoe) DecksRemaining() float64 {
	d := float64(s.RemainingTotal()) / CardsPerDeck
	if d < 1 {
		return 1
	}
	return d
}

// TenValueCount returns how many ten-value cards (T, J, Q, K) remain
func (s *Shoe) TenValueCount() int {
	return s.counts[Ten] + s.counts[Jack] + s.counts[Queen] + s.counts[King]
}

// Flatten builds the draw pool: one Value entry per remaining physical
// card. The pool is a fresh slice every call, so each trial can consume
// its own copy without touching the shoe.
func (s *Shoe) Flatten() Pool {
	pool := make(Pool, 0, s.RemainingTotal())
	for r := Rank(0); r < NumRanks; r++ {
		v := r.Value()
		for i := 0; i < s.counts[r]; i++ {
			pool = append(pool, v)
		}
	}
	return pool
}

// Pool is a flat draw pool of card values, sampled uniformly without
// replacement.
type Pool []Value

// Draw removes and returns a uniformly random card value from the pool.
// The second return is false when the pool is exhausted.
func (p *Pool) Draw(rng *rand.Rand) (Value, bool) {
	n := len(*p)
	if n == 0 {
		return 0, false
	}
	idx := rng.IntN(n)
	v := (*p)[idx]
	// Swap the drawn card to the end and shrink, avoiding a shift
	(*p)[idx] = (*p)[n-1]
	*p = (*p)[:n-1]
	return v, true
}

// Clone returns an independent copy of the pool
func (p Pool) Clone() Pool {
	c := make(Pool, len(p))
	copy(c, p)
	return c
}
