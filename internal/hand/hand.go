// Package hand implements blackjack hand valuation: best total with
// soft-ace reduction and the derived soft/pair/blackjack queries.
package hand

import "github.com/lox/blackjack-solver/internal/shoe"

// Blackjack is the target total
const Blackjack = 21

// Hand is an ordered sequence of card values held by one party
type Hand []shoe.Value

// New creates a hand from card values
func New(values ...shoe.Value) Hand {
	h := make(Hand, len(values))
	copy(h, values)
	return h
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	c := make(Hand, len(h))
	copy(c, h)
	return c
}

// Add appends a card value and returns the extended hand
func (h Hand) Add(v shoe.Value) Hand {
	return append(h, v)
}

// reduce returns the raw sum and the number of aces still counted as 11
// after minimal reduction: each ace drops from 11 to 1 (subtract 10)
// only while the total exceeds 21.
func (h Hand) reduce() (int, int) {
	total := 0
	aces := 0
	for _, v := range h {
		total += int(v)
		if v == 11 {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// Total returns the best achievable total: at most 21 if any assignment
// of ace values allows it, otherwise the hard (all-aces-as-1) sum.
func (h Hand) Total() int {
	total, _ := h.reduce()
	return total
}

// IsSoft returns true if at least one ace is still counted as 11 after
// minimal reduction
func (h Hand) IsSoft() bool {
	_, aces := h.reduce()
	return aces > 0
}

// IsBust returns true if even the hard total exceeds 21
func (h Hand) IsBust() bool {
	return h.Total() > Blackjack
}

// IsPair returns true for a two-card hand whose cards share a value
func (h Hand) IsPair() bool {
	return len(h) == 2 && h[0] == h[1]
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Total() == Blackjack
}
