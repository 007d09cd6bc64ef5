// Package sim simulates a single randomized playout of one candidate
// action, producing a signed payoff in bet units.
package sim

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack-solver/internal/dealer"
	"github.com/lox/blackjack-solver/internal/hand"
	"github.com/lox/blackjack-solver/internal/shoe"
)

// PlayOne runs one full trial of the given action. The pool must be a
// trial-private draw pool reflecting the cards still unseen (the
// player's hand and the dealer upcard already excluded); it is consumed
// in place. The returned payoff is signed, in bet units: ±1 for
// Stand/Hit, ±2 for Double Down, and the sum of two ±1 sub-hand
// payoffs for Split (a split doubles total exposure; no per-unit
// normalization is applied).
func PlayOne(action Action, h hand.Hand, upcard shoe.Value, pool shoe.Pool, rng *rand.Rand, rules Rules) float64 {
	switch action {
	case Stand:
		return resolve(h.Total(), dealer.PlayOut(upcard, &pool, rng, rules.DealerHitsSoft17), 1)
	case Hit:
		cards := h.Clone()
		if rules.PlayOutHits {
			cards = playOut(cards, &pool, rng)
		} else if v, ok := pool.Draw(rng); ok {
			cards = cards.Add(v)
		}
		if cards.IsBust() {
			return -1
		}
		return resolve(cards.Total(), dealer.PlayOut(upcard, &pool, rng, rules.DealerHitsSoft17), 1)
	case DoubleDown:
		cards := h.Clone()
		if v, ok := pool.Draw(rng); ok {
			cards = cards.Add(v)
		}
		if cards.IsBust() {
			return -2
		}
		return resolve(cards.Total(), dealer.PlayOut(upcard, &pool, rng, rules.DealerHitsSoft17), 2)
	case Split:
		return playSplit(h, upcard, pool, rng, rules)
	default:
		return 0
	}
}

// playSplit resolves the two sub-hands of a split. Both sub-hands draw
// from the shared trial pool, but each is compared against its own
// independent dealer playout taken from a copy of the pool as it stands
// when the sub-hand finishes.
func playSplit(h hand.Hand, upcard shoe.Value, pool shoe.Pool, rng *rand.Rand, rules Rules) float64 {
	splitValue := h[0]
	payoff := 0.0
	for i := 0; i < 2; i++ {
		sub := hand.New(splitValue)
		if v, ok := pool.Draw(rng); ok {
			sub = sub.Add(v)
		}
		if rules.PlayOutHits {
			sub = playOut(sub, &pool, rng)
		}
		if sub.IsBust() {
			payoff -= 1
			continue
		}
		dealerPool := pool.Clone()
		payoff += resolve(sub.Total(), dealer.PlayOut(upcard, &dealerPool, rng, rules.DealerHitsSoft17), 1)
	}
	return payoff
}

// playOut keeps hitting while the total is below 17, stopping on a
// bust or an exhausted pool. This emulates continued play after the
// decision point under a simple fixed stopping rule.
func playOut(cards hand.Hand, pool *shoe.Pool, rng *rand.Rand) hand.Hand {
	for cards.Total() < dealer.StandThreshold {
		v, ok := pool.Draw(rng)
		if !ok {
			break
		}
		cards = cards.Add(v)
	}
	return cards
}

// resolve applies the shared resolution rule: a busted player loses, a
// busted dealer wins for the player, otherwise totals compare directly
// and equal totals push.
func resolve(playerTotal, dealerTotal int, stake float64) float64 {
	switch {
	case playerTotal > hand.Blackjack:
		return -stake
	case dealerTotal > hand.Blackjack:
		return stake
	case playerTotal > dealerTotal:
		return stake
	case playerTotal < dealerTotal:
		return -stake
	default:
		return 0
	}
}
