// Package session owns the committed shoe state between decision
// points: dealing cards to the table, rolling back bad input, tracking
// the running count, and handing immutable snapshots to the estimator.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-solver/internal/config"
	"github.com/lox/blackjack-solver/internal/counting"
	"github.com/lox/blackjack-solver/internal/ev"
	"github.com/lox/blackjack-solver/internal/hand"
	"github.com/lox/blackjack-solver/internal/shoe"
)

// ErrNoUpcard is returned when a solve is requested before the dealer
// upcard has been dealt
var ErrNoUpcard = errors.New("dealer upcard not set")

// ErrNoPlayerHand is returned when a solve is requested before the
// player holds any cards
var ErrNoPlayerHand = errors.New("player hand is empty")

// Session tracks one table session against a persistent shoe
type Session struct {
	cfg    *config.Config
	logger *log.Logger

	shoe    *shoe.Shoe
	counter counting.Counter

	playerHand hand.Hand
	upcard     shoe.Value
	upcardSet  bool

	firstDecision bool
	splitHand     bool
}

// New creates a session with a full shoe
func New(cfg *config.Config, logger *log.Logger) *Session {
	return &Session{
		cfg:           cfg,
		logger:        logger,
		shoe:          shoe.New(cfg.Rules.Decks),
		firstDecision: true,
	}
}

// ResetShoe reinitializes the shoe and clears the hand and count state
func (s *Session) ResetShoe() {
	s.shoe.Reset()
	s.counter.Reset()
	s.ClearHand()
	s.logger.Info("shoe reset", "decks", s.cfg.Rules.Decks)
}

// ClearHand starts a new hand against the current shoe
func (s *Session) ClearHand() {
	s.playerHand = nil
	s.upcard = 0
	s.upcardSet = false
	s.firstDecision = true
	s.splitHand = false
}

// DealUpcard commits the dealer's visible card
func (s *Session) DealUpcard(r shoe.Rank) error {
	if err := s.removeBatch(r); err != nil {
		return err
	}
	s.upcard = r.Value()
	s.upcardSet = true
	return nil
}

// DealPlayer commits cards to the player's hand
func (s *Session) DealPlayer(ranks ...shoe.Rank) error {
	if err := s.removeBatch(ranks...); err != nil {
		return err
	}
	for _, r := range ranks {
		s.playerHand = s.playerHand.Add(r.Value())
	}
	return nil
}

// RemoveSeen commits cards that left the shoe without joining either
// tracked hand (other players' cards, burns)
func (s *Session) RemoveSeen(ranks ...shoe.Rank) error {
	return s.removeBatch(ranks...)
}

// removeBatch removes a batch of ranks from the shoe, updating the
// running count alongside each removal. On any failure the whole batch
// is rolled back and the session is left unchanged.
func (s *Session) removeBatch(ranks ...shoe.Rank) error {
	backup := s.shoe.Clone()
	for i, r := range ranks {
		if err := s.shoe.Remove(r); err != nil {
			s.shoe = backup
			for _, applied := range ranks[:i] {
				s.counter.Unobserve(applied)
			}
			return fmt.Errorf("removing card %d of %d: %w", i+1, len(ranks), err)
		}
		s.counter.Observe(r)
	}
	return nil
}

// MarkDecisionTaken records that the first decision of the hand has
// passed, closing the Double Down and Split windows
func (s *Session) MarkDecisionTaken() {
	s.firstDecision = false
}

// MarkSplit records that the hand is now a split sub-hand
func (s *Session) MarkSplit() {
	s.splitHand = true
}

// PlayerHand returns a copy of the player's current hand
func (s *Session) PlayerHand() hand.Hand {
	return s.playerHand.Clone()
}

// Upcard returns the dealer's visible card value
func (s *Session) Upcard() (shoe.Value, bool) {
	return s.upcard, s.upcardSet
}

// Shoe returns the committed shoe. Callers must not mutate it directly;
// it is read-only input for the duration of any in-flight estimate.
func (s *Session) Shoe() *shoe.Shoe {
	return s.shoe
}

// RunningCount returns the running count of all committed removals
func (s *Session) RunningCount() float64 {
	return s.counter.Running()
}

// TrueCount returns the running count normalized by decks remaining
func (s *Session) TrueCount() float64 {
	return s.counter.TrueCount(s.shoe.DecksRemaining())
}

// InsuranceEV returns the insurance side-bet EV for the current shoe
func (s *Session) InsuranceEV() float64 {
	return counting.InsuranceEV(s.shoe)
}

// Solve estimates every legal action for the current decision point and
// ranks them
func (s *Session) Solve(ctx context.Context, seed int64) ([]*ev.Result, ev.Ranking, error) {
	if !s.upcardSet {
		return nil, ev.Ranking{}, ErrNoUpcard
	}
	if len(s.playerHand) == 0 {
		return nil, ev.Ranking{}, ErrNoPlayerHand
	}

	estimator := ev.New(ev.Config{
		Shoe:          s.shoe,
		Hand:          s.playerHand,
		Upcard:        s.upcard,
		FirstDecision: s.firstDecision,
		SplitHand:     s.splitHand,
		Rules:         s.cfg.SimRules(),
		RTP:           s.cfg.Solver.RTP,
		Workers:       s.cfg.Solver.Workers,
		Seed:          seed,
		Logger:        s.logger,
	})

	results, err := estimator.EstimateAll(ctx, s.cfg.Solver.Trials)
	if err != nil {
		return nil, ev.Ranking{}, err
	}
	ranking, err := ev.Select(results)
	if err != nil {
		return nil, ev.Ranking{}, err
	}
	return results, ranking, nil
}
