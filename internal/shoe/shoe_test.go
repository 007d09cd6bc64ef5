package shoe

import (
	"errors"
	"testing"

	"github.com/lox/blackjack-solver/internal/randutil"
)

func TestNewShoe(t *testing.T) {
	s := New(6)
	if got := s.RemainingTotal(); got != 6*CardsPerDeck {
		t.Errorf("expected %d cards, got %d", 6*CardsPerDeck, got)
	}
	for r := Rank(0); r < NumRanks; r++ {
		if got := s.Count(r); got != 24 {
			t.Errorf("%s: expected 24 copies, got %d", r, got)
		}
	}
}

func TestRemove(t *testing.T) {
	s := New(1)

	// Remove all four copies of a rank
	for i := 0; i < 4; i++ {
		if err := s.Remove(Ace); err != nil {
			t.Fatalf("removal %d: unexpected error: %v", i+1, err)
		}
	}
	if got := s.Count(Ace); got != 0 {
		t.Fatalf("expected 0 aces, got %d", got)
	}

	// One more removal fails and leaves the shoe unchanged
	err := s.Remove(Ace)
	if !errors.Is(err, ErrCardNotAvailable) {
		t.Fatalf("expected ErrCardNotAvailable, got %v", err)
	}
	if got := s.Count(Ace); got != 0 {
		t.Errorf("failed removal changed ace count to %d", got)
	}
	for r := Two; r <= King; r++ {
		if got := s.Count(r); got != 4 {
			t.Errorf("%s: other rank count changed to %d", r, got)
		}
	}
	if got := s.RemainingTotal(); got != 48 {
		t.Errorf("expected 48 remaining, got %d", got)
	}
}

func TestReset(t *testing.T) {
	s := New(2)
	for i := 0; i < 8; i++ {
		if err := s.Remove(King); err != nil {
			t.Fatal(err)
		}
	}
	s.Reset()
	if got := s.Count(King); got != 8 {
		t.Errorf("expected 8 kings after reset, got %d", got)
	}
	if got := s.RemainingTotal(); got != 2*CardsPerDeck {
		t.Errorf("expected full shoe after reset, got %d", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1)
	c := s.Clone()
	if err := c.Remove(Five); err != nil {
		t.Fatal(err)
	}
	if got := s.Count(Five); got != 4 {
		t.Errorf("mutating clone changed original count to %d", got)
	}
}

func TestDecksRemaining(t *testing.T) {
	s := New(2)
	if got := s.DecksRemaining(); got != 2 {
		t.Errorf("expected 2 decks remaining, got %f", got)
	}

	// Deplete below one deck; the divisor floors at 1
	for r := Rank(0); r < NumRanks; r++ {
		for s.Count(r) > 0 {
			if err := s.Remove(r); err != nil {
				t.Fatal(err)
			}
		}
	}
	if got := s.DecksRemaining(); got != 1 {
		t.Errorf("expected floor of 1 deck remaining, got %f", got)
	}
}

func TestFlatten(t *testing.T) {
	s := New(1)
	if err := s.Remove(Ace); err != nil {
		t.Fatal(err)
	}
	pool := s.Flatten()
	if len(pool) != 51 {
		t.Fatalf("expected 51 cards in pool, got %d", len(pool))
	}

	// Composition matches counts after rank->value mapping
	valueCounts := map[Value]int{}
	for _, v := range pool {
		valueCounts[v]++
	}
	if valueCounts[10] != 16 {
		t.Errorf("expected 16 ten-values, got %d", valueCounts[10])
	}
	if valueCounts[11] != 3 {
		t.Errorf("expected 3 aces, got %d", valueCounts[11])
	}
	if valueCounts[2] != 4 {
		t.Errorf("expected 4 twos, got %d", valueCounts[2])
	}
}

func TestPoolDrawWithoutReplacement(t *testing.T) {
	s := New(1)
	pool := s.Flatten()
	rng := randutil.New(42)

	drawn := map[Value]int{}
	for i := 0; i < CardsPerDeck; i++ {
		v, ok := pool.Draw(rng)
		if !ok {
			t.Fatalf("pool exhausted early at draw %d", i+1)
		}
		drawn[v]++
	}
	if _, ok := pool.Draw(rng); ok {
		t.Error("expected exhausted pool to refuse a draw")
	}

	// Drawing the whole pool yields exactly the shoe's composition
	if drawn[10] != 16 {
		t.Errorf("expected 16 ten-values drawn, got %d", drawn[10])
	}
	if drawn[11] != 4 {
		t.Errorf("expected 4 aces drawn, got %d", drawn[11])
	}
}

func TestPoolCloneIsIndependent(t *testing.T) {
	s := New(1)
	pool := s.Flatten()
	clone := pool.Clone()
	rng := randutil.New(1)

	for i := 0; i < 10; i++ {
		if _, ok := clone.Draw(rng); !ok {
			t.Fatal("unexpected exhaustion")
		}
	}
	if len(pool) != CardsPerDeck {
		t.Errorf("drawing from clone shrank original to %d", len(pool))
	}
}
