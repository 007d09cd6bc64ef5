package counting

import (
	"math"
	"testing"

	"github.com/lox/blackjack-solver/internal/shoe"
)

func TestCounterObserve(t *testing.T) {
	var c Counter

	// Low cards raise the count, tens sink it, eights and aces are flat
	c.Observe(shoe.Two)   // +1
	c.Observe(shoe.Five)  // +2
	c.Observe(shoe.Eight) // 0
	c.Observe(shoe.Ace)   // 0
	c.Observe(shoe.King)  // -2
	c.Observe(shoe.Nine)  // -1

	if got := c.Running(); got != 0 {
		t.Errorf("expected running count 0, got %f", got)
	}

	c.Observe(shoe.Six) // +2
	if got := c.Running(); got != 2 {
		t.Errorf("expected running count 2, got %f", got)
	}

	c.Unobserve(shoe.Six)
	if got := c.Running(); got != 0 {
		t.Errorf("expected running count 0 after unobserve, got %f", got)
	}

	c.Reset()
	if got := c.Running(); got != 0 {
		t.Errorf("expected 0 after reset, got %f", got)
	}
}

func TestTrueCount(t *testing.T) {
	var c Counter
	for i := 0; i < 6; i++ {
		c.Observe(shoe.Four) // +2 each
	}
	if got := c.TrueCount(3); got != 4 {
		t.Errorf("expected true count 4, got %f", got)
	}
	if got := c.TrueCount(1); got != 12 {
		t.Errorf("expected true count 12, got %f", got)
	}
}

func TestInsuranceEV(t *testing.T) {
	// Full single deck: p(ten) = 16/52, EV = 3p - 1 < 0
	s := shoe.New(1)
	expected := 3*(16.0/52.0) - 1
	if got := InsuranceEV(s); math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected %f, got %f", expected, got)
	}
	if InsuranceEV(s) >= 0 {
		t.Error("insurance on a fresh shoe must be unprofitable")
	}

	// Strip every non-ten card: insurance becomes a sure win
	for r := shoe.Two; r <= shoe.Nine; r++ {
		for s.Count(r) > 0 {
			if err := s.Remove(r); err != nil {
				t.Fatal(err)
			}
		}
	}
	for s.Count(shoe.Ace) > 0 {
		if err := s.Remove(shoe.Ace); err != nil {
			t.Fatal(err)
		}
	}
	if got := InsuranceEV(s); got != 2 {
		t.Errorf("all-tens shoe: expected EV 2, got %f", got)
	}
}

func TestPointValue(t *testing.T) {
	if PointValue(shoe.Queen) != -2 {
		t.Errorf("expected -2 for queens, got %f", PointValue(shoe.Queen))
	}
	if PointValue(shoe.Seven) != 1 {
		t.Errorf("expected +1 for sevens, got %f", PointValue(shoe.Seven))
	}
}
