package stats

import (
	"math"
	"testing"
)

func TestStatisticMean(t *testing.T) {
	var s Statistic
	if s.Mean() != 0 {
		t.Errorf("empty statistic mean should be 0, got %f", s.Mean())
	}

	for _, v := range []float64{1, -1, 1, -1, 0, 0} {
		s.Push(v)
	}
	if s.Mean() != 0 {
		t.Errorf("expected mean 0, got %f", s.Mean())
	}
	if s.Iterations() != 6 {
		t.Errorf("expected 6 iterations, got %d", s.Iterations())
	}
}

func TestStatisticVariance(t *testing.T) {
	var s Statistic
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}
	if got := s.Mean(); got != 5 {
		t.Errorf("expected mean 5, got %f", got)
	}
	// Sample variance of the classic example set is 32/7
	if got := s.Variance(); math.Abs(got-32.0/7.0) > 1e-9 {
		t.Errorf("expected variance %f, got %f", 32.0/7.0, got)
	}
	if got := s.Stdev(); math.Abs(got-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("unexpected stdev %f", got)
	}
}

func TestStandardError(t *testing.T) {
	var s Statistic
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			s.Push(1)
		} else {
			s.Push(-1)
		}
	}
	// stdev is just over 1 for the alternating series; stderr = stdev/10
	se := s.StandardError()
	if se <= 0.09 || se >= 0.11 {
		t.Errorf("unexpected standard error %f", se)
	}

	low, high := s.ConfidenceInterval95()
	if low >= high {
		t.Errorf("degenerate interval [%f, %f]", low, high)
	}
	if low > 0 || high < 0 {
		t.Errorf("interval [%f, %f] should contain the mean 0", low, high)
	}
}

func TestSingleValue(t *testing.T) {
	var s Statistic
	s.Push(3.5)
	if s.Mean() != 3.5 {
		t.Errorf("expected mean 3.5, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("single-value variance should be 0, got %f", s.Variance())
	}
}
