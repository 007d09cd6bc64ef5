// Package stats provides a running statistic over streamed payoffs,
// using Welford's algorithm so no sample needs to be retained.
package stats

import "math"

// Z-values for common confidence levels
const (
	Z95 = 1.96
	Z99 = 2.58
)

// Statistic accumulates a stream of values and exposes their running
// mean and dispersion
type Statistic struct {
	iterations int

	// Welford's algorithm state
	oldM float64
	newM float64
	oldS float64
	newS float64
}

// Push adds a value to the statistic
func (s *Statistic) Push(val float64) {
	s.iterations++
	if s.iterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.iterations)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
	}
}

// Mean returns the running mean
func (s *Statistic) Mean() float64 {
	if s.iterations > 0 {
		return s.newM
	}
	return 0
}

// Variance returns the sample variance
func (s *Statistic) Variance() float64 {
	if s.iterations <= 1 {
		return 0
	}
	return s.newS / float64(s.iterations-1)
}

// Stdev returns the sample standard deviation
func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean
func (s *Statistic) StandardError() float64 {
	if s.iterations == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.iterations))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistic) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := Z95 * s.StandardError()
	return mean - margin, mean + margin
}

// Iterations returns the number of values pushed
func (s *Statistic) Iterations() int {
	return s.iterations
}
