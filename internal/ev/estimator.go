// Package ev estimates the expected value of each legal action at a
// blackjack decision point by repeated randomized playouts, and ranks
// the actions by their estimated EV.
package ev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-solver/internal/hand"
	"github.com/lox/blackjack-solver/internal/randutil"
	"github.com/lox/blackjack-solver/internal/shoe"
	"github.com/lox/blackjack-solver/internal/sim"
	"github.com/lox/blackjack-solver/internal/stats"
)

// Checkpoints is the number of convergence-trace points recorded per
// estimate (one per 10% of the trial budget)
const Checkpoints = 10

// maxWorkers caps the worker pool; beyond this the per-trial work is
// too small for extra goroutines to pay off
const maxWorkers = 8

// ctxCheckInterval is how many trials a worker runs between
// cancellation checks
const ctxCheckInterval = 1024

// ErrInvalidAction is returned when an estimate is requested for an
// action outside its legality window. It is a precondition failure:
// no simulation work is performed.
var ErrInvalidAction = errors.New("action not legal at this decision point")

// Config holds the decision point and estimation settings
type Config struct {
	// Shoe is the committed shoe reflecting all cards already dealt.
	// It is snapshotted on construction and never mutated.
	Shoe *shoe.Shoe
	// Hand is the player's current hand
	Hand hand.Hand
	// Upcard is the dealer's visible card value
	Upcard shoe.Value
	// FirstDecision gates Double Down and Split eligibility
	FirstDecision bool
	// SplitHand marks a hand produced by a previous split
	SplitHand bool

	Rules sim.Rules
	// RTP is the return-to-player calibration scalar applied to the
	// final EV (not to the convergence trace). Zero means 1.0.
	RTP float64
	// Workers sets the worker pool size; zero means one per CPU,
	// capped. The convergence trace is deterministic for a fixed seed
	// and worker count.
	Workers int
	Seed    int64

	Clock  quartz.Clock
	Logger *log.Logger
}

// Result is the outcome of estimating one action
type Result struct {
	Action sim.Action
	// EV is the mean signed payoff per trial, scaled by RTP. For Split
	// it is per original bet unit of a doubled exposure (sub-hand
	// payoffs are summed, not averaged).
	EV float64
	// Trace holds the raw (unscaled) running mean at each 10%
	// checkpoint, for convergence inspection
	Trace []float64
	// Stat is the raw payoff statistic (mean, stdev, standard error)
	Stat    stats.Statistic
	Trials  int
	Elapsed time.Duration
}

// Estimator runs checkpointed Monte Carlo estimates against a private
// snapshot of the shoe
type Estimator struct {
	cfg     Config
	shoe    *shoe.Shoe
	legal   []sim.Action
	workers int
	rtp     float64
	clock   quartz.Clock
	logger  *log.Logger
}

// New creates an estimator for a single decision point, snapshotting
// the shoe so in-flight estimation is never affected by session
// mutations
func New(cfg Config) *Estimator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	rtp := cfg.RTP
	if rtp == 0 {
		rtp = 1
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	return &Estimator{
		cfg:     cfg,
		shoe:    cfg.Shoe.Clone(),
		legal:   sim.LegalActions(cfg.Hand, cfg.FirstDecision, cfg.SplitHand, cfg.Rules),
		workers: workers,
		rtp:     rtp,
		clock:   clock,
		logger:  logger,
	}
}

// LegalActions returns the actions eligible at this decision point
func (e *Estimator) LegalActions() []sim.Action {
	return e.legal
}

// Estimate runs the given number of independent playout trials for one
// action. Trials are rounded down to a multiple of Checkpoints; the
// remainder is dropped. Every trial samples from its own flattened copy
// of the shoe snapshot.
func (e *Estimator) Estimate(ctx context.Context, action sim.Action, trials int) (*Result, error) {
	legal := false
	for _, a := range e.legal {
		if a == action {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%s: %w", action, ErrInvalidAction)
	}

	chunk := trials / Checkpoints
	if chunk == 0 {
		return nil, fmt.Errorf("need at least %d trials, got %d", Checkpoints, trials)
	}
	trials = chunk * Checkpoints

	start := e.clock.Now()
	payoffs := make([]float64, trials)

	workers := e.workers
	if workers > trials {
		workers = trials
	}

	// Each worker owns a fixed stripe of trial indices and its own
	// seeded stream, so results are reproducible for a given seed and
	// worker count regardless of scheduling.
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			rng := randutil.Stream(e.cfg.Seed+int64(action), w)
			for i, n := w, 0; i < trials; i, n = i+workers, n+1 {
				if n%ctxCheckInterval == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				pool := e.shoe.Flatten()
				payoffs[i] = sim.PlayOne(action, e.cfg.Hand, e.cfg.Upcard, pool, rng, e.cfg.Rules)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("estimating %s: %w", action, err)
	}

	var stat stats.Statistic
	sum := 0.0
	trace := make([]float64, 0, Checkpoints)
	for i, p := range payoffs {
		sum += p
		stat.Push(p)
		if (i+1)%chunk == 0 {
			trace = append(trace, sum/float64(i+1))
		}
	}

	result := &Result{
		Action:  action,
		EV:      stat.Mean() * e.rtp,
		Trace:   trace,
		Stat:    stat,
		Trials:  trials,
		Elapsed: e.clock.Since(start),
	}
	e.logger.Debug("estimate complete",
		"action", action.String(),
		"ev", result.EV,
		"stderr", stat.StandardError(),
		"trials", trials,
		"elapsed", result.Elapsed)
	return result, nil
}

// EstimateAll estimates every legal action with the same trial budget
func (e *Estimator) EstimateAll(ctx context.Context, trials int) ([]*Result, error) {
	results := make([]*Result, 0, len(e.legal))
	for _, action := range e.legal {
		r, err := e.Estimate(ctx, action, trials)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
