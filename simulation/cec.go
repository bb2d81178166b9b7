package simulation

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/go-logic/booleq/logger"
	"github.com/go-logic/booleq/logic"
)

// maxPIs is the largest primary-input count Check will attempt; beyond it
// the round count makes simulation infeasible.
const maxPIs = 40

// Result is the outcome class of an equivalence check.
type Result uint8

const (
	// Unknown means the check could not be attempted; Verdict.Reason says
	// why.
	Unknown Result = iota
	// Equivalent means the two networks compute the same function on every
	// input assignment.
	Equivalent
	// NotEquivalent means the two networks differ on at least one input
	// assignment.
	NotEquivalent
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case Equivalent:
		return "equivalent"
	case NotEquivalent:
		return "not equivalent"
	default:
		return "unknown"
	}
}

// Reasons reported with an Unknown verdict.
const (
	ReasonTooManyInputs        = "input count exceeds limit"
	ReasonIncompatibleNetworks = "incompatible networks"
)

// Verdict is the tri-state outcome of an equivalence check. Reason is empty
// unless Result is Unknown.
type Verdict struct {
	Result Result
	Reason string
}

type config struct {
	stats       *Stats
	parallelism int
}

// Option configures a call to Check.
type Option func(*config)

// WithStats records the simulation plan actually used into st. st is left
// untouched when the verdict is Unknown.
func WithStats(st *Stats) Option {
	return func(c *config) { c.stats = st }
}

// WithParallelism evaluates up to n rounds concurrently. Values below 2
// keep the default sequential round loop. The verdict does not depend on
// round order, so this is safe for any n.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}

// Check reports whether ntk1 and ntk2 compute the same Boolean function on
// every input assignment, by exhaustive partitioned simulation of their
// miter.
//
// The verdict is Unknown, with a Reason, when ntk1 has more than 40 primary
// inputs or when the networks' input or output counts differ; no simulation
// is performed in either case.
func Check(ntk1, ntk2 *logic.AIG, opts ...Option) Verdict {
	cfg := config{parallelism: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if ntk1.NumPIs() > maxPIs {
		return Verdict{Result: Unknown, Reason: ReasonTooManyInputs}
	}

	m, err := logic.Miter(ntk1, ntk2)
	if err != nil {
		return Verdict{Result: Unknown, Reason: ReasonIncompatibleNetworks}
	}

	r := runner{ntk: m, parallelism: cfg.parallelism}
	eq := r.run()

	log := logger.Logger()
	log.Debug().
		Uint32("splitVar", r.st.SplitVar).
		Uint64("rounds", r.st.Rounds).
		Int("miterSize", m.Size()).
		Msg("simulation finished")

	if cfg.stats != nil {
		*cfg.stats = r.st
	}
	if eq {
		return Verdict{Result: Equivalent}
	}
	return Verdict{Result: NotEquivalent}
}

// runner drives the round loop over a miter network.
type runner struct {
	ntk         logic.Network
	parallelism int
	st          Stats
}

// run simulates every round and reports whether all miter outputs stayed
// constant zero throughout. Each round's truth tables are released before
// the next round starts, so the planner's memory ceiling applies per round.
func (r *runner) run() bool {
	r.st = computePlan(r.ntk.NumPIs(), r.ntk.Size())
	if r.parallelism > 1 {
		return r.runParallel()
	}
	for round := uint64(0); round < r.st.Rounds; round++ {
		if !r.roundIsZero(round) {
			return false
		}
	}
	return true
}

// errMismatch signals a discrepancy between concurrent rounds; it never
// escapes runParallel.
var errMismatch = errors.New("miter output not constant zero")

func (r *runner) runParallel() bool {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(r.parallelism)
	for round := uint64(0); round < r.st.Rounds; round++ {
		if ctx.Err() != nil {
			break
		}
		round := round
		g.Go(func() error {
			if !r.roundIsZero(round) {
				return errMismatch
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// roundIsZero simulates one round and reports whether every miter output
// is the constant-zero table, i.e. no discrepancy exists for this round's
// assignment of the free variables.
func (r *runner) roundIsZero(round uint64) bool {
	stim := newRoundStimulus(r.st.SplitVar, round)
	for _, po := range Simulate(r.ntk, stim) {
		if !po.IsZero() {
			return false
		}
	}
	return true
}
