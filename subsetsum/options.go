package subsetsum

import (
	"fmt"
	"math"
)

// Defaults and hard limits (single source of truth).
const (
	// DefaultMIMThreshold is the remaining-item count at which
	// BranchAndBound delegates to the meet-in-the-middle leaf.
	DefaultMIMThreshold = 15

	// MaxMIMThreshold caps MIMThreshold: each half enumerates at most
	// 2^(MaxMIMThreshold/2) sums (≈1M int64 values, 8 MiB).
	MaxMIMThreshold = 40

	// MaxMIMItems caps the standalone MeetInTheMiddle input length.
	MaxMIMItems = MaxMIMThreshold

	// MaxWorkers caps WithWorkers: it bounds both the frontier expanded
	// before fan-out and the number of live goroutines.
	MaxWorkers = 1024

	// DefaultDPMaxTarget is the largest target BitsetDP accepts by default:
	// 1<<28 bits = 32 MiB of words.
	DefaultDPMaxTarget int64 = 1 << 28

	// HardDPMaxTarget bounds WithDPMaxTarget so that target+1 always fits int
	// on every platform (256 MiB of words at the limit).
	HardDPMaxTarget int64 = math.MaxInt32 - 1

	// DefaultDPAutoBudget is the word-operation budget (ceil((target+1)/64)·n)
	// under which AlgoAuto prefers BitsetDP.
	DefaultDPAutoBudget int64 = 1 << 22
)

// Option configures solver behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the solver is invoked.
type Option func(*Options)

// Options holds the effective configuration of a solve call.
//
//   - Algo        : strategy used by Solve (AlgoAuto by default).
//   - MIMThreshold: remaining-item cutoff for the meet-in-the-middle leaf.
//   - Workers     : > 1 enables parallel fan-out of the search tree.
//   - DPMaxTarget : largest target BitsetDP will allocate for.
//   - DPAutoBudget: AlgoAuto word budget for choosing BitsetDP.
//   - CrossCheck  : Solve verifies its answer with an independent strategy.
type Options struct {
	Algo         Algo
	MIMThreshold int
	Workers      int
	DPMaxTarget  int64
	DPAutoBudget int64
	CrossCheck   bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with documented defaults:
//   - AlgoAuto, MIMThreshold=DefaultMIMThreshold, sequential search,
//     DPMaxTarget=DefaultDPMaxTarget, DPAutoBudget=DefaultDPAutoBudget,
//     no cross-check.
func DefaultOptions() Options {
	return Options{
		Algo:         AlgoAuto,
		MIMThreshold: DefaultMIMThreshold,
		Workers:      1,
		DPMaxTarget:  DefaultDPMaxTarget,
		DPAutoBudget: DefaultDPAutoBudget,
		CrossCheck:   false,
	}
}

// WithAlgo selects the strategy used by Solve.
func WithAlgo(a Algo) Option {
	return func(o *Options) {
		switch a {
		case AlgoAuto, AlgoBranchAndBound, AlgoBitsetDP, AlgoMeetInTheMiddle:
			o.Algo = a
		default:
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrUnsupportedAlgorithm, int(a))
		}
	}
}

// WithMIMThreshold sets the meet-in-the-middle cutoff.
//
//	0 ≤ t ≤ MaxMIMThreshold: accepted (0 disables delegation except at the leaves)
//	otherwise:               ErrOptionViolation
func WithMIMThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 || t > MaxMIMThreshold {
			o.err = fmt.Errorf("%w: MIMThreshold must be in [0, %d] (got %d)", ErrOptionViolation, MaxMIMThreshold, t)
			return
		}
		o.MIMThreshold = t
	}
}

// WithWorkers sets the number of parallel search workers.
//
//	0 ≤ k ≤ 1:          sequential search
//	1 < k ≤ MaxWorkers: parallel fan-out
//	otherwise:          ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 0 || k > MaxWorkers {
			o.err = fmt.Errorf("%w: Workers must be in [0, %d] (got %d)", ErrOptionViolation, MaxWorkers, k)
			return
		}
		o.Workers = k
	}
}

// WithDPMaxTarget sets the largest target BitsetDP accepts.
// Must lie in [0, HardDPMaxTarget].
func WithDPMaxTarget(limit int64) Option {
	return func(o *Options) {
		if limit < 0 || limit > HardDPMaxTarget {
			o.err = fmt.Errorf("%w: DPMaxTarget must be in [0, %d] (got %d)", ErrOptionViolation, HardDPMaxTarget, limit)
			return
		}
		o.DPMaxTarget = limit
	}
}

// WithDPAutoBudget sets the AlgoAuto word budget. 0 never picks BitsetDP.
func WithDPAutoBudget(words int64) Option {
	return func(o *Options) {
		if words < 0 {
			o.err = fmt.Errorf("%w: DPAutoBudget cannot be negative (%d)", ErrOptionViolation, words)
			return
		}
		o.DPAutoBudget = words
	}
}

// WithCrossCheck makes Solve confirm its answer with an independent strategy.
func WithCrossCheck() Option {
	return func(o *Options) {
		o.CrossCheck = true
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return Options{}, o.err
		}
	}

	return o, nil
}
