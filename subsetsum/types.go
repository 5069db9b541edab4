package subsetsum

import "errors"

// Sentinel errors returned by the subsetsum solvers.
var (
	// ErrNegativeItem indicates an item value below zero.
	ErrNegativeItem = errors.New("subsetsum: item values must be non-negative")

	// ErrSumOverflow indicates the total of all items exceeds math.MaxInt64.
	ErrSumOverflow = errors.New("subsetsum: total sum overflows int64")

	// ErrTooManyItems indicates MeetInTheMiddle was given more than MaxMIMItems values.
	ErrTooManyItems = errors.New("subsetsum: too many items for meet-in-the-middle")

	// ErrTargetTooLarge indicates BitsetDP was asked for a target above DPMaxTarget.
	ErrTargetTooLarge = errors.New("subsetsum: target exceeds bitset DP limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subsetsum: invalid option supplied")

	// ErrUnsupportedAlgorithm indicates an unknown Algo value.
	ErrUnsupportedAlgorithm = errors.New("subsetsum: unsupported algorithm")

	// ErrCrossCheckMismatch indicates two exact strategies disagreed.
	// It always signals a defect, never a property of the input.
	ErrCrossCheckMismatch = errors.New("subsetsum: cross-check mismatch")
)

// Outcome is the three-valued answer of a solve call.
type Outcome int

const (
	// NotFound: exhaustive (or provably pruned) search found no subset.
	NotFound Outcome = iota

	// Found: some sub-multiset sums exactly to the target.
	Found

	// Aborted: the context was cancelled before a definite answer.
	Aborted
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// outcomeOf maps a definite boolean onto Found/NotFound.
func outcomeOf(ok bool) Outcome {
	if ok {
		return Found
	}

	return NotFound
}

// Algo selects the strategy used by Solve.
type Algo int

const (
	// AlgoAuto picks BitsetDP when its estimated word work fits
	// Options.DPAutoBudget, BranchAndBound otherwise.
	AlgoAuto Algo = iota

	// AlgoBranchAndBound runs the pruned include/exclude search.
	AlgoBranchAndBound

	// AlgoBitsetDP runs the shift-and-or reachability DP.
	AlgoBitsetDP

	// AlgoMeetInTheMiddle runs the exhaustive-halves solver (n ≤ MaxMIMItems).
	AlgoMeetInTheMiddle
)

// String implements fmt.Stringer.
func (a Algo) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoBranchAndBound:
		return "branch-and-bound"
	case AlgoBitsetDP:
		return "bitset-dp"
	case AlgoMeetInTheMiddle:
		return "meet-in-the-middle"
	default:
		return "unknown"
	}
}

// Stats are diagnostic counters gathered during one solve call.
type Stats struct {
	Nodes       int64 // branch-and-bound states entered
	BoundPruned int64 // states cut by curr+S[i] < target
	GCDPruned   int64 // states cut by (target-curr) mod G[i] != 0
	MIMCalls    int64 // meet-in-the-middle delegations
	DPItems     int64 // items applied by the bitset DP
	Tasks       int64 // frontier states evaluated by parallel workers
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.BoundPruned += o.BoundPruned
	s.GCDPruned += o.GCDPruned
	s.MIMCalls += o.MIMCalls
	s.DPItems += o.DPItems
	s.Tasks += o.Tasks
}

// Result holds the outcome of a solve call.
type Result struct {
	// Outcome is Found, NotFound or Aborted.
	Outcome Outcome

	// Algo is the strategy that produced Outcome (never AlgoAuto).
	Algo Algo

	// Stats carries the diagnostic counters of that strategy.
	Stats Stats
}

// Found reports whether a subset was found. An Aborted result reports false;
// check Outcome when the difference matters.
func (r Result) Found() bool { return r.Outcome == Found }
