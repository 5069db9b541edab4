// Package subsetsum: Branch-and-Bound (exact include/exclude search).
//
// BranchAndBound walks the binary include/exclude tree over the
// descending-sorted items. Each state is the pair (i, curr): the next item
// index and the partial sum of the inclusions so far. The state lives only
// in the call arguments; the engine holds read-only tables plus counters.
//
// Decision order at each state:
//  1. curr == target                          → Found.
//  2. curr + S[i] < target                    → NotFound (upper bound).
//  3. G[i] > 1 and (target−curr) mod G[i] ≠ 0 → NotFound (divisibility).
//  4. n − i ≤ MIMThreshold                    → meet-in-the-middle on items[i:].
//  5. i ≥ n                                   → NotFound.
//  6. include items[i] (if curr+items[i] ≤ target), then exclude.
//
// Cancellation is polled at every recursive entry; an Aborted child is
// returned as-is, never reinterpreted as NotFound.
//
// Complexity:
//   - Worst case exponential in n; pruning reduces typical cost.
//   - Recursion depth ≤ n − MIMThreshold.
//   - Memory: O(n) tables + O(2^(MIMThreshold/2)) for a leaf.

package subsetsum

import "context"

// bbEngine holds the read-only search tables and per-run counters.
type bbEngine struct {
	items  []int64
	suffix []int64
	gcd    []int64
	target int64
	n      int
	mim    int

	done  <-chan struct{}
	stats Stats
}

// newEngine binds an Instance to a cancellation channel.
func newEngine(inst Instance, mim int, done <-chan struct{}) *bbEngine {
	return &bbEngine{
		items:  inst.Items,
		suffix: inst.Suffix,
		gcd:    inst.GCD,
		target: inst.Target,
		n:      len(inst.Items),
		mim:    mim,
		done:   done,
	}
}

// bound applies rules 1–3. ok==true means the state is settled with out.
func (e *bbEngine) bound(i int, curr int64) (out Outcome, ok bool) {
	if curr == e.target {
		return Found, true
	}
	// curr+suffix[i] ≤ Total, no overflow.
	if curr+e.suffix[i] < e.target {
		e.stats.BoundPruned++
		return NotFound, true
	}
	if g := e.gcd[i]; g > 1 && (e.target-curr)%g != 0 {
		e.stats.GCDPruned++
		return NotFound, true
	}

	return NotFound, false
}

// isLeaf reports whether rule 4 applies at index i.
func (e *bbEngine) isLeaf(i int) bool { return e.n-i <= e.mim }

// leaf runs the meet-in-the-middle solver on the remaining slice.
func (e *bbEngine) leaf(i int, curr int64) Outcome {
	e.stats.MIMCalls++

	return meetInTheMiddle(e.done, e.items[i:], e.target-curr)
}

// search evaluates state (i, curr).
func (e *bbEngine) search(i int, curr int64) Outcome {
	if cancelled(e.done) {
		return Aborted
	}
	e.stats.Nodes++

	if out, ok := e.bound(i, curr); ok {
		return out
	}
	if e.isLeaf(i) {
		return e.leaf(i, curr)
	}
	if i >= e.n {
		return NotFound
	}

	if next := curr + e.items[i]; next <= e.target {
		if out := e.search(i+1, next); out != NotFound {
			return out
		}
	}

	return e.search(i+1, curr)
}

// BranchAndBound decides whether some sub-multiset of items sums to target
// using the pruned include/exclude search.
//
// Options honored: MIMThreshold, Workers (> 1 enables parallel fan-out).
//
// Contracts:
//   - items are not mutated; nil ctx means context.Background().
//   - a cancelled ctx yields Outcome Aborted with a nil error.
//
// Errors: ErrNegativeItem, ErrSumOverflow, ErrOptionViolation.
func BranchAndBound(ctx context.Context, items []int64, target int64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{Algo: AlgoBranchAndBound}, err
	}

	return branchAndBound(normalizeCtx(ctx), items, target, o)
}

// branchAndBound is the option-resolved body of BranchAndBound.
func branchAndBound(ctx context.Context, items []int64, target int64, o Options) (Result, error) {
	res := Result{Algo: AlgoBranchAndBound}

	p, err := Preprocess(items, target)
	if err != nil {
		return res, err
	}
	if ctx.Err() != nil {
		res.Outcome = Aborted
		return res, nil
	}
	if p.Decided {
		res.Outcome = outcomeOf(p.Answer)
		return res, nil
	}

	if o.Workers > 1 {
		res.Outcome, res.Stats = parallelSearch(ctx, p.Instance, o)
		return res, nil
	}

	e := newEngine(p.Instance, o.MIMThreshold, ctx.Done())
	res.Outcome = e.search(0, 0)
	res.Stats = e.stats

	return res, nil
}
