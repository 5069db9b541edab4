package subsetsum

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsum/bitset"
)

// BitsetDP decides subset-sum by bit-parallel reachability.
//
// A bit vector of target+1 bits starts with only bit 0 set (the empty
// subset). Each item v ≤ target applies reach |= reach << v, so bit j ends
// up set iff some sub-multiset sums to j. Bits only ever go from 0 to 1,
// hence the order of items is irrelevant and the scan stops as soon as bit
// target is set.
//
// Options honored: DPMaxTarget.
//
// Contracts:
//   - target < 0 → NotFound.
//   - target > DPMaxTarget → ErrTargetTooLarge (no silent truncation).
//
// Errors: ErrNegativeItem, ErrSumOverflow, ErrTargetTooLarge, ErrOptionViolation.
//
// Complexity: O(n·target/64) time, O(target/64) words.
func BitsetDP(ctx context.Context, items []int64, target int64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{Algo: AlgoBitsetDP}, err
	}

	return bitsetDP(normalizeCtx(ctx), items, target, o)
}

// bitsetDP is the option-resolved body of BitsetDP.
func bitsetDP(ctx context.Context, items []int64, target int64, o Options) (Result, error) {
	res := Result{Algo: AlgoBitsetDP}
	if _, err := checkedTotal(items); err != nil {
		return res, err
	}
	if target > o.DPMaxTarget {
		return res, fmt.Errorf("%w: target %d > %d", ErrTargetTooLarge, target, o.DPMaxTarget)
	}
	if ctx.Err() != nil {
		res.Outcome = Aborted
		return res, nil
	}
	if target < 0 {
		res.Outcome = NotFound
		return res, nil
	}

	out, st, err := reachable(ctx.Done(), items, int(target))
	res.Outcome, res.Stats = out, st

	return res, err
}

// reachable runs the shift-and-or sweep. t fits int because
// DPMaxTarget ≤ HardDPMaxTarget.
func reachable(done <-chan struct{}, items []int64, t int) (Outcome, Stats, error) {
	var st Stats
	reach, err := bitset.New(t + 1)
	if err != nil {
		return NotFound, st, err
	}
	reach.Set(0)
	if t == 0 {
		return Found, st, nil
	}

	for _, v := range items {
		if cancelled(done) {
			return Aborted, st, nil
		}
		if v == 0 || v > int64(t) {
			continue
		}
		reach.ShiftOr(int(v))
		st.DPItems++
		if reach.Test(t) {
			return Found, st, nil
		}
	}

	return NotFound, st, nil
}
