package subsetsum

import (
	"context"
	"fmt"
	"slices"
)

// probeCheckMask spaces cancellation polls during the lookup phase.
const probeCheckMask = 4095

// MeetInTheMiddle decides subset-sum for at most MaxMIMItems items by
// enumerating both halves and matching through a sorted lookup.
//
// Algorithm:
//  1. m = len/2; enumerate all 2^m subset sums of items[:m] (duplicates kept).
//  2. Enumerate all 2^(len−m) sums of items[m:] and sort them.
//  3. For every left sum s, binary-search target−s on the right.
//
// Order of items does not matter. A negative target is NotFound.
//
// Errors: ErrTooManyItems, ErrNegativeItem, ErrSumOverflow.
//
// Complexity: O(2^(n/2)·n) time, O(2^(n/2)) space.
func MeetInTheMiddle(ctx context.Context, items []int64, target int64) (Result, error) {
	res := Result{Algo: AlgoMeetInTheMiddle}
	if len(items) > MaxMIMItems {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), MaxMIMItems)
	}
	if _, err := checkedTotal(items); err != nil {
		return res, err
	}
	ctx = normalizeCtx(ctx)
	if ctx.Err() != nil {
		res.Outcome = Aborted
		return res, nil
	}
	if target < 0 {
		res.Outcome = NotFound
		return res, nil
	}

	res.Outcome = meetInTheMiddle(ctx.Done(), items, target)
	res.Stats.MIMCalls = 1

	return res, nil
}

// meetInTheMiddle is the leaf solver shared with the branch-and-bound engine.
// items must be validated (non-negative, total fits int64) and target ≥ 0.
func meetInTheMiddle(done <-chan struct{}, items []int64, target int64) Outcome {
	m := len(items) / 2

	left, ok := subsetSums(done, items[:m])
	if !ok {
		return Aborted
	}
	right, ok := subsetSums(done, items[m:])
	if !ok {
		return Aborted
	}
	slices.Sort(right)

	for k, s := range left {
		if k&probeCheckMask == 0 && cancelled(done) {
			return Aborted
		}
		if _, hit := slices.BinarySearch(right, target-s); hit {
			return Found
		}
	}

	return NotFound
}

// subsetSums lists all 2^len(half) subset sums of half by doubling:
// after item v the list is old ∪ (old + v). ok==false on cancellation.
func subsetSums(done <-chan struct{}, half []int64) (sums []int64, ok bool) {
	sums = make([]int64, 1, 1<<len(half))

	var j, k int
	for _, v := range half {
		if cancelled(done) {
			return nil, false
		}
		k = len(sums)
		for j = 0; j < k; j++ {
			sums = append(sums, sums[j]+v)
		}
	}

	return sums, true
}
