package subsetsum

import (
	"cmp"
	"slices"
)

// Instance is the normalized input shared read-only by every search branch.
//
// Invariants (n = len(Items)):
//   - Items is sorted descending and contains no zeros.
//   - Suffix[n] == 0, Suffix[i] == Suffix[i+1] + Items[i]; non-increasing in i.
//   - GCD[n] == 0 ("no constraint"), GCD[i] == gcd(Items[i], GCD[i+1]);
//     every sum reachable from Items[i:] is a multiple of GCD[i].
//   - 0 ≤ Target < Total.
type Instance struct {
	Items  []int64
	Suffix []int64
	GCD    []int64
	Target int64
	Total  int64
}

// Prepared is the Preprocessor output: either a direct answer (Decided)
// or an Instance ready for search.
type Prepared struct {
	Instance Instance
	Decided  bool
	Answer   bool // meaningful only when Decided
}

// Preprocess validates items, applies the trivial-case short circuits and
// otherwise builds the sorted Instance with its suffix tables.
//
// Short circuits, in order:
//  1. empty input          → Answer = (target == 0)
//  2. target < 0           → false
//  3. target > total       → false
//  4. target == total      → true
//  5. target is an item    → true
//
// Zeros are dropped from Instance.Items: they never change which sums are
// reachable. The caller's slice is never mutated.
//
// Errors: ErrNegativeItem, ErrSumOverflow.
//
// Complexity: O(n log n) time, O(n) space.
func Preprocess(items []int64, target int64) (Prepared, error) {
	total, err := checkedTotal(items)
	if err != nil {
		return Prepared{}, err
	}

	switch {
	case len(items) == 0:
		return decided(target == 0), nil
	case target < 0:
		return decided(false), nil
	case target > total:
		return decided(false), nil
	case target == total:
		return decided(true), nil
	case slices.Contains(items, target):
		return decided(true), nil
	}

	sorted := make([]int64, 0, len(items))
	for _, v := range items {
		if v != 0 {
			sorted = append(sorted, v)
		}
	}
	// Largest first: inclusion reaches the bound sooner and prunes earlier.
	slices.SortFunc(sorted, func(a, b int64) int { return cmp.Compare(b, a) })

	var (
		n      = len(sorted)
		suffix = make([]int64, n+1)
		gcds   = make([]int64, n+1)
		i      int
	)
	for i = n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + sorted[i]
		gcds[i] = gcd(sorted[i], gcds[i+1])
	}

	return Prepared{
		Instance: Instance{
			Items:  sorted,
			Suffix: suffix,
			GCD:    gcds,
			Target: target,
			Total:  total,
		},
	}, nil
}

// decided wraps a direct answer.
func decided(ok bool) Prepared {
	return Prepared{Decided: true, Answer: ok}
}
