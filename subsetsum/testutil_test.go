// Package subsetsum_test provides lightweight helpers shared across *_test.go
// files in this package: a brute-force oracle, canonical scenarios and a
// deliberately hard instance for cancellation tests.
package subsetsum_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsum/internal/gen"
	"github.com/katalvlaran/lvsum/subsetsum"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(20251017)

	// abortAfter is the wall-clock budget given to searches that must abort.
	abortAfter = 20 * time.Millisecond
)

// scenario is one literal (items, target) → want case.
type scenario struct {
	name   string
	items  []int64
	target int64
	want   bool
}

// literalScenarios returns the canonical cases every strategy must agree on.
func literalScenarios() []scenario {
	forty := make([]int64, 40)
	for i := range forty {
		forty[i] = 1
	}

	return []scenario{
		{name: "classic_4+5", items: []int64{3, 34, 4, 12, 5, 2}, target: 9, want: true},
		{name: "all_elements", items: []int64{1, 2, 3}, target: 6, want: true},
		{name: "gap", items: []int64{1, 2, 5}, target: 4, want: false},
		{name: "pair_10+15", items: []int64{10, 20, 15}, target: 25, want: true},
		{name: "forty_ones_39", items: forty, target: 39, want: true},
		{name: "gcd_even_odd", items: []int64{2, 4, 6}, target: 5, want: false},
		{name: "empty_zero", items: []int64{}, target: 0, want: true},
		{name: "empty_nonzero", items: []int64{}, target: 3, want: false},
		{name: "negative_target", items: []int64{1, 2, 3}, target: -1, want: false},
		{name: "above_total", items: []int64{1, 2, 3}, target: 7, want: false},
		{name: "zeros_only", items: []int64{0, 0, 0}, target: 0, want: true},
		{name: "zero_target_no_zero_item", items: []int64{7, 9}, target: 0, want: true},
		{name: "with_zeros", items: []int64{0, 8, 0, 3}, target: 11, want: true},
	}
}

// bruteForce enumerates every subset mask of items (len ≤ 24) and reports
// the set of reachable sums.
func bruteForce(t *testing.T, items []int64) map[int64]bool {
	t.Helper()
	require.LessOrEqual(t, len(items), 24, "brute force is for small inputs only")

	n := len(items)
	sums := make(map[int64]bool, 1<<n)
	var (
		mask uint32
		j    int
		s    int64
	)
	for mask = 0; mask < 1<<uint(n); mask++ {
		s = 0
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				s += items[j]
			}
		}
		sums[s] = true
	}

	return sums
}

// hardInstance returns an instance whose answer is NotFound but which no
// solver can settle quickly: 44 large multiples of 3 plus a single 1, with
// a target ≡ 2 (mod 3) near half the total. Reachable sums are ≡ 0 or 1
// (mod 3), while the divisibility prune only fires at the very tail.
func hardInstance() ([]int64, int64) {
	rng := gen.RNG(seedDet)
	items := make([]int64, 0, 45)
	for i := 0; i < 44; i++ {
		items = append(items, 3*(1<<20+rng.Int63n(1<<40)))
	}
	items = append(items, 1)

	target := gen.Sum(items) / 2
	target += (2 - target%3 + 3) % 3

	return items, target
}

// cancelledCtx returns a context that is already cancelled.
func cancelledCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	return ctx
}

// mustOutcome asserts a nil error and the expected outcome.
func mustOutcome(t *testing.T, res subsetsum.Result, err error, want subsetsum.Outcome, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
	require.Equal(t, want, res.Outcome, msgAndArgs...)
}

// outcomeFor maps a boolean oracle answer to an Outcome.
func outcomeFor(ok bool) subsetsum.Outcome {
	if ok {
		return subsetsum.Found
	}

	return subsetsum.NotFound
}
