// Package subsetsum - unified dispatcher for subset-sum strategies.
//
// This file provides the canonical entry points:
//
//   - Solve: resolve options, pick a strategy (AlgoAuto → chooseAlgo),
//     run it, and optionally confirm the answer with an independent path.
//   - Decide: boolean shortcut over Solve with default options.
//
// Design principles:
//   - Deterministic routing: AlgoAuto depends only on (n, target, Options).
//   - Strict sentinels: callers match errors with errors.Is.
//   - Aborted is an Outcome, not an error.

package subsetsum

import (
	"context"
	"fmt"
)

// Solve decides subset-sum for (items, target) with the configured strategy.
//
// Contracts:
//   - items are never mutated; nil ctx means context.Background().
//   - Result.Algo reports the strategy actually run (never AlgoAuto).
//   - With CrossCheck, a disagreement between two definite answers returns
//     ErrCrossCheckMismatch; an Aborted side skips the comparison.
//
// Errors: ErrOptionViolation, ErrNegativeItem, ErrSumOverflow,
// ErrTooManyItems (AlgoMeetInTheMiddle), ErrTargetTooLarge (AlgoBitsetDP),
// ErrUnsupportedAlgorithm, ErrCrossCheckMismatch.
//
// Complexity: per chosen strategy (see doc.go).
func Solve(ctx context.Context, items []int64, target int64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	ctx = normalizeCtx(ctx)

	algo := o.Algo
	if algo == AlgoAuto {
		algo = chooseAlgo(len(items), target, o)
	}

	res, err := run(ctx, algo, items, target, o)
	if err != nil || !o.CrossCheck {
		return res, err
	}

	return crossCheck(ctx, res, items, target, o)
}

// Decide reports whether some sub-multiset of items sums to target, using
// default options and context.Background(). That context is never
// cancelled, so false always means a proved NotFound.
func Decide(items []int64, target int64) (bool, error) {
	res, err := Solve(context.Background(), items, target)
	if err != nil {
		return false, err
	}

	return res.Found(), nil
}

// run routes to one concrete strategy.
func run(ctx context.Context, algo Algo, items []int64, target int64, o Options) (Result, error) {
	switch algo {
	case AlgoBranchAndBound:
		return branchAndBound(ctx, items, target, o)
	case AlgoBitsetDP:
		return bitsetDP(ctx, items, target, o)
	case AlgoMeetInTheMiddle:
		return MeetInTheMiddle(ctx, items, target)
	default:
		return Result{Algo: algo}, ErrUnsupportedAlgorithm
	}
}

// chooseAlgo implements the AlgoAuto policy: BitsetDP when
// 0 ≤ target ≤ DPMaxTarget and ceil((target+1)/64)·n ≤ DPAutoBudget,
// BranchAndBound otherwise.
//
// Complexity: O(1).
func chooseAlgo(n int, target int64, o Options) Algo {
	if target < 0 || target > o.DPMaxTarget || o.DPAutoBudget == 0 {
		return AlgoBranchAndBound
	}
	words := target/64 + 1
	if n > 0 && words > o.DPAutoBudget/int64(n) {
		return AlgoBranchAndBound
	}

	return AlgoBitsetDP
}

// crossCheck reruns the instance on an independent strategy: BitsetDP for
// search-based answers, BranchAndBound for BitsetDP answers. Targets
// beyond DPMaxTarget fall back to comparing against BranchAndBound.
func crossCheck(ctx context.Context, primary Result, items []int64, target int64, o Options) (Result, error) {
	if primary.Outcome == Aborted {
		return primary, nil
	}

	ref := AlgoBitsetDP
	if primary.Algo == AlgoBitsetDP || target > o.DPMaxTarget {
		ref = AlgoBranchAndBound
	}
	if ref == primary.Algo {
		return primary, nil
	}

	other, err := run(ctx, ref, items, target, o)
	if err != nil {
		return primary, err
	}
	if other.Outcome != Aborted && other.Outcome != primary.Outcome {
		return primary, fmt.Errorf("%w: %s=%s, %s=%s", ErrCrossCheckMismatch,
			primary.Algo, primary.Outcome, other.Algo, other.Outcome)
	}

	return primary, nil
}
