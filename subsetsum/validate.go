package subsetsum

import (
	"context"
	"fmt"
	"math"
)

// checkedTotal validates items and returns their sum.
//
// Contracts:
//   - every item ≥ 0, else ErrNegativeItem;
//   - the running sum never exceeds math.MaxInt64, else ErrSumOverflow.
//
// Once it succeeds, every partial or suffix sum of items fits int64.
//
// Complexity: O(n).
func checkedTotal(items []int64) (int64, error) {
	var total int64
	for i, v := range items {
		if v < 0 {
			return 0, fmt.Errorf("%w: items[%d]=%d", ErrNegativeItem, i, v)
		}
		if total > math.MaxInt64-v {
			return 0, fmt.Errorf("%w: at items[%d]", ErrSumOverflow, i)
		}
		total += v
	}

	return total, nil
}

// normalizeCtx defaults a nil context to context.Background().
func normalizeCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

// cancelled is a non-blocking poll of a done channel; a nil channel
// (context.Background) never fires.
func cancelled(done <-chan struct{}) bool {
	if done == nil {
		return false
	}
	select {
	case <-done:
		return true
	default:
		return false
	}
}

// gcd returns the greatest common divisor of two non-negative values,
// with gcd(a, 0) == a.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
