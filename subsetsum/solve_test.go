package subsetsum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsum/subsetsum"
)

func TestSolve_AllAlgorithmsAgree(t *testing.T) {
	algos := []subsetsum.Algo{
		subsetsum.AlgoAuto,
		subsetsum.AlgoBranchAndBound,
		subsetsum.AlgoBitsetDP,
		subsetsum.AlgoMeetInTheMiddle,
	}
	for _, sc := range literalScenarios() {
		for _, a := range algos {
			res, err := subsetsum.Solve(context.Background(), sc.items, sc.target,
				subsetsum.WithAlgo(a), subsetsum.WithCrossCheck())
			mustOutcome(t, res, err, outcomeFor(sc.want), "%s algo=%s", sc.name, a)
			assert.NotEqual(t, subsetsum.AlgoAuto, res.Algo, "Result.Algo is the concrete strategy")
		}
	}
}

// TestSolve_AutoPolicy checks the routing rule of AlgoAuto.
func TestSolve_AutoPolicy(t *testing.T) {
	small := []int64{3, 34, 4, 12, 5, 2}

	res, err := subsetsum.Solve(context.Background(), small, 9)
	mustOutcome(t, res, err, subsetsum.Found)
	assert.Equal(t, subsetsum.AlgoBitsetDP, res.Algo, "tiny target fits the DP budget")

	res, err = subsetsum.Solve(context.Background(), small, 9, subsetsum.WithDPAutoBudget(0))
	mustOutcome(t, res, err, subsetsum.Found)
	assert.Equal(t, subsetsum.AlgoBranchAndBound, res.Algo, "zero budget disables DP")

	huge := []int64{1 << 40, 1 << 41, 3}
	res, err = subsetsum.Solve(context.Background(), huge, 1<<40+3)
	mustOutcome(t, res, err, subsetsum.Found)
	assert.Equal(t, subsetsum.AlgoBranchAndBound, res.Algo, "target above DPMaxTarget")

	// 640 words per item × 10 items = 6400 > budget 6000.
	ten := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 40000}
	res, err = subsetsum.Solve(context.Background(), ten, 40959, subsetsum.WithDPAutoBudget(6000))
	mustOutcome(t, res, err, subsetsum.NotFound)
	assert.Equal(t, subsetsum.AlgoBranchAndBound, res.Algo)
}

func TestSolve_CrossCheckLargeTarget(t *testing.T) {
	items := []int64{1 << 35, 1 << 36, 1 << 37, 5}
	res, err := subsetsum.Solve(context.Background(), items, 1<<35+1<<37+5,
		subsetsum.WithAlgo(subsetsum.AlgoMeetInTheMiddle), subsetsum.WithCrossCheck())
	mustOutcome(t, res, err, subsetsum.Found, "falls back to branch-and-bound as reference")
}

func TestSolve_Errors(t *testing.T) {
	_, err := subsetsum.Solve(context.Background(), []int64{1}, 1, subsetsum.WithAlgo(subsetsum.Algo(99)))
	assert.ErrorIs(t, err, subsetsum.ErrOptionViolation)
	assert.ErrorIs(t, err, subsetsum.ErrUnsupportedAlgorithm)

	_, err = subsetsum.Solve(context.Background(), []int64{1}, 1, subsetsum.WithDPAutoBudget(-5))
	assert.ErrorIs(t, err, subsetsum.ErrOptionViolation)

	_, err = subsetsum.Solve(context.Background(), []int64{-1}, 1)
	assert.ErrorIs(t, err, subsetsum.ErrNegativeItem)

	_, err = subsetsum.Solve(context.Background(), make([]int64, 41), 0,
		subsetsum.WithAlgo(subsetsum.AlgoMeetInTheMiddle))
	assert.ErrorIs(t, err, subsetsum.ErrTooManyItems)

	_, err = subsetsum.Solve(context.Background(), []int64{1}, 1<<40, subsetsum.WithAlgo(subsetsum.AlgoBitsetDP))
	assert.ErrorIs(t, err, subsetsum.ErrTargetTooLarge)
}

func TestSolve_CancelledContext(t *testing.T) {
	for _, a := range []subsetsum.Algo{
		subsetsum.AlgoBranchAndBound,
		subsetsum.AlgoBitsetDP,
		subsetsum.AlgoMeetInTheMiddle,
	} {
		res, err := subsetsum.Solve(cancelledCtx(), []int64{3, 34, 4, 12, 5, 2}, 9,
			subsetsum.WithAlgo(a), subsetsum.WithCrossCheck())
		mustOutcome(t, res, err, subsetsum.Aborted, "algo=%s", a)
	}
}

func TestDecide(t *testing.T) {
	for _, sc := range literalScenarios() {
		got, err := subsetsum.Decide(sc.items, sc.target)
		require.NoError(t, err, sc.name)
		assert.Equal(t, sc.want, got, sc.name)
	}

	_, err := subsetsum.Decide([]int64{-3}, 1)
	assert.ErrorIs(t, err, subsetsum.ErrNegativeItem)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "found", subsetsum.Found.String())
	assert.Equal(t, "not-found", subsetsum.NotFound.String())
	assert.Equal(t, "aborted", subsetsum.Aborted.String())
	assert.Equal(t, "unknown", subsetsum.Outcome(7).String())
	assert.Equal(t, "bitset-dp", subsetsum.AlgoBitsetDP.String())
	assert.Equal(t, "unknown", subsetsum.Algo(-1).String())
}

func TestDefaultOptions(t *testing.T) {
	o := subsetsum.DefaultOptions()
	assert.Equal(t, subsetsum.AlgoAuto, o.Algo)
	assert.Equal(t, 15, o.MIMThreshold)
	assert.Equal(t, 1, o.Workers)
	assert.Equal(t, subsetsum.DefaultDPMaxTarget, o.DPMaxTarget)
	assert.Equal(t, subsetsum.DefaultDPAutoBudget, o.DPAutoBudget)
	assert.False(t, o.CrossCheck)
}
