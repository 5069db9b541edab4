// Package lvsum is an exact subset-sum toolkit: given a multiset of
// non-negative integers and a target, decide whether some sub-multiset sums
// to the target exactly.
//
// 🚀 What is inside?
//
//	A small, dependency-light library that brings together:
//		• Branch-and-Bound with suffix-sum and suffix-GCD pruning
//		• Meet-in-the-Middle leaves for the last few items
//		• Bitset DP (shift-and-or) as an independent exact path
//		• Optional errgroup fan-out with first-success-wins cancellation
//
// ✨ Why lvsum?
//
//   - Three-valued answers: Found, NotFound, Aborted; a cancelled search
//     never masquerades as "no subset exists"
//   - Overflow-safe: int64 inputs with a checked total
//   - Deterministic: the sequential path is a pure function of its input
//   - Cross-checkable: WithCrossCheck reruns an independent strategy
//
// Packages:
//
//	bitset/     fixed-length word bitset with carry-correct ShiftOr
//	subsetsum/  Preprocess, BranchAndBound, MeetInTheMiddle, BitsetDP, Solve
//	examples/   runnable walkthrough of the canonical scenarios
//
// Quick example:
//
//	ok, err := subsetsum.Decide([]int64{3, 34, 4, 12, 5, 2}, 9) // true (4+5)
//
//	go get github.com/katalvlaran/lvsum/subsetsum
package lvsum
