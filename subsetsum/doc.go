// Package subsetsum decides the subset-sum problem exactly: given a finite
// multiset of non-negative integers and a target, does some sub-multiset sum
// to the target? Only the decision is returned; no witness subset.
//
// Strategies:
//
//	BranchAndBound   descending-sorted include/exclude search with two
//	                 pruning rules (suffix-sum upper bound, suffix-GCD
//	                 divisibility) and a Meet-in-the-Middle leaf once at
//	                 most MIMThreshold items remain.
//	                 Time:   O(2ⁿ) worst case; pruning cuts typical cost.
//	                 Memory: O(n) tables + O(2^(MIMThreshold/2)) per leaf.
//
//	MeetInTheMiddle  exhaustive halves + sorted lookup for small inputs.
//	                 Time:   O(2^(n/2)·n)
//	                 Memory: O(2^(n/2)); n ≤ MaxMIMItems.
//
//	BitsetDP         shift-and-or reachability over a target+1 bit vector.
//	                 Time:   O(n·target/64)
//	                 Memory: O(target/64) words; target ≤ DPMaxTarget.
//
// Solve is the unified dispatcher (AlgoAuto picks BitsetDP when its word
// work fits DPAutoBudget, BranchAndBound otherwise). Decide is the boolean
// shortcut with default options.
//
// Outcomes are three-valued: Found, NotFound and Aborted. A cancelled
// context never collapses into NotFound, so a NotFound answer is always a
// proof that no subset exists.
//
// Inputs are int64. Negative items are rejected with ErrNegativeItem and a
// total sum above math.MaxInt64 with ErrSumOverflow, so every partial sum
// the solvers form is representable. Caller data is never mutated.
//
// Use this package for exact answers on inputs where either n is moderate
// (a few dozen items, more when pruning bites) or the target is small
// enough for the bitset path.
package subsetsum
