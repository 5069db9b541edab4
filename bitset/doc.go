// Package bitset provides a fixed-length bit vector backed by 64-bit words.
//
// It is the storage layer of the subset-sum Bitset DP: bit j is set iff the
// sum j is reachable, and processing an item of value v is one in-place
// ShiftOr(v) call.
//
// Key properties:
//   - Fixed logical length chosen at construction; bits at positions ≥ Len()
//     are always zero (every mutating method re-masks the last word).
//   - ShiftOr carries bits across word boundaries and never allocates.
//   - The zero value (nil) is a valid empty set of length 0.
//
// Complexity:
//   - Set/Clear/Test: O(1).
//   - ShiftOr/Count:  O(Len()/64).
//
// Memory: ceil(Len()/64) words.
package bitset
