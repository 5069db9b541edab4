package bitset

import (
	"errors"
	"math/bits"
)

const (
	wordBits  = 64
	wordShift = 6  // log2(wordBits)
	wordMask  = 63 // wordBits - 1
)

// ErrBadLength is returned by New when the requested length is negative.
var ErrBadLength = errors.New("bitset: length must be non-negative")

// BitSet is a fixed-length bit vector. The logical length is kept in
// length; words beyond it are never touched.
type BitSet struct {
	words  []uint64
	length int
}

// New returns an all-zero BitSet holding exactly n bits.
func New(n int) (*BitSet, error) {
	if n < 0 {
		return nil, ErrBadLength
	}

	return &BitSet{
		words:  make([]uint64, wordsFor(n)),
		length: n,
	}, nil
}

// wordsFor returns ceil(n/64).
func wordsFor(n int) int {
	return (n + wordMask) >> wordShift
}

// Len returns the logical number of bits.
func (b *BitSet) Len() int {
	if b == nil {
		return 0
	}

	return b.length
}

// Words exposes the backing words (read-only by convention).
func (b *BitSet) Words() []uint64 {
	if b == nil {
		return nil
	}

	return b.words
}

// Set sets bit i. Out-of-range indices are ignored.
func (b *BitSet) Set(i int) {
	if i < 0 || i >= b.Len() {
		return
	}
	b.words[i>>wordShift] |= 1 << (uint(i) & wordMask)
}

// Clear clears bit i. Out-of-range indices are ignored.
func (b *BitSet) Clear(i int) {
	if i < 0 || i >= b.Len() {
		return
	}
	b.words[i>>wordShift] &^= 1 << (uint(i) & wordMask)
}

// Test reports whether bit i is set. Out-of-range indices report false.
func (b *BitSet) Test(i int) bool {
	if i < 0 || i >= b.Len() {
		return false
	}

	return b.words[i>>wordShift]&(1<<(uint(i)&wordMask)) != 0
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	var c int
	for _, w := range b.Words() {
		c += bits.OnesCount64(w)
	}

	return c
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	if b == nil {
		return nil
	}
	c := &BitSet{words: make([]uint64, len(b.words)), length: b.length}
	copy(c.words, b.words)

	return c
}

// ShiftOr performs b |= (b << s) in place, truncated to Len() bits.
//
// Words are processed from the highest index down, so every source word
// read (index ≤ destination) still holds its pre-shift value. A shift of 0
// is a no-op (b | b == b); shifts ≥ Len() move every bit out of range.
//
// Complexity: O(Len()/64), no allocations.
func (b *BitSet) ShiftOr(s int) {
	n := b.Len()
	if s <= 0 || s >= n {
		return
	}

	var (
		ws  = s >> wordShift      // whole-word part of the shift
		bs  = uint(s) & wordMask  // intra-word part of the shift
		rbs = uint(wordBits) - bs // carry shift from the lower neighbour
		top = len(b.words) - 1
		w   int
		src int
		v   uint64
	)
	for w = top; w >= ws; w-- {
		src = w - ws
		v = b.words[src] << bs
		if bs != 0 && src > 0 {
			v |= b.words[src-1] >> rbs
		}
		b.words[w] |= v
	}
	b.maskTail()
}

// maskTail zeroes the bits of the last word that lie beyond Len().
func (b *BitSet) maskTail() {
	if rem := uint(b.length) & wordMask; rem != 0 {
		b.words[len(b.words)-1] &= (1 << rem) - 1
	}
}
