// SPDX-License-Identifier: MIT

package setcover

import "math/bits"

// bitset is a fixed-width set of universe indices, 64 per word.
type bitset []uint64

// newBitset allocates an empty bitset able to hold n indices.
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// fullBitset returns a bitset with indices 0..n-1 set.
func fullBitset(n int) bitset {
	b := newBitset(n)
	for i := 0; i < n; i++ {
		b.set(i)
	}

	return b
}

func (b bitset) set(i int) { b[i>>6] |= 1 << uint(i&63) }

func (b bitset) has(i int) bool { return b[i>>6]&(1<<uint(i&63)) != 0 }

// empty reports whether no index is set.
func (b bitset) empty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}

	return true
}

// lowest returns the smallest set index, or -1 when b is empty.
func (b bitset) lowest() int {
	for i, w := range b {
		if w != 0 {
			return i<<6 + bits.TrailingZeros64(w)
		}
	}

	return -1
}

// differenceInto writes b \ other into dst and returns dst.
// dst must have the same width as b; b and other are left untouched.
func (b bitset) differenceInto(dst, other bitset) bitset {
	for i := range b {
		dst[i] = b[i] &^ other[i]
	}

	return dst
}

// count returns the number of set indices.
func (b bitset) count() int {
	var c int
	for _, w := range b {
		c += bits.OnesCount64(w)
	}

	return c
}
