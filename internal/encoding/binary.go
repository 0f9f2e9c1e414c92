package encoding

import (
	"github.com/boljen/go-bitmap"
)

// BitsPerValue is the width of a single packed value.
// Two bits hold values 0-3.
const BitsPerValue = 2

// NewPacked returns a bitmap able to hold n packed values, all zero.
func NewPacked(n int) bitmap.Bitmap {
	return bitmap.New(n * BitsPerValue)
}

// Get reads the packed value at index i
func Get(bm bitmap.Bitmap, i int) uint8 {
	return Merge2(bm.Get(i*BitsPerValue), bm.Get(i*BitsPerValue+1))
}

// Set writes v (only the low two bits are kept) at index i
func Set(bm bitmap.Bitmap, i int, v uint8) {
	hi, lo := Split2(v)
	bm.Set(i*BitsPerValue, hi)
	bm.Set(i*BitsPerValue+1, lo)
}

// Split2 a uint8 into its two low bits (high, low)
func Split2(in uint8) (bool, bool) {
	return in&0x2 != 0, in&0x1 != 0
}

// Merge2 two bits (high, low) to a uint8
func Merge2(hi, lo bool) uint8 {
	var v uint8
	if hi {
		v |= 0x2
	}
	if lo {
		v |= 0x1
	}
	return v
}
