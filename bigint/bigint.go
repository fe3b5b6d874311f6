// Package bigint implements exact arithmetic on fixed-width 256-bit unsigned
// integers stored as four 64-bit words, least significant word first.
//
// Nothing in this package is modular: sums and differences report their
// carry or borrow explicitly, and products are returned at double width so
// that the field layer can compose its own reductions on top.
package bigint

import "math/bits"

// Words is the number of 64-bit words in a Uint256.
const Words = 4

// Uint256 is a 256-bit unsigned integer, least significant word first.
type Uint256 [Words]uint64

// Product is the exact 512-bit result of multiplying two Uint256 values.
type Product [2 * Words]uint64

// Add returns a + b and the carry out of the top word (0 or 1).
func Add(a, b Uint256) (z Uint256, carry uint64) {
	z[0], carry = bits.Add64(a[0], b[0], 0)
	z[1], carry = bits.Add64(a[1], b[1], carry)
	z[2], carry = bits.Add64(a[2], b[2], carry)
	z[3], carry = bits.Add64(a[3], b[3], carry)
	return z, carry
}

// Sub returns a - b and the borrow out of the top word (0 or 1). When the
// borrow is set the difference has wrapped modulo 2^256.
func Sub(a, b Uint256) (z Uint256, borrow uint64) {
	z[0], borrow = bits.Sub64(a[0], b[0], 0)
	z[1], borrow = bits.Sub64(a[1], b[1], borrow)
	z[2], borrow = bits.Sub64(a[2], b[2], borrow)
	z[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return z, borrow
}

// SubReverse returns b - a and its borrow.
func SubReverse(a, b Uint256) (Uint256, uint64) {
	return Sub(b, a)
}

// Mul returns the full 512-bit product a * b (schoolbook).
func Mul(a, b Uint256) (z Product) {
	for i := 0; i < Words; i++ {
		var carry uint64
		for j := 0; j < Words; j++ {
			z[i+j], carry = mulAddAdd(a[i], b[j], z[i+j], carry)
		}
		z[i+Words] = carry
	}
	return z
}

// Sqr returns the full 512-bit square a * a. Cross products are computed
// once and doubled before the diagonal terms are added in.
func Sqr(a Uint256) (z Product) {
	for i := 0; i < Words-1; i++ {
		var carry uint64
		for j := i + 1; j < Words; j++ {
			z[i+j], carry = mulAddAdd(a[i], a[j], z[i+j], carry)
		}
		z[i+Words] = carry
	}

	for i := len(z) - 1; i > 0; i-- {
		z[i] = z[i]<<1 | z[i-1]>>63
	}
	z[0] <<= 1

	var c uint64
	for i := 0; i < Words; i++ {
		hi, lo := bits.Mul64(a[i], a[i])
		z[2*i], c = bits.Add64(z[2*i], lo, c)
		z[2*i+1], c = bits.Add64(z[2*i+1], hi, c)
	}
	return z
}

// mulAddAdd returns the low word of x*y + acc + carry and the high word as
// the new carry. The sum cannot exceed 2^128 - 1.
func mulAddAdd(x, y, acc, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, acc, 0)
	hi += c
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	return lo, hi
}

// IsZero reports whether a == 0.
func IsZero(a Uint256) bool {
	return a[0]|a[1]|a[2]|a[3] == 0
}

// Equal reports whether a == b.
func Equal(a, b Uint256) bool {
	return a == b
}

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b Uint256) int {
	for i := Words - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Set copies x into z.
func (z *Uint256) Set(x Uint256) { *z = x }

// SetZero sets z to 0.
func (z *Uint256) SetZero() { *z = Uint256{} }

// SetUint64 sets z to the single-word value v.
func (z *Uint256) SetUint64(v uint64) { *z = Uint256{v} }

// AddAssign sets z = z + b and returns the carry.
func (z *Uint256) AddAssign(b Uint256) uint64 {
	var c uint64
	*z, c = Add(*z, b)
	return c
}

// SubAssign sets z = z - b and returns the borrow.
func (z *Uint256) SubAssign(b Uint256) uint64 {
	var c uint64
	*z, c = Sub(*z, b)
	return c
}

// IsEven reports whether the lowest bit of a is clear.
func (a Uint256) IsEven() bool { return a[0]&1 == 0 }

// Bit returns bit i of a (0 for i >= 256).
func (a Uint256) Bit(i int) uint64 {
	if i < 0 || i >= 64*Words {
		return 0
	}
	return (a[i/64] >> uint(i%64)) & 1
}

// BitLen returns the number of significant bits in a.
func (a Uint256) BitLen() int {
	for i := Words - 1; i >= 0; i-- {
		if a[i] != 0 {
			return 64*i + bits.Len64(a[i])
		}
	}
	return 0
}

// Rsh1 shifts a right by one bit, feeding the low bit of in into the top
// bit. Passing the carry of a preceding Add halves a 257-bit sum exactly.
func (a Uint256) Rsh1(in uint64) Uint256 {
	return Uint256{
		a[0]>>1 | a[1]<<63,
		a[1]>>1 | a[2]<<63,
		a[2]>>1 | a[3]<<63,
		a[3]>>1 | in<<63,
	}
}
