package field

import (
	"math/bits"

	"github.com/eth2030/zkarith/bigint"
)

// Zero returns the additive identity (identical in both representations).
func (f *Field) Zero() Element { return Element{} }

// One returns the Montgomery form of 1, which is R mod p.
func (f *Field) One() Element { return Element(f.m.R) }

// IsZero reports whether a == 0.
func (f *Field) IsZero(a Element) bool { return bigint.IsZero(bigint.Uint256(a)) }

// IsOne reports whether a is the Montgomery encoding of 1. It compares
// against R mod p, not against the literal value 1.
func (f *Field) IsOne(a Element) bool { return Element(f.m.R) == a }

// Equal reports whether a and b are the same element. Reduced elements have
// a unique encoding, so this is also the "same representation" test.
func (f *Field) Equal(a, b Element) bool { return a == b }

// IsReduced reports whether a < p.
func (f *Field) IsReduced(a Element) bool {
	return bigint.Cmp(bigint.Uint256(a), f.m.P) < 0
}

// reduceOnce subtracts p from x if x >= p.
func (f *Field) reduceOnce(x bigint.Uint256) Element {
	if bigint.Cmp(x, f.m.P) >= 0 {
		x, _ = bigint.Sub(x, f.m.P)
	}
	return Element(x)
}

// Add returns a + b mod p. Both operands are below p, so the exact sum is
// below 2p and a single conditional subtraction suffices.
func (f *Field) Add(a, b Element) Element {
	s, _ := bigint.Add(bigint.Uint256(a), bigint.Uint256(b))
	return f.reduceOnce(s)
}

// Double returns 2a mod p.
func (f *Field) Double(a Element) Element { return f.Add(a, a) }

// Sub returns a - b mod p.
func (f *Field) Sub(a, b Element) Element {
	d, borrow := bigint.Sub(bigint.Uint256(a), bigint.Uint256(b))
	if borrow != 0 {
		d, _ = bigint.Add(d, f.m.P)
	}
	return Element(d)
}

// SubReverse returns b - a mod p.
func (f *Field) SubReverse(a, b Element) Element { return f.Sub(b, a) }

// Neg returns -a mod p. For non-zero a the bitwise complement plus (p+1)
// equals p - a modulo 2^256, which needs no comparison.
func (f *Field) Neg(a Element) Element {
	if f.IsZero(a) {
		return Element{}
	}
	c := bigint.Uint256{^a[0], ^a[1], ^a[2], ^a[3]}
	r, _ := bigint.Add(c, f.m.PPlus1)
	return Element(r)
}

// Mul returns a*b*R^-1 mod p, the Montgomery product.
func (f *Field) Mul(a, b Element) Element {
	return f.REDC(bigint.Mul(bigint.Uint256(a), bigint.Uint256(b)))
}

// Sqr returns a*a*R^-1 mod p.
func (f *Field) Sqr(a Element) Element {
	return f.REDC(bigint.Sqr(bigint.Uint256(a)))
}

// REDC performs Montgomery reduction of a double-width value t, returning
// t*R^-1 mod p. t must be below 2^256*p, which holds for the product of two
// reduced elements; larger inputs give undefined results.
func (f *Field) REDC(t bigint.Product) Element {
	var buf [2*bigint.Words + 1]uint64
	copy(buf[:], t[:])
	return f.redc(&buf)
}

// redc reduces the nine-word buffer t in place. t[8] is the overflow slot
// for carries out of the eight product words.
func (f *Field) redc(t *[2*bigint.Words + 1]uint64) Element {
	p := &f.m.P
	for i := 0; i < bigint.Words; i++ {
		m := t[i] * f.m.NegInv
		var c uint64
		for j := 0; j < bigint.Words; j++ {
			hi, lo := bits.Mul64(m, p[j])
			var k uint64
			lo, k = bits.Add64(lo, t[i+j], 0)
			hi += k
			lo, k = bits.Add64(lo, c, 0)
			hi += k
			t[i+j] = lo
			c = hi
		}
		for j := i + bigint.Words; c != 0 && j < len(t); j++ {
			t[j], c = bits.Add64(t[j], c, 0)
		}
	}
	return f.reduceOnce(bigint.Uint256{t[4], t[5], t[6], t[7]})
}

// Pow returns x^e for a single-word exponent, consuming e from the least
// significant bit upwards.
func (f *Field) Pow(x Element, e uint64) Element {
	acc, sq := f.One(), x
	for ; e != 0; e >>= 1 {
		if e&1 == 1 {
			acc = f.Mul(acc, sq)
		}
		sq = f.Sqr(sq)
	}
	return acc
}

// PowWords returns x^e where e is an arbitrary-length little-endian word
// slice. Zero high words are skipped; they do not affect the result.
func (f *Field) PowWords(x Element, e []uint64) Element {
	top := len(e) - 1
	for top > 0 && e[top] == 0 {
		top--
	}
	acc, sq := f.One(), x
	for i := 0; i <= top; i++ {
		w := e[i]
		for j := 0; j < 64; j++ {
			if w&1 == 1 {
				acc = f.Mul(acc, sq)
			}
			sq = f.Sqr(sq)
			w >>= 1
		}
	}
	return acc
}

// Inv returns a^-1 in Montgomery form. The standard-form inverse of the
// encoding a*R is a^-1*R^-1; one Montgomery multiplication by R^3 brings it
// back to a^-1*R. Inv(0) returns 0.
func (f *Field) Inv(a Element) Element {
	return f.Mul(f.StdInv(a), Element(f.m.R3))
}

// Div returns a/b in Montgomery form. The R factors cancel in the standard
// quotient, so a Montgomery multiplication by R^2 restores one. Div by 0
// returns 0.
func (f *Field) Div(a, b Element) Element {
	return f.Mul(f.StdDiv(a, b), Element(f.m.R2))
}

// ToStd converts a from Montgomery to standard form.
func (f *Field) ToStd(a Element) Element {
	var buf [2*bigint.Words + 1]uint64
	copy(buf[:], a[:])
	return f.redc(&buf)
}

// FromStd converts a reduced standard-form value to Montgomery form.
func (f *Field) FromStd(a Element) Element {
	return f.Mul(a, Element(f.m.R2))
}

// In-place wrappers. Each reads its operands before writing z, so z may
// alias any argument.

// AddAssign sets z = z + b.
func (f *Field) AddAssign(z *Element, b Element) { *z = f.Add(*z, b) }

// SubAssign sets z = z - b.
func (f *Field) SubAssign(z *Element, b Element) { *z = f.Sub(*z, b) }

// SubReverseAssign sets z = b - z.
func (f *Field) SubReverseAssign(z *Element, b Element) { *z = f.Sub(b, *z) }

// NegAssign sets z = -z.
func (f *Field) NegAssign(z *Element) { *z = f.Neg(*z) }

// MulAssign sets z = z * b.
func (f *Field) MulAssign(z *Element, b Element) { *z = f.Mul(*z, b) }

// SqrAssign sets z = z^2.
func (f *Field) SqrAssign(z *Element) { *z = f.Sqr(*z) }

// InvAssign sets z = z^-1.
func (f *Field) InvAssign(z *Element) { *z = f.Inv(*z) }

// DivAssign sets z = z / b.
func (f *Field) DivAssign(z *Element, b Element) { *z = f.Div(*z, b) }
