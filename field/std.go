package field

import "github.com/eth2030/zkarith/bigint"

// Routines in this file treat their inputs as plain residues (standard
// representation). The Montgomery engine uses them for inversion and
// division, where the R factors are compensated afterwards.

// StdMul returns a*b mod p for standard-form operands.
func (f *Field) StdMul(a, b Element) Element {
	return f.Mul(f.Mul(a, b), Element(f.m.R2))
}

// StdInv returns a^-1 mod p for a standard-form operand, using the binary
// extended Euclidean algorithm. StdInv(0) returns 0.
func (f *Field) StdInv(a Element) Element {
	if f.IsZero(a) {
		return Element{}
	}
	one := bigint.Uint256{1}
	u, v := bigint.Uint256(a), f.m.P
	x1, x2 := Element{1}, Element{}

	// Invariants: x1*a = u and x2*a = v (mod p).
	for u != one && v != one {
		for u.IsEven() {
			u = u.Rsh1(0)
			x1 = f.halve(x1)
		}
		for v.IsEven() {
			v = v.Rsh1(0)
			x2 = f.halve(x2)
		}
		if bigint.Cmp(u, v) >= 0 {
			u, _ = bigint.Sub(u, v)
			x1 = f.Sub(x1, x2)
		} else {
			v, _ = bigint.Sub(v, u)
			x2 = f.Sub(x2, x1)
		}
	}
	if u == one {
		return x1
	}
	return x2
}

// StdDiv returns a/b mod p for standard-form operands.
func (f *Field) StdDiv(a, b Element) Element {
	return f.StdMul(a, f.StdInv(b))
}

// halve returns x/2 mod p. Odd x is made even by adding p first; the carry
// of that sum becomes the new top bit.
func (f *Field) halve(x Element) Element {
	v := bigint.Uint256(x)
	if v.IsEven() {
		return Element(v.Rsh1(0))
	}
	s, c := bigint.Add(v, f.m.P)
	return Element(s.Rsh1(c))
}
