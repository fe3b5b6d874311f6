package curve

import (
	"math/big"
	"math/bits"

	"github.com/eth2030/zkarith/field"
)

// Projective is a point in homogeneous coordinates (X : Y : Z) with affine
// x = X/Z and y = Y/Z. Any point with Z = 0 is the identity; the canonical
// form is (0 : 1 : 0).
type Projective[E any] struct {
	X, Y, Z E
}

// ToProjective lifts p to Z = 1.
func (c *Curve[E]) ToProjective(p Affine[E]) Projective[E] {
	if p.inf {
		return c.projInfinity()
	}
	return Projective[E]{X: p.X, Y: p.Y, Z: c.f.One()}
}

// ToAffine normalizes p with a single inversion.
func (c *Curve[E]) ToAffine(p Projective[E]) Affine[E] {
	f := c.f
	if f.IsZero(p.Z) {
		return c.Infinity()
	}
	zInv := f.Inv(p.Z)
	return Affine[E]{X: f.Mul(p.X, zInv), Y: f.Mul(p.Y, zInv)}
}

// ProjIsInfinity reports whether p is the identity.
func (c *Curve[E]) ProjIsInfinity(p Projective[E]) bool { return c.f.IsZero(p.Z) }

func (c *Curve[E]) projInfinity() Projective[E] {
	return Projective[E]{X: c.f.Zero(), Y: c.f.One(), Z: c.f.Zero()}
}

// ProjAdd returns p + q. Either operand may be the identity; equal x
// coordinates are routed to ProjDouble or give the identity, so the chord
// formula below only sees distinct x and holds for every A, including curves
// with points of order two.
func (c *Curve[E]) ProjAdd(p, q Projective[E]) Projective[E] {
	f := c.f
	if f.IsZero(p.Z) {
		return q
	}
	if f.IsZero(q.Z) {
		return p
	}
	y1z2 := f.Mul(p.Y, q.Z)
	x1z2 := f.Mul(p.X, q.Z)
	z1z2 := f.Mul(p.Z, q.Z)
	u := f.Sub(f.Mul(q.Y, p.Z), y1z2)
	v := f.Sub(f.Mul(q.X, p.Z), x1z2)
	if f.IsZero(v) {
		if f.IsZero(u) {
			return c.ProjDouble(p)
		}
		return c.projInfinity()
	}

	vv := f.Sqr(v)
	vvv := f.Mul(v, vv)
	r := f.Mul(vv, x1z2)
	a := f.Sub(f.Sub(f.Mul(f.Sqr(u), z1z2), vvv), f.Add(r, r))
	return Projective[E]{
		X: f.Mul(v, a),
		Y: f.Sub(f.Mul(u, f.Sub(r, a)), f.Mul(vvv, y1z2)),
		Z: f.Mul(vvv, z1z2),
	}
}

// ProjDouble returns 2p (Renes, Costello, Batina 2015, algorithm 3, for
// arbitrary A). Points of order two double to the canonical identity.
func (c *Curve[E]) ProjDouble(p Projective[E]) Projective[E] {
	f := c.f
	if f.IsZero(p.Z) || f.IsZero(p.Y) {
		return c.projInfinity()
	}
	t0 := f.Sqr(p.X)
	t1 := f.Sqr(p.Y)
	t2 := f.Sqr(p.Z)
	t3 := f.Mul(p.X, p.Y)
	t3 = f.Add(t3, t3)
	z3 := f.Mul(p.X, p.Z)
	z3 = f.Add(z3, z3)

	y3 := f.Add(c.mulA(z3), f.Mul(c.b3, t2))
	x3 := f.Sub(t1, y3)
	y3 = f.Mul(x3, f.Add(t1, y3))
	x3 = f.Mul(t3, x3)

	z3 = f.Mul(c.b3, z3)
	t2 = c.mulA(t2)
	t3 = f.Add(c.mulA(f.Sub(t0, t2)), z3)
	t0 = f.Add(f.Add(f.Add(t0, t0), t0), t2)
	t0 = f.Mul(t0, t3)
	y3 = f.Add(y3, t0)

	t2 = f.Mul(p.Y, p.Z)
	t2 = f.Add(t2, t2)
	x3 = f.Sub(x3, f.Mul(t2, t3))
	z3 = f.Mul(t2, t1)
	z3 = f.Add(z3, z3)
	z3 = f.Add(z3, z3)
	return Projective[E]{X: x3, Y: y3, Z: z3}
}

// projScalarMul computes k*p by double-and-add from the most significant
// set bit of the little-endian word slice k. Not constant time.
func (c *Curve[E]) projScalarMul(p Projective[E], k []uint64) Projective[E] {
	top := len(k) - 1
	for top >= 0 && k[top] == 0 {
		top--
	}
	acc := c.projInfinity()
	if top < 0 {
		return acc
	}
	for i := top; i >= 0; i-- {
		start := 63
		if i == top {
			start = bits.Len64(k[i]) - 1
		}
		for j := start; j >= 0; j-- {
			acc = c.ProjDouble(acc)
			if k[i]>>uint(j)&1 == 1 {
				acc = c.ProjAdd(acc, p)
			}
		}
	}
	return acc
}

// ScalarMulWords returns k*p for a scalar of any width given as
// little-endian 64-bit words.
func (c *Curve[E]) ScalarMulWords(p Affine[E], k []uint64) Affine[E] {
	if p.inf {
		return p
	}
	return c.ToAffine(c.projScalarMul(c.ToProjective(p), k))
}

// ScalarMulUint64 returns k*p.
func (c *Curve[E]) ScalarMulUint64(p Affine[E], k uint64) Affine[E] {
	return c.ScalarMulWords(p, []uint64{k})
}

// ScalarMulElement returns k*p for a scalar held in Montgomery form in the
// scalar field fr. The scalar is converted to its standard value first.
func (c *Curve[E]) ScalarMulElement(p Affine[E], fr *field.Field, k field.Element) Affine[E] {
	std := fr.ToStd(k)
	return c.ScalarMulWords(p, std[:])
}

var wordMask = new(big.Int).SetUint64(^uint64(0))

// ScalarMulBig returns k*p. Negative scalars multiply -p by |k|.
func (c *Curve[E]) ScalarMulBig(p Affine[E], k *big.Int) Affine[E] {
	abs := new(big.Int).Abs(k)
	words := make([]uint64, (abs.BitLen()+63)/64)
	w := new(big.Int)
	for i := range words {
		words[i] = w.And(w.Rsh(abs, uint(64*i)), wordMask).Uint64()
	}
	if k.Sign() < 0 {
		p = c.Neg(p)
	}
	return c.ScalarMulWords(p, words)
}
