// Package curve implements the group law of short Weierstrass curves
// y^2 = x^3 + A*x + B over any coordinate field satisfying
// field.Arithmetic, including quadratic extensions.
//
// Points are affine values tagged with an explicit infinity flag. Scalar
// multiplication and subgroup checks run in homogeneous projective
// coordinates and convert back at the end. Projective addition splits out
// the identity and equal-x cases explicitly, so it is exact on curves of
// any order, including those with points of order two.
// The legacy layout that encodes infinity as all-ones coordinates survives
// only in the raw word codec.
//
// The group law performs no validation. Points read from outside the
// process must pass Validate before their results are trusted.
package curve

import (
	"errors"
	"fmt"

	"github.com/eth2030/zkarith/bigint"
	"github.com/eth2030/zkarith/field"
)

// Point validation errors.
var (
	ErrNotReduced    = errors.New("curve: coordinate is not a reduced field element")
	ErrNotOnCurve    = errors.New("curve: point is not on the curve")
	ErrNotInSubgroup = errors.New("curve: point is not in the prime-order subgroup")
	ErrShortBuffer   = errors.New("curve: buffer too short")
)

// Params describes a curve y^2 = x^3 + A*x + B. Coefficients and generator
// coordinates are in the field's Montgomery form; Cofactor and Order are
// decimal integers below 2^256.
type Params[E any] struct {
	Name     string
	Field    field.Arithmetic[E]
	A, B     E
	GenX     E
	GenY     E
	Cofactor string
	Order    string
}

// Curve is an immutable curve descriptor. All group operations are methods
// on it so that they can reach the coordinate field.
type Curve[E any] struct {
	name     string
	f        field.Arithmetic[E]
	a, b, b3 E
	aIsZero  bool
	gen      Affine[E]
	cofactor bigint.Uint256
	order    bigint.Uint256
}

// New validates p and derives the constants the group law needs. The
// generator must lie on the curve and in the subgroup of the given order.
func New[E any](p Params[E]) (*Curve[E], error) {
	cofactor, err := bigint.FromDecimal(p.Cofactor)
	if err != nil {
		return nil, fmt.Errorf("curve %s: cofactor: %w", p.Name, err)
	}
	order, err := bigint.FromDecimal(p.Order)
	if err != nil {
		return nil, fmt.Errorf("curve %s: order: %w", p.Name, err)
	}
	f := p.Field
	b3 := f.Add(f.Add(p.B, p.B), p.B)
	c := &Curve[E]{
		name:     p.Name,
		f:        f,
		a:        p.A,
		b:        p.B,
		b3:       b3,
		aIsZero:  f.IsZero(p.A),
		cofactor: cofactor,
		order:    order,
	}
	c.gen = c.Point(p.GenX, p.GenY)
	if err := c.Validate(c.gen); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew[E any](p Params[E]) *Curve[E] {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the curve name.
func (c *Curve[E]) Name() string { return c.name }

// Field returns the coordinate field.
func (c *Curve[E]) Field() field.Arithmetic[E] { return c.f }

// A returns the linear coefficient.
func (c *Curve[E]) A() E { return c.a }

// B returns the constant coefficient.
func (c *Curve[E]) B() E { return c.b }

// B3 returns 3*B, used by the projective formulas.
func (c *Curve[E]) B3() E { return c.b3 }

// Generator returns the published generator of the prime-order subgroup.
func (c *Curve[E]) Generator() Affine[E] { return c.gen }

// Cofactor returns h, the ratio of the curve order to the subgroup order.
func (c *Curve[E]) Cofactor() bigint.Uint256 { return c.cofactor }

// Order returns r, the prime order of the subgroup.
func (c *Curve[E]) Order() bigint.Uint256 { return c.order }

// mulA returns A*x, skipping the multiplication on A = 0 curves.
func (c *Curve[E]) mulA(x E) E {
	if c.aIsZero {
		return c.f.Zero()
	}
	return c.f.Mul(c.a, x)
}
