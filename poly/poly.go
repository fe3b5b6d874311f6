// Package poly implements dense univariate polynomials over any field that
// satisfies field.Arithmetic.
//
// A polynomial is a coefficient slice, constant term first. The slice may be
// longer than the degree requires: trailing zero coefficients are allowed
// and kept. Operations return freshly allocated slices and never modify
// their inputs.
package poly

import (
	"errors"

	"github.com/eth2030/zkarith/field"
)

// ErrLengthMismatch is returned by LinComb when the number of scalars and
// polynomials differ.
var ErrLengthMismatch = errors.New("poly: scalar and polynomial counts differ")

// Ring is the polynomial ring F[x] over a coefficient field.
type Ring[E any] struct {
	f field.Arithmetic[E]
}

// NewRing returns the polynomial ring over f.
func NewRing[E any](f field.Arithmetic[E]) *Ring[E] {
	return &Ring[E]{f: f}
}

// Field returns the coefficient field.
func (r *Ring[E]) Field() field.Arithmetic[E] { return r.f }

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial (including the empty slice).
func (r *Ring[E]) Degree(p []E) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !r.f.IsZero(p[i]) {
			return i
		}
	}
	return -1
}

// Coeff returns the coefficient of x^k, which is zero outside the slice.
func (r *Ring[E]) Coeff(p []E, k int) E {
	if k < 0 || k >= len(p) {
		return r.f.Zero()
	}
	return p[k]
}

// IsZero reports whether every coefficient is zero.
func (r *Ring[E]) IsZero(p []E) bool { return r.Degree(p) < 0 }

// Equal compares p and q as polynomials, so trailing zeros do not matter.
func (r *Ring[E]) Equal(p, q []E) bool {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		if !r.f.Equal(r.Coeff(p, i), r.Coeff(q, i)) {
			return false
		}
	}
	return true
}

// Neg returns -p.
func (r *Ring[E]) Neg(p []E) []E {
	out := make([]E, len(p))
	for i, c := range p {
		out[i] = r.f.Neg(c)
	}
	return out
}

// Add returns p + q with max(len(p), len(q)) coefficients.
func (r *Ring[E]) Add(p, q []E) []E {
	out := make([]E, max(len(p), len(q)))
	for i := range out {
		out[i] = r.f.Add(r.Coeff(p, i), r.Coeff(q, i))
	}
	return out
}

// Sub returns p - q with max(len(p), len(q)) coefficients.
func (r *Ring[E]) Sub(p, q []E) []E {
	out := make([]E, max(len(p), len(q)))
	for i := range out {
		out[i] = r.f.Sub(r.Coeff(p, i), r.Coeff(q, i))
	}
	return out
}

// Scale returns k*p.
func (r *Ring[E]) Scale(k E, p []E) []E {
	out := make([]E, len(p))
	for i, c := range p {
		out[i] = r.f.Mul(k, c)
	}
	return out
}

// LinComb returns sum(ks[i] * ps[i]). The result has as many coefficients
// as the longest input.
func (r *Ring[E]) LinComb(ks []E, ps [][]E) ([]E, error) {
	if len(ks) != len(ps) {
		return nil, ErrLengthMismatch
	}
	n := 0
	for _, p := range ps {
		n = max(n, len(p))
	}
	out := make([]E, n)
	for i := range out {
		acc := r.f.Zero()
		for j, p := range ps {
			if i < len(p) {
				acc = r.f.Add(acc, r.f.Mul(ks[j], p[i]))
			}
		}
		out[i] = acc
	}
	return out, nil
}

// Mul returns p*q by schoolbook multiplication. The result has
// len(p)+len(q)-1 coefficients, or none if either input is empty.
func (r *Ring[E]) Mul(p, q []E) []E {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make([]E, len(p)+len(q)-1)
	for k := range out {
		acc := r.f.Zero()
		lo, hi := max(0, k-len(q)+1), min(k, len(p)-1)
		for i := lo; i <= hi; i++ {
			acc = r.f.Add(acc, r.f.Mul(p[i], q[k-i]))
		}
		out[k] = acc
	}
	return out
}

// Eval returns p(x) by Horner's rule. Eval at zero is the constant term.
func (r *Ring[E]) Eval(p []E, x E) E {
	acc := r.f.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = r.f.Add(r.f.Mul(acc, x), p[i])
	}
	return acc
}
