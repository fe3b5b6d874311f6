package field

// E2 is an element a0 + a1*u of a quadratic extension, with both
// coefficients in Montgomery form.
type E2 struct {
	A0, A1 Element
}

// Quadratic is the extension F[u]/(u^2 - beta) of a base field. It satisfies
// the same Arithmetic contract as the base field, so the curve code runs on
// it unchanged.
type Quadratic struct {
	name string
	base *Field
	beta Element
}

// NewQuadratic returns the extension of base by a square root of beta.
// beta must be a quadratic non-residue in base, given in Montgomery form.
func NewQuadratic(name string, base *Field, beta Element) *Quadratic {
	return &Quadratic{name: name, base: base, beta: beta}
}

// Base returns the underlying prime field.
func (q *Quadratic) Base() *Field { return q.base }

// Name returns the registry name of the extension.
func (q *Quadratic) Name() string { return q.name }

// FromBase returns a0 + a1*u.
func (q *Quadratic) FromBase(a0, a1 Element) E2 { return E2{A0: a0, A1: a1} }

// FromDecimal parses both coefficients from base-10 strings.
func (q *Quadratic) FromDecimal(a0, a1 string) (E2, error) {
	c0, err := q.base.FromDecimal(a0)
	if err != nil {
		return E2{}, err
	}
	c1, err := q.base.FromDecimal(a1)
	if err != nil {
		return E2{}, err
	}
	return E2{A0: c0, A1: c1}, nil
}

// MustFromDecimal is like FromDecimal but panics on error.
func (q *Quadratic) MustFromDecimal(a0, a1 string) E2 {
	e, err := q.FromDecimal(a0, a1)
	if err != nil {
		panic(err)
	}
	return e
}

func (q *Quadratic) Zero() E2 { return E2{} }

func (q *Quadratic) One() E2 { return E2{A0: q.base.One()} }

func (q *Quadratic) IsZero(a E2) bool {
	return q.base.IsZero(a.A0) && q.base.IsZero(a.A1)
}

func (q *Quadratic) IsOne(a E2) bool {
	return q.base.IsOne(a.A0) && q.base.IsZero(a.A1)
}

func (q *Quadratic) Equal(a, b E2) bool { return a == b }

func (q *Quadratic) IsReduced(a E2) bool {
	return q.base.IsReduced(a.A0) && q.base.IsReduced(a.A1)
}

func (q *Quadratic) Add(a, b E2) E2 {
	return E2{A0: q.base.Add(a.A0, b.A0), A1: q.base.Add(a.A1, b.A1)}
}

func (q *Quadratic) Sub(a, b E2) E2 {
	return E2{A0: q.base.Sub(a.A0, b.A0), A1: q.base.Sub(a.A1, b.A1)}
}

func (q *Quadratic) Neg(a E2) E2 {
	return E2{A0: q.base.Neg(a.A0), A1: q.base.Neg(a.A1)}
}

// Conjugate returns a0 - a1*u.
func (q *Quadratic) Conjugate(a E2) E2 {
	return E2{A0: a.A0, A1: q.base.Neg(a.A1)}
}

// Mul returns a*b = (a0*b0 + beta*a1*b1) + (a0*b1 + a1*b0)*u.
func (q *Quadratic) Mul(a, b E2) E2 {
	f := q.base
	c0 := f.Add(f.Mul(a.A0, b.A0), f.Mul(q.beta, f.Mul(a.A1, b.A1)))
	c1 := f.Add(f.Mul(a.A0, b.A1), f.Mul(a.A1, b.A0))
	return E2{A0: c0, A1: c1}
}

func (q *Quadratic) Sqr(a E2) E2 { return q.Mul(a, a) }

// MulByBase returns a*c for c in the base field.
func (q *Quadratic) MulByBase(a E2, c Element) E2 {
	return E2{A0: q.base.Mul(a.A0, c), A1: q.base.Mul(a.A1, c)}
}

// Inv returns a^-1 = conj(a) / (a0^2 - beta*a1^2). Inv(0) returns 0.
func (q *Quadratic) Inv(a E2) E2 {
	f := q.base
	norm := f.Sub(f.Sqr(a.A0), f.Mul(q.beta, f.Sqr(a.A1)))
	return q.MulByBase(q.Conjugate(a), f.Inv(norm))
}

func (q *Quadratic) Div(a, b E2) E2 { return q.Mul(a, q.Inv(b)) }

// Words returns the raw layout size: A0 followed by A1.
func (q *Quadratic) Words() int { return 2 * q.base.Words() }

func (q *Quadratic) PutWords(dst []uint64, a E2) {
	n := q.base.Words()
	q.base.PutWords(dst[:n], a.A0)
	q.base.PutWords(dst[n:], a.A1)
}

func (q *Quadratic) ReadWords(src []uint64) E2 {
	n := q.base.Words()
	return E2{A0: q.base.ReadWords(src[:n]), A1: q.base.ReadWords(src[n:])}
}
