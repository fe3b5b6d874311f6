package field

// Arithmetic is the field contract consumed by the curve group law and the
// polynomial ring. Any coordinate type can be plugged in, including
// extension fields built from several base-field elements, as long as it
// provides these operations with Montgomery-form semantics.
type Arithmetic[E any] interface {
	Name() string

	Zero() E
	One() E
	IsZero(a E) bool
	IsOne(a E) bool
	Equal(a, b E) bool
	IsReduced(a E) bool

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Sqr(a E) E
	Inv(a E) E
	Div(a, b E) E

	// Words is the number of 64-bit words in the raw layout of one element.
	Words() int
	// PutWords writes a into dst[:Words()], least significant word first.
	PutWords(dst []uint64, a E)
	// ReadWords decodes src[:Words()] without validating it.
	ReadWords(src []uint64) E
}

var (
	_ Arithmetic[Element] = (*Field)(nil)
	_ Arithmetic[E2]      = (*Quadratic)(nil)
)
