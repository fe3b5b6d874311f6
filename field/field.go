// Package field implements prime-field arithmetic in Montgomery
// representation for 256-bit moduli.
//
// A Field is one generic engine parameterized by a modulus descriptor; the
// BN254 base and scalar fields and the BLS12-381 scalar field are
// predefined. Elements are plain four-word values: whether a value is in
// standard form (x mod p) or Montgomery form (x*R mod p, R = 2^256) is
// decided by which method is applied to it, never stored alongside it.
// ToStd and FromStd convert explicitly.
//
// Arithmetic methods assume reduced operands (strictly less than p) and do
// not validate them. Inputs from outside the process should pass through
// FromBig, FromDecimal or IsReduced first.
package field

import (
	"errors"
	"fmt"

	"github.com/eth2030/zkarith/bigint"
	"github.com/holiman/uint256"
)

// Field parameter errors.
var (
	ErrEvenModulus     = errors.New("field: modulus must be odd")
	ErrModulusTooSmall = errors.New("field: modulus must be at least 3")
	ErrModulusTooWide  = errors.New("field: modulus must be below 2^255")
	ErrNotCanonical    = errors.New("field: value is not a reduced field element")
)

// Element is a field element as four 64-bit words, least significant first.
type Element [bigint.Words]uint64

// Modulus holds a prime p together with the constants the Montgomery engine
// derives from it.
type Modulus struct {
	P      bigint.Uint256
	PPlus1 bigint.Uint256
	R      bigint.Uint256 // 2^256 mod p, the Montgomery form of 1
	R2     bigint.Uint256 // R^2 mod p
	R3     bigint.Uint256 // R^3 mod p
	NegInv uint64         // -p^-1 mod 2^64
}

// Field is a prime field with a fixed modulus. A Field is immutable after
// construction and safe for concurrent use.
type Field struct {
	name    string
	m       Modulus
	pMinus2 bigint.Uint256
	bitLen  int
}

// NewField builds the Montgomery engine for the odd modulus given in
// decimal. The modulus must be below 2^255: REDC then always lands below 2p
// inside four words, and the all-ones word pattern used to encode the point
// at infinity can never be a reduced element.
func NewField(name, modulus string) (*Field, error) {
	p, err := uint256.FromDecimal(modulus)
	if err != nil {
		return nil, fmt.Errorf("field %s: parse modulus: %w", name, err)
	}
	switch {
	case p.LtUint64(3):
		return nil, ErrModulusTooSmall
	case p[0]&1 == 0:
		return nil, ErrEvenModulus
	case p.BitLen() > 255:
		return nil, ErrModulusTooWide
	}

	one := uint256.NewInt(1)
	r := new(uint256.Int).SetAllOne()
	r.Mod(r, p)
	r.AddMod(r, one, p)
	r2 := new(uint256.Int).MulMod(r, r, p)
	r3 := new(uint256.Int).MulMod(r2, r, p)

	f := &Field{
		name: name,
		m: Modulus{
			P:      bigint.FromUint256(p),
			PPlus1: bigint.FromUint256(new(uint256.Int).AddUint64(p, 1)),
			R:      bigint.FromUint256(r),
			R2:     bigint.FromUint256(r2),
			R3:     bigint.FromUint256(r3),
			NegInv: negInverse64(p[0]),
		},
		pMinus2: bigint.FromUint256(new(uint256.Int).SubUint64(p, 2)),
		bitLen:  p.BitLen(),
	}
	return f, nil
}

// MustNewField is like NewField but panics on error.
func MustNewField(name, modulus string) *Field {
	f, err := NewField(name, modulus)
	if err != nil {
		panic(err)
	}
	return f
}

// negInverse64 returns -x^-1 mod 2^64 for odd x. Each Newton step doubles
// the number of correct low bits, starting from 3.
func negInverse64(x uint64) uint64 {
	inv := x
	for i := 0; i < 5; i++ {
		inv *= 2 - x*inv
	}
	return -inv
}

// Name returns the registry name of the field.
func (f *Field) Name() string { return f.name }

// Modulus returns a copy of the modulus descriptor.
func (f *Field) Modulus() Modulus { return f.m }

// BitLen returns the bit length of p.
func (f *Field) BitLen() int { return f.bitLen }

func (f *Field) String() string {
	return fmt.Sprintf("%s(p=%s)", f.name, f.m.P)
}
