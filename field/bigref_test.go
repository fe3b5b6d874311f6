package field

// Arbitrary-precision reference arithmetic over F_p, used as the oracle for
// the Montgomery engine. Values are standard residues held in big.Int.

import (
	"encoding/binary"
	"math/big"
	"testing"
)

type bigRef struct {
	p *big.Int
}

func newBigRef(f *Field) bigRef {
	return bigRef{p: f.m.P.ToBig()}
}

// add returns (a + b) mod p.
func (r bigRef) add(a, b *big.Int) *big.Int {
	z := new(big.Int).Add(a, b)
	return z.Mod(z, r.p)
}

// sub returns (a - b) mod p.
func (r bigRef) sub(a, b *big.Int) *big.Int {
	z := new(big.Int).Sub(a, b)
	return z.Mod(z, r.p)
}

// mul returns (a * b) mod p.
func (r bigRef) mul(a, b *big.Int) *big.Int {
	z := new(big.Int).Mul(a, b)
	return z.Mod(z, r.p)
}

// neg returns (-a) mod p.
func (r bigRef) neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(r.p, new(big.Int).Mod(a, r.p))
}

// inv returns a^(-1) mod p.
func (r bigRef) inv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, r.p)
}

// exp returns a^e mod p.
func (r bigRef) exp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, r.p)
}

// sample returns n deterministic Montgomery-form elements derived from label,
// led by the edge values 0, 1, 2 and p-1.
func sample(t *testing.T, f *Field, label string, n int) []Element {
	t.Helper()
	out := []Element{f.Zero(), f.One(), f.FromUint64(2), f.Neg(f.One())}
	var idx [8]byte
	for i := 0; len(out) < n; i++ {
		binary.LittleEndian.PutUint64(idx[:], uint64(i))
		out = append(out, f.Hash([]byte(label), idx[:]))
	}
	return out
}

var testFields = []*Field{BN254Fp, BN254Fr, BLS12381Fr}
