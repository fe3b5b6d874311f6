//go:build blst

package field

import (
	"math/big"
	"testing"

	blst "github.com/supranational/blst/bindings/go"
)

// Cross-checks the BLS12-381 scalar field against blst. Enabled with
// -tags blst since blst needs cgo.

func toBlstScalar(t *testing.T, f *Field, a Element) *blst.Scalar {
	t.Helper()
	var be [32]byte
	f.ToBig(a).FillBytes(be[:])
	s := new(blst.Scalar).Deserialize(be[:])
	if s == nil {
		t.Fatalf("blst rejected scalar %x", be)
	}
	return s
}

func fromBlstScalar(t *testing.T, f *Field, s *blst.Scalar) Element {
	t.Helper()
	e, err := f.FromBig(new(big.Int).SetBytes(s.Serialize()))
	if err != nil {
		t.Fatalf("blst scalar out of range: %v", err)
	}
	return e
}

func TestBlstScalarArithmetic(t *testing.T) {
	f := BLS12381Fr
	xs := sample(t, f, "blst", 32)
	for i, a := range xs {
		b := xs[(i*3+1)%len(xs)]
		sa, sb := toBlstScalar(t, f, a), toBlstScalar(t, f, b)

		prod, ok := sa.Mul(sb)
		if !ok {
			t.Fatal("blst Mul failed")
		}
		if got := fromBlstScalar(t, f, prod); got != f.Mul(a, b) {
			t.Fatalf("Mul(%x, %x) = %x, blst %x", a, b, f.Mul(a, b), got)
		}
		sum, ok := sa.Add(sb)
		if !ok {
			t.Fatal("blst Add failed")
		}
		if got := fromBlstScalar(t, f, sum); got != f.Add(a, b) {
			t.Fatalf("Add mismatch for %x, %x", a, b)
		}
		if f.IsZero(a) {
			continue
		}
		if got := fromBlstScalar(t, f, sa.Inverse()); got != f.Inv(a) {
			t.Fatalf("Inv(%x) = %x, blst %x", a, f.Inv(a), got)
		}
	}
}
