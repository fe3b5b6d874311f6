package field

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/eth2030/zkarith/bigint"
)

// TestPublishedConstants checks the derived Montgomery constants against
// the tables the fields are specified with.
func TestPublishedConstants(t *testing.T) {
	tests := []struct {
		f            *Field
		p, r, r2, r3 Element
		negInv       uint64
		bitLen       int
	}{
		{
			f:      BN254Fp,
			p:      Element{0x3c208c16d87cfd47, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029},
			r:      Element{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f},
			r2:     Element{0xf32cfc5b538afa89, 0xb5e71911d44501fb, 0x47ab1eff0a417ff6, 0x06d89f71cab8351f},
			r3:     Element{0xb1cd6dafda1530df, 0x62f210e6a7283db6, 0xef7f0b0c0ada0afb, 0x20fd6e902d592544},
			negInv: 0x87d20782e4866389,
			bitLen: 254,
		},
		{
			f:      BN254Fr,
			p:      Element{0x43e1f593f0000001, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029},
			r:      Element{0xac96341c4ffffffb, 0x36fc76959f60cd29, 0x666ea36f7879462e, 0x0e0a77c19a07df2f},
			r2:     Element{0x1bb8e645ae216da7, 0x53fe3ab1e35c59e3, 0x8c49833d53bb8085, 0x0216d0b17f4e44a5},
			r3:     Element{0x5e94d8e1b4bf0040, 0x2a489cbe1cfbb6b8, 0x893cc664a19fcfed, 0x0cf8594b7fcc657c},
			negInv: 0xc2e1f593efffffff,
			bitLen: 254,
		},
		{
			f:      BLS12381Fr,
			p:      Element{0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48},
			r:      Element{0x00000001fffffffe, 0x5884b7fa00034802, 0x998c4fefecbc4ff5, 0x1824b159acc5056f},
			r2:     Element{0xc999e990f3f29c6d, 0x2b6cedcb87925c23, 0x05d314967254398f, 0x0748d9d99f59ff11},
			r3:     Element{0xc62c1807439b73af, 0x1b3e0d188cf06990, 0x73d13c71c7b5f418, 0x6e2a5bb9c8db33e9},
			negInv: 0xfffffffeffffffff,
			bitLen: 255,
		},
	}
	for _, tt := range tests {
		m := tt.f.Modulus()
		if Element(m.P) != tt.p {
			t.Errorf("%s: P = %x, want %x", tt.f.Name(), m.P, tt.p)
		}
		pp1, _ := bigint.Add(m.P, bigint.Uint256{1})
		if m.PPlus1 != pp1 {
			t.Errorf("%s: PPlus1 = %x, want %x", tt.f.Name(), m.PPlus1, pp1)
		}
		if Element(m.R) != tt.r {
			t.Errorf("%s: R = %x, want %x", tt.f.Name(), m.R, tt.r)
		}
		if Element(m.R2) != tt.r2 {
			t.Errorf("%s: R2 = %x, want %x", tt.f.Name(), m.R2, tt.r2)
		}
		if Element(m.R3) != tt.r3 {
			t.Errorf("%s: R3 = %x, want %x", tt.f.Name(), m.R3, tt.r3)
		}
		if m.NegInv != tt.negInv {
			t.Errorf("%s: NegInv = %#x, want %#x", tt.f.Name(), m.NegInv, tt.negInv)
		}
		if m.P[0]*m.NegInv != ^uint64(0) {
			t.Errorf("%s: p*NegInv != -1 mod 2^64", tt.f.Name())
		}
		if tt.f.BitLen() != tt.bitLen {
			t.Errorf("%s: BitLen = %d, want %d", tt.f.Name(), tt.f.BitLen(), tt.bitLen)
		}
	}
}

func TestNewFieldRejectsBadModuli(t *testing.T) {
	tests := []struct {
		modulus string
		want    error
	}{
		{"1", ErrModulusTooSmall},
		{"2", ErrModulusTooSmall},
		{"100", ErrEvenModulus},
		// 2^255 + 95 is odd but too wide.
		{"57896044618658097711785492504343953926634992332820282019728792003956564820063", ErrModulusTooWide},
	}
	for _, tt := range tests {
		if _, err := NewField("bad", tt.modulus); !errors.Is(err, tt.want) {
			t.Errorf("NewField(%s) err = %v, want %v", tt.modulus, err, tt.want)
		}
	}
	if _, err := NewField("bad", "0x17"); err == nil {
		t.Error("NewField accepted a non-decimal modulus")
	}
	small, err := NewField("f101", "101")
	if err != nil {
		t.Fatalf("NewField(101): %v", err)
	}
	// 7 * 8 = 56 mod 101 through the full Montgomery round trip.
	got := small.ToBig(small.Mul(small.FromUint64(7), small.FromUint64(8)))
	if got.Int64() != 56 {
		t.Fatalf("7*8 mod 101 = %s, want 56", got)
	}
}

// TestMontgomeryOneSquared: multiplying the encoding of 1 by itself and
// reducing reproduces the encoding of 1.
func TestMontgomeryOneSquared(t *testing.T) {
	for _, f := range testFields {
		one := f.One()
		if !f.IsOne(f.Mul(one, one)) {
			t.Errorf("%s: 1*1 != 1", f.Name())
		}
		if !f.IsOne(f.REDC(bigint.Mul(bigint.Uint256(one), bigint.Uint256(one)))) {
			t.Errorf("%s: REDC(R*R) != R", f.Name())
		}
		if f.IsOne(Element{1}) {
			t.Errorf("%s: literal 1 must not be reported as one", f.Name())
		}
		if f.ToStd(one) != (Element{1}) {
			t.Errorf("%s: ToStd(One) = %x, want 1", f.Name(), f.ToStd(one))
		}
	}
}

func TestAdditiveAxioms(t *testing.T) {
	for _, f := range testFields {
		xs := sample(t, f, "add", 24)
		for i, a := range xs {
			for _, b := range xs[i:] {
				if f.Add(a, b) != f.Add(b, a) {
					t.Fatalf("%s: add not commutative", f.Name())
				}
				c := xs[(i*7+3)%len(xs)]
				if f.Add(f.Add(a, b), c) != f.Add(a, f.Add(b, c)) {
					t.Fatalf("%s: add not associative", f.Name())
				}
				if f.Sub(f.Add(a, b), b) != a {
					t.Fatalf("%s: (a+b)-b != a", f.Name())
				}
				if f.SubReverse(b, a) != f.Sub(a, b) {
					t.Fatalf("%s: SubReverse mismatch", f.Name())
				}
			}
			if !f.IsZero(f.Add(a, f.Neg(a))) {
				t.Fatalf("%s: a + (-a) != 0 for %x", f.Name(), a)
			}
			if f.Neg(f.Neg(a)) != a {
				t.Fatalf("%s: -(-a) != a", f.Name())
			}
			if !f.IsReduced(f.Neg(a)) || !f.IsReduced(f.Double(a)) {
				t.Fatalf("%s: result not reduced", f.Name())
			}
		}
		if !f.IsZero(f.Neg(f.Zero())) {
			t.Fatalf("%s: -0 != 0", f.Name())
		}
	}
}

func TestMultiplicativeAxioms(t *testing.T) {
	for _, f := range testFields {
		xs := sample(t, f, "mul", 24)
		for i, a := range xs {
			b := xs[(i+5)%len(xs)]
			c := xs[(i+11)%len(xs)]
			if f.Mul(f.Mul(a, b), c) != f.Mul(a, f.Mul(b, c)) {
				t.Fatalf("%s: mul not associative", f.Name())
			}
			if f.Mul(a, b) != f.Mul(b, a) {
				t.Fatalf("%s: mul not commutative", f.Name())
			}
			if f.Mul(a, f.Add(b, c)) != f.Add(f.Mul(a, b), f.Mul(a, c)) {
				t.Fatalf("%s: mul does not distribute", f.Name())
			}
			if f.Mul(a, f.One()) != a {
				t.Fatalf("%s: a*1 != a", f.Name())
			}
			if f.Sqr(a) != f.Mul(a, a) {
				t.Fatalf("%s: Sqr(a) != a*a", f.Name())
			}
			if f.IsZero(a) {
				continue
			}
			if !f.IsOne(f.Mul(a, f.Inv(a))) {
				t.Fatalf("%s: a*a^-1 != 1 for %x", f.Name(), a)
			}
			if !f.IsOne(f.Div(a, a)) {
				t.Fatalf("%s: a/a != 1 for %x", f.Name(), a)
			}
			if f.Mul(f.Div(b, a), a) != b {
				t.Fatalf("%s: (b/a)*a != b", f.Name())
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range testFields {
		for _, x := range sample(t, f, "roundtrip", 32) {
			if f.ToStd(f.FromStd(x)) != x {
				t.Fatalf("%s: ToStd(FromStd(x)) != x for %x", f.Name(), x)
			}
			if f.FromStd(f.ToStd(x)) != x {
				t.Fatalf("%s: FromStd(ToStd(x)) != x for %x", f.Name(), x)
			}
		}
	}
}

type refCheck struct {
	op   string
	got  Element
	want *big.Int
}

func TestMatchesBigReference(t *testing.T) {
	for _, f := range testFields {
		ref := newBigRef(f)
		xs := sample(t, f, "reference", 40)
		for i, a := range xs {
			b := xs[(i*13+1)%len(xs)]
			ab, bb := f.ToBig(a), f.ToBig(b)
			checks := []refCheck{
				{"add", f.Add(a, b), ref.add(ab, bb)},
				{"sub", f.Sub(a, b), ref.sub(ab, bb)},
				{"mul", f.Mul(a, b), ref.mul(ab, bb)},
				{"sqr", f.Sqr(a), ref.mul(ab, ab)},
				{"neg", f.Neg(a), ref.neg(ab)},
				{"pow", f.Pow(a, 65537), ref.exp(ab, big.NewInt(65537))},
			}
			if bb.Sign() != 0 {
				checks = append(checks, refCheck{"div", f.Div(a, b), ref.mul(ab, ref.inv(bb))})
			}
			for _, c := range checks {
				if got := f.ToBig(c.got); got.Cmp(c.want) != 0 {
					t.Fatalf("%s: %s(%s, %s) = %s, want %s", f.Name(), c.op, ab, bb, got, c.want)
				}
			}
		}
	}
}

func TestStdInverse(t *testing.T) {
	for _, f := range testFields {
		ref := newBigRef(f)
		for _, x := range sample(t, f, "stdinv", 32)[1:] {
			// x is treated as a standard residue here.
			want := ref.inv(bigint.Uint256(x).ToBig())
			got := f.StdInv(x)
			if bigint.Uint256(got).ToBig().Cmp(want) != 0 {
				t.Fatalf("%s: StdInv(%x) = %x, want %s", f.Name(), x, got, want)
			}
			if f.StdMul(x, got) != (Element{1}) {
				t.Fatalf("%s: x*StdInv(x) != 1", f.Name())
			}
		}
		if !f.IsZero(f.StdInv(f.Zero())) || !f.IsZero(f.Inv(f.Zero())) {
			t.Fatalf("%s: inverse of zero should be zero", f.Name())
		}
	}
}

func TestPow(t *testing.T) {
	for _, f := range testFields {
		for _, x := range sample(t, f, "pow", 12) {
			acc := f.One()
			for e := uint64(0); e < 20; e++ {
				if f.Pow(x, e) != acc {
					t.Fatalf("%s: Pow(x, %d) != x multiplied %d times", f.Name(), e, e)
				}
				if f.PowWords(x, []uint64{e, 0, 0}) != acc {
					t.Fatalf("%s: PowWords(x, %d) with zero high words mismatch", f.Name(), e)
				}
				acc = f.Mul(acc, x)
			}
			if f.IsZero(x) {
				continue
			}
			pMinus1, _ := bigint.Sub(f.m.P, bigint.Uint256{1})
			if !f.IsOne(f.PowWords(x, pMinus1[:])) {
				t.Fatalf("%s: x^(p-1) != 1 for %x", f.Name(), x)
			}
			if f.PowWords(x, f.pMinus2[:]) != f.Inv(x) {
				t.Fatalf("%s: x^(p-2) != x^-1", f.Name())
			}
		}
		if !f.IsOne(f.PowWords(f.FromUint64(3), nil)) {
			t.Fatalf("%s: empty exponent should give one", f.Name())
		}
	}
}

func TestAssignWrappersAlias(t *testing.T) {
	f := BN254Fp
	a := f.FromUint64(12345)
	b := f.FromUint64(678)

	z := a
	f.AddAssign(&z, z)
	if z != f.Double(a) {
		t.Fatal("AddAssign with aliased operand")
	}
	z = a
	f.MulAssign(&z, z)
	if z != f.Sqr(a) {
		t.Fatal("MulAssign with aliased operand")
	}
	z = a
	f.SubAssign(&z, b)
	if z != f.Sub(a, b) {
		t.Fatal("SubAssign")
	}
	z = a
	f.SubReverseAssign(&z, b)
	if z != f.Sub(b, a) {
		t.Fatal("SubReverseAssign")
	}
	z = a
	f.NegAssign(&z)
	f.SqrAssign(&z)
	if z != f.Sqr(a) {
		t.Fatal("NegAssign/SqrAssign")
	}
	z = a
	f.InvAssign(&z)
	f.DivAssign(&z, b)
	if z != f.Inv(f.Mul(a, b)) {
		t.Fatal("InvAssign/DivAssign")
	}
}

func TestConversionBoundary(t *testing.T) {
	f := BN254Fr
	p := f.m.P.ToBig()
	if _, err := f.FromBig(p); !errors.Is(err, ErrNotCanonical) {
		t.Fatalf("FromBig(p) err = %v, want ErrNotCanonical", err)
	}
	if _, err := f.FromBig(big.NewInt(-5)); !errors.Is(err, ErrNotCanonical) {
		t.Fatalf("FromBig(-5) err = %v, want ErrNotCanonical", err)
	}
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	e, err := f.FromBig(pm1)
	if err != nil {
		t.Fatalf("FromBig(p-1): %v", err)
	}
	if e != f.Neg(f.One()) {
		t.Fatal("FromBig(p-1) != -1")
	}
	if f.ToBig(e).Cmp(pm1) != 0 {
		t.Fatal("ToBig(FromBig(p-1)) mismatch")
	}
	if _, err := f.FromDecimal("12x"); err == nil {
		t.Fatal("FromDecimal accepted garbage")
	}
	if f.MustFromDecimal("7") != f.FromUint64(7) {
		t.Fatal("MustFromDecimal(7) != FromUint64(7)")
	}
	if f.IsReduced(Element(f.m.P)) {
		t.Fatal("p reported as reduced")
	}

	buf := make([]uint64, f.Words()+1)
	f.PutWords(buf[1:], e)
	if f.ReadWords(buf[1:]) != e {
		t.Fatal("raw word round trip")
	}
}

func TestRandomAndHash(t *testing.T) {
	for _, f := range testFields {
		for i := 0; i < 16; i++ {
			e, err := f.Random(rand.Reader)
			if err != nil {
				t.Fatalf("%s: Random: %v", f.Name(), err)
			}
			if !f.IsReduced(e) {
				t.Fatalf("%s: Random returned unreduced %x", f.Name(), e)
			}
		}
		if _, err := f.Random(bytes.NewReader(nil)); err == nil {
			t.Fatalf("%s: Random on empty reader should fail", f.Name())
		}
		a, b := f.Hash([]byte("zkarith")), f.Hash([]byte("zk"), []byte("arith"))
		if a != b {
			t.Fatalf("%s: Hash must depend only on the concatenated input", f.Name())
		}
		if !f.IsReduced(a) || a == f.Hash([]byte("other")) {
			t.Fatalf("%s: Hash output unreduced or constant", f.Name())
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil || f.Name() != name {
			t.Fatalf("Lookup(%q) = %v, %v", name, f, err)
		}
	}
	if len(Names()) != 3 {
		t.Fatalf("Names() = %v", Names())
	}
	if _, err := Lookup("secp256k1"); err == nil {
		t.Fatal("Lookup of an unknown field should fail")
	}
}
