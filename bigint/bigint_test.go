package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
)

var maxWord = ^uint64(0)

func randUint256(rng *rand.Rand) Uint256 {
	return Uint256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
}

// edgeValues are operands that stress carry chains across every word.
var edgeValues = []Uint256{
	{},
	{1},
	{maxWord},
	{0, maxWord},
	{maxWord, maxWord, maxWord, maxWord},
	{maxWord, 0, maxWord, 0},
	{0, 0, 0, 1 << 63},
}

func productToBig(p Product) *big.Int {
	r := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(p[i]))
	}
	return r
}

func TestAddMatchesUint256(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	check := func(a, b Uint256) {
		sum, carry := Add(a, b)
		want, overflow := new(uint256.Int).AddOverflow(a.ToUint256(), b.ToUint256())
		if FromUint256(want) != sum {
			t.Fatalf("Add(%s, %s) = %s, want %s", a.Hex(), b.Hex(), sum.Hex(), want.Hex())
		}
		if (carry == 1) != overflow {
			t.Fatalf("Add(%s, %s) carry = %d, want overflow %v", a.Hex(), b.Hex(), carry, overflow)
		}
	}
	for _, a := range edgeValues {
		for _, b := range edgeValues {
			check(a, b)
		}
	}
	for i := 0; i < 500; i++ {
		check(randUint256(rng), randUint256(rng))
	}
}

func TestSubMatchesUint256(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	check := func(a, b Uint256) {
		diff, borrow := Sub(a, b)
		want, underflow := new(uint256.Int).SubOverflow(a.ToUint256(), b.ToUint256())
		if FromUint256(want) != diff {
			t.Fatalf("Sub(%s, %s) = %s, want %s", a.Hex(), b.Hex(), diff.Hex(), want.Hex())
		}
		if (borrow == 1) != underflow {
			t.Fatalf("Sub(%s, %s) borrow = %d, want underflow %v", a.Hex(), b.Hex(), borrow, underflow)
		}
		rev, rborrow := SubReverse(b, a)
		if rev != diff || rborrow != borrow {
			t.Fatalf("SubReverse(%s, %s) disagrees with Sub", b.Hex(), a.Hex())
		}
	}
	for _, a := range edgeValues {
		for _, b := range edgeValues {
			check(a, b)
		}
	}
	for i := 0; i < 500; i++ {
		check(randUint256(rng), randUint256(rng))
	}
}

func TestMulAndSqrMatchBig(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	check := func(a, b Uint256) {
		want := new(big.Int).Mul(a.ToBig(), b.ToBig())
		if got := productToBig(Mul(a, b)); got.Cmp(want) != 0 {
			t.Fatalf("Mul(%s, %s) = %x, want %x", a.Hex(), b.Hex(), got, want)
		}
		sq := new(big.Int).Mul(a.ToBig(), a.ToBig())
		if got := productToBig(Sqr(a)); got.Cmp(sq) != 0 {
			t.Fatalf("Sqr(%s) = %x, want %x", a.Hex(), got, sq)
		}
		if Sqr(a) != Mul(a, a) {
			t.Fatalf("Sqr(%s) != Mul(a, a)", a.Hex())
		}
	}
	for _, a := range edgeValues {
		for _, b := range edgeValues {
			check(a, b)
		}
	}
	for i := 0; i < 500; i++ {
		check(randUint256(rng), randUint256(rng))
	}
}

func TestCmpAndPredicates(t *testing.T) {
	tests := []struct {
		a, b Uint256
		want int
	}{
		{Uint256{}, Uint256{}, 0},
		{Uint256{1}, Uint256{}, 1},
		{Uint256{maxWord}, Uint256{0, 1}, -1},
		{Uint256{0, 0, 0, 2}, Uint256{maxWord, maxWord, maxWord, 1}, 1},
	}
	for _, tt := range tests {
		if got := Cmp(tt.a, tt.b); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.a.Hex(), tt.b.Hex(), got, tt.want)
		}
		if Equal(tt.a, tt.b) != (tt.want == 0) {
			t.Errorf("Equal(%s, %s) inconsistent with Cmp", tt.a.Hex(), tt.b.Hex())
		}
	}
	if !IsZero(Uint256{}) || IsZero(Uint256{0, 0, 0, 1}) {
		t.Fatal("IsZero misreports")
	}
}

func TestSetAndAssign(t *testing.T) {
	var z Uint256
	z.Set(Uint256{maxWord, maxWord, maxWord, maxWord})
	if c := z.AddAssign(Uint256{1}); c != 1 || !IsZero(z) {
		t.Fatalf("AddAssign wrap: z = %s carry = %d", z.Hex(), c)
	}
	if b := z.SubAssign(Uint256{1}); b != 1 || z != (Uint256{maxWord, maxWord, maxWord, maxWord}) {
		t.Fatalf("SubAssign wrap: z = %s borrow = %d", z.Hex(), b)
	}
	z.SetUint64(7)
	if z != (Uint256{7}) {
		t.Fatalf("SetUint64: %s", z.Hex())
	}
	z.SetZero()
	if !IsZero(z) {
		t.Fatal("SetZero left a non-zero value")
	}
}

func TestBitsAndShift(t *testing.T) {
	a := Uint256{0b101, 0, 0, 1 << 62}
	if a.BitLen() != 255 {
		t.Fatalf("BitLen = %d, want 255", a.BitLen())
	}
	if a.Bit(0) != 1 || a.Bit(1) != 0 || a.Bit(254) != 1 || a.Bit(300) != 0 {
		t.Fatal("Bit returned wrong values")
	}
	if a.IsEven() {
		t.Fatal("odd value reported even")
	}
	got := a.Rsh1(1)
	want := Uint256{0b10, 0, 0, 1<<63 | 1<<61}
	if got != want {
		t.Fatalf("Rsh1 = %s, want %s", got.Hex(), want.Hex())
	}
	if (Uint256{}).BitLen() != 0 {
		t.Fatal("BitLen(0) != 0")
	}
}

func TestConversions(t *testing.T) {
	const dec = "21888242871839275222246405745257275088696311157297823662689037894645226208583"
	a := MustFromDecimal(dec)
	if a.String() != dec {
		t.Fatalf("String = %s, want %s", a.String(), dec)
	}
	want := Uint256{0x3c208c16d87cfd47, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029}
	if a != want {
		t.Fatalf("MustFromDecimal limbs = %x, want %x", a, want)
	}
	h, err := FromHex(a.Hex())
	if err != nil || h != a {
		t.Fatalf("FromHex(Hex()) = %s, %v", h.Hex(), err)
	}
	b, err := FromBig(a.ToBig())
	if err != nil || b != a {
		t.Fatalf("FromBig(ToBig()) = %s, %v", b.Hex(), err)
	}
	if _, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 256)); err != ErrOverflow {
		t.Fatalf("FromBig(2^256) err = %v, want ErrOverflow", err)
	}
	if _, err := FromBig(big.NewInt(-1)); err == nil {
		t.Fatal("FromBig(-1) should fail")
	}
	if _, err := FromDecimal("not a number"); err == nil {
		t.Fatal("FromDecimal accepted garbage")
	}
}
