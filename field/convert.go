package field

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/eth2030/zkarith/bigint"
	"golang.org/x/crypto/sha3"
)

// FromUint64 returns the Montgomery form of v. v must be below p, which
// holds for every field in this package.
func (f *Field) FromUint64(v uint64) Element {
	return f.FromStd(Element{v})
}

// FromBig returns the Montgomery form of b. It rejects values outside
// [0, p) instead of reducing them.
func (f *Field) FromBig(b *big.Int) (Element, error) {
	v, err := bigint.FromBig(b)
	if err != nil || bigint.Cmp(v, f.m.P) >= 0 {
		return Element{}, fmt.Errorf("%w: %s in %s", ErrNotCanonical, b, f.name)
	}
	return f.FromStd(Element(v)), nil
}

// FromDecimal parses a base-10 value and returns its Montgomery form.
func (f *Field) FromDecimal(s string) (Element, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, fmt.Errorf("field %s: invalid decimal %q", f.name, s)
	}
	return f.FromBig(b)
}

// MustFromDecimal is like FromDecimal but panics on error. It is meant for
// constant tables.
func (f *Field) MustFromDecimal(s string) Element {
	e, err := f.FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return e
}

// ToBig returns the standard value of the Montgomery-form element a.
func (f *Field) ToBig(a Element) *big.Int {
	return bigint.Uint256(f.ToStd(a)).ToBig()
}

// Words returns the raw layout size of an element.
func (f *Field) Words() int { return bigint.Words }

// PutWords writes a into dst, least significant word first.
func (f *Field) PutWords(dst []uint64, a Element) {
	copy(dst[:bigint.Words], a[:])
}

// ReadWords decodes one element from src without validating it.
func (f *Field) ReadWords(src []uint64) Element {
	var e Element
	copy(e[:], src[:bigint.Words])
	return e
}

// Random draws a uniformly distributed element from r by rejection
// sampling. Since any reduced value is a valid Montgomery encoding, the
// sample is used as is.
func (f *Field) Random(r io.Reader) (Element, error) {
	var buf [8 * bigint.Words]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Element{}, fmt.Errorf("field %s: random: %w", f.name, err)
		}
		e := f.fromBytesMasked(buf[:])
		if f.IsReduced(e) {
			return e, nil
		}
	}
}

// Hash maps arbitrary data to an element: the Keccak-256 digest is masked
// to the bit length of p and reduced once. The result is deterministic but
// slightly biased towards small values; it is meant for test vectors and
// seeding, not for hash-to-curve.
func (f *Field) Hash(data ...[]byte) Element {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	e := f.fromBytesMasked(d.Sum(nil))
	return f.reduceOnce(bigint.Uint256(e))
}

// fromBytesMasked reads 32 little-endian bytes and clears every bit above
// the modulus bit length.
func (f *Field) fromBytesMasked(b []byte) Element {
	var e Element
	for i := range e {
		e[i] = binary.LittleEndian.Uint64(b[8*i:])
		switch n := f.bitLen - 64*i; {
		case n <= 0:
			e[i] = 0
		case n < 64:
			e[i] &= 1<<uint(n) - 1
		}
	}
	return e
}
