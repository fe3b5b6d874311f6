package bigint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// ErrOverflow is returned when a value does not fit in 256 bits.
var ErrOverflow = errors.New("bigint: value overflows 256 bits")

// FromUint256 converts a holiman/uint256 integer. Both types share the
// little-endian word layout, so this is a plain copy.
func FromUint256(u *uint256.Int) Uint256 {
	return Uint256(*u)
}

// ToUint256 returns a as a freshly allocated *uint256.Int.
func (a Uint256) ToUint256() *uint256.Int {
	u := uint256.Int(a)
	return &u
}

// FromBig converts a non-negative big.Int. It fails for negative values and
// for values of 2^256 or more.
func FromBig(b *big.Int) (Uint256, error) {
	if b.Sign() < 0 {
		return Uint256{}, fmt.Errorf("bigint: negative value %s", b)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return Uint256{}, ErrOverflow
	}
	return FromUint256(u), nil
}

// ToBig returns a as a new big.Int.
func (a Uint256) ToBig() *big.Int {
	return a.ToUint256().ToBig()
}

// FromDecimal parses a base-10 string.
func FromDecimal(s string) (Uint256, error) {
	u, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint256{}, fmt.Errorf("bigint: parse %q: %w", s, err)
	}
	return FromUint256(u), nil
}

// MustFromDecimal is like FromDecimal but panics on malformed input. It is
// meant for package-level constant tables.
func MustFromDecimal(s string) Uint256 {
	a, err := FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromHex parses a 0x-prefixed hexadecimal string.
func FromHex(s string) (Uint256, error) {
	u, err := uint256.FromHex(s)
	if err != nil {
		return Uint256{}, fmt.Errorf("bigint: parse %q: %w", s, err)
	}
	return FromUint256(u), nil
}

// Hex returns the 0x-prefixed hexadecimal form of a.
func (a Uint256) Hex() string {
	return a.ToUint256().Hex()
}

// String returns the decimal form of a.
func (a Uint256) String() string {
	return a.ToUint256().Dec()
}
