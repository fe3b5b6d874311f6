package main

import (
	"flag"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// flagSet wraps flag.FlagSet with the value kinds zkarith needs beyond the
// standard ones.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior.
func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// Uint64Var defines a uint64 flag that rejects negative and overflowing
// input with a short message.
func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	*p = value
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
}

// ScalarVar defines a non-negative integer flag accepting decimal or
// 0x-prefixed hex of up to 256 bits.
func (fs *flagSet) ScalarVar(p **big.Int, name string, value *big.Int, usage string) {
	*p = value
	fs.FlagSet.Var(&scalarValue{p: p}, name, usage)
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

type scalarValue struct {
	p **big.Int
}

func (v *scalarValue) String() string {
	if v.p == nil || *v.p == nil {
		return "0"
	}
	return (*v.p).String()
}

func (v *scalarValue) Set(s string) error {
	k, err := parseScalar(s)
	if err != nil {
		return err
	}
	*v.p = k
	return nil
}

// parseScalar reads a decimal or 0x-prefixed hex scalar below 2^256.
func parseScalar(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		k, err := hexutil.DecodeBig(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex scalar %q: %w", s, err)
		}
		return k, nil
	}
	k, ok := new(big.Int).SetString(s, 10)
	if !ok || k.Sign() < 0 {
		return nil, fmt.Errorf("invalid scalar %q", s)
	}
	if k.BitLen() > 256 {
		return nil, fmt.Errorf("scalar %q exceeds 256 bits", s)
	}
	return k, nil
}
