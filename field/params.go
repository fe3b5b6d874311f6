package field

import (
	"fmt"
	"sort"
)

// Predefined fields. They are built once at package initialisation and never
// modified afterwards.
var (
	// BN254Fp is the base field of the BN254 (alt_bn128) curve.
	BN254Fp = MustNewField("bn254-fp",
		"21888242871839275222246405745257275088696311157297823662689037894645226208583")

	// BN254Fr is the scalar field of BN254, the order of its G1 and G2 subgroups.
	BN254Fr = MustNewField("bn254-fr",
		"21888242871839275222246405745257275088548364400416034343698204186575808495617")

	// BLS12381Fr is the scalar field of BLS12-381.
	BLS12381Fr = MustNewField("bls12-381-fr",
		"52435875175126190479447740508185965837690552500527637822603658699938581184513")

	// BN254Fp2 is Fp[u]/(u^2 + 1), the coordinate field of BN254 G2.
	BN254Fp2 = NewQuadratic("bn254-fp2", BN254Fp, BN254Fp.Neg(BN254Fp.One()))
)

var registry = map[string]*Field{
	BN254Fp.Name():    BN254Fp,
	BN254Fr.Name():    BN254Fr,
	BLS12381Fr.Name(): BLS12381Fr,
}

// Lookup returns the predefined prime field with the given name.
func Lookup(name string) (*Field, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("field: unknown field %q", name)
	}
	return f, nil
}

// Names returns the names of all predefined prime fields, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
