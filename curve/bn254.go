package curve

import "github.com/eth2030/zkarith/field"

const (
	bn254Order = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

	// 2p - r
	bn254G2Cofactor = "21888242871839275222246405745257275088844257914179612981679871602714643921549"
)

// BN254G1 is y^2 = x^3 + 3 over the BN254 base field with generator (1, 2).
// The curve has prime order, so the cofactor is 1.
var BN254G1 = MustNew(Params[field.Element]{
	Name:     "bn254-g1",
	Field:    field.BN254Fp,
	A:        field.BN254Fp.Zero(),
	B:        field.BN254Fp.FromUint64(3),
	GenX:     field.BN254Fp.FromUint64(1),
	GenY:     field.BN254Fp.FromUint64(2),
	Cofactor: "1",
	Order:    bn254Order,
})

// BN254G2 is the sextic twist y^2 = x^3 + 3/(9+u) over Fp2, with the
// generator used by the Ethereum pairing precompile (EIP-197).
var BN254G2 = MustNew(Params[field.E2]{
	Name:  "bn254-g2",
	Field: field.BN254Fp2,
	A:     field.BN254Fp2.Zero(),
	B: field.BN254Fp2.MustFromDecimal(
		"19485874751759354771024239261021720505790618469301721065564631296452457478373",
		"266929791119991161246907387137283842545076965332900288569378510910307636690",
	),
	GenX: field.BN254Fp2.MustFromDecimal(
		"10857046999023057135944570762232829481370756359578518086990519993285655852781",
		"11559732032986387107991004021392285783925812861821192530917403151452391805634",
	),
	GenY: field.BN254Fp2.MustFromDecimal(
		"8495653923123431417604973247489272438418190587263600148770280649306958101930",
		"4082367875863433681332203403145435568316851327593401208105741076214120093531",
	),
	Cofactor: bn254G2Cofactor,
	Order:    bn254Order,
})
