package circom

import (
	"encoding/json"

	"github.com/pkg/errors"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/Electron-Labs/groth16-verifier/types"
)

// Bridge structs whose default JSON field names line up with the gnark
// groth16 bn254 backend types, so a marshal/unmarshal round trip converts
// between the two worlds. gnark's field elements unmarshal from decimal
// strings.

type gnarkG1 struct {
	X string
	Y string
}

type gnarkE2 struct {
	A0 string
	A1 string
}

type gnarkG2 struct {
	X gnarkE2
	Y gnarkE2
}

type gnarkProof struct {
	Ar            gnarkG1
	Krs           gnarkG1
	Bs            gnarkG2
	Commitments   []gnarkG1
	CommitmentPok gnarkG1
}

type gnarkG1Elms struct {
	Alpha gnarkG1
	Beta  gnarkG1
	Delta gnarkG1
	K     []gnarkG1
}

type gnarkG2Elms struct {
	Beta  gnarkG2
	Delta gnarkG2
	Gamma gnarkG2
}

type gnarkCommitmentKey struct {
	G             gnarkG2
	GRootSigmaNeg gnarkG2
}

type gnarkVK struct {
	G1                           gnarkG1Elms
	G2                           gnarkG2Elms
	CommitmentKey                gnarkCommitmentKey
	PublicAndCommitmentCommitted [][]int
}

func bridgeG1(p *types.G1Affine) gnarkG1 {
	x := p.X.Element()
	y := p.Y.Element()
	return gnarkG1{X: x.String(), Y: y.String()}
}

func bridgeG2(p *types.G2Affine) gnarkG2 {
	e := p.G2()
	return gnarkG2{
		X: gnarkE2{A0: e.X.A0.String(), A1: e.X.A1.String()},
		Y: gnarkE2{A0: e.Y.A0.String(), A1: e.Y.A1.String()},
	}
}

var zeroG1 = gnarkG1{X: "0", Y: "0"}
var zeroG2 = gnarkG2{X: gnarkE2{A0: "0", A1: "0"}, Y: gnarkE2{A0: "0", A1: "0"}}

// Groth16Proof converts the artifact into a gnark groth16 bn254 proof. The
// commitment fields have no circom equivalent and are zeroed.
func (p *ProofJSON) Groth16Proof() (*groth16_bn254.Proof, error) {
	typed, err := p.Proof()
	if err != nil {
		return nil, err
	}
	bridge := gnarkProof{
		Ar:            bridgeG1(&typed.A),
		Krs:           bridgeG1(&typed.C),
		Bs:            bridgeG2(&typed.B),
		Commitments:   []gnarkG1{},
		CommitmentPok: zeroG1,
	}
	data, err := json.Marshal(bridge)
	if err != nil {
		return nil, err
	}
	var proof groth16_bn254.Proof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, errors.Wrap(err, "unmarshal into gnark proof")
	}
	return &proof, nil
}

// Groth16VK converts the artifact into a gnark groth16 bn254 verifying key
// with its pairing precomputation run. The G1 beta/delta slots and the
// commitment key have no circom equivalent and are zeroed; gnark's verifier
// never reads them for a key without commitments.
func (vk *VerificationKeyJSON) Groth16VK() (*groth16_bn254.VerifyingKey, error) {
	typed, err := vk.VerifyingKey()
	if err != nil {
		return nil, err
	}
	k := make([]gnarkG1, len(typed.GammaABCG1))
	for i := range typed.GammaABCG1 {
		k[i] = bridgeG1(&typed.GammaABCG1[i])
	}
	bridge := gnarkVK{
		G1: gnarkG1Elms{
			Alpha: bridgeG1(&typed.AlphaG1),
			Beta:  zeroG1,
			Delta: zeroG1,
			K:     k,
		},
		G2: gnarkG2Elms{
			Beta:  bridgeG2(&typed.BetaG2),
			Gamma: bridgeG2(&typed.GammaG2),
			Delta: bridgeG2(&typed.DeltaG2),
		},
		CommitmentKey: gnarkCommitmentKey{
			G:             zeroG2,
			GRootSigmaNeg: zeroG2,
		},
		PublicAndCommitmentCommitted: [][]int{},
	}
	data, err := json.Marshal(bridge)
	if err != nil {
		return nil, err
	}
	var out groth16_bn254.VerifyingKey
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "unmarshal into gnark verifying key")
	}
	if err := out.Precompute(); err != nil {
		return nil, errors.Wrap(err, "precompute")
	}
	return &out, nil
}
