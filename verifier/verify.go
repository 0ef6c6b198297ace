package verifier

import (
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/Electron-Labs/groth16-verifier/types"
)

// ErrPublicInputCountMismatch reports a public-input vector whose length
// does not fit the verifying key. The key and the inputs may arrive from
// different calls, so this is checked here and not only at parse time.
var ErrPublicInputCountMismatch = errors.New("public input count does not match verifying key")

// Verify runs the Groth16 pairing check
//
//	e(A, B) * e(acc, -gamma) * e(C, -delta) == e(alpha, beta)
//
// where acc is the public-input commitment. It returns false for a
// cryptographically invalid proof; an error is returned only for structural
// problems, never for proof rejection.
func Verify(pvk *types.PreparedVerifyingKey, proof *types.Proof, publicInputs []types.Fr) (bool, error) {
	if len(publicInputs)+1 != len(pvk.VK.GammaABCG1) {
		return false, errors.Wrapf(ErrPublicInputCountMismatch, "%d inputs for %d basis points", len(publicInputs), len(pvk.VK.GammaABCG1))
	}

	log := logger.Logger().With().Str("curve", "bn254").Logger()
	start := time.Now()

	acc, err := publicInputCommitment(pvk.VK.GammaABCG1, publicInputs)
	if err != nil {
		return false, err
	}

	mlFixed, err := fixedQMillerLoop(pvk, acc, proof)
	if err != nil {
		return false, err
	}

	// fresh Miller loop for (A, B); pairs with an infinity member are
	// filtered by the library and contribute the identity
	a := proof.A.G1()
	b := proof.B.G2()
	mlAB, err := bn254.MillerLoop([]bn254.G1Affine{a}, []bn254.G2Affine{b})
	if err != nil {
		return false, errors.Wrap(err, "miller loop (A, B)")
	}

	result := bn254.FinalExponentiation(&mlAB, &mlFixed)
	expected := pvk.AlphaG1BetaG2.E12()
	ok := result.Equal(&expected)

	log.Debug().Dur("took", time.Since(start)).Bool("valid", ok).Msg("proof verified")
	return ok, nil
}

// publicInputCommitment computes gammaABC[0] + sum_i inputs[i]*gammaABC[i+1].
func publicInputCommitment(gammaABC []types.G1Affine, inputs []types.Fr) (bn254.G1Affine, error) {
	var accJac bn254.G1Jac
	first := gammaABC[0].G1()
	if len(inputs) == 0 {
		accJac.FromAffine(&first)
	} else {
		basis := make([]bn254.G1Affine, len(inputs))
		scalars := make([]fr.Element, len(inputs))
		for i := range inputs {
			basis[i] = gammaABC[i+1].G1()
			scalars[i] = inputs[i].Element()
		}
		if _, err := accJac.MultiExp(basis, scalars, ecc.MultiExpConfig{}); err != nil {
			return bn254.G1Affine{}, errors.Wrap(err, "public input commitment")
		}
		accJac.AddMixed(&first)
	}
	var acc bn254.G1Affine
	acc.FromJacobian(&accJac)
	return acc, nil
}

// fixedQMillerLoop evaluates the (acc, -gamma) and (C, -delta) factors from
// the prepared line tables. A prepared point at infinity contributes the
// identity, matching the filtering the library applies to fresh pairs.
func fixedQMillerLoop(pvk *types.PreparedVerifyingKey, acc bn254.G1Affine, proof *types.Proof) (bn254.GT, error) {
	var one bn254.GT
	one.SetOne()

	points := make([]bn254.G1Affine, 0, 2)
	tables := make([]types.LineTable, 0, 2)
	if !pvk.GammaG2NegPC.Infinity {
		lines, err := pvk.GammaG2NegPC.Lines()
		if err != nil {
			return one, errors.Wrap(err, "gamma lines")
		}
		points = append(points, acc)
		tables = append(tables, lines)
	}
	if !pvk.DeltaG2NegPC.Infinity {
		lines, err := pvk.DeltaG2NegPC.Lines()
		if err != nil {
			return one, errors.Wrap(err, "delta lines")
		}
		points = append(points, proof.C.G1())
		tables = append(tables, lines)
	}
	if len(points) == 0 {
		return one, nil
	}
	ml, err := bn254.MillerLoopFixedQ(points, tables)
	if err != nil {
		return one, errors.Wrap(err, "miller loop (fixed)")
	}
	return ml, nil
}
