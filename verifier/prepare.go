// Package verifier implements Groth16 proof verification over BN254 against
// prepared verifying keys, with the pairing-dependent parts of the key
// precomputed once and reused across calls.
package verifier

import (
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/Electron-Labs/groth16-verifier/types"
)

// Prepare derives the proof-independent part of every future pairing check:
// e(alpha, beta) in full, and the Miller-loop line tables for -gamma and
// -delta so each verification needs only one fresh Miller loop.
func Prepare(vk *types.VerifyingKey) (*types.PreparedVerifyingKey, error) {
	log := logger.Logger().With().Str("curve", "bn254").Logger()
	start := time.Now()

	alpha := vk.AlphaG1.G1()
	beta := vk.BetaG2.G2()
	e, err := bn254.Pair([]bn254.G1Affine{alpha}, []bn254.G2Affine{beta})
	if err != nil {
		return nil, errors.Wrap(err, "pairing alpha*beta")
	}

	ic := make([]types.G1Affine, len(vk.GammaABCG1))
	copy(ic, vk.GammaABCG1)

	pvk := &types.PreparedVerifyingKey{
		VK: types.VerifyingKey{
			AlphaG1:    vk.AlphaG1,
			BetaG2:     vk.BetaG2,
			GammaG2:    vk.GammaG2,
			DeltaG2:    vk.DeltaG2,
			GammaABCG1: ic,
		},
		AlphaG1BetaG2: types.Fq12FromE12(&e),
		GammaG2NegPC:  precomputeNegLines(&vk.GammaG2),
		DeltaG2NegPC:  precomputeNegLines(&vk.DeltaG2),
	}

	log.Debug().Dur("took", time.Since(start)).Msg("verifying key prepared")
	return pvk, nil
}

func precomputeNegLines(q *types.G2Affine) types.G2Prepared {
	if q.Infinity {
		return types.G2Prepared{Infinity: true}
	}
	neg := q.G2()
	neg.Neg(&neg)
	lines := bn254.PrecomputeLines(neg)
	return types.G2PreparedFromLines(&lines)
}
