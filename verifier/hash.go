package verifier

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/Electron-Labs/groth16-verifier/types"
)

// VKFingerprint returns the keccak-256 digest of the key material the
// pairing check actually consumes: e(alpha, beta), the IC points, and the
// negations of gamma and delta. Two keys verify the same proofs iff their
// fingerprints match, which makes the digest a stable identifier for a key
// across upload and verify call boundaries.
func VKFingerprint(vk *types.VerifyingKey) ([]byte, error) {
	alpha := vk.AlphaG1.G1()
	beta := vk.BetaG2.G2()
	e, err := bn254.Pair([]bn254.G1Affine{alpha}, []bn254.G2Affine{beta})
	if err != nil {
		return nil, errors.Wrap(err, "pairing alpha*beta")
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(e.Marshal())
	for i := range vk.GammaABCG1 {
		p := vk.GammaABCG1[i].G1()
		h.Write(p.Marshal())
	}
	gammaNeg := vk.GammaG2.G2()
	gammaNeg.Neg(&gammaNeg)
	h.Write(gammaNeg.Marshal())
	deltaNeg := vk.DeltaG2.G2()
	deltaNeg.Neg(&deltaNeg)
	h.Write(deltaNeg.Marshal())

	return h.Sum(nil), nil
}
