package circom

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/pkg/errors"

	"github.com/Electron-Labs/groth16-verifier/types"
)

func fqElement(s string) (fp.Element, error) {
	z, err := types.FqFromDecimal(s)
	if err != nil {
		return fp.Element{}, err
	}
	return z.Element(), nil
}

// g1FromProjective normalizes a projective (x, y, z) decimal triple to an
// affine point. z = 0 denotes the point at infinity.
func g1FromProjective(coords []string) (types.G1Affine, error) {
	x, err := fqElement(coords[0])
	if err != nil {
		return types.G1Affine{}, err
	}
	y, err := fqElement(coords[1])
	if err != nil {
		return types.G1Affine{}, err
	}
	z, err := fqElement(coords[2])
	if err != nil {
		return types.G1Affine{}, err
	}
	if z.IsZero() {
		return types.G1Affine{Infinity: true}, nil
	}
	var zInv fp.Element
	zInv.Inverse(&z)
	x.Mul(&x, &zInv)
	y.Mul(&y, &zInv)
	return types.G1Affine{X: types.FqFromElement(&x), Y: types.FqFromElement(&y)}, nil
}

func fq2Element(pair []string) (c0, c1 fp.Element, err error) {
	if c0, err = fqElement(pair[0]); err != nil {
		return
	}
	c1, err = fqElement(pair[1])
	return
}

// g2FromProjective normalizes a projective G2 coordinate triple over Fq2,
// component-wise, the same way as g1FromProjective.
func g2FromProjective(coords [][]string) (types.G2Affine, error) {
	var x, y, z bn254.E2
	var err error
	if x.A0, x.A1, err = fq2Element(coords[0]); err != nil {
		return types.G2Affine{}, err
	}
	if y.A0, y.A1, err = fq2Element(coords[1]); err != nil {
		return types.G2Affine{}, err
	}
	if z.A0, z.A1, err = fq2Element(coords[2]); err != nil {
		return types.G2Affine{}, err
	}
	if z.IsZero() {
		return types.G2Affine{Infinity: true}, nil
	}
	var zInv bn254.E2
	zInv.Inverse(&z)
	x.Mul(&x, &zInv)
	y.Mul(&y, &zInv)
	return types.G2Affine{
		X: types.Fq2FromE2(&x),
		Y: types.Fq2FromE2(&y),
	}, nil
}

// VerifyingKey converts the parsed artifact into typed key material,
// normalizing every point to affine form.
func (vk *VerificationKeyJSON) VerifyingKey() (*types.VerifyingKey, error) {
	alpha, err := g1FromProjective(vk.AlphaG1)
	if err != nil {
		return nil, errors.Wrap(err, "vk_alpha_1")
	}
	beta, err := g2FromProjective(vk.BetaG2)
	if err != nil {
		return nil, errors.Wrap(err, "vk_beta_2")
	}
	gamma, err := g2FromProjective(vk.GammaG2)
	if err != nil {
		return nil, errors.Wrap(err, "vk_gamma_2")
	}
	delta, err := g2FromProjective(vk.DeltaG2)
	if err != nil {
		return nil, errors.Wrap(err, "vk_delta_2")
	}
	ic := make([]types.G1Affine, len(vk.IC))
	for i, coords := range vk.IC {
		if ic[i], err = g1FromProjective(coords); err != nil {
			return nil, errors.Wrapf(err, "IC[%d]", i)
		}
	}
	return &types.VerifyingKey{
		AlphaG1:    alpha,
		BetaG2:     beta,
		GammaG2:    gamma,
		DeltaG2:    delta,
		GammaABCG1: ic,
	}, nil
}

// Proof converts the parsed artifact into a typed proof.
func (p *ProofJSON) Proof() (*types.Proof, error) {
	a, err := g1FromProjective(p.PiA)
	if err != nil {
		return nil, errors.Wrap(err, "pi_a")
	}
	b, err := g2FromProjective(p.PiB)
	if err != nil {
		return nil, errors.Wrap(err, "pi_b")
	}
	c, err := g1FromProjective(p.PiC)
	if err != nil {
		return nil, errors.Wrap(err, "pi_c")
	}
	return &types.Proof{A: a, B: b, C: c}, nil
}

// PublicInputs converts decimal strings into scalar-field elements.
func PublicInputs(inputs []string) ([]types.Fr, error) {
	out := make([]types.Fr, len(inputs))
	for i, s := range inputs {
		v, err := types.FrFromDecimal(s)
		if err != nil {
			return nil, errors.Wrapf(err, "public input %d", i)
		}
		out[i] = v
	}
	return out, nil
}
