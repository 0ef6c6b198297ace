package circom

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrSchema reports a JSON artifact whose shape does not match the snarkjs
// format: a missing required field, a wrong arity, or an IC length that
// disagrees with nPublic.
var ErrSchema = errors.New("invalid artifact schema")

// ParseVerificationKey decodes and shape-checks a snarkjs verification key.
// The protocol and curve string values are recorded as-is and not enforced;
// callers wanting strict groth16/bn128 enforcement check the fields
// themselves.
func ParseVerificationKey(data []byte) (*VerificationKeyJSON, error) {
	var vk VerificationKeyJSON
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, errors.Wrap(ErrSchema, err.Error())
	}
	if err := vk.validate(); err != nil {
		return nil, err
	}
	return &vk, nil
}

func (vk *VerificationKeyJSON) validate() error {
	if vk.Protocol == "" {
		return errors.Wrap(ErrSchema, "missing protocol")
	}
	if vk.Curve == "" {
		return errors.Wrap(ErrSchema, "missing curve")
	}
	if len(vk.AlphaG1) != 3 {
		return errors.Wrapf(ErrSchema, "vk_alpha_1 has %d coordinates, want 3", len(vk.AlphaG1))
	}
	for _, f := range []struct {
		name  string
		point [][]string
	}{
		{"vk_beta_2", vk.BetaG2},
		{"vk_gamma_2", vk.GammaG2},
		{"vk_delta_2", vk.DeltaG2},
	} {
		if err := checkG2Shape(f.name, f.point); err != nil {
			return err
		}
	}
	if len(vk.IC) != vk.NPublic+1 {
		return errors.Wrapf(ErrSchema, "IC has %d points for nPublic %d, want %d", len(vk.IC), vk.NPublic, vk.NPublic+1)
	}
	for i, p := range vk.IC {
		if len(p) != 3 {
			return errors.Wrapf(ErrSchema, "IC[%d] has %d coordinates, want 3", i, len(p))
		}
	}
	return nil
}

func checkG2Shape(name string, point [][]string) error {
	if len(point) != 3 {
		return errors.Wrapf(ErrSchema, "%s has %d coordinates, want 3", name, len(point))
	}
	for i, c := range point {
		if len(c) != 2 {
			return errors.Wrapf(ErrSchema, "%s[%d] has %d components, want 2", name, i, len(c))
		}
	}
	return nil
}

// ParseProof decodes and shape-checks a snarkjs proof.
func ParseProof(data []byte) (*ProofJSON, error) {
	var proof ProofJSON
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, errors.Wrap(ErrSchema, err.Error())
	}
	if proof.Protocol == "" {
		return nil, errors.Wrap(ErrSchema, "missing protocol")
	}
	if len(proof.PiA) != 3 {
		return nil, errors.Wrapf(ErrSchema, "pi_a has %d coordinates, want 3", len(proof.PiA))
	}
	if err := checkG2Shape("pi_b", proof.PiB); err != nil {
		return nil, err
	}
	if len(proof.PiC) != 3 {
		return nil, errors.Wrapf(ErrSchema, "pi_c has %d coordinates, want 3", len(proof.PiC))
	}
	return &proof, nil
}

// ParsePublicInputs decodes a flat JSON array of decimal strings. The values
// themselves are validated when converted to scalar-field elements.
func ParsePublicInputs(data []byte) ([]string, error) {
	var inputs []string
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, errors.Wrap(ErrSchema, err.Error())
	}
	// a JSON null unmarshals into a nil slice without error
	if inputs == nil {
		return nil, errors.Wrap(ErrSchema, "public inputs are not an array")
	}
	return inputs, nil
}
