// Package types defines the canonical fixed-width representation of every
// BN254 value the verifier persists or exchanges: field elements as raw
// Montgomery limbs, affine curve points, precomputed Miller-loop lines and
// the Groth16 key material built from them.
//
// Each type has exactly one binary form and converts losslessly to and from
// the corresponding gnark-crypto type. Values are never mutated in place;
// every conversion returns a fresh value.
package types

// Fq is a base-field element, stored as the four little-endian uint64 limbs
// of its Montgomery residue, exactly as the arithmetic library keeps it.
// Two Fq values are equal iff they represent the same field element.
type Fq [4]uint64

// Fr is a scalar-field element, same limb layout as Fq but reduced modulo
// the scalar-field order. Used for public inputs.
type Fr [4]uint64

// Fq2 is c0 + c1*u over the quadratic non-residue.
type Fq2 struct {
	C0 Fq
	C1 Fq
}

// Fq6 is a cubic extension over Fq2.
type Fq6 struct {
	C0 Fq2
	C1 Fq2
	C2 Fq2
}

// Fq12 is the degree-12 extension, the pairing target group element type.
type Fq12 struct {
	C0 Fq6
	C1 Fq6
}

// G1Affine is an affine point on the base curve. When Infinity is set the
// coordinates are zero and ignored.
type G1Affine struct {
	X        Fq
	Y        Fq
	Infinity bool
}

// G2Affine is an affine point on the twist.
type G2Affine struct {
	X        Fq2
	Y        Fq2
	Infinity bool
}

// LineEvaluation holds one Miller-loop line in the affine two-coefficient
// form used by the arithmetic library: 1 + R0*(x/y) + R1*(1/y).
type LineEvaluation struct {
	R0 Fq2
	R1 Fq2
}

// G2Prepared is the full precomputed line table for one fixed G2 point,
// flattened row 0 then row 1 of the library's two-row layout. It is derived
// once from a G2Affine and never mutated afterwards.
type G2Prepared struct {
	EllCoeffs []LineEvaluation
	Infinity  bool
}

// VerifyingKey is a raw Groth16 verifying key. GammaABCG1 has one point per
// public input plus the constant term.
type VerifyingKey struct {
	AlphaG1    G1Affine
	BetaG2     G2Affine
	GammaG2    G2Affine
	DeltaG2    G2Affine
	GammaABCG1 []G1Affine
}

// PreparedVerifyingKey carries a verifying key together with the three
// quantities that depend only on the key: the pairing of alpha and beta and
// the precomputed line tables for the negations of gamma and delta. Prepared
// once per key upload, then read-only across all verifications.
type PreparedVerifyingKey struct {
	VK            VerifyingKey
	AlphaG1BetaG2 Fq12
	GammaG2NegPC  G2Prepared
	DeltaG2NegPC  G2Prepared
}

// Proof is a Groth16 proof.
type Proof struct {
	A G1Affine
	B G2Affine
	C G1Affine
}
