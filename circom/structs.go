// Package circom decodes the JSON artifacts emitted by the circom/snarkjs
// toolchain (verification key, proof, public inputs) into the module's
// canonical types.
package circom

// ProofJSON is the snarkjs proof artifact. Coordinates are decimal strings
// in projective form. The curve field is optional in artifacts produced by
// rapidsnark and defaults to empty.
type ProofJSON struct {
	PiA      []string   `json:"pi_a"`
	PiB      [][]string `json:"pi_b"`
	PiC      []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
}

// VerificationKeyJSON is the snarkjs verification key artifact.
// AlphaBeta12 is parsed for schema completeness but never trusted: the
// pairing of alpha and beta is recomputed during key preparation.
type VerificationKeyJSON struct {
	Protocol    string       `json:"protocol"`
	Curve       string       `json:"curve"`
	NPublic     int          `json:"nPublic"`
	AlphaG1     []string     `json:"vk_alpha_1"`
	BetaG2      [][]string   `json:"vk_beta_2"`
	GammaG2     [][]string   `json:"vk_gamma_2"`
	DeltaG2     [][]string   `json:"vk_delta_2"`
	AlphaBeta12 [][][]string `json:"vk_alphabeta_12"`
	IC          [][]string   `json:"IC"`
}
