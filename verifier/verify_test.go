package verifier

import (
	"bytes"
	"os"
	"testing"

	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/Electron-Labs/groth16-verifier/circom"
	"github.com/Electron-Labs/groth16-verifier/types"
)

const testDataDir = "../test_data/"

func readTestFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(testDataDir + name)
	require.NoError(t, err)
	return data
}

func loadVerifyingKey(t *testing.T) *types.VerifyingKey {
	t.Helper()
	parsed, err := circom.ParseVerificationKey(readTestFile(t, "verification_key.json"))
	require.NoError(t, err)
	vk, err := parsed.VerifyingKey()
	require.NoError(t, err)
	return vk
}

func loadProof(t *testing.T) *types.Proof {
	t.Helper()
	parsed, err := circom.ParseProof(readTestFile(t, "proof.json"))
	require.NoError(t, err)
	proof, err := parsed.Proof()
	require.NoError(t, err)
	return proof
}

func loadPublicInputs(t *testing.T) []types.Fr {
	t.Helper()
	raw, err := circom.ParsePublicInputs(readTestFile(t, "public_inputs.json"))
	require.NoError(t, err)
	inputs, err := circom.PublicInputs(raw)
	require.NoError(t, err)
	return inputs
}

func loadPreparedKey(t *testing.T) *types.PreparedVerifyingKey {
	t.Helper()
	pvk, err := Prepare(loadVerifyingKey(t))
	require.NoError(t, err)
	return pvk
}

func TestVerifyValidProof(t *testing.T) {
	pvk := loadPreparedKey(t)
	proof := loadProof(t)
	inputs := loadPublicInputs(t)
	require.Len(t, inputs, 21)

	ok, err := Verify(pvk, proof, inputs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyTamperedProof(t *testing.T) {
	pvk := loadPreparedKey(t)
	inputs := loadPublicInputs(t)

	tamper := map[string]func(*types.Proof){
		"a": func(p *types.Proof) { p.A.X[0] ^= 1 },
		"b": func(p *types.Proof) { p.B.Y.C1[2] ^= 1 },
		"c": func(p *types.Proof) { p.C.Y[3] ^= 1 },
	}
	for name, mutate := range tamper {
		proof := loadProof(t)
		mutate(proof)
		ok, err := Verify(pvk, proof, inputs)
		require.NoError(t, err, name)
		require.False(t, ok, name)
	}
}

func TestVerifyTamperedPublicInput(t *testing.T) {
	pvk := loadPreparedKey(t)
	proof := loadProof(t)
	inputs := loadPublicInputs(t)

	var one fr_bn254.Element
	one.SetOne()
	e := inputs[1].Element()
	e.Add(&e, &one)
	inputs[1] = types.FrFromElement(&e)

	ok, err := Verify(pvk, proof, inputs)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyWrongKey(t *testing.T) {
	vk := loadVerifyingKey(t)
	// swap gamma and delta so the key no longer matches the proof
	vk.GammaG2, vk.DeltaG2 = vk.DeltaG2, vk.GammaG2
	pvk, err := Prepare(vk)
	require.NoError(t, err)

	ok, err := Verify(pvk, loadProof(t), loadPublicInputs(t))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyInputCountMismatch(t *testing.T) {
	pvk := loadPreparedKey(t)
	proof := loadProof(t)
	inputs := loadPublicInputs(t)

	for name, bad := range map[string][]types.Fr{
		"empty":     nil,
		"short":     inputs[:20],
		"oversized": append(append([]types.Fr{}, inputs...), types.Fr{}),
	} {
		_, err := Verify(pvk, proof, bad)
		require.ErrorIs(t, err, ErrPublicInputCountMismatch, name)
	}
}

func TestPrepareDeterministic(t *testing.T) {
	vk := loadVerifyingKey(t)
	first, err := Prepare(vk)
	require.NoError(t, err)
	second, err := Prepare(vk)
	require.NoError(t, err)

	var bufFirst, bufSecond bytes.Buffer
	_, err = first.WriteTo(&bufFirst)
	require.NoError(t, err)
	_, err = second.WriteTo(&bufSecond)
	require.NoError(t, err)
	require.Equal(t, bufFirst.Bytes(), bufSecond.Bytes())
}

func TestPrepareKeepsKeyMaterial(t *testing.T) {
	vk := loadVerifyingKey(t)
	pvk, err := Prepare(vk)
	require.NoError(t, err)

	require.Equal(t, vk.AlphaG1, pvk.VK.AlphaG1)
	require.Equal(t, vk.BetaG2, pvk.VK.BetaG2)
	require.Equal(t, vk.GammaABCG1, pvk.VK.GammaABCG1)
	require.False(t, pvk.GammaG2NegPC.Infinity)
	require.False(t, pvk.DeltaG2NegPC.Infinity)
	require.NotEmpty(t, pvk.GammaG2NegPC.EllCoeffs)
}

func TestVerifyAfterPersistence(t *testing.T) {
	pvk := loadPreparedKey(t)

	var buf bytes.Buffer
	_, err := pvk.WriteTo(&buf)
	require.NoError(t, err)

	var restored types.PreparedVerifyingKey
	_, err = restored.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, *pvk, restored)

	ok, err := Verify(&restored, loadProof(t), loadPublicInputs(t))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestVerifyAgainstGnark checks the pairing equation against the gnark
// backend verifier on the same artifacts.
func TestVerifyAgainstGnark(t *testing.T) {
	parsedVK, err := circom.ParseVerificationKey(readTestFile(t, "verification_key.json"))
	require.NoError(t, err)
	gnarkVK, err := parsedVK.Groth16VK()
	require.NoError(t, err)

	parsedProof, err := circom.ParseProof(readTestFile(t, "proof.json"))
	require.NoError(t, err)
	gnarkProof, err := parsedProof.Groth16Proof()
	require.NoError(t, err)

	inputs := loadPublicInputs(t)
	witness := make(fr_bn254.Vector, len(inputs))
	for i := range inputs {
		witness[i] = inputs[i].Element()
	}

	require.NoError(t, groth16_bn254.Verify(gnarkProof, gnarkVK, witness))
}

func TestVKFingerprint(t *testing.T) {
	vk := loadVerifyingKey(t)
	first, err := VKFingerprint(vk)
	require.NoError(t, err)
	require.Len(t, first, 32)

	second, err := VKFingerprint(vk)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// swapping gamma and delta changes the consumed key material
	other := *vk
	other.GammaG2, other.DeltaG2 = other.DeltaG2, other.GammaG2
	changed, err := VKFingerprint(&other)
	require.NoError(t, err)
	require.NotEqual(t, first, changed)
}
