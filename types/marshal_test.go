package types

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func sampleG1(t *testing.T) G1Affine {
	t.Helper()
	_, _, g1, _ := bn254.Generators()
	return FromG1Affine(&g1)
}

func sampleG2(t *testing.T) G2Affine {
	t.Helper()
	_, _, _, g2 := bn254.Generators()
	return FromG2Affine(&g2)
}

func samplePrepared(t *testing.T) G2Prepared {
	t.Helper()
	_, _, _, g2 := bn254.Generators()
	lines := bn254.PrecomputeLines(g2)
	return G2PreparedFromLines(&lines)
}

func sampleVK(t *testing.T) VerifyingKey {
	t.Helper()
	g2 := sampleG2(t)
	return VerifyingKey{
		AlphaG1:    sampleG1(t),
		BetaG2:     g2,
		GammaG2:    g2,
		DeltaG2:    g2,
		GammaABCG1: []G1Affine{sampleG1(t), sampleG1(t), {Infinity: true}},
	}
}

func samplePVK(t *testing.T) PreparedVerifyingKey {
	t.Helper()
	vk := sampleVK(t)
	alpha := vk.AlphaG1.G1()
	beta := vk.BetaG2.G2()
	e, err := bn254.Pair([]bn254.G1Affine{alpha}, []bn254.G2Affine{beta})
	require.NoError(t, err)
	return PreparedVerifyingKey{
		VK:            vk,
		AlphaG1BetaG2: Fq12FromE12(&e),
		GammaG2NegPC:  samplePrepared(t),
		DeltaG2NegPC:  samplePrepared(t),
	}
}

func encode(t *testing.T, write func(*bytes.Buffer) (int64, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	n, err := write(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	return buf.Bytes()
}

func TestFieldElementRoundTrip(t *testing.T) {
	fq, err := FqFromDecimal("123456789123456789")
	require.NoError(t, err)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return fq.WriteTo(b) })
	require.Len(t, data, 32)

	var back Fq
	n, err := back.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int64(32), n)
	require.Equal(t, fq, back)

	fr, err := FrFromDecimal("987654321")
	require.NoError(t, err)
	data = encode(t, func(b *bytes.Buffer) (int64, error) { return fr.WriteTo(b) })
	var backFr Fr
	_, err = backFr.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, fr, backFr)
}

func TestPointRoundTrip(t *testing.T) {
	g1 := sampleG1(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return g1.WriteTo(b) })
	require.Len(t, data, 65)
	var backG1 G1Affine
	_, err := backG1.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, g1, backG1)

	inf := G1Affine{Infinity: true}
	data = encode(t, func(b *bytes.Buffer) (int64, error) { return inf.WriteTo(b) })
	var backInf G1Affine
	_, err = backInf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, inf, backInf)

	g2 := sampleG2(t)
	data = encode(t, func(b *bytes.Buffer) (int64, error) { return g2.WriteTo(b) })
	require.Len(t, data, 129)
	var backG2 G2Affine
	_, err = backG2.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, g2, backG2)
}

func TestG2PreparedRoundTrip(t *testing.T) {
	prep := samplePrepared(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return prep.WriteTo(b) })

	var back G2Prepared
	n, err := back.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, prep, back)

	// the decoded table must still be consumable by the pairing path
	_, err = back.Lines()
	require.NoError(t, err)
}

func TestVerifyingKeyRoundTrip(t *testing.T) {
	vk := sampleVK(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return vk.WriteTo(b) })

	var back VerifyingKey
	_, err := back.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, vk, back)
}

func TestPreparedVerifyingKeyRoundTrip(t *testing.T) {
	pvk := samplePVK(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return pvk.WriteTo(b) })

	var back PreparedVerifyingKey
	n, err := back.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, pvk, back)
}

func TestProofRoundTrip(t *testing.T) {
	proof := Proof{A: sampleG1(t), B: sampleG2(t), C: sampleG1(t)}
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return proof.WriteTo(b) })
	require.Len(t, data, 65+129+65)

	var back Proof
	_, err := back.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, proof, back)
}

func TestReadFromTruncated(t *testing.T) {
	pvk := samplePVK(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return pvk.WriteTo(b) })

	for _, cut := range []int{0, 1, 31, 32, 65, len(data) / 2, len(data) - 1} {
		var back PreparedVerifyingKey
		_, err := back.ReadFrom(bytes.NewReader(data[:cut]))
		require.ErrorIs(t, err, ErrTruncatedInput, "cut at %d", cut)
	}

	var fq Fq
	_, err := fq.ReadFrom(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestReadFromInvalidDiscriminant(t *testing.T) {
	g1 := sampleG1(t)
	data := encode(t, func(b *bytes.Buffer) (int64, error) { return g1.WriteTo(b) })
	data[len(data)-1] = 2

	var back G1Affine
	_, err := back.ReadFrom(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidDiscriminant)

	g2 := sampleG2(t)
	data = encode(t, func(b *bytes.Buffer) (int64, error) { return g2.WriteTo(b) })
	data[len(data)-1] = 0xff

	var backG2 G2Affine
	_, err = backG2.ReadFrom(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrInvalidDiscriminant)
}

func TestLinesRejectsBadTables(t *testing.T) {
	_, err := G2Prepared{Infinity: true}.Lines()
	require.Error(t, err)

	_, err = G2Prepared{EllCoeffs: make([]LineEvaluation, 3)}.Lines()
	require.Error(t, err)
}
