package types

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// LineTable is the fixed-Q line layout consumed by the arithmetic library's
// Miller loop.
type LineTable = [2][len(bn254.LoopCounter)]bn254.LineEvaluationAff

// lineRows is the total number of lines in one table once flattened.
const lineRows = 2

// FqFromElement wraps a base-field element without changing its limbs.
func FqFromElement(e *fp.Element) Fq {
	return Fq(*e)
}

// Element returns the arithmetic-library form of z.
func (z Fq) Element() fp.Element {
	return fp.Element(z)
}

// FrFromElement wraps a scalar-field element without changing its limbs.
func FrFromElement(e *fr.Element) Fr {
	return Fr(*e)
}

// Element returns the arithmetic-library form of z.
func (z Fr) Element() fr.Element {
	return fr.Element(z)
}

func Fq2FromE2(e *bn254.E2) Fq2 {
	return Fq2{C0: Fq(e.A0), C1: Fq(e.A1)}
}

func (z Fq2) E2() bn254.E2 {
	return bn254.E2{A0: fp.Element(z.C0), A1: fp.Element(z.C1)}
}

func Fq6FromE6(e *bn254.E6) Fq6 {
	return Fq6{C0: Fq2FromE2(&e.B0), C1: Fq2FromE2(&e.B1), C2: Fq2FromE2(&e.B2)}
}

func (z Fq6) E6() bn254.E6 {
	return bn254.E6{B0: z.C0.E2(), B1: z.C1.E2(), B2: z.C2.E2()}
}

func Fq12FromE12(e *bn254.E12) Fq12 {
	return Fq12{C0: Fq6FromE6(&e.C0), C1: Fq6FromE6(&e.C1)}
}

func (z Fq12) E12() bn254.E12 {
	return bn254.E12{C0: z.C0.E6(), C1: z.C1.E6()}
}

// FromG1Affine converts a curve point into its canonical form. The point at
// infinity maps to zero coordinates with the flag set.
func FromG1Affine(p *bn254.G1Affine) G1Affine {
	if p.IsInfinity() {
		return G1Affine{Infinity: true}
	}
	return G1Affine{X: Fq(p.X), Y: Fq(p.Y)}
}

// G1 returns the arithmetic-library form of z.
func (z G1Affine) G1() bn254.G1Affine {
	if z.Infinity {
		return bn254.G1Affine{}
	}
	return bn254.G1Affine{X: fp.Element(z.X), Y: fp.Element(z.Y)}
}

// FromG2Affine converts a twist point into its canonical form.
func FromG2Affine(p *bn254.G2Affine) G2Affine {
	if p.IsInfinity() {
		return G2Affine{Infinity: true}
	}
	return G2Affine{X: Fq2FromE2(&p.X), Y: Fq2FromE2(&p.Y)}
}

// G2 returns the arithmetic-library form of z.
func (z G2Affine) G2() bn254.G2Affine {
	if z.Infinity {
		return bn254.G2Affine{}
	}
	return bn254.G2Affine{X: z.X.E2(), Y: z.Y.E2()}
}

// G2PreparedFromLines flattens a precomputed line table, row 0 first.
func G2PreparedFromLines(lines *LineTable) G2Prepared {
	coeffs := make([]LineEvaluation, 0, lineRows*len(lines[0]))
	for row := 0; row < lineRows; row++ {
		for j := range lines[row] {
			coeffs = append(coeffs, LineEvaluation{
				R0: Fq2FromE2(&lines[row][j].R0),
				R1: Fq2FromE2(&lines[row][j].R1),
			})
		}
	}
	return G2Prepared{EllCoeffs: coeffs}
}

// Lines rebuilds the arithmetic-library line table. It fails if the
// coefficient count does not match the library's fixed Miller-loop length,
// which can only happen on a corrupted or foreign encoding.
func (z G2Prepared) Lines() (LineTable, error) {
	var table LineTable
	if z.Infinity {
		return table, errors.New("no line table for the point at infinity")
	}
	perRow := len(table[0])
	if len(z.EllCoeffs) != lineRows*perRow {
		return table, errors.Errorf("unexpected line coefficient count %d, want %d", len(z.EllCoeffs), lineRows*perRow)
	}
	for row := 0; row < lineRows; row++ {
		for j := 0; j < perRow; j++ {
			c := z.EllCoeffs[row*perRow+j]
			table[row][j] = bn254.LineEvaluationAff{R0: c.R0.E2(), R1: c.R1.E2()}
		}
	}
	return table, nil
}
