package types

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Binary layout: uint64 limbs little-endian, components in declaration order
// (c0 before c1 before c2, x before y), the infinity flag as a single byte
// (0 or 1), and uint32 little-endian length prefixes for the two variable
// length sequences. There is no version byte; the format is fixed.

var (
	// ErrTruncatedInput reports an encoding shorter than its type requires.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidDiscriminant reports a flag byte outside {0, 1}.
	ErrInvalidDiscriminant = errors.New("invalid discriminant")
)

type encoder struct {
	w   io.Writer
	n   int64
	err error
	buf [8]byte
}

func (e *encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	n, err := e.w.Write(b)
	e.n += int64(n)
	e.err = err
}

func (e *encoder) u64(v uint64) {
	binary.LittleEndian.PutUint64(e.buf[:8], v)
	e.write(e.buf[:8])
}

func (e *encoder) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.buf[:4], v)
	e.write(e.buf[:4])
}

func (e *encoder) flag(b bool) {
	e.buf[0] = 0
	if b {
		e.buf[0] = 1
	}
	e.write(e.buf[:1])
}

type decoder struct {
	r   io.Reader
	n   int64
	err error
	buf [8]byte
}

func (d *decoder) read(b []byte) bool {
	if d.err != nil {
		return false
	}
	n, err := io.ReadFull(d.r, b)
	d.n += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = errors.Wrapf(ErrTruncatedInput, "at byte %d", d.n)
		}
		d.err = err
		return false
	}
	return true
}

func (d *decoder) u64() uint64 {
	if !d.read(d.buf[:8]) {
		return 0
	}
	return binary.LittleEndian.Uint64(d.buf[:8])
}

func (d *decoder) u32() uint32 {
	if !d.read(d.buf[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(d.buf[:4])
}

func (d *decoder) flag() bool {
	if !d.read(d.buf[:1]) {
		return false
	}
	switch d.buf[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		d.err = errors.Wrapf(ErrInvalidDiscriminant, "flag byte 0x%02x at byte %d", d.buf[0], d.n-1)
		return false
	}
}

func (e *encoder) fq(z *Fq) {
	for i := range z {
		e.u64(z[i])
	}
}

func (d *decoder) fq(z *Fq) {
	for i := range z {
		z[i] = d.u64()
	}
}

func (e *encoder) fr(z *Fr) {
	for i := range z {
		e.u64(z[i])
	}
}

func (d *decoder) fr(z *Fr) {
	for i := range z {
		z[i] = d.u64()
	}
}

func (e *encoder) fq2(z *Fq2) {
	e.fq(&z.C0)
	e.fq(&z.C1)
}

func (d *decoder) fq2(z *Fq2) {
	d.fq(&z.C0)
	d.fq(&z.C1)
}

func (e *encoder) fq6(z *Fq6) {
	e.fq2(&z.C0)
	e.fq2(&z.C1)
	e.fq2(&z.C2)
}

func (d *decoder) fq6(z *Fq6) {
	d.fq2(&z.C0)
	d.fq2(&z.C1)
	d.fq2(&z.C2)
}

func (e *encoder) fq12(z *Fq12) {
	e.fq6(&z.C0)
	e.fq6(&z.C1)
}

func (d *decoder) fq12(z *Fq12) {
	d.fq6(&z.C0)
	d.fq6(&z.C1)
}

func (e *encoder) g1(z *G1Affine) {
	e.fq(&z.X)
	e.fq(&z.Y)
	e.flag(z.Infinity)
}

func (d *decoder) g1(z *G1Affine) {
	d.fq(&z.X)
	d.fq(&z.Y)
	z.Infinity = d.flag()
}

func (e *encoder) g2(z *G2Affine) {
	e.fq2(&z.X)
	e.fq2(&z.Y)
	e.flag(z.Infinity)
}

func (d *decoder) g2(z *G2Affine) {
	d.fq2(&z.X)
	d.fq2(&z.Y)
	z.Infinity = d.flag()
}

func (e *encoder) line(z *LineEvaluation) {
	e.fq2(&z.R0)
	e.fq2(&z.R1)
}

func (d *decoder) line(z *LineEvaluation) {
	d.fq2(&z.R0)
	d.fq2(&z.R1)
}

func (e *encoder) g2Prepared(z *G2Prepared) {
	e.u32(uint32(len(z.EllCoeffs)))
	for i := range z.EllCoeffs {
		e.line(&z.EllCoeffs[i])
	}
	e.flag(z.Infinity)
}

func (d *decoder) g2Prepared(z *G2Prepared) {
	count := d.u32()
	var coeffs []LineEvaluation
	for i := uint32(0); i < count && d.err == nil; i++ {
		var c LineEvaluation
		d.line(&c)
		coeffs = append(coeffs, c)
	}
	z.EllCoeffs = coeffs
	z.Infinity = d.flag()
}

func (e *encoder) vk(z *VerifyingKey) {
	e.g1(&z.AlphaG1)
	e.g2(&z.BetaG2)
	e.g2(&z.GammaG2)
	e.g2(&z.DeltaG2)
	e.u32(uint32(len(z.GammaABCG1)))
	for i := range z.GammaABCG1 {
		e.g1(&z.GammaABCG1[i])
	}
}

func (d *decoder) vk(z *VerifyingKey) {
	d.g1(&z.AlphaG1)
	d.g2(&z.BetaG2)
	d.g2(&z.GammaG2)
	d.g2(&z.DeltaG2)
	count := d.u32()
	var points []G1Affine
	for i := uint32(0); i < count && d.err == nil; i++ {
		var p G1Affine
		d.g1(&p)
		points = append(points, p)
	}
	z.GammaABCG1 = points
}

func (e *encoder) pvk(z *PreparedVerifyingKey) {
	e.vk(&z.VK)
	e.fq12(&z.AlphaG1BetaG2)
	e.g2Prepared(&z.GammaG2NegPC)
	e.g2Prepared(&z.DeltaG2NegPC)
}

func (d *decoder) pvk(z *PreparedVerifyingKey) {
	d.vk(&z.VK)
	d.fq12(&z.AlphaG1BetaG2)
	d.g2Prepared(&z.GammaG2NegPC)
	d.g2Prepared(&z.DeltaG2NegPC)
}

func (e *encoder) proof(z *Proof) {
	e.g1(&z.A)
	e.g2(&z.B)
	e.g1(&z.C)
}

func (d *decoder) proof(z *Proof) {
	d.g1(&z.A)
	d.g2(&z.B)
	d.g1(&z.C)
}

func (z *Fq) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.fq(z)
	return e.n, e.err
}

func (z *Fq) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.fq(z)
	return d.n, d.err
}

func (z *Fr) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.fr(z)
	return e.n, e.err
}

func (z *Fr) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.fr(z)
	return d.n, d.err
}

func (z *Fq2) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.fq2(z)
	return e.n, e.err
}

func (z *Fq2) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.fq2(z)
	return d.n, d.err
}

func (z *Fq6) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.fq6(z)
	return e.n, e.err
}

func (z *Fq6) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.fq6(z)
	return d.n, d.err
}

func (z *Fq12) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.fq12(z)
	return e.n, e.err
}

func (z *Fq12) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.fq12(z)
	return d.n, d.err
}

func (z *G1Affine) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.g1(z)
	return e.n, e.err
}

func (z *G1Affine) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.g1(z)
	return d.n, d.err
}

func (z *G2Affine) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.g2(z)
	return e.n, e.err
}

func (z *G2Affine) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.g2(z)
	return d.n, d.err
}

func (z *G2Prepared) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.g2Prepared(z)
	return e.n, e.err
}

func (z *G2Prepared) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.g2Prepared(z)
	return d.n, d.err
}

func (z *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.vk(z)
	return e.n, e.err
}

func (z *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.vk(z)
	return d.n, d.err
}

func (z *PreparedVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.pvk(z)
	return e.n, e.err
}

func (z *PreparedVerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.pvk(z)
	return d.n, d.err
}

func (z *Proof) WriteTo(w io.Writer) (int64, error) {
	e := encoder{w: w}
	e.proof(z)
	return e.n, e.err
}

func (z *Proof) ReadFrom(r io.Reader) (int64, error) {
	d := decoder{r: r}
	d.proof(z)
	return d.n, d.err
}
