package types

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// ErrMalformedNumber reports a decimal literal that is not a plain
// non-negative base-10 integer. Signs, whitespace and empty strings are all
// rejected.
var ErrMalformedNumber = errors.New("malformed decimal number")

func parseDecimal(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, errors.Wrap(ErrMalformedNumber, "empty string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrMalformedNumber, "%q", s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedNumber, "%q", s)
	}
	return n, nil
}

// FqFromDecimal interprets s as a non-negative base-10 integer and reduces
// it modulo the base-field modulus.
func FqFromDecimal(s string) (Fq, error) {
	n, err := parseDecimal(s)
	if err != nil {
		return Fq{}, err
	}
	var e fp.Element
	e.SetBigInt(n)
	return Fq(e), nil
}

// FrFromDecimal interprets s as a non-negative base-10 integer and reduces
// it modulo the scalar-field modulus.
func FrFromDecimal(s string) (Fr, error) {
	n, err := parseDecimal(s)
	if err != nil {
		return Fr{}, err
	}
	var e fr.Element
	e.SetBigInt(n)
	return Fr(e), nil
}

// String returns the unique decimal representative in [0, modulus), without
// leading zeros. Diagnostics only; the verification path never needs it.
func (z Fq) String() string {
	e := fp.Element(z)
	return e.String()
}

func (z Fr) String() string {
	e := fr.Element(z)
	return e.String()
}
