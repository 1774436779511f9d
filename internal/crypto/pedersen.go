// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"math/big"

	"github.com/MKhiriev/go-custody/models"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Pedersen commitments over the BN254 G1 group:
//
//	C = v·G + r·H
//
// G is the standard generator. H is derived by hashing a fixed tag to the
// curve, so nobody knows log_G(H).
const (
	blindingGeneratorMsg = "go-custody blinding generator"
	blindingGeneratorDST = "GO-CUSTODY-V1-BN254G1_XMD:SHA-256_SSWU_RO_"
)

var (
	generatorG bn254.G1Jac
	generatorH bn254.G1Jac
)

func init() {
	generatorG, _, _, _ = bn254.Generators()

	hAff, err := bn254.HashToG1([]byte(blindingGeneratorMsg), []byte(blindingGeneratorDST))
	if err != nil {
		panic("crypto: cannot derive blinding generator: " + err.Error())
	}
	generatorH.FromAffine(&hAff)
}

// Scalar is a serialized element of the BN254 scalar field.
type Scalar [fr.Bytes]byte

// RandomScalar samples a uniformly random scalar.
func RandomScalar() (Scalar, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, ErrRandomness
	}
	return scalarFromElement(&e), nil
}

func scalarFromElement(e *fr.Element) Scalar {
	return Scalar(e.Bytes())
}

func (s Scalar) element() fr.Element {
	var e fr.Element
	e.SetBytes(s[:])
	return e
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(hexEncode(s[:])), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scalar) UnmarshalText(text []byte) error {
	raw, err := hexDecode(string(text), len(s))
	if err != nil {
		return err
	}
	copy(s[:], raw)
	return nil
}

// Commit returns the commitment to value under blinding.
func Commit(value uint64, blinding Scalar) models.Commitment {
	var v fr.Element
	v.SetUint64(value)
	r := blinding.element()
	p := commitPoint(&v, &r)
	return encodePoint(&p)
}

func commitPoint(v, r *fr.Element) bn254.G1Jac {
	p := scalarMul(&generatorG, v)
	rh := scalarMul(&generatorH, r)
	p.AddAssign(&rh)
	return p
}

func scalarMul(base *bn254.G1Jac, s *fr.Element) bn254.G1Jac {
	var k big.Int
	s.BigInt(&k)

	var res bn254.G1Jac
	res.ScalarMultiplication(base, &k)
	return res
}

func encodePoint(p *bn254.G1Jac) models.Commitment {
	var aff bn254.G1Affine
	aff.FromJacobian(p)
	return models.Commitment(aff.Bytes())
}

func decodePoint(c models.Commitment) (bn254.G1Jac, error) {
	var aff bn254.G1Affine
	if _, err := aff.SetBytes(c[:]); err != nil {
		return bn254.G1Jac{}, ErrInvalidCommitment
	}

	var p bn254.G1Jac
	p.FromAffine(&aff)
	return p, nil
}

func decodeScalar(b []byte) fr.Element {
	var e fr.Element
	e.SetBytes(b)
	return e
}
