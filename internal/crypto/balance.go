package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-custody/models"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// The balance proof is a Schnorr proof of knowledge of x such that
//
//	sum(inputs) - sum(outputs) = x·H
//
// which holds exactly when the committed values cancel out.
//
// Encoding: R || s, 32 bytes each.
const (
	BalanceProofSize = models.CommitmentSize + fr.Bytes

	balanceProofLabel = "go-custody/balance/v1"
)

func proveBalance(inputs, outputs []models.Commitment, excess *fr.Element) ([]byte, error) {
	p, err := excessPoint(inputs, outputs)
	if err != nil {
		return nil, err
	}

	var k fr.Element
	if _, err := k.SetRandom(); err != nil {
		return nil, ErrRandomness
	}
	r := scalarMul(&generatorH, &k)

	e := balanceChallenge(inputs, outputs, &p, &r)

	var s fr.Element
	s.Mul(&e, excess)
	s.Add(&s, &k)

	enc := encodePoint(&r)
	sb := s.Bytes()

	proof := make([]byte, 0, BalanceProofSize)
	proof = append(proof, enc[:]...)
	proof = append(proof, sb[:]...)
	return proof, nil
}

func verifyBalance(inputs, outputs []models.Commitment, proof []byte) error {
	if len(proof) != BalanceProofSize {
		return fmt.Errorf("%w: balance proof must be %d bytes, got %d", ErrMalformedProof, BalanceProofSize, len(proof))
	}
	if len(inputs) == 0 {
		return ErrNoInputs
	}

	p, err := excessPoint(inputs, outputs)
	if err != nil {
		return err
	}

	var enc models.Commitment
	copy(enc[:], proof[:models.CommitmentSize])
	r, err := decodePoint(enc)
	if err != nil {
		return ErrInvalidBalanceProof
	}
	s := decodeScalar(proof[models.CommitmentSize:])

	e := balanceChallenge(inputs, outputs, &p, &r)

	// s·H == R + e·P
	lhs := scalarMul(&generatorH, &s)
	rhs := scalarMul(&p, &e)
	rhs.AddAssign(&r)
	if !lhs.Equal(&rhs) {
		return ErrInvalidBalanceProof
	}

	return nil
}

func excessPoint(inputs, outputs []models.Commitment) (bn254.G1Jac, error) {
	var acc bn254.G1Jac
	for _, c := range inputs {
		p, err := decodePoint(c)
		if err != nil {
			return bn254.G1Jac{}, err
		}
		acc.AddAssign(&p)
	}
	for _, c := range outputs {
		p, err := decodePoint(c)
		if err != nil {
			return bn254.G1Jac{}, err
		}
		acc.SubAssign(&p)
	}
	return acc, nil
}

func balanceChallenge(inputs, outputs []models.Commitment, p, r *bn254.G1Jac) fr.Element {
	t := newTranscript(balanceProofLabel)
	t.appendUint64(uint64(len(inputs)))
	for _, c := range inputs {
		t.appendCommitment(c)
	}
	t.appendUint64(uint64(len(outputs)))
	for _, c := range outputs {
		t.appendCommitment(c)
	}
	t.appendPoint(p)
	t.appendPoint(r)
	return t.challenge()
}
