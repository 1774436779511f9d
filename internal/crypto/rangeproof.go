package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-custody/models"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// The range proof decomposes v into rangeBits bits. For every bit i it
// publishes C_i = b_i·G + r_i·H and a Chaum-Pedersen OR proof that C_i opens
// to 0 or to 1. The blindings are chosen so that sum(2^i·C_i) == C, which the
// verifier recomputes.
//
// Per-bit encoding: C_i || e0 || e1 || s0 || s1, 32 bytes each.
const (
	rangeBits      = 64
	bitProofSize   = models.CommitmentSize + 4*fr.Bytes
	RangeProofSize = rangeBits * bitProofSize

	rangeProofLabel = "go-custody/range/v1"
)

var powersOfTwo = func() [rangeBits]fr.Element {
	var pows [rangeBits]fr.Element
	pows[0].SetOne()
	for i := 1; i < rangeBits; i++ {
		pows[i].Double(&pows[i-1])
	}
	return pows
}()

func proveRange(value uint64, blinding *fr.Element, commitment models.Commitment) ([]byte, error) {
	var blinds [rangeBits]fr.Element
	var weighted fr.Element
	for i := 1; i < rangeBits; i++ {
		if _, err := blinds[i].SetRandom(); err != nil {
			return nil, ErrRandomness
		}
		var w fr.Element
		w.Mul(&blinds[i], &powersOfTwo[i])
		weighted.Add(&weighted, &w)
	}
	blinds[0].Sub(blinding, &weighted)

	proof := make([]byte, 0, RangeProofSize)
	for i := 0; i < rangeBits; i++ {
		bit := (value >> uint(i)) & 1
		part, err := proveBit(commitment, i, bit, &blinds[i])
		if err != nil {
			return nil, err
		}
		proof = append(proof, part...)
	}

	return proof, nil
}

func proveBit(commitment models.Commitment, index int, bit uint64, blinding *fr.Element) ([]byte, error) {
	var b fr.Element
	b.SetUint64(bit)
	ci := commitPoint(&b, blinding)

	branches := bitBranches(&ci)
	real, fake := int(bit), 1-int(bit)

	var k, eFake, sFake fr.Element
	for _, e := range []*fr.Element{&k, &eFake, &sFake} {
		if _, err := e.SetRandom(); err != nil {
			return nil, ErrRandomness
		}
	}

	var nonces [2]bn254.G1Jac
	nonces[real] = scalarMul(&generatorH, &k)
	nonces[fake] = simulatedNonce(&branches[fake], &eFake, &sFake)

	e := bitChallenge(commitment, index, &ci, &nonces)

	var eReal, sReal fr.Element
	eReal.Sub(&e, &eFake)
	sReal.Mul(&eReal, blinding)
	sReal.Add(&sReal, &k)

	var es, ss [2]fr.Element
	es[real], es[fake] = eReal, eFake
	ss[real], ss[fake] = sReal, sFake

	enc := encodePoint(&ci)
	out := make([]byte, 0, bitProofSize)
	out = append(out, enc[:]...)
	for _, v := range []*fr.Element{&es[0], &es[1], &ss[0], &ss[1]} {
		b := v.Bytes()
		out = append(out, b[:]...)
	}
	return out, nil
}

func verifyRange(commitment models.Commitment, proof []byte) error {
	if len(proof) != RangeProofSize {
		return fmt.Errorf("%w: range proof must be %d bytes, got %d", ErrMalformedProof, RangeProofSize, len(proof))
	}

	c, err := decodePoint(commitment)
	if err != nil {
		return err
	}

	var bits [rangeBits]bn254.G1Jac
	for i := 0; i < rangeBits; i++ {
		part := proof[i*bitProofSize : (i+1)*bitProofSize]
		ci, err := verifyBit(commitment, i, part)
		if err != nil {
			return err
		}
		bits[i] = ci
	}

	acc := bits[rangeBits-1]
	for i := rangeBits - 2; i >= 0; i-- {
		acc.DoubleAssign()
		acc.AddAssign(&bits[i])
	}
	if !acc.Equal(&c) {
		return ErrInvalidRangeProof
	}

	return nil
}

func verifyBit(commitment models.Commitment, index int, part []byte) (bn254.G1Jac, error) {
	var enc models.Commitment
	copy(enc[:], part[:models.CommitmentSize])
	ci, err := decodePoint(enc)
	if err != nil {
		return bn254.G1Jac{}, fmt.Errorf("%w: bit %d", ErrInvalidRangeProof, index)
	}

	off := models.CommitmentSize
	e0 := decodeScalar(part[off : off+fr.Bytes])
	e1 := decodeScalar(part[off+fr.Bytes : off+2*fr.Bytes])
	s0 := decodeScalar(part[off+2*fr.Bytes : off+3*fr.Bytes])
	s1 := decodeScalar(part[off+3*fr.Bytes : off+4*fr.Bytes])

	branches := bitBranches(&ci)
	nonces := [2]bn254.G1Jac{
		simulatedNonce(&branches[0], &e0, &s0),
		simulatedNonce(&branches[1], &e1, &s1),
	}

	e := bitChallenge(commitment, index, &ci, &nonces)

	var sum fr.Element
	sum.Add(&e0, &e1)
	if !sum.Equal(&e) {
		return bn254.G1Jac{}, fmt.Errorf("%w: bit %d", ErrInvalidRangeProof, index)
	}

	return ci, nil
}

// bitBranches returns the two statements of the OR proof: C_i opens to 0
// (C_i = r·H) or C_i opens to 1 (C_i - G = r·H).
func bitBranches(ci *bn254.G1Jac) [2]bn254.G1Jac {
	one := *ci
	one.SubAssign(&generatorG)
	return [2]bn254.G1Jac{*ci, one}
}

// simulatedNonce computes s·H - e·P.
func simulatedNonce(p *bn254.G1Jac, e, s *fr.Element) bn254.G1Jac {
	sh := scalarMul(&generatorH, s)
	ep := scalarMul(p, e)
	sh.SubAssign(&ep)
	return sh
}

func bitChallenge(commitment models.Commitment, index int, ci *bn254.G1Jac, nonces *[2]bn254.G1Jac) fr.Element {
	t := newTranscript(rangeProofLabel)
	t.appendCommitment(commitment)
	t.appendUint64(uint64(index))
	t.appendPoint(ci)
	t.appendPoint(&nonces[0])
	t.appendPoint(&nonces[1])
	return t.challenge()
}
