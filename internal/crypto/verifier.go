package crypto

import "github.com/MKhiriev/go-custody/models"

type pedersenVerifier struct{}

// NewProofVerifier returns the BN254 Pedersen [ProofVerifier].
func NewProofVerifier() ProofVerifier {
	return pedersenVerifier{}
}

func (pedersenVerifier) VerifyRange(commitment models.Commitment, proof []byte) error {
	return verifyRange(commitment, proof)
}

func (pedersenVerifier) VerifyBalance(inputs, outputs []models.Commitment, proof []byte) error {
	return verifyBalance(inputs, outputs, proof)
}
