package crypto

import "github.com/MKhiriev/go-custody/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/proof_verifier_mock.go -package=mock

// ProofVerifier checks the zero-knowledge statements that make confidential
// transfers sound. It holds no secrets and never sees an opening.
type ProofVerifier interface {
	// VerifyRange checks that commitment hides a value in [0, 2^64).
	VerifyRange(commitment models.Commitment, proof []byte) error

	// VerifyBalance checks that sum(inputs) - sum(outputs) is a commitment
	// to zero, i.e. that no value was created or destroyed.
	VerifyBalance(inputs, outputs []models.Commitment, proof []byte) error
}

// KeyChain seals wallet material at rest.
//
// Schema:
//
//	KEK  = Argon2id(passphrase, salt)
//	blob = salt || nonce || AES-GCM(KEK, JSON(data))
type KeyChain interface {
	// Seal serializes data to JSON and encrypts it under a key derived from
	// passphrase. Every call uses a fresh salt and nonce.
	Seal(data any, passphrase string) ([]byte, error)

	// Open reverses Seal, unmarshalling the plaintext into target.
	// Returns ErrWrongPassphrase when authentication fails.
	Open(blob []byte, passphrase string, target any) error
}
