package models

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// CommitmentSize is the encoded size of a [Commitment] in bytes.
const CommitmentSize = 32

// ErrInvalidCommitmentEncoding is returned when a commitment cannot be decoded
// from its textual form.
var ErrInvalidCommitmentEncoding = errors.New("invalid commitment encoding")

// Commitment is a compressed Pedersen commitment point. It is comparable and
// can therefore be used as a map key.
type Commitment [CommitmentSize]byte

// String returns the hex encoding of the commitment.
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (c Commitment) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Commitment) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommitmentEncoding, err)
	}
	if len(raw) != CommitmentSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidCommitmentEncoding, CommitmentSize, len(raw))
	}
	copy(c[:], raw)
	return nil
}

// ConfidentialOutputStatement carries a new commitment together with the
// range proof showing that the committed value lies in [0, 2^64).
type ConfidentialOutputStatement struct {
	Commitment Commitment `json:"commitment"`
	RangeProof []byte     `json:"range_proof"`
}

// ConfidentialWithdrawProof spends a set of commitments held by a vault and
// splits their value into an output sent to the caller and a residual kept
// by the vault.
//
// BalanceProof shows that sum(Inputs) - Output - Residual commits to zero.
type ConfidentialWithdrawProof struct {
	Inputs       []Commitment                `json:"inputs"`
	Output       ConfidentialOutputStatement `json:"output"`
	Residual     ConfidentialOutputStatement `json:"residual"`
	BalanceProof []byte                      `json:"balance_proof"`
}
