package confidential

import "github.com/MKhiriev/go-custody/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/confidential_engine_mock.go -package=mock

// Engine validates confidential statements and computes the effect of a
// confidential withdrawal without ever learning the amounts involved.
type Engine interface {
	// ValidateOutput checks the range proof of a freshly minted statement
	// and returns its commitment. Fails with ErrInvalidStatement.
	ValidateOutput(stmt models.ConfidentialOutputStatement) (models.Commitment, error)

	// Withdraw checks proof against the commitments currently held and
	// returns the resulting transfer. held is never modified. Every
	// rejection is reported as ErrInvalidWithdrawProof.
	Withdraw(held []models.Commitment, proof models.ConfidentialWithdrawProof) (Transfer, error)
}

// Transfer is the outcome of an accepted confidential withdrawal.
type Transfer struct {
	// Output is the commitment handed to the caller.
	Output models.Commitment
	// Remaining is the full set of commitments the vault holds afterwards:
	// the untouched ones followed by the residual.
	Remaining []models.Commitment
}
