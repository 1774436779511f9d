package confidential

import (
	"fmt"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

type engine struct {
	verifier crypto.ProofVerifier
	logger   *logger.Logger
}

// NewEngine builds an [Engine] on top of verifier.
func NewEngine(verifier crypto.ProofVerifier, logger *logger.Logger) Engine {
	return &engine{verifier: verifier, logger: logger}
}

func (e *engine) ValidateOutput(stmt models.ConfidentialOutputStatement) (models.Commitment, error) {
	if err := e.verifier.VerifyRange(stmt.Commitment, stmt.RangeProof); err != nil {
		e.logger.Debug().Err(err).Str("commitment", stmt.Commitment.String()).Msg("output statement rejected")
		return models.Commitment{}, fmt.Errorf("%w: %w", ErrInvalidStatement, err)
	}
	return stmt.Commitment, nil
}

func (e *engine) Withdraw(held []models.Commitment, proof models.ConfidentialWithdrawProof) (Transfer, error) {
	remaining, err := e.withdraw(held, proof)
	if err != nil {
		e.logger.Debug().Err(err).Int("inputs", len(proof.Inputs)).Msg("confidential withdraw rejected")
		return Transfer{}, fmt.Errorf("%w: %w", ErrInvalidWithdrawProof, err)
	}

	return Transfer{Output: proof.Output.Commitment, Remaining: remaining}, nil
}

func (e *engine) withdraw(held []models.Commitment, proof models.ConfidentialWithdrawProof) ([]models.Commitment, error) {
	if len(proof.Inputs) == 0 {
		return nil, crypto.ErrNoInputs
	}

	// held is a multiset: the same commitment may have been deposited twice.
	available := make(map[models.Commitment]int, len(held))
	for _, c := range held {
		available[c]++
	}
	spent := make(map[models.Commitment]int, len(proof.Inputs))
	for _, in := range proof.Inputs {
		if available[in] == 0 {
			return nil, fmt.Errorf("input %s is not held by the vault", in)
		}
		available[in]--
		spent[in]++
	}

	if err := e.verifier.VerifyRange(proof.Output.Commitment, proof.Output.RangeProof); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if err := e.verifier.VerifyRange(proof.Residual.Commitment, proof.Residual.RangeProof); err != nil {
		return nil, fmt.Errorf("residual: %w", err)
	}

	outputs := []models.Commitment{proof.Output.Commitment, proof.Residual.Commitment}
	if err := e.verifier.VerifyBalance(proof.Inputs, outputs, proof.BalanceProof); err != nil {
		return nil, err
	}

	remaining := make([]models.Commitment, 0, len(held)-len(proof.Inputs)+1)
	for _, c := range held {
		if spent[c] > 0 {
			spent[c]--
			continue
		}
		remaining = append(remaining, c)
	}
	remaining = append(remaining, proof.Residual.Commitment)

	return remaining, nil
}
