package crypto

import (
	"math"

	"github.com/MKhiriev/go-custody/models"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Opening is the secret knowledge behind a commitment. Wallets keep openings;
// the component only ever sees the commitments.
type Opening struct {
	Value    uint64 `json:"value"`
	Blinding Scalar `json:"blinding"`
}

// Commitment recomputes the commitment for o.
func (o Opening) Commitment() models.Commitment {
	return Commit(o.Value, o.Blinding)
}

// WithdrawOpenings are the openings of the two outputs created by
// [ProveWithdraw]. The caller keeps Output; Residual belongs to the vault
// owner's wallet.
type WithdrawOpenings struct {
	Output   Opening `json:"output"`
	Residual Opening `json:"residual"`
}

// NewOutput creates a commitment to value with a fresh blinding and proves
// its range.
func NewOutput(value uint64) (models.ConfidentialOutputStatement, Opening, error) {
	blinding, err := RandomScalar()
	if err != nil {
		return models.ConfidentialOutputStatement{}, Opening{}, err
	}
	return NewOutputWithBlinding(value, blinding)
}

// NewOutputWithBlinding is [NewOutput] with a caller-chosen blinding. It lets
// a server derive its seed supply deterministically from configuration.
func NewOutputWithBlinding(value uint64, blinding Scalar) (models.ConfidentialOutputStatement, Opening, error) {
	opening := Opening{Value: value, Blinding: blinding}
	commitment := opening.Commitment()

	r := blinding.element()
	proof, err := proveRange(value, &r, commitment)
	if err != nil {
		return models.ConfidentialOutputStatement{}, Opening{}, err
	}

	return models.ConfidentialOutputStatement{Commitment: commitment, RangeProof: proof}, opening, nil
}

// ProveWithdraw spends inputs, sending amount to a fresh output and the rest
// to a fresh residual.
func ProveWithdraw(inputs []Opening, amount uint64) (models.ConfidentialWithdrawProof, WithdrawOpenings, error) {
	if len(inputs) == 0 {
		return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, ErrNoInputs
	}

	var total uint64
	commitments := make([]models.Commitment, 0, len(inputs))
	var excess fr.Element
	for _, in := range inputs {
		if total > math.MaxUint64-in.Value {
			return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, ErrValueOverflow
		}
		total += in.Value
		commitments = append(commitments, in.Commitment())

		r := in.Blinding.element()
		excess.Add(&excess, &r)
	}
	if amount > total {
		return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, ErrInsufficientInputs
	}

	output, outOpening, err := NewOutput(amount)
	if err != nil {
		return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, err
	}
	residual, resOpening, err := NewOutput(total - amount)
	if err != nil {
		return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, err
	}

	rOut := outOpening.Blinding.element()
	rRes := resOpening.Blinding.element()
	excess.Sub(&excess, &rOut)
	excess.Sub(&excess, &rRes)

	balance, err := proveBalance(commitments, []models.Commitment{output.Commitment, residual.Commitment}, &excess)
	if err != nil {
		return models.ConfidentialWithdrawProof{}, WithdrawOpenings{}, err
	}

	proof := models.ConfidentialWithdrawProof{
		Inputs:       commitments,
		Output:       output,
		Residual:     residual,
		BalanceProof: balance,
	}
	return proof, WithdrawOpenings{Output: outOpening, Residual: resOpening}, nil
}
