package models

import "time"

// Operation names a state-changing custody operation recorded in the journal.
type Operation string

const (
	OperationWithdraw             Operation = "withdraw"
	OperationWithdrawConfidential Operation = "withdraw_confidential"
	OperationMintFungible         Operation = "mint_fungible"
	OperationMintNonFungible      Operation = "mint_non_fungible"
	OperationMintConfidential     Operation = "mint_confidential"
	OperationIncrease             Operation = "increase"
)

// JournalEntry is an append-only audit record of a successful operation.
type JournalEntry struct {
	ID        string          `json:"id"`
	Operation Operation       `json:"operation"`
	Resource  ResourceAddress `json:"resource,omitempty"`
	Amount    Amount          `json:"amount"`
	Detail    string          `json:"detail,omitempty"`
	Counter   uint32          `json:"counter"`
	TraceID   string          `json:"trace_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// JournalFilter narrows a journal listing. Zero values disable a criterion.
type JournalFilter struct {
	Operation Operation `json:"operation,omitempty"`
	Since     time.Time `json:"since,omitempty"`
	Limit     uint64    `json:"limit,omitempty"`
}
