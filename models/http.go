package models

// BucketPayload is the transport form of a bucket.
//
// Hosts materialize a payload into a live bucket before handing it to the
// component; the payload itself carries no authority.
type BucketPayload struct {
	Resource    ResourceIdentity  `json:"resource"`
	Amount      Amount            `json:"amount"`
	Items       []NonFungibleItem `json:"items,omitempty"`
	Commitments []Commitment      `json:"commitments,omitempty"`
}

// WithdrawRequest asks for amount units of the public supply paying Fee.
type WithdrawRequest struct {
	Fee    BucketPayload `json:"fee"`
	Amount Amount        `json:"amount"`
}

// WithdrawConfidentialRequest asks for a confidential withdrawal paying Fee.
type WithdrawConfidentialRequest struct {
	Fee   BucketPayload             `json:"fee"`
	Proof ConfidentialWithdrawProof `json:"proof"`
}

// MintFungibleRequest asks the component to mint public supply.
type MintFungibleRequest struct {
	Amount Amount `json:"amount"`
}

// MintNonFungibleRequest asks the component to mint one item.
type MintNonFungibleRequest struct {
	Item NonFungibleItem `json:"item"`
}

// MintConfidentialRequest asks the component to mint hidden supply.
type MintConfidentialRequest struct {
	Statement ConfidentialOutputStatement `json:"statement"`
}

// OwnerLoginRequest exchanges the owner secret for a token.
type OwnerLoginRequest struct {
	Secret string `json:"secret"`
}

// BalanceResponse reports a vault balance.
type BalanceResponse struct {
	Amount Amount `json:"amount"`
}

// CounterResponse reports the withdrawal counter.
type CounterResponse struct {
	Counter uint32 `json:"counter"`
}

// VersionResponse reports the running server version.
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
