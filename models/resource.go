package models

import "encoding/json"

// ResourceKind classifies how a resource's units are represented.
type ResourceKind string

const (
	// ResourcePublic is a plain fungible resource with a visible amount.
	ResourcePublic ResourceKind = "public"

	// ResourceNonFungible is a resource whose units are distinct items
	// identified by an [ItemID].
	ResourceNonFungible ResourceKind = "non_fungible"

	// ResourceConfidential is a fungible resource whose amounts are hidden
	// behind Pedersen commitments.
	ResourceConfidential ResourceKind = "confidential"
)

// Valid reports whether k is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourcePublic, ResourceNonFungible, ResourceConfidential:
		return true
	}
	return false
}

// ResourceAddress uniquely identifies a resource inside a registry.
type ResourceAddress string

// ResourceIdentity is the public description of a resource as returned by the
// registry when the resource is created.
type ResourceIdentity struct {
	Address  ResourceAddress   `json:"address"`
	Kind     ResourceKind      `json:"kind"`
	Symbol   string            `json:"symbol,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SameResource reports whether both identities point at the same resource.
func (r ResourceIdentity) SameResource(other ResourceIdentity) bool {
	return r.Address == other.Address && r.Kind == other.Kind
}

// ResourceSpec describes a resource to be created together with its initial
// supply. Only the fields matching Kind are consulted.
type ResourceSpec struct {
	Kind     ResourceKind
	Symbol   string
	Metadata map[string]string

	InitialSupply    Amount
	InitialItems     []NonFungibleItem
	InitialStatement *ConfidentialOutputStatement
}

// MintRequest describes new units to create for an existing resource.
// Only the fields matching the resource kind are consulted.
type MintRequest struct {
	Amount    Amount
	Items     []NonFungibleItem
	Statement *ConfidentialOutputStatement
}

// ItemID identifies a single non-fungible item within its resource.
type ItemID uint64

// DefaultItemData is attached to minted items that carry no metadata.
var DefaultItemData = json.RawMessage(`{"data":"beep-boop"}`)

// NonFungibleItem is one distinct unit of a non-fungible resource together
// with its opaque metadata document.
type NonFungibleItem struct {
	ID   ItemID          `json:"id"`
	Data json.RawMessage `json:"data,omitempty"`
}
