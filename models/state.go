package models

// VaultState is the serializable form of a vault.
type VaultState struct {
	Resource    ResourceIdentity  `json:"resource"`
	Amount      Amount            `json:"amount"`
	Items       []NonFungibleItem `json:"items,omitempty"`
	Commitments []Commitment      `json:"commitments,omitempty"`
}

// ComponentState is the serializable form of a custody component.
type ComponentState struct {
	Supply       VaultState  `json:"supply"`
	Fee          VaultState  `json:"fee"`
	NonFungible  VaultState  `json:"non_fungible"`
	Confidential VaultState  `json:"confidential"`
	Counter      uint32      `json:"counter"`
	AccessRules  AccessRules `json:"access_rules"`
}

// ResourceRecord is the registry bookkeeping for one resource.
type ResourceRecord struct {
	Identity    ResourceIdentity `json:"identity"`
	TotalSupply Amount           `json:"total_supply"`
	ItemIDs     []ItemID         `json:"item_ids,omitempty"`
	Commitments []Commitment     `json:"commitments,omitempty"`
}

// RegistryState is the serializable form of an in-memory registry.
type RegistryState struct {
	Resources []ResourceRecord `json:"resources"`
}

// ComponentResources lists the resources a component holds, keyed by role.
type ComponentResources struct {
	Supply       ResourceIdentity `json:"supply"`
	Fee          ResourceIdentity `json:"fee"`
	NonFungible  ResourceIdentity `json:"non_fungible"`
	Confidential ResourceIdentity `json:"confidential"`
}

// CustodyOverview is the owner's view of the component, assembled by the
// client from several calls.
type CustodyOverview struct {
	Resources ComponentResources `json:"resources"`
	Balance   Amount             `json:"balance"`
	Fees      Amount             `json:"fees"`
	Counter   uint32             `json:"counter"`
}
