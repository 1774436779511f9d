package custody

import (
	"fmt"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/registry"
	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
)

// State returns a serializable copy of the component.
func (c *Component) State() models.ComponentState {
	return models.ComponentState{
		Supply:       c.supply.State(),
		Fee:          c.fees.State(),
		NonFungible:  c.nonFungible.State(),
		Confidential: c.confidential.State(),
		Counter:      c.counter,
		AccessRules:  c.AccessRules(),
	}
}

// Restore rebuilds a component from a state produced by [Component.State].
// Missing access rules fall back to [DefaultAccessRules].
func Restore(reg registry.Registry, engine confidential.Engine, state models.ComponentState) (*Component, error) {
	expected := []struct {
		state models.VaultState
		kind  models.ResourceKind
	}{
		{state.Supply, models.ResourcePublic},
		{state.Fee, models.ResourcePublic},
		{state.NonFungible, models.ResourceNonFungible},
		{state.Confidential, models.ResourceConfidential},
	}

	vaults := make([]*vault.Vault, 0, len(expected))
	for _, e := range expected {
		if e.state.Resource.Kind != e.kind {
			return nil, fmt.Errorf("%w: expected %s vault, got %q", ErrInvalidState, e.kind, e.state.Resource.Kind)
		}
		v, err := vault.Restore(e.state)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
		vaults = append(vaults, v)
	}

	rules := state.AccessRules
	if len(rules) == 0 {
		rules = DefaultAccessRules()
	}

	return &Component{
		registry:     reg,
		engine:       engine,
		supply:       vaults[0],
		fees:         vaults[1],
		nonFungible:  vaults[2],
		confidential: vaults[3],
		counter:      state.Counter,
		accessRules:  rules,
	}, nil
}
