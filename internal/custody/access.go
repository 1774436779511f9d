package custody

import (
	"maps"

	"github.com/MKhiriev/go-custody/models"
)

// Runtime-callable component methods.
const (
	MethodGetBalance           = "get_balance"
	MethodFeeBalance           = "fee_balance"
	MethodWithdraw             = "withdraw"
	MethodWithdrawConfidential = "withdraw_confidential"
	MethodMintFungible         = "mint_fungible"
	MethodMintNonFungible      = "mint_non_fungible"
	MethodMintConfidential     = "mint_confidential"
	MethodCounter              = "counter"
	MethodIncrease             = "increase"
	MethodJournal              = "journal"
)

// DefaultAccessRules: withdrawals are open to anyone and gated by fee and
// proof checks; everything else needs the owner.
func DefaultAccessRules() models.AccessRules {
	return models.AccessRules{
		MethodWithdraw:             models.AllowAll,
		MethodWithdrawConfidential: models.AllowAll,
		MethodGetBalance:           models.OwnerOnly,
		MethodFeeBalance:           models.OwnerOnly,
		MethodMintFungible:         models.OwnerOnly,
		MethodMintNonFungible:      models.OwnerOnly,
		MethodMintConfidential:     models.OwnerOnly,
		MethodCounter:              models.OwnerOnly,
		MethodIncrease:             models.OwnerOnly,
		MethodJournal:              models.OwnerOnly,
	}
}

// AccessRules returns a copy of the component's access rules.
func (c *Component) AccessRules() models.AccessRules {
	return maps.Clone(c.accessRules)
}

// Permits reports whether role may call method. Methods without a rule are
// denied.
func (c *Component) Permits(method string, role models.Role) bool {
	rule, ok := c.accessRules[method]
	return ok && rule.Permits(role)
}
