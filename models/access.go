package models

// AccessRule decides who may invoke a component method.
type AccessRule string

const (
	// AllowAll lets any caller invoke the method.
	AllowAll AccessRule = "allow_all"
	// OwnerOnly restricts the method to callers holding the owner role.
	OwnerOnly AccessRule = "owner"
)

// AccessRules maps method names to the rule guarding them.
type AccessRules map[string]AccessRule

// Role is the caller role resolved from authentication.
type Role string

const (
	// RoleAnonymous is assigned to callers without a valid token.
	RoleAnonymous Role = ""
	// RoleOwner is assigned to callers that proved knowledge of the owner secret.
	RoleOwner Role = "owner"
)

// Permits reports whether a caller with the given role satisfies rule.
// Unknown rules never permit anything.
func (rule AccessRule) Permits(role Role) bool {
	switch rule {
	case AllowAll:
		return true
	case OwnerOnly:
		return role == RoleOwner
	}
	return false
}
