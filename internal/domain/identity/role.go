package identity

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Role is the coarse actor type carried in verified identity tokens.
// Customers vouch; businesses redeem and own locations/campaigns.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleBusiness:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string {
	return string(r)
}
