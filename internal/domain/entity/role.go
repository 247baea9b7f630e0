// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user registered as.
type Role string

const (
	// RoleFarmer sells produce through listings.
	RoleFarmer Role = "farmer"
	// RoleSeller sells produce and inputs through listings.
	RoleSeller Role = "seller"
	// RoleBuyer browses the marketplace and sends requests.
	RoleBuyer Role = "buyer"
	// RoleLogistics offers transport services.
	RoleLogistics Role = "logistics"
	// RoleStorage offers storage facilities.
	RoleStorage Role = "storage"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleSeller, RoleBuyer, RoleLogistics, RoleStorage:
		return true
	default:
		return false
	}
}

// IsProvider reports whether the role owns offerings that others can request.
func (r Role) IsProvider() bool {
	return r != RoleBuyer && r.IsValid()
}

// OwnsListings reports whether the role can publish marketplace listings.
func (r Role) OwnsListings() bool {
	return r == RoleFarmer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
