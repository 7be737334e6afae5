// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, used as the login identifier.
	Name            string           // The user's display name or real name.
	CustomerProfile *CustomerProfile // Pointer to the consumer-specific profile. Nil if this person has no 'customer' role.
	BusinessProfile *BusinessMember  // Pointer to the business-membership profile. Nil if this person has no 'business' role.
	AdminProfile    *AdminProfile    // Pointer to the admin profile. Nil if this person has no 'admin' role.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// Roles returns the set of roles this user currently holds, derived from its profiles.
func (u *User) Roles() []Role {
	var roles []Role
	if u.CustomerProfile != nil {
		roles = append(roles, RoleCustomer)
	}
	if u.BusinessProfile != nil {
		roles = append(roles, RoleBusiness)
	}
	if u.AdminProfile != nil {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// CustomerProfile holds data specific to the "consumer" role.
type CustomerProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	City      string    // The customer's home city, used for local deal browsing defaults.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}

// BusinessMember holds data specific to the "business" role.
// A business member acts on behalf of exactly one business.
type BusinessMember struct {
	UserID     uuid.UUID // Foreign Key that links this profile to a core User entity.
	BusinessID uuid.UUID // The business this member belongs to.
	Position   string    // Free-form description of the member's role at the business (owner, staff).
	UpdatedAt  time.Time // Timestamp of the last modification to this profile.
}

// AdminProfile holds data specific to the "admin" role.
type AdminProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}
