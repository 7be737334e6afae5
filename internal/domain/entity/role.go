package entity

// Role represents a principal kind within the marketplace.
type Role string

const (
	// RoleCustomer is a consumer who browses deals, buys vouchers, and leaves reviews.
	RoleCustomer Role = "customer"
	// RoleBusiness is a member account of a business that submits deals and redeems vouchers.
	RoleBusiness Role = "business"
	// RoleAdmin moderates deal submissions.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
