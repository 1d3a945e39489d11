package domain

// Role is the closed set of authorization roles a token may carry.
// Anything outside the known constants parses to RoleUnknown, which every
// authorization decision treats as unauthenticated.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleAdmin is reserved. Admin login is not implemented; the constant
	// exists so route declarations and the token codec agree on the name.
	RoleAdmin   Role = "user_sys"
	RoleUnknown Role = ""
)

// ParseRole maps a token's role claim onto the closed Role set.
func ParseRole(s string) Role {
	switch s {
	case string(RoleCustomer):
		return RoleCustomer
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Principal is the authenticated identity resolved for a single request.
// It is built fresh from the validated token plus the customer record and
// lives only in that request's context.
type Principal struct {
	CustomerID int    `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
}
