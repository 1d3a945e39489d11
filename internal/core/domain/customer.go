package domain

import "time"

// Customer is a person who purchases products from the store. It doubles as
// the account record for token-based authentication: the email is the login
// identifier and DisabledAt marks accounts that may no longer authenticate.
type Customer struct {
	ID           int        `json:"id" bson:"_id"`
	DNI          string     `json:"dni" bson:"dni"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	DisabledAt   *time.Time `json:"disabled_at,omitempty" bson:"disabled_at,omitempty"`
}

// IsDisabled reports whether the customer account has been disabled.
// A disabled customer cannot log in; the marker stays set until an
// operator explicitly clears it.
func (c *Customer) IsDisabled() bool {
	return c.DisabledAt != nil
}
