package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so the algorithm stays
// swappable without touching the login or registration flows.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns a non-nil error when plain does not match hash.
	Compare(hash, plain string) error
}

// BcryptHasher is the default PasswordHasher.
type BcryptHasher struct {
	// Cost overrides bcrypt.DefaultCost when > 0.
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
