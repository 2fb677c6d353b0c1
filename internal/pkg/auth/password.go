package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so use cases never see the
// concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher; costs below bcrypt's minimum fall back to
// the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare reports whether the password matches the stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
