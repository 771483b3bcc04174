package hash

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts the one-way password hashing primitive.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call
	// embeds a fresh random salt, so hashing the same password twice
	// yields different digests.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest. The salt
	// and cost are recovered from the digest itself and the comparison is
	// constant-time. Malformed digests simply fail the check.
	Check(password, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a PasswordHasher backed by bcrypt at the
// default cost.
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *bcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
