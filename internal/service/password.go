package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way bcrypt digest of the plaintext.
// The algorithm identifier and cost are embedded in the digest itself, so
// the stored format can evolve without a schema change.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword recomputes and compares in constant time. Any failure,
// including a malformed stored digest, fails closed to false.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
