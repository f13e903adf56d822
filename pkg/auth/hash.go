package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashService hashes tenant admin passwords before they enter a provisioning
// payload. Only the hash ever leaves the process; the deployed shop verifies
// logins against it itself.
type HashService struct{}

func (b *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
