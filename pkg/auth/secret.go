package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomSecret returns n random bytes hex-encoded, for SSO/webhook secrets
// and generated session keys.
func RandomSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
