package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashService_HashPassword(t *testing.T) {
	svc := &HashService{}

	t.Run("produces a verifiable bcrypt hash", func(t *testing.T) {
		hash, err := svc.HashPassword("s3cret-admin-pw")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-admin-pw", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-admin-pw")))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := svc.HashPassword("")
		assert.Error(t, err)
	})
}
