package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintShopToken(t *testing.T) {
	token, err := MintShopToken("shop-sso-secret", 7, "acme", "owner")
	require.NoError(t, err)

	claims, err := ValidateShopToken("shop-sso-secret", token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.ShopID)
	assert.Equal(t, "acme", claims.Slug)
	assert.Equal(t, "owner", claims.Role)
	assert.NotEmpty(t, claims.Id)
}

func TestValidateShopToken_WrongSecret(t *testing.T) {
	token, err := MintShopToken("shop-sso-secret", 7, "acme", "owner")
	require.NoError(t, err)

	_, err = ValidateShopToken("another-secret", token)
	assert.Error(t, err)
}
