package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const SSOTokenTTL = time.Hour

// SSOClaims is the shop-scoped token the feature backend validates with the
// shop's stored signing secret.
type SSOClaims struct {
	ShopID int    `json:"shop_id"`
	Slug   string `json:"slug"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// MintShopToken issues a short-lived cross-service token signed with the
// shop's SSO secret.
func MintShopToken(secret string, shopID int, slug, role string) (string, error) {
	now := time.Now()
	claims := SSOClaims{
		ShopID: shopID,
		Slug:   slug,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(SSOTokenTTL).Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateShopToken checks a shop-scoped token against the shop's SSO secret.
func ValidateShopToken(secret, tokenString string) (*SSOClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SSOClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid sso token")
	}
	claims, ok := token.Claims.(*SSOClaims)
	if !ok || claims.ShopID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid sso token claims")
	}

	return claims, nil
}
