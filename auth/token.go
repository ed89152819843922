package auth

import (
	"fmt"
	"time"

	"match-gateway/domain"
	apperrors "match-gateway/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ConnectionClaims is the payload the account service signs into access
// tokens. The gateway only reads it, it never issues tokens itself.
type ConnectionClaims struct {
	UserID   domain.UserID `json:"userId"`
	Verified bool          `json:"verified"`
	Blocked  bool          `json:"blocked"`
	jwt.RegisteredClaims
}

// Validator checks access tokens with the shared HS256 secret.
type Validator struct {
	secret []byte
}

func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// Validate parses and verifies the signature and expiration of a token and
// returns the identity it carries.
func (v *Validator) Validate(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ConnectionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*ConnectionClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, apperrors.ErrInvalidToken
	}

	return domain.Identity{
		UserID:   claims.UserID,
		Verified: claims.Verified,
		Blocked:  claims.Blocked,
	}, nil
}

// Sign creates a token for an identity. The account service owns issuance;
// this is kept for local tooling and tests.
func Sign(secret string, identity domain.Identity, ttl time.Duration) (string, error) {
	claims := &ConnectionClaims{
		UserID:   identity.UserID,
		Verified: identity.Verified,
		Blocked:  identity.Blocked,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "match-gateway",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
