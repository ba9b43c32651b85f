// Package token mints and verifies the bearer tokens that authenticate API
// requests. Tokens are stateless HS256 JWTs carrying the user id and
// username, valid for seven days.
package token

import (
	"errors"
	"time"

	"bioanalytica/database/model"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is how long a minted token stays valid.
const TTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified facts a token carries about its holder.
type Claims struct {
	jwt.RegisteredClaims
	Id       int    `json:"id"`
	Username string `json:"username"`
}

// Mint signs a token for the given user, expiring after TTL.
func Mint(user *model.User, secret []byte) (string, error) {
	return MintWithTTL(user, secret, TTL)
}

// MintWithTTL signs a token with an explicit validity duration.
func MintWithTTL(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Id:       user.Id,
		Username: user.Username,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify parses and validates a token string, returning its claims. Any
// failure (bad signature, expiry, wrong signing method, garbage input) is
// reported as ErrInvalidToken.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
