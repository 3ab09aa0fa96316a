package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the custom JWT claims carried by every issued token.
type Claims struct {
	CustomerID uint   `json:"sub_id"`
	GoogleID   string `json:"google_id"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 token for a customer.
func GenerateToken(customerID uint, googleID, name, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		CustomerID: customerID,
		GoogleID:   googleID,
		Name:       name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenVerifier checks a bearer credential and returns the caller identity.
// It is injected into the auth middleware so handlers can be exercised with a
// stub verifier.
type TokenVerifier func(token string) (*Claims, error)

// VerifyToken returns a TokenVerifier bound to an HMAC secret.
func VerifyToken(secret string) TokenVerifier {
	return func(tokenStr string) (*Claims, error) {
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return nil, errors.New("invalid or expired token")
		}
		return claims, nil
	}
}
