package util

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authutil "beatbazaar/authentication/util"
)

// CreateAccessToken signs a session token carrying the user's identity
// claims, expiring after lifetime.
func CreateAccessToken(user authutil.TokenUser, secret string, lifetime time.Duration) (string, error) {
	claims := &authutil.AuthClaims{
		TokenUser: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return t, nil
}

// ParseAccessToken verifies the signature and expiry of a session token and
// returns its claims. Expired tokens surface as jwt.ErrTokenExpired so
// callers can tell them apart from forged ones.
func ParseAccessToken(tokenString string, secret string) (*authutil.AuthClaims, error) {
	claims := &authutil.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
