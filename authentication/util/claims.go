package util

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"beatbazaar/models"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// TokenUser is the public identity projection embedded in the session token
// and returned by the auth endpoints. Never anything secret in here.
type TokenUser struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// NewTokenUser derives the token claims from a stored user.
func NewTokenUser(user *models.User) TokenUser {
	return TokenUser{
		Name:   user.Name,
		UserID: strconv.FormatUint(uint64(user.ID), 10),
		Role:   user.Role,
	}
}

// AuthClaims is the full JWT claim set: the identity projection plus the
// registered expiry.
type AuthClaims struct {
	TokenUser
	jwt.RegisteredClaims
}
