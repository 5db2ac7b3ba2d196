package util

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"beatbazaar/config"
)

// resetTokenBytes is the entropy behind a reset token: 32 random bytes,
// hex-encoded to 64 characters.
const resetTokenBytes = 32

// GenerateResetToken returns a fresh password-reset token and its absolute
// expiry. The token comes from crypto/rand; a predictable token here would
// let anyone take over an account.
func GenerateResetToken() (string, time.Time, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(buf), time.Now().Add(config.ResetTokenLifetime), nil
}
