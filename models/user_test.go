package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenLifecycle(t *testing.T) {
	var u User
	assert.False(t, u.HasActiveReset())

	token := "abc123"
	expiry := time.Now().Add(15 * time.Minute)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	assert.True(t, u.HasActiveReset())

	u.ClearResetToken()
	assert.False(t, u.HasActiveReset())
	assert.Nil(t, u.ResetToken)
	assert.Nil(t, u.ResetTokenExpiry)
}
