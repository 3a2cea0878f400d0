package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_IssueAndVerify(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	token, err := codec.Issue("user-123", "u@hall.edu", []string{"admin", "resident"}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, roles, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, []string{"admin", "resident"}, roles)
}

func TestJWTCodec_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTCodec("secret-a").Issue("user-123", "u@hall.edu", nil, time.Hour)
	require.NoError(t, err)

	_, _, err = NewJWTCodec("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWTCodec_Verify_Expired(t *testing.T) {
	codec := NewJWTCodec("test-secret")
	token, err := codec.Issue("user-123", "u@hall.edu", nil, -time.Minute)
	require.NoError(t, err)

	_, _, err = codec.Verify(token)
	assert.Error(t, err)
}

func TestJWTCodec_Verify_Garbage(t *testing.T) {
	_, _, err := NewJWTCodec("test-secret").Verify("not.a.jwt")
	assert.Error(t, err)
}
