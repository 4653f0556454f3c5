package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.True(t, VerifyPassword(hash, "s3cret"))
	require.False(t, VerifyPassword(hash, "wrong"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("test-secret", "ada@example.com", 30*time.Minute)
	require.NoError(t, err)

	subject, err := ParseAccessToken("test-secret", token)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", subject)
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	token, err := CreateAccessToken("test-secret", "ada@example.com", 30*time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	require.Error(t, err)
}

func TestAccessTokenExpiredRejected(t *testing.T) {
	token, err := CreateAccessToken("test-secret", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("test-secret", token)
	require.Error(t, err)
}
