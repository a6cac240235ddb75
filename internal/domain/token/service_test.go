package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tokenString, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	tokenString, err := svc.Issue(42, "alice")
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	tokenString, err := issuer.Issue(42, "alice")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "hello"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			// Forged, expired and malformed tokens must be indistinguishable
			assert.Equal(t, ErrInvalidToken, err)
		})
	}
}

func TestService_Verify_TamperedPayload(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tokenString, err := svc.Issue(42, "alice")
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Equal(t, ErrInvalidToken, err)
}
