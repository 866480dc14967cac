package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionService_EstablishResolve(t *testing.T) {
	sessions := NewSessionService("test-secret")

	token, err := sessions.Establish(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, ok := sessions.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestSessionService_Resolve_Invalid(t *testing.T) {
	sessions := NewSessionService("test-secret")
	token, err := sessions.Establish(42)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty value", value: ""},
		{name: "garbage", value: "not-a-token"},
		{name: "tampered payload", value: token[:len(token)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := sessions.Resolve(tt.value)
			assert.False(t, ok)
			assert.Zero(t, id)
		})
	}
}

func TestSessionService_Resolve_RotatedSecret(t *testing.T) {
	token, err := NewSessionService("old-secret").Establish(7)
	assert.NoError(t, err)

	// Rotating the signing secret invalidates outstanding sessions.
	_, ok := NewSessionService("new-secret").Resolve(token)
	assert.False(t, ok)
}

func TestCookies(t *testing.T) {
	cookie := Cookie("token-value")
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	cleared := ClearCookie()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
