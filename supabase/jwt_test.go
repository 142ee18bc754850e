package supabase

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromRequestRoundTrip(t *testing.T) {
	token, err := GenerateTestJWT("user-42", "super-secret")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/chat", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	userID, err := UserIDFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestUserIDFromRequestMissingHeader(t *testing.T) {
	req := httptest.NewRequest("POST", "/chat", nil)

	_, err := UserIDFromRequest(req)

	assert.Error(t, err)
}

func TestUserIDFromRequestGarbageToken(t *testing.T) {
	req := httptest.NewRequest("POST", "/chat", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	_, err := UserIDFromRequest(req)

	assert.Error(t, err)
}
