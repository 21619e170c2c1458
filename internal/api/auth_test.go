package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := setupTestApp(t)

	w := app.request(t, http.MethodPost, "/api/register", "", map[string]any{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "test@example.com", user["email"])
	// Password material never leaves the server.
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterRejectsBadPayload(t *testing.T) {
	app := setupTestApp(t)

	cases := []map[string]any{
		{"email": "test@example.com", "password": "password123"},
		{"name": "Test User", "email": "not-an-email", "password": "password123"},
		{"name": "Test User", "email": "test@example.com", "password": "short"},
	}
	for _, payload := range cases {
		w := app.request(t, http.MethodPost, "/api/register", "", payload)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	app.newToken(t)

	w := app.request(t, http.MethodPost, "/api/register", "", map[string]any{
		"name":     "Someone Else",
		"email":    "tester@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "The email has already been taken.", decodeBody(t, w)["message"])
}

func TestLoginEndpoint(t *testing.T) {
	app := setupTestApp(t)
	app.newToken(t)

	w := app.request(t, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "tester@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)

	// The issued token opens the protected surface.
	w = app.request(t, http.MethodGet, "/api/recipes", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.request(t, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "tester@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	app := setupTestApp(t)
	token := app.newToken(t)

	w := app.request(t, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decodeBody(t, w)["message"])

	w = app.request(t, http.MethodGet, "/api/recipes", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
