package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spicerack/recipe-api/internal/api"
	"github.com/spicerack/recipe-api/internal/router"
	"github.com/spicerack/recipe-api/internal/service"
	"github.com/spicerack/recipe-api/internal/testhelpers"
)

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	sessions := service.NewSessionStore(testhelpers.SetupTestRedis(t), testhelpers.SessionTTL)
	authService := service.NewAuthService(db, sessions, "test-secret")
	recipeService := service.NewRecipeService(db)

	engine := router.Setup(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService),
		authService,
	)

	return &testApp{engine: engine, db: db, auth: authService}
}

// newToken registers a throwaway user and returns its bearer token.
func (a *testApp) newToken(t *testing.T) string {
	t.Helper()
	_, token, err := a.auth.Register(context.Background(), "Test User", "tester@example.com", "password123")
	require.NoError(t, err)
	return token
}

func (a *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func eggMasalaPayload() map[string]any {
	return map[string]any{
		"name":        "Egg Masala",
		"ingredients": "egg, onion, garlic",
		"prep_time":   10,
		"cook_time":   20,
		"difficulty":  "easy",
		"description": "Delicious egg recipe",
	}
}

func (a *testApp) createRecipe(t *testing.T, token string, payload map[string]any) float64 {
	t.Helper()
	w := a.request(t, http.MethodPost, "/api/recipes", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	id, ok := data["id"].(float64)
	require.True(t, ok)
	return id
}
