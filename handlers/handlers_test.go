// handlers_test.go - Shared test helpers for the handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"         // For building request bodies
	"encoding/json" // For encoding/decoding JSON
	"net/http"      // For building requests
	"net/http/httptest" // HTTP test helpers
	"os"            // For file operations
	"testing"       // Go's testing package

	"surgiconnect-backend/database" // Database connection

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/require" // For assertions that must hold
)

// setupTestDB removes any existing test DB and creates a new one for each test
func setupTestDB(t *testing.T) {
	t.Helper()
	os.Setenv("SEED_DEMO", "false") // Keep tests deterministic, no demo data
	_ = os.Remove("test.db")        // Remove old test DB if exists
	require.NoError(t, database.Connect("test.db")) // Connect and migrate
}

// setupRouter returns a Gin engine with the full routing table for testing
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default() // New Gin router
	RegisterRoutes(r)  // Same wiring as main
	return r
}

// doRequest serves one request against the router and records the response.
// A non-nil body is JSON-encoded; a non-empty token becomes a bearer header.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody parses a recorded JSON response body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signupUser registers an account and returns its token and user id
func signupUser(t *testing.T, router *gin.Engine, name, email, userType string) (string, uint) {
	t.Helper()
	w := doRequest(t, router, "POST", "/api/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": "testpass",
		"userType": userType,
	}, "")
	require.Equal(t, 201, w.Code)
	body := decodeBody(t, w)
	token := body["token"].(string)
	user := body["user"].(map[string]interface{})
	return token, uint(user["id"].(float64))
}
