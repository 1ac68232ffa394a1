// auth_test.go - Automated tests for signup, login and token resolution

package handlers

import (
	"regexp"
	"testing"

	"surgiconnect-backend/database"
	"surgiconnect-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// TestSignupIssuesTokenAndPatientRecord covers the signup happy path: an
// opaque 64-hex token, a patient-typed user, and an empty recovery record
// reachable with that token.
func TestSignupIssuesTokenAndPatientRecord(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "POST", "/api/auth/signup", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p", "userType": "patient",
	}, "")
	require.Equal(t, 201, w.Code)
	body := decodeBody(t, w)

	token := body["token"].(string)
	assert.Regexp(t, tokenPattern, token)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "patient", user["userType"])
	assert.NotContains(t, user, "password") // Hash must never leak

	// The auto-created record comes back with empty collections
	w = doRequest(t, router, "GET", "/api/patients/1", nil, token)
	require.Equal(t, 200, w.Code)
	record := decodeBody(t, w)
	assert.Equal(t, []interface{}{}, record["tasks"])
	assert.Equal(t, []interface{}{}, record["medications"])
	assert.Equal(t, "Unknown", record["woundStatus"])
}

// TestSignupDuplicateEmail verifies a duplicate email is rejected with 400
// and never creates a second user.
func TestSignupDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	signupUser(t, router, "First", "dup@example.com", "patient")

	w := doRequest(t, router, "POST", "/api/auth/signup", map[string]string{
		"name": "Second", "email": "dup@example.com", "password": "other",
	}, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

// TestSignupMissingFields verifies required-field validation.
func TestSignupMissingFields(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "POST", "/api/auth/signup", map[string]string{
		"email": "nobody@example.com",
	}, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, w)["error"])
}

// TestLogin covers login, wrong-password rejection, and the fact that a new
// login does not invalidate previously issued tokens.
func TestLogin(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	firstToken, userID := signupUser(t, router, "Bea", "bea@example.com", "patient")

	// --- Test login ---
	w := doRequest(t, router, "POST", "/api/auth/login", map[string]string{
		"email": "bea@example.com", "password": "testpass",
	}, "")
	require.Equal(t, 200, w.Code)
	secondToken := decodeBody(t, w)["token"].(string)
	assert.Regexp(t, tokenPattern, secondToken)
	assert.NotEqual(t, firstToken, secondToken)

	// --- Both tokens resolve to the same user ---
	for _, token := range []string{firstToken, secondToken} {
		w = doRequest(t, router, "GET", "/api/patients/1", nil, token)
		assert.Equal(t, 200, w.Code)
		assert.EqualValues(t, userID, decodeBody(t, w)["id"])
	}

	// --- Test login with wrong password ---
	w = doRequest(t, router, "POST", "/api/auth/login", map[string]string{
		"email": "bea@example.com", "password": "wrongpass",
	}, "")
	assert.Equal(t, 401, w.Code) // Should be unauthorized
}

// TestProtectedRoutesRequireToken verifies the protected prefixes reject
// missing and unknown tokens.
func TestProtectedRoutesRequireToken(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "GET", "/api/patients/1", nil, "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(t, router, "GET", "/api/family/1/tasks", nil, "deadbeef")
	assert.Equal(t, 401, w.Code)
}
