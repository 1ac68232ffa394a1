// directory_test.go - Automated tests for the static reference endpoints

package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPing verifies the health check answers without authentication.
func TestPing(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "GET", "/api/ping", nil, "")
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["timestamp"])
}

// TestDirectorySearch verifies case-insensitive substring filtering over
// both hospitals and specialists.
func TestDirectorySearch(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	// Unfiltered: the full fixture set
	w := doRequest(t, router, "GET", "/api/directory", nil, "")
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["hospitals"], 3)
	assert.Len(t, body["specialists"], 3)

	// "wound" matches one clinic (name+specialty) and one specialist
	w = doRequest(t, router, "GET", "/api/directory?search=WOUND", nil, "")
	require.Equal(t, 200, w.Code)
	body = decodeBody(t, w)
	hospitals := body["hospitals"].([]interface{})
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Advanced Wound Care Clinic", hospitals[0].(map[string]interface{})["name"])
	specialists := body["specialists"].([]interface{})
	require.Len(t, specialists, 1)
	assert.Equal(t, "Dr. Michael Rodriguez", specialists[0].(map[string]interface{})["name"])
}

// TestVideosCategoryFilter verifies the exact, case-insensitive category
// match and the substring search.
func TestVideosCategoryFilter(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	for _, category := range []string{"Wound Care", "wound care"} {
		w := doRequest(t, router, "GET", "/api/videos?category="+url.QueryEscape(category), nil, "")
		require.Equal(t, 200, w.Code)
		videos := decodeBody(t, w)["videos"].([]interface{})
		require.Len(t, videos, 1)
		assert.Equal(t, "Daily Wound Care for Elderly Patients", videos[0].(map[string]interface{})["title"])
	}

	w := doRequest(t, router, "GET", "/api/videos?search=knee", nil, "")
	require.Equal(t, 200, w.Code)
	videos := decodeBody(t, w)["videos"].([]interface{})
	require.Len(t, videos, 1)
	assert.Equal(t, "Complete Guide to Post-Knee Surgery Care", videos[0].(map[string]interface{})["title"])
}

// TestHospitalsSearch verifies the hospital list search includes addresses.
func TestHospitalsSearch(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "GET", "/api/hospitals?search=healing+way", nil, "")
	require.Equal(t, 200, w.Code)
	hospitals := decodeBody(t, w)["hospitals"].([]interface{})
	require.Len(t, hospitals, 1)
	entry := hospitals[0].(map[string]interface{})
	assert.Equal(t, "Advanced Wound Care Clinic", entry["name"])
	assert.NotEmpty(t, entry["email"])
	assert.NotEmpty(t, entry["website"])
}

// TestRouterFallthrough verifies unknown /api paths get a JSON 404 while
// non-API paths get the plain liveness line.
func TestRouterFallthrough(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doRequest(t, router, "GET", "/api/does/not/exist", nil, "")
	assert.Equal(t, 404, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "/api/does/not/exist", body["path"])

	w = doRequest(t, router, "GET", "/anything", nil, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "SurgiConnect backend: running", w.Body.String())
}
