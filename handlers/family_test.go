// family_test.go - Automated tests for caregiver task coordination

package handlers

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFamilyTaskLifecycle walks a caregiver task through create, partial
// update and delete against a free-form patient id.
func TestFamilyTaskLifecycle(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token, _ := signupUser(t, router, "Kim", "kim@example.com", "family")

	// --- List starts empty (patient id is just a correlation key) ---
	w := doRequest(t, router, "GET", "/api/family/7/tasks", nil, token)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["tasks"])

	// --- Create with defaults for absent fields ---
	w = doRequest(t, router, "POST", "/api/family/7/tasks", map[string]string{
		"assignee": "Kim (Sister)",
	}, token)
	require.Equal(t, 201, w.Code)
	tasks := decodeBody(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]interface{})
	assert.Equal(t, "Kim (Sister)", task["assignee"])
	assert.Equal(t, "New Task", task["task"])
	assert.Equal(t, "9:00 AM", task["time"])
	assert.Equal(t, "pending", task["status"])
	taskID := int(task["id"].(float64))

	// --- Partial update: only status changes ---
	w = doRequest(t, router, "PATCH", taskPath(taskID), map[string]string{"status": "completed"}, token)
	require.Equal(t, 200, w.Code)
	task = decodeBody(t, w)["tasks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "completed", task["status"])
	assert.Equal(t, "Kim (Sister)", task["assignee"])

	// --- Update of an unknown id is a 200 no-op ---
	w = doRequest(t, router, "PATCH", "/api/family/7/tasks/999", map[string]string{"status": "pending"}, token)
	require.Equal(t, 200, w.Code)
	task = decodeBody(t, w)["tasks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "completed", task["status"])

	// --- Delete empties the list again ---
	w = doRequest(t, router, "DELETE", taskPath(taskID), nil, token)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["tasks"])
}

// TestFamilyListsAreIndependent verifies task lists for different patient
// ids never bleed into each other.
func TestFamilyListsAreIndependent(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token, _ := signupUser(t, router, "Lee", "lee@example.com", "family")

	w := doRequest(t, router, "POST", "/api/family/1/tasks", map[string]string{"task": "Groceries"}, token)
	require.Equal(t, 201, w.Code)

	w = doRequest(t, router, "GET", "/api/family/2/tasks", nil, token)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["tasks"])
}

func taskPath(taskID int) string {
	return "/api/family/7/tasks/" + strconv.Itoa(taskID)
}
