// family.go - Handles caregiver task lists keyed by patient id
// The patient id is a free-form correlation key: family task lists exist
// independently of patient records and of the caller's own account.

package handlers

import (
	"net/http"
	"strconv"

	"surgiconnect-backend/database"
	"surgiconnect-backend/models"

	"github.com/gin-gonic/gin"
)

type FamilyTaskInput struct { // Struct for caregiver task creation (fields defaulted)
	Assignee string `json:"assignee"` // Assigned family member (default "Family Member")
	Task     string `json:"task"`     // Task description (default "New Task")
	Time     string `json:"time"`     // Time label (default "9:00 AM")
}

type FamilyTaskUpdateInput struct { // Struct for partial caregiver task updates
	Assignee *string `json:"assignee"` // New assignee, if present
	Task     *string `json:"task"`     // New description, if present
	Time     *string `json:"time"`     // New time label, if present
	Status   *string `json:"status"`   // New status (pending/completed), if present
}

// familyTaskList - Fetches the caregiver tasks for a patient id in insertion
// order, always as a non-nil slice.
func familyTaskList(patientID uint) ([]models.FamilyTask, error) {
	tasks := []models.FamilyTask{}
	err := database.DB.Where("patient_id = ?", patientID).Order("id").Find(&tasks).Error
	return tasks, err
}

// respondWithFamilyTasks - Writes the current list as {"tasks": [...]}.
func respondWithFamilyTasks(c *gin.Context, status int, patientID uint) {
	tasks, err := familyTaskList(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"tasks": tasks})
}

// ListFamilyTasks - Handler for GET /api/family/:id/tasks
func ListFamilyTasks(c *gin.Context) {
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}
	respondWithFamilyTasks(c, http.StatusOK, patientID)
}

// AddFamilyTask - Handler for POST /api/family/:id/tasks
// New tasks always start in the pending state.
func AddFamilyTask(c *gin.Context) {
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	var input FamilyTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.FamilyTask{
		PatientID: patientID,
		Assignee:  defaultString(input.Assignee, "Family Member"),
		Task:      defaultString(input.Task, "New Task"),
		Time:      defaultString(input.Time, "9:00 AM"),
		Status:    "pending",
	}
	if err := database.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithFamilyTasks(c, http.StatusCreated, patientID)
}

// UpdateFamilyTask - Handler for PATCH /api/family/:id/tasks/:taskId
// Same partial-update semantics as patient tasks; unknown ids are a 200
// no-op returning the unchanged list.
func UpdateFamilyTask(c *gin.Context) {
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var input FamilyTaskUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.FamilyTask
	if err := database.DB.First(&task, "id = ? AND patient_id = ?", taskID, patientID).Error; err == nil {
		if input.Assignee != nil {
			task.Assignee = *input.Assignee
		}
		if input.Task != nil {
			task.Task = *input.Task
		}
		if input.Time != nil {
			task.Time = *input.Time
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		if err := database.DB.Save(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	respondWithFamilyTasks(c, http.StatusOK, patientID)
}

// DeleteFamilyTask - Handler for DELETE /api/family/:id/tasks/:taskId
func DeleteFamilyTask(c *gin.Context) {
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	if err := database.DB.Delete(&models.FamilyTask{}, "id = ? AND patient_id = ?", taskID, patientID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithFamilyTasks(c, http.StatusOK, patientID)
}
