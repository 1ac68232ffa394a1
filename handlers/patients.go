// patients.go - Handles patient records, care tasks and medications
// This file implements the patient store endpoints:
// 1. Get-or-create of the recovery record
// 2. Care task CRUD with partial updates
// 3. Medication list, intake logging and creation
//
// Every route here requires authentication, but there is no ownership
// check: any authenticated user may read or mutate any patient id.

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"surgiconnect-backend/database"
	"surgiconnect-backend/middleware"
	"surgiconnect-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskInput struct { // Struct for care task creation (all fields defaulted)
	Title    string `json:"title"`    // Task title (default "New Task")
	Time     string `json:"time"`     // Time label (default "9:00 AM")
	Category string `json:"category"` // Category label (default "General")
}

type TaskUpdateInput struct { // Struct for partial task updates (nil = field untouched)
	Title     *string `json:"title"`     // New title, if present
	Time      *string `json:"time"`      // New time label, if present
	Category  *string `json:"category"`  // New category, if present
	Completed *bool   `json:"completed"` // New completion flag, accepts explicit false
}

type MarkTakenInput struct { // Struct for marking a medication taken
	MedicationID   uint   `json:"medicationId"`   // Medication being taken
	MedicationName string `json:"medicationName"` // Name snapshot for the log entry
}

type MedicationInput struct { // Struct for adding a medication (fields defaulted)
	Name      string `json:"name"`      // Medication name (default "New Medication")
	Frequency string `json:"frequency"` // Frequency label (default "1x daily")
}

// patientIDParam - Parses the :id path segment. Writes a 400 and returns
// false when the segment is not numeric.
func patientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return 0, false
	}
	return uint(id), true
}

// getOrCreatePatient - Returns the recovery record for patientID, creating a
// default-valued one named after the requesting user when absent. This is
// the sole creation path besides signup; repeated calls with no mutation in
// between return identical records.
func getOrCreatePatient(patientID uint, requester models.User) (models.Patient, error) {
	patient, err := loadPatient(patientID)
	if err == nil {
		return patient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Patient{}, err
	}

	patient = models.Patient{
		ID:          patientID,
		UserID:      requester.ID,
		Name:        requester.Name,
		WoundStatus: "Unknown",
	}
	if err := database.DB.Create(&patient).Error; err != nil {
		return models.Patient{}, err
	}
	return loadPatient(patientID)
}

// loadPatient - Fetches a record with its tasks and medications preloaded.
// Empty collections come back as [] rather than null on the wire.
func loadPatient(patientID uint) (models.Patient, error) {
	var patient models.Patient
	err := database.DB.
		Preload("Tasks", func(tx *gorm.DB) *gorm.DB { return tx.Order("tasks.id") }).
		Preload("Medications", func(tx *gorm.DB) *gorm.DB { return tx.Order("medications.id") }).
		First(&patient, patientID).Error
	if err != nil {
		return models.Patient{}, err
	}
	if patient.Tasks == nil {
		patient.Tasks = []models.Task{}
	}
	if patient.Medications == nil {
		patient.Medications = []models.Medication{}
	}
	return patient, nil
}

// GetPatient - Handler for GET /api/patients/:id (get-or-create)
func GetPatient(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

// AddTask - Handler for POST /api/patients/:id/tasks
// Appends a task with defaults for absent fields and returns the full record.
func AddTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	var input TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		PatientID: patient.ID,
		Title:     defaultString(input.Title, "New Task"),
		Time:      defaultString(input.Time, "9:00 AM"),
		Category:  defaultString(input.Category, "General"),
	}
	if err := database.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithPatient(c, http.StatusCreated, patient.ID)
}

// UpdateTask - Handler for PATCH /api/patients/:id/tasks/:taskId
// Applies only the fields present in the payload. An unknown task id is a
// no-op that still returns the record with 200.
func UpdateTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var input TaskUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := database.DB.First(&task, "id = ? AND patient_id = ?", taskID, patient.ID).Error; err == nil {
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Time != nil {
			task.Time = *input.Time
		}
		if input.Category != nil {
			task.Category = *input.Category
		}
		if input.Completed != nil {
			task.Completed = *input.Completed
		}
		if err := database.DB.Save(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	respondWithPatient(c, http.StatusOK, patient.ID)
}

// DeleteTask - Handler for DELETE /api/patients/:id/tasks/:taskId
// Deleting an absent task is a no-op that still returns the record.
func DeleteTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Delete(&models.Task{}, "id = ? AND patient_id = ?", taskID, patient.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithPatient(c, http.StatusOK, patient.ID)
}

// GetMedications - Handler for GET /api/patients/:id/medications
// Returns current medications, today's log entries and the full history.
func GetMedications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logs := []models.MedicationLog{}
	if err := database.DB.Where("patient_id = ?", patient.ID).Order("id").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayLogs := []models.MedicationLog{}
	for _, entry := range logs {
		if entry.Date == today {
			todayLogs = append(todayLogs, entry)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"medications": patient.Medications,
		"todayLogs":   todayLogs,
		"allLogs":     logs,
	})
}

// MarkMedicationTaken - Handler for POST /api/patients/:id/medications
// Appends exactly one log entry stamped with the current UTC date/time and
// updates the medication's lastTaken field when the id exists. No frequency
// or dose limits are enforced.
func MarkMedicationTaken(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	var input MarkTakenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	entry := models.MedicationLog{
		PatientID:      patient.ID,
		MedicationID:   input.MedicationID,
		MedicationName: input.MedicationName,
		Date:           now.Format("2006-01-02"),
		Time:           now.Format("15:04"),
		Taken:          true,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The log entry is kept even when the medication id is unknown; only the
	// lastTaken stamp is conditional on the medication existing.
	var medication models.Medication
	if err := database.DB.First(&medication, "id = ? AND patient_id = ?", input.MedicationID, patient.ID).Error; err == nil {
		lastTaken := entry.Date + " " + entry.Time
		medication.LastTaken = &lastTaken
		if err := database.DB.Save(&medication).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "log": entry})
}

// AddMedication - Handler for PUT /api/patients/:id/medications
// Appends a medication with lastTaken = null and returns the full record.
func AddMedication(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	patientID, ok := patientIDParam(c)
	if !ok {
		return
	}

	var input MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := getOrCreatePatient(patientID, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	medication := models.Medication{
		PatientID: patient.ID,
		Name:      defaultString(input.Name, "New Medication"),
		Frequency: defaultString(input.Frequency, "1x daily"),
	}
	if err := database.DB.Create(&medication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithPatient(c, http.StatusCreated, patient.ID)
}

// respondWithPatient - Re-reads the record after a mutation and writes it as
// the response body (every mutation endpoint returns the full record).
func respondWithPatient(c *gin.Context, status int, patientID uint) {
	patient, err := loadPatient(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, patient)
}

// defaultString - Returns fallback when value is empty.
func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
