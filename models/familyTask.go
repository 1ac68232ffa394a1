// familyTask.go - Defines caregiver tasks coordinated around a patient

package models

// FamilyTask is a caregiver task keyed by patient ID. The patient ID is a
// free-form correlation key supplied by the caller; there is no foreign key
// back to a Patient record.
type FamilyTask struct {
	ID        uint   `json:"id" gorm:"primaryKey"`      // Task ID (monotonic, table-wide)
	PatientID uint   `json:"-" gorm:"index"`            // Correlation key, not a FK
	Assignee  string `json:"assignee"`                  // Family member the task is assigned to
	Task      string `json:"task"`                      // Task description
	Time      string `json:"time"`                      // Scheduled time label
	Status    string `json:"status" gorm:"default:'pending'"` // pending or completed
}
