// medicationLog.go - Defines the append-only medication intake log

package models

// MedicationLog records one medication intake. Entries are appended when a
// dose is marked taken and are never mutated or deleted.
type MedicationLog struct {
	ID             uint   `json:"id" gorm:"primaryKey"`     // Log entry ID
	PatientID      uint   `json:"-" gorm:"index"`           // Patient the dose belongs to
	MedicationID   uint   `json:"medicationId"`             // Medication as reported by the caller
	MedicationName string `json:"medicationName"`           // Name as reported by the caller
	Date           string `json:"date"`                     // UTC date of intake (YYYY-MM-DD)
	Time           string `json:"time"`                     // UTC time of intake (HH:MM)
	Taken          bool   `json:"taken"`                    // Always true for appended entries
}
