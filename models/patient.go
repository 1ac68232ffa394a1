// patient.go - Defines the patient recovery record and its owned collections

package models

// Patient is the recovery record for one patient. Its ID equals the user ID
// it was first requested for; records are created lazily on first access.
type Patient struct {
	ID          uint         `json:"id" gorm:"primaryKey"`              // Record ID (= patient user ID, not auto-assigned)
	UserID      uint         `json:"userId"`                            // User who triggered creation
	Name        string       `json:"name"`                              // Patient display name
	Procedure   string       `json:"procedure"`                         // Surgery procedure (empty until set)
	SurgeryDate *string      `json:"surgeryDate"`                       // Surgery date, null until known
	DaysPostOp  int          `json:"daysPostOp"`                        // Days since surgery
	Tasks       []Task       `json:"tasks" gorm:"foreignKey:PatientID"` // Care tasks owned by this record
	Medications []Medication `json:"medications" gorm:"foreignKey:PatientID"` // Medications owned by this record
	PainLevel   int          `json:"painLevel"`                         // Self-reported pain level (0-10)
	WoundStatus string       `json:"woundStatus"`                       // Wound status text ("Unknown" by default)
}

// Task is a single care task on a patient record.
type Task struct {
	ID        uint   `json:"id" gorm:"primaryKey"` // Task ID (monotonic, table-wide)
	PatientID uint   `json:"-" gorm:"index"`       // Owning patient record
	Title     string `json:"title"`                // Task title
	Time      string `json:"time"`                 // Scheduled time label (e.g. "9:00 AM")
	Category  string `json:"category"`             // Category label (e.g. "Wound Care")
	Completed bool   `json:"completed"`            // Completion flag
}

// Medication is a prescribed medication on a patient record.
type Medication struct {
	ID        uint    `json:"id" gorm:"primaryKey"` // Medication ID (monotonic, table-wide)
	PatientID uint    `json:"-" gorm:"index"`       // Owning patient record
	Name      string  `json:"name"`                 // Medication name
	Frequency string  `json:"frequency"`            // Frequency label (e.g. "2x daily")
	LastTaken *string `json:"lastTaken"`            // "YYYY-MM-DD HH:MM" of last dose, null if never
}
