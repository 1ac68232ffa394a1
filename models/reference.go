// reference.go - Read-only reference data types (not database-backed)

package models

// Hospital is a facility entry in the static directory.
type Hospital struct {
	ID        uint     `json:"id"`        // Facility ID
	Name      string   `json:"name"`      // Facility name
	Type      string   `json:"type"`      // Hospital or Clinic
	Specialty string   `json:"specialty"` // Primary specialty
	Phone     string   `json:"phone"`     // Contact phone
	Email     string   `json:"email"`     // Contact email
	Address   string   `json:"address"`   // Street address
	Distance  string   `json:"distance"`  // Distance label from the demo city center
	Hours     string   `json:"hours"`     // Opening hours label
	Rating    float64  `json:"rating"`    // Aggregate rating
	Languages []string `json:"languages"` // Spoken languages
	Emergency bool     `json:"emergency"` // Whether a 24/7 ER is available
	Website   string   `json:"website"`   // Facility website
}

// Specialist is a practitioner entry in the static directory.
type Specialist struct {
	ID         uint     `json:"id"`         // Specialist ID
	Name       string   `json:"name"`       // Practitioner name
	Specialty  string   `json:"specialty"`  // Specialty label
	Hospital   string   `json:"hospital"`   // Affiliated facility name
	Phone      string   `json:"phone"`      // Contact phone
	Rating     float64  `json:"rating"`     // Aggregate rating
	Experience string   `json:"experience"` // Years of experience label
	Languages  []string `json:"languages"`  // Spoken languages
	Accepting  bool     `json:"accepting"`  // Accepting new patients
}

// Video is an entry in the static recovery video library.
type Video struct {
	ID          uint   `json:"id"`          // Video ID
	Title       string `json:"title"`       // Video title
	Duration    string `json:"duration"`    // Duration label (mm:ss)
	Category    string `json:"category"`    // Category label, matched exactly (case-insensitive)
	Views       int    `json:"views"`       // View count
	Likes       int    `json:"likes"`       // Like count
	Comments    int    `json:"comments"`    // Comment count
	Description string `json:"description"` // Short description
	Audience    string `json:"audience"`    // Patient, Caregiver or Both
}
