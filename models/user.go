// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents an account in the database
	ID       uint   `json:"id" gorm:"primaryKey"`                               // Unique user ID (primary key)
	Name     string `json:"name" gorm:"not null"`                               // Display name (cannot be null)
	Email    string `json:"email" gorm:"unique;not null"`                       // User's email (must be unique, cannot be null)
	Password string `json:"-" gorm:"not null"`                                  // Hashed password (never serialized)
	UserType string `json:"userType" gorm:"column:user_type;default:'patient'"` // Account type (patient/family)
	Phone    string `json:"phone"`                                              // Contact phone (optional)
}
