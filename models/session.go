// session.go - Defines the Session model mapping bearer tokens to users

package models

// Session maps an opaque bearer token to a user. Tokens never expire and a
// user may hold any number of them at once (one per login/signup).
type Session struct {
	Token  string `gorm:"primaryKey"` // Opaque 64-hex-char bearer token
	UserID uint   `gorm:"not null"`   // Owning user ID
}
