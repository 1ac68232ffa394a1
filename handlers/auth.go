// auth.go - Handles user signup and login

package handlers // Declares the package name

import ( // Import required packages
	"crypto/rand"   // Random bytes for session tokens
	"encoding/hex"  // Hex encoding for session tokens
	"net/http"      // HTTP status codes
	"time"          // Timestamps for the health check

	"surgiconnect-backend/database" // Database connection
	"surgiconnect-backend/models"   // User, Session and Patient models

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

type SignupInput struct { // Struct for signup input
	Name     string `json:"name" binding:"required"`     // Display name (required)
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
	UserType string `json:"userType"`                    // patient or family (defaults to patient)
	Phone    string `json:"phone"`                       // Contact phone (optional)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// generateToken - Issues an opaque 64-hex-char session token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// createSession - Issues and stores a new token for the user. Existing
// tokens stay valid; there is no single-session enforcement.
func createSession(userID uint) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	session := models.Session{Token: token, UserID: userID}
	if err := database.DB.Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}

// Ping - Health check handler
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// Signup - Handler for account creation
// Creates the user, auto-creates an empty patient record for patient
// accounts, and returns a fresh session token.
func Signup(c *gin.Context) {
	var input SignupInput                            // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"}) // Return error if invalid
		return
	}

	// Reject duplicate emails (case-sensitive exact match)
	var existing models.User
	if err := database.DB.First(&existing, "email = ?", input.Email).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userType := input.UserType
	if userType == "" {
		userType = "patient" // Account type defaults to patient
	}
	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		UserType: userType,
		Phone:    input.Phone,
	}
	if err := database.DB.Create(&user).Error; err != nil { // Save user to DB
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if DB fails
		return
	}

	// Patients get an empty recovery record up front
	if user.UserType == "patient" {
		patient := models.Patient{
			ID:          user.ID,
			UserID:      user.ID,
			Name:        user.Name,
			WoundStatus: "Unknown",
		}
		if err := database.DB.Create(&patient).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	token, err := createSession(user.ID) // Issue session token
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user}) // Success response (password omitted)
}

// Login - Handler for user login
// Issues a new token on success; previously issued tokens remain valid.
func Login(c *gin.Context) {
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"}) // Return error if invalid
		return
	}

	var user models.User
	if err := database.DB.First(&user, "email = ?", input.Email).Error; err != nil { // Find user by email
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"}) // Return error if not found
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"}) // Return error if wrong
		return
	}

	token, err := createSession(user.ID) // Issue a fresh token
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user}) // Return token and user
}
