// auth.go - Bearer-token authentication middleware
// This file implements authentication for the API
//
// Authentication Flow:
// 1. Extract bearer token from Authorization header
// 2. Resolve token to a session row (token -> user ID)
// 3. Load the user for the session
// 4. Store the user in context for handlers
//
// Tokens are opaque 64-hex-char strings issued at signup/login. They never
// expire and are never rotated; a token stays valid until the sessions table
// is wiped (e.g. the database file is recreated).

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, etc.)
	"strings"  // String operations (for header parsing)

	"surgiconnect-backend/database" // Database connection (for session/user lookup)
	"surgiconnect-backend/models"   // Session and User models

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// AuthMiddleware - Returns a Gin middleware function for bearer-token auth
// This middleware resolves the token and stores the current user in context
//
// How it works:
// 1. Checks for "Authorization: Bearer <token>" header
// 2. Looks the token up in the sessions table
// 3. Loads the owning user
// 4. Stores the user in Gin context for later use
// 5. Continues to next handler if valid, aborts with 401 if not
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Resolve the token to a session
		token := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		var session models.Session
		if err := database.DB.First(&session, "token = ?", token).Error; err != nil { // Unknown token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"}) // Return 401 Unauthorized
			return
		}

		// STEP 3: Load the user the session belongs to
		var user models.User
		if err := database.DB.First(&user, session.UserID).Error; err != nil { // Session points at a missing user
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set("user", user) // Store current user in Gin context
		c.Next()            // Continue to next handler (authentication successful)
	}
}

// CurrentUser - Fetches the authenticated user stored by AuthMiddleware.
// The second return value is false on routes that did not run the middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
