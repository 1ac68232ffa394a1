// routes.go - Wires every API endpoint onto a Gin engine

package handlers

import (
	"net/http"
	"strings"

	"surgiconnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes - Attaches middleware and all API routes to the engine.
// Shared by main and by the tests so both run the exact same routing table.
func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware()) // CORS-open, short-circuits OPTIONS

	api := r.Group("/api")

	// Public routes (no authentication required)
	api.GET("/ping", Ping)                             // Health check
	api.POST("/auth/signup", Signup)                   // Account creation
	api.POST("/auth/login", Login)                     // Login
	api.GET("/directory", GetDirectory)                // Facility + specialist directory
	api.GET("/videos", GetVideos)                      // Video library
	api.GET("/community/tips", ListTips)               // Tips board (read)
	api.POST("/community/tips/upvote/:id", UpvoteTip)  // Unauthenticated upvote
	api.GET("/hospitals", GetHospitals)                // Hospital list

	// Authenticated one-offs outside the protected prefixes
	api.POST("/community/tips", middleware.AuthMiddleware(), AddTip)
	api.POST("/hospitals/contact", middleware.AuthMiddleware(), ContactHospital)

	// Protected prefixes (bearer token resolved before dispatch)
	patients := api.Group("/patients", middleware.AuthMiddleware())
	{
		patients.GET("/:id", GetPatient)                       // Get-or-create record
		patients.POST("/:id/tasks", AddTask)                   // Add care task
		patients.PATCH("/:id/tasks/:taskId", UpdateTask)       // Partial task update
		patients.DELETE("/:id/tasks/:taskId", DeleteTask)      // Delete task
		patients.GET("/:id/medications", GetMedications)       // Medications + logs
		patients.POST("/:id/medications", MarkMedicationTaken) // Mark dose taken
		patients.PUT("/:id/medications", AddMedication)        // Add medication
	}

	family := api.Group("/family", middleware.AuthMiddleware())
	{
		family.GET("/:id/tasks", ListFamilyTasks)                // List caregiver tasks
		family.POST("/:id/tasks", AddFamilyTask)                 // Add caregiver task
		family.PATCH("/:id/tasks/:taskId", UpdateFamilyTask)     // Partial update
		family.DELETE("/:id/tasks/:taskId", DeleteFamilyTask)    // Delete
	}

	// Unknown /api paths get a JSON 404; everything else a plain liveness line
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "path": c.Request.URL.Path})
			return
		}
		c.String(http.StatusOK, "SurgiConnect backend: running")
	})
}
