// contact.go - Handles hospital contact requests
// Requests are logged with a generated reference id and never delivered
// anywhere; wiring an email/ticketing hand-off is out of scope.

package handlers

import (
	"log"
	"net/http"

	"surgiconnect-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactInput struct { // Struct for hospital contact requests
	HospitalID   uint   `json:"hospitalId"`   // Facility being contacted
	HospitalName string `json:"hospitalName"` // Facility name snapshot
	Subject      string `json:"subject"`      // Message subject
	Message      string `json:"message"`      // Message body
}

// ContactHospital - Handler for POST /api/hospitals/contact (authenticated)
func ContactHospital(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.NewString() // Reference id so the logged request is correlatable
	log.Printf("hospital contact request %s: hospital=%d (%s) from=%s <%s> phone=%s subject=%q message=%q",
		requestID, input.HospitalID, input.HospitalName,
		user.Name, user.Email, user.Phone, input.Subject, input.Message)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Your message has been sent. The hospital will contact you soon.",
		"requestId": requestID,
	})
}
