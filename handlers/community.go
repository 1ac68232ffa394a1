// community.go - Handles the community tips board
// Tips are posted against library videos and ranked purely by upvotes.
// Upvoting is unauthenticated and unguarded: every call is a +1 with no
// per-user tracking.

package handlers

import (
	"net/http"
	"strconv"

	"surgiconnect-backend/database"
	"surgiconnect-backend/middleware"
	"surgiconnect-backend/models"

	"github.com/gin-gonic/gin"
)

type TipInput struct { // Struct for posting a tip (author comes from the session)
	Content    string `json:"content"`    // Tip text
	VideoID    *uint  `json:"videoId"`    // Video the tip refers to (optional)
	VideoTitle string `json:"videoTitle"` // Video title snapshot (optional)
}

// ListTips - Handler for GET /api/community/tips?videoId=
// Returns tips sorted by upvotes descending; ties keep insertion order.
func ListTips(c *gin.Context) {
	query := database.DB.Model(&models.CommunityTip{})
	if raw := c.Query("videoId"); raw != "" {
		videoID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
			return
		}
		query = query.Where("video_id = ?", videoID)
	}

	tips := []models.CommunityTip{}
	if err := query.Order("upvotes DESC, id ASC").Find(&tips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// AddTip - Handler for POST /api/community/tips (authenticated)
// Stamps the author from the session and starts the tip at zero upvotes.
func AddTip(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input TipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip := models.CommunityTip{
		VideoID:    input.VideoID,
		VideoTitle: input.VideoTitle,
		Author:     user.Name,
		Content:    input.Content,
		Upvotes:    0,
	}
	if err := database.DB.Create(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tip": tip})
}

// UpvoteTip - Handler for POST /api/community/tips/upvote/:id (public)
func UpvoteTip(c *gin.Context) {
	tipID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tip id"})
		return
	}

	var tip models.CommunityTip
	if err := database.DB.First(&tip, tipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	tip.Upvotes++ // No per-user tracking; repeated calls keep incrementing
	if err := database.DB.Save(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
