// directory.go - Handles the static healthcare reference data
// This file implements the read-only reference endpoints:
// 1. Facility + specialist directory with substring search
// 2. Recovery video library with search and category filter
// 3. Hospital list reused by the contact flow
//
// The lists live in process memory and are never mutated; every request
// filters them from scratch. No pagination, the full result set is returned.

package handlers

import (
	"net/http"
	"strings"

	"surgiconnect-backend/models"

	"github.com/gin-gonic/gin"
)

// Static reference data shared by all requests (read-only after init)
var (
	hospitals = []models.Hospital{
		{
			ID: 1, Name: "St. Mary's Medical Center", Type: "Hospital",
			Specialty: "Orthopedic Surgery", Phone: "(555) 123-4567",
			Email: "info@stmarys.example.com", Address: "1234 Health Ave, City, ST 12345",
			Distance: "2.3 miles", Hours: "24/7 Emergency", Rating: 4.8,
			Languages: []string{"English", "Spanish"}, Emergency: true,
			Website: "https://stmarys.example.com",
		},
		{
			ID: 2, Name: "Advanced Wound Care Clinic", Type: "Clinic",
			Specialty: "Wound Management", Phone: "(555) 234-5678",
			Email: "contact@woundcare.example.com", Address: "567 Healing Way, City, ST 12345",
			Distance: "1.5 miles", Hours: "Mon-Fri 8AM-6PM", Rating: 4.6,
			Languages: []string{"English"}, Emergency: false,
			Website: "https://woundcare.example.com",
		},
		{
			ID: 3, Name: "City General Hospital", Type: "Hospital",
			Specialty: "General Surgery", Phone: "(555) 345-6789",
			Email: "info@citygeneral.example.com", Address: "789 Medical Blvd, City, ST 12345",
			Distance: "5.1 miles", Hours: "24/7 Emergency", Rating: 4.5,
			Languages: []string{"English", "Spanish", "Mandarin"}, Emergency: true,
			Website: "https://citygeneral.example.com",
		},
	}

	specialists = []models.Specialist{
		{
			ID: 1, Name: "Dr. Sarah Chen", Specialty: "Orthopedic Surgeon",
			Hospital: "St. Mary's Medical Center", Phone: "(555) 123-4570",
			Rating: 4.9, Experience: "15 years",
			Languages: []string{"English", "Mandarin"}, Accepting: true,
		},
		{
			ID: 2, Name: "Dr. Michael Rodriguez", Specialty: "Wound Care Specialist",
			Hospital: "Advanced Wound Care Clinic", Phone: "(555) 234-5680",
			Rating: 4.7, Experience: "12 years",
			Languages: []string{"English", "Spanish"}, Accepting: true,
		},
		{
			ID: 3, Name: "Dr. Emily Watson", Specialty: "Physical Therapist",
			Hospital: "City General Hospital", Phone: "(555) 345-6790",
			Rating: 4.8, Experience: "10 years",
			Languages: []string{"English"}, Accepting: true,
		},
	}

	videos = []models.Video{
		{
			ID: 1, Title: "Complete Guide to Post-Knee Surgery Care", Duration: "15:23",
			Category: "Knee Surgery", Views: 12500, Likes: 342, Comments: 89,
			Description: "Comprehensive guide covering wound care, medication management, and mobility exercises for knee replacement recovery.",
			Audience:    "Patient",
		},
		{
			ID: 2, Title: "Daily Wound Care for Elderly Patients", Duration: "8:45",
			Category: "Wound Care", Views: 8200, Likes: 256, Comments: 67,
			Description: "Step-by-step instructions for safe and effective wound care tailored for elderly patients.",
			Audience:    "Caregiver",
		},
		{
			ID: 3, Title: "Safe Patient Transfer Techniques", Duration: "6:15",
			Category: "Mobility", Views: 5600, Likes: 189, Comments: 45,
			Description: "Learn proper techniques for helping patients move safely after surgery.",
			Audience:    "Caregiver",
		},
		{
			ID: 4, Title: "Recognizing Infection Signs", Duration: "5:40",
			Category: "Monitoring", Views: 9200, Likes: 298, Comments: 78,
			Description: "Important warning signs to watch for that may indicate infection.",
			Audience:    "Both",
		},
		{
			ID: 5, Title: "Physical Therapy Exercises - Week 1", Duration: "12:30",
			Category: "Physical Therapy", Views: 6800, Likes: 201, Comments: 56,
			Description: "Gentle exercises to begin your recovery journey in the first week post-surgery.",
			Audience:    "Patient",
		},
		{
			ID: 6, Title: "Medication Management Best Practices", Duration: "7:20",
			Category: "Medication", Views: 4500, Likes: 134, Comments: 34,
			Description: "How to organize and track medications during recovery.",
			Audience:    "Both",
		},
	}
)

// containsFold - Case-insensitive substring check.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// searchHospitals - Filters hospitals by substring over name/specialty/address.
func searchHospitals(search string) []models.Hospital {
	if search == "" {
		return hospitals
	}
	matched := []models.Hospital{}
	for _, h := range hospitals {
		if containsFold(h.Name, search) || containsFold(h.Specialty, search) || containsFold(h.Address, search) {
			matched = append(matched, h)
		}
	}
	return matched
}

// searchSpecialists - Filters specialists by substring over name/specialty.
func searchSpecialists(search string) []models.Specialist {
	if search == "" {
		return specialists
	}
	matched := []models.Specialist{}
	for _, s := range specialists {
		if containsFold(s.Name, search) || containsFold(s.Specialty, search) {
			matched = append(matched, s)
		}
	}
	return matched
}

// searchVideos - Filters videos by substring over title/description/category,
// then by exact (case-insensitive) category match when one is given.
func searchVideos(search, category string) []models.Video {
	matched := []models.Video{}
	for _, v := range videos {
		if search != "" && !containsFold(v.Title, search) && !containsFold(v.Description, search) && !containsFold(v.Category, search) {
			continue
		}
		if category != "" && !strings.EqualFold(v.Category, category) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

// GetDirectory - Handler for GET /api/directory?search=
func GetDirectory(c *gin.Context) {
	search := c.Query("search")
	c.JSON(http.StatusOK, gin.H{
		"hospitals":   searchHospitals(search),
		"specialists": searchSpecialists(search),
	})
}

// GetVideos - Handler for GET /api/videos?search=&category=
func GetVideos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"videos": searchVideos(c.Query("search"), c.Query("category")),
	})
}

// GetHospitals - Handler for GET /api/hospitals?search=
func GetHospitals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hospitals": searchHospitals(c.Query("search"))})
}
