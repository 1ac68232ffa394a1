// database.go - Handles database connection, migration and demo seeding

package database // Declares the package name

import ( // Import required packages
	"surgiconnect-backend/config" // Project config
	"surgiconnect-backend/models" // Database models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error                                            // Declare error variable
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                          // If error, return it
		return err
	}

	// Auto-migrate all models (create tables if needed)
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Patient{},
		&models.Task{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.FamilyTask{},
		&models.CommunityTip{},
	); err != nil {
		return err
	}

	// Seed demo data if configured
	return seedDemoData()
}

// seedDemoData - Creates the demo accounts and records if configured and the
// database is empty. Gives the app a usable state out of the box without
// clobbering real data on later restarts.
func seedDemoData() error {
	cfg := config.Load() // Load configuration

	// Only seed if explicitly enabled (default on for the demo)
	if !cfg.SeedDemo {
		return nil
	}

	// Skip seeding entirely once any user exists
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	// Demo accounts share the password "demo123"
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sarah := models.User{
		Name:     "Sarah Johnson",
		Email:    "sarah@example.com",
		Password: string(hash),
		UserType: "patient",
		Phone:    "(555) 111-2222",
	}
	john := models.User{
		Name:     "John Johnson",
		Email:    "john@example.com",
		Password: string(hash),
		UserType: "family",
		Phone:    "(555) 111-2223",
	}
	if err := DB.Create(&sarah).Error; err != nil {
		return err
	}
	if err := DB.Create(&john).Error; err != nil {
		return err
	}

	// Demo patient record with its tasks and medications
	surgeryDate := "2025-01-15"
	patient := models.Patient{
		ID:          sarah.ID,
		UserID:      sarah.ID,
		Name:        sarah.Name,
		Procedure:   "Knee Replacement",
		SurgeryDate: &surgeryDate,
		DaysPostOp:  7,
		Tasks: []models.Task{
			{Title: "Morning Wound Inspection", Time: "9:00 AM", Category: "Wound Care"},
			{Title: "Take Prescribed Medication", Time: "10:00 AM", Category: "Medication"},
			{Title: "Light Walking Exercise", Time: "2:00 PM", Category: "Physical Therapy"},
			{Title: "Evening Dressing Change", Time: "7:00 PM", Category: "Wound Care"},
		},
		Medications: []models.Medication{
			{Name: "Ibuprofen 400mg", Frequency: "2x daily"},
			{Name: "Antibiotic", Frequency: "3x daily"},
		},
		PainLevel:   3,
		WoundStatus: "Healing Well",
	}
	if err := DB.Create(&patient).Error; err != nil {
		return err
	}

	// Demo caregiver tasks coordinated around the patient
	familyTasks := []models.FamilyTask{
		{PatientID: sarah.ID, Assignee: "John (Spouse)", Task: "Assist with morning wound cleaning", Time: "9:00 AM", Status: "completed"},
		{PatientID: sarah.ID, Assignee: "Emily (Daughter)", Task: "Prepare medication organizer", Time: "8:00 AM", Status: "completed"},
		{PatientID: sarah.ID, Assignee: "John (Spouse)", Task: "Help with mobility exercises", Time: "2:00 PM", Status: "pending"},
		{PatientID: sarah.ID, Assignee: "Emily (Daughter)", Task: "Evening dressing change assistance", Time: "7:00 PM", Status: "pending"},
	}
	if err := DB.Create(&familyTasks).Error; err != nil {
		return err
	}

	// Demo community tips against the video library
	videoID := func(id uint) *uint { return &id }
	tips := []models.CommunityTip{
		{
			VideoID:    videoID(1),
			VideoTitle: "Complete Guide to Post-Knee Surgery Care",
			Author:     "Maria T.",
			Content:    "This video helped us so much! The step-by-step approach made everything less overwhelming. My mom is recovering beautifully thanks to these tips.",
			Upvotes:    145,
		},
		{
			VideoID:    videoID(2),
			VideoTitle: "Daily Wound Care for Elderly Patients",
			Author:     "John K.",
			Content:    "Pro tip: We found that warming the saline solution slightly (not hot!) made the cleaning process more comfortable for my dad.",
			Upvotes:    98,
		},
		{
			VideoID:    videoID(3),
			VideoTitle: "Advanced Dressing Change Techniques",
			Author:     "Sarah M.",
			Content:    "As a nurse, I appreciate how accurate and detailed this is. Great resource for family caregivers!",
			Upvotes:    203,
		},
	}
	return DB.Create(&tips).Error
}
