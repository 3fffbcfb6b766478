package main

import (
	"fmt"
	"log"
	"time"

	"oncall-directory-backend/internal/config"
	"oncall-directory-backend/internal/database"
	"oncall-directory-backend/internal/database/models"
	"oncall-directory-backend/internal/scheduling"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds a local database with a small provider directory, the fallback
// contacts for each specialty, and a week of on-call assignments starting
// today. Safe to re-run: everything is upserted on its natural key.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if err := seedDirectory(db); err != nil {
		log.Fatal("Failed to seed directory:", err)
	}
	if err := seedContacts(db); err != nil {
		log.Fatal("Failed to seed specialty contacts:", err)
	}
	if err := seedAssignments(db); err != nil {
		log.Fatal("Failed to seed assignments:", err)
	}

	log.Println("Seed complete")
}

func seedDirectory(db *gorm.DB) error {
	entries := []models.DirectoryEntry{
		{ProviderName: "Dr. Alice Hart", PhoneNumber: "+1-555-0101", Specialty: "Cardiology"},
		{ProviderName: "Dr. Ben Osei", PhoneNumber: "+1-555-0102", Specialty: "Cardiology"},
		{ProviderName: "Dr. Carla Mendes", PhoneNumber: "+1-555-0103", Specialty: models.SpecialtyInternalMedicine},
		{ProviderName: "Dr. David Kim", PhoneNumber: "+1-555-0104", Specialty: models.SpecialtyInternalMedicine},
		{ProviderName: "Dr. Erin Walsh", PhoneNumber: "+1-555-0105", Specialty: "Neurology"},
	}
	for i := range entries {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone_number", "specialty", "updated_at"}),
		}).Create(&entries[i]).Error
		if err != nil {
			return fmt.Errorf("seed directory entry %q: %w", entries[i].ProviderName, err)
		}
	}
	log.Printf("Seeded %d directory entries", len(entries))
	return nil
}

func seedContacts(db *gorm.DB) error {
	contacts := []models.SpecialtyContact{
		{Specialty: "Cardiology", Role: models.ContactRolePA, PhoneNumber: "+1-555-0201"},
		{Specialty: "Cardiology", Role: models.ContactRoleResidency, PhoneNumber: "+1-555-0202"},
		{Specialty: models.SpecialtyInternalMedicine, Role: models.ContactRoleResidency, PhoneNumber: "+1-555-0203"},
		{Specialty: "Neurology", Role: models.ContactRolePA, PhoneNumber: "+1-555-0204"},
	}
	for i := range contacts {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "specialty"}, {Name: "role"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone_number", "updated_at"}),
		}).Create(&contacts[i]).Error
		if err != nil {
			return fmt.Errorf("seed contact %s/%s: %w", contacts[i].Specialty, contacts[i].Role, err)
		}
	}
	log.Printf("Seeded %d specialty contacts", len(contacts))
	return nil
}

func seedAssignments(db *gorm.DB) error {
	hmo := "HMO Gold"
	ppo := "PPO Select"
	start := scheduling.NormalizeDay(time.Now())

	cardiology := []string{"Dr. Alice Hart", "Dr. Ben Osei"}
	internal := []string{"Dr. Carla Mendes", "Dr. David Kim"}

	var assignments []models.ScheduleAssignment
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		assignments = append(assignments,
			models.ScheduleAssignment{
				Date:               day,
				Specialty:          "Cardiology",
				ProviderName:       cardiology[i%len(cardiology)],
				SecondPhoneEnabled: i%2 == 0,
				SecondPhonePref:    models.SecondPhonePrefAuto,
			},
			models.ScheduleAssignment{
				Date:            day,
				Specialty:       models.SpecialtyInternalMedicine,
				HealthcarePlan:  &hmo,
				ProviderName:    internal[i%len(internal)],
				SecondPhonePref: models.SecondPhonePrefAuto,
			},
			models.ScheduleAssignment{
				Date:            day,
				Specialty:       models.SpecialtyInternalMedicine,
				HealthcarePlan:  &ppo,
				ProviderName:    internal[(i+1)%len(internal)],
				SecondPhonePref: models.SecondPhonePrefAuto,
			},
		)
	}

	for i := range assignments {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "specialty"}, {Name: "healthcare_plan"}},
			DoUpdates: clause.AssignmentColumns([]string{"provider_name", "second_phone_enabled", "second_phone_pref", "cover", "covering_provider", "updated_at"}),
		}).Create(&assignments[i]).Error
		if err != nil {
			return fmt.Errorf("seed assignment for %s: %w", assignments[i].Specialty, err)
		}
	}
	log.Printf("Seeded %d assignments over 7 days", len(assignments))
	return nil
}
