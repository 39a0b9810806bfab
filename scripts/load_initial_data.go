package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"practice-plan-backend/internal/config"
	"practice-plan-backend/internal/database"
	"practice-plan-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// libraryEmail owns every stock drill loaded by this script. The account
// cannot be logged into because its password is random and discarded.
const libraryEmail = "library@practice-plan.local"

// DrillData directly matches the drills table schema
type DrillData struct {
	Title             string   `yaml:"title"`
	Sport             string   `yaml:"sport"`
	ActivityType      string   `yaml:"activity_type"`
	Description       string   `yaml:"description"`
	DurationMinutes   int      `yaml:"duration_minutes"`
	Equipment         []string `yaml:"equipment,omitempty"`
	Participants      int      `yaml:"participants"`
	SkillLevel        string   `yaml:"skill_level"`
	Objectives        []string `yaml:"objectives,omitempty"`
	SetupInstructions string   `yaml:"setup_instructions,omitempty"`
	CoachingPoints    string   `yaml:"coaching_points,omitempty"`
	VideoURL          string   `yaml:"video_url,omitempty"`
	ImageURL          string   `yaml:"image_url,omitempty"`
}

type DrillsFile struct {
	Drills []DrillData `yaml:"drills"`
}

func main() {
	log.Println("Loading stock drill library from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDrillsFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load drills from YAML files: %v", err)
	}

	log.Println("Stock drill library loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDrillsFromYAMLFiles(db *gorm.DB, dataDir string) error {
	drills, err := loadDrills(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load drills: %w", err)
	}

	owner, err := ensureLibraryUser(db)
	if err != nil {
		return fmt.Errorf("failed to ensure library user: %w", err)
	}

	created := 0
	for _, drillData := range drills {
		_, wasCreated, err := createDrill(db, drillData, owner)
		if err != nil {
			log.Printf("Warning: failed to create drill %s: %v", drillData.Title, err)
			continue
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Drills: %d created, %d total", created, len(drills))

	return nil
}

func loadDrills(dataDir string) ([]DrillData, error) {
	var allDrills []DrillData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "drills") {
			var file DrillsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDrills = append(allDrills, file.Drills...)
		}
		return nil
	})

	return allDrills, err
}

// ensureLibraryUser finds or creates the account that owns stock drills
func ensureLibraryUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", libraryEmail).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprintf("unused-%d", time.Now().UnixNano())), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}

			user = models.User{
				Email:        libraryEmail,
				Name:         "Drill Library",
				PasswordHash: string(hash),
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, fmt.Errorf("failed to create library user: %w", err)
			}
			return &user, nil
		}
		return nil, fmt.Errorf("failed to query library user: %w", err)
	}

	return &user, nil
}

func createDrill(db *gorm.DB, drillData DrillData, owner *models.User) (*models.Drill, bool, error) {
	var drill models.Drill
	if err := db.Where("title = ? AND sport = ? AND user_id = ?", drillData.Title, drillData.Sport, owner.ID).First(&drill).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			equipmentJSON, _ := json.Marshal(drillData.Equipment)
			objectivesJSON, _ := json.Marshal(drillData.Objectives)

			skillLevel := models.SkillLevel(drillData.SkillLevel)
			if drillData.SkillLevel == "" {
				skillLevel = models.SkillAllLevels
			}

			drill = models.Drill{
				Title:             drillData.Title,
				Sport:             drillData.Sport,
				ActivityType:      drillData.ActivityType,
				Description:       drillData.Description,
				DurationMinutes:   drillData.DurationMinutes,
				Equipment:         equipmentJSON,
				Participants:      drillData.Participants,
				SkillLevel:        skillLevel,
				Objectives:        objectivesJSON,
				SetupInstructions: drillData.SetupInstructions,
				CoachingPoints:    drillData.CoachingPoints,
				VideoURL:          drillData.VideoURL,
				ImageURL:          drillData.ImageURL,
				IsCustom:          false,
				UserID:            owner.ID,
				PrivacyLevel:      models.PrivacyPublic,
			}

			if err := db.Create(&drill).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create drill: %w", err)
			}
			return &drill, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query drill: %w", err)
	}

	return &drill, false, nil // created = false (existing)
}
