package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/database"
	"duty-roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DepartmentData matches one department entry in the seed file
type DepartmentData struct {
	Name string `yaml:"name"`
}

// SoldierData matches one soldier entry in the seed file
type SoldierData struct {
	FullName   string `yaml:"full_name"`
	PhoneE164  string `yaml:"phone_e164"`
	Department string `yaml:"department"`
	Status     string `yaml:"status,omitempty"`
}

// DutyTypeData matches one duty type entry in the seed file
type DutyTypeData struct {
	Name                  string  `yaml:"name"`
	Category              string  `yaml:"category"`
	WeightPoints          float64 `yaml:"weight_points"`
	DefaultRequiredPeople int     `yaml:"default_required_people"`
	DefaultFrequency      string  `yaml:"default_frequency"`
	ScheduleKind          string  `yaml:"schedule_kind,omitempty"`
	DefaultStartHour      *int    `yaml:"default_start_hour,omitempty"`
	DefaultEndHour        *int    `yaml:"default_end_hour,omitempty"`
	RotationIntervalHours *int    `yaml:"rotation_interval_hours,omitempty"`
}

// RosterFile is the top-level structure of the seed file
type RosterFile struct {
	Departments []DepartmentData `yaml:"departments"`
	Soldiers    []SoldierData    `yaml:"soldiers"`
	DutyTypes   []DutyTypeData   `yaml:"duty_types"`
}

func main() {
	log.Println("Loading roster seed data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadRoster(db, filepath.Join("scripts", "data", "roster.yaml")); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

// connectWithRetry waits for Postgres readiness when running against a
// freshly started container.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
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

func loadRoster(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var roster RosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	departmentsByName := make(map[string]*models.Department, len(roster.Departments))
	for _, deptData := range roster.Departments {
		dept, err := upsertDepartment(db, deptData)
		if err != nil {
			return fmt.Errorf("failed to load department %q: %w", deptData.Name, err)
		}
		departmentsByName[dept.Name] = dept
	}
	log.Printf("Loaded %d departments", len(roster.Departments))

	for _, soldierData := range roster.Soldiers {
		if err := upsertSoldier(db, soldierData, departmentsByName); err != nil {
			return fmt.Errorf("failed to load soldier %q: %w", soldierData.FullName, err)
		}
	}
	log.Printf("Loaded %d soldiers", len(roster.Soldiers))

	for _, dutyTypeData := range roster.DutyTypes {
		if err := upsertDutyType(db, dutyTypeData); err != nil {
			return fmt.Errorf("failed to load duty type %q: %w", dutyTypeData.Name, err)
		}
	}
	log.Printf("Loaded %d duty types", len(roster.DutyTypes))

	return nil
}

func upsertDepartment(db *gorm.DB, data DepartmentData) (*models.Department, error) {
	var dept models.Department
	if err := db.Where("name = ?", data.Name).First(&dept).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		dept = models.Department{Name: data.Name}
		if err := db.Create(&dept).Error; err != nil {
			return nil, err
		}
	}
	return &dept, nil
}

func upsertSoldier(db *gorm.DB, data SoldierData, departments map[string]*models.Department) error {
	dept, ok := departments[data.Department]
	if !ok {
		return fmt.Errorf("unknown department %q", data.Department)
	}

	status := models.SoldierStatus(data.Status)
	if data.Status == "" {
		status = models.SoldierStatusActive
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", data.Status)
	}

	var soldier models.Soldier
	if err := db.Where("phone_e164 = ?", data.PhoneE164).First(&soldier).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		soldier = models.Soldier{
			FullName:     data.FullName,
			PhoneE164:    data.PhoneE164,
			DepartmentID: dept.ID,
			Status:       status,
		}
		return db.Create(&soldier).Error
	}

	soldier.FullName = data.FullName
	soldier.DepartmentID = dept.ID
	soldier.Status = status
	return db.Save(&soldier).Error
}

func upsertDutyType(db *gorm.DB, data DutyTypeData) error {
	kind := models.ScheduleKindDaily
	if data.ScheduleKind != "" {
		kind = models.ScheduleKind(data.ScheduleKind)
		if !kind.IsValid() {
			return fmt.Errorf("invalid schedule kind %q", data.ScheduleKind)
		}
	}

	frequency := models.DutyFrequencyDaily
	if data.DefaultFrequency != "" {
		frequency = models.DutyFrequency(data.DefaultFrequency)
		if !frequency.IsValid() {
			return fmt.Errorf("invalid frequency %q", data.DefaultFrequency)
		}
	}

	dutyType := models.DutyType{
		Name:                  data.Name,
		Category:              data.Category,
		WeightPoints:          data.WeightPoints,
		DefaultRequiredPeople: data.DefaultRequiredPeople,
		DefaultFrequency:      frequency,
		ScheduleKind:          kind,
		DefaultStartHour:      8,
		DefaultEndHour:        20,
		RotationIntervalHours: 2,
		IsActive:              true,
	}
	if data.DefaultStartHour != nil {
		dutyType.DefaultStartHour = *data.DefaultStartHour
	}
	if data.DefaultEndHour != nil {
		dutyType.DefaultEndHour = *data.DefaultEndHour
	}
	if data.RotationIntervalHours != nil {
		dutyType.RotationIntervalHours = *data.RotationIntervalHours
	}

	var existing models.DutyType
	if err := db.Where("name = ?", data.Name).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return db.Create(&dutyType).Error
	}

	dutyType.BaseModel = existing.BaseModel
	return db.Save(&dutyType).Error
}
