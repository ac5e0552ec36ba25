package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"or-caseflow-backend/internal/config"
	"or-caseflow-backend/internal/database"
	"or-caseflow-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RoomData struct {
	Name     string `yaml:"name"`
	Position int    `yaml:"position"`
}

type CaseData struct {
	ORRoom        string   `yaml:"or_room"`
	Date          string   `yaml:"date"`
	ScheduledTime string   `yaml:"scheduled_time"`
	Queue         int      `yaml:"queue"`
	Urgency       string   `yaml:"urgency,omitempty"`
	Period        string   `yaml:"period,omitempty"`
	HN            string   `yaml:"hn"`
	PatientName   string   `yaml:"patient_name"`
	Age           string   `yaml:"age,omitempty"`
	Department    string   `yaml:"department,omitempty"`
	Doctor        string   `yaml:"doctor"`
	Diagnoses     []string `yaml:"diagnoses,omitempty"`
	Operations    []string `yaml:"operations,omitempty"`
	Ward          string   `yaml:"ward,omitempty"`
	CaseSize      string   `yaml:"case_size,omitempty"`
	Assist1       string   `yaml:"assist1,omitempty"`
	Assist2       string   `yaml:"assist2,omitempty"`
	Scrub         string   `yaml:"scrub,omitempty"`
	Circulate     string   `yaml:"circulate,omitempty"`
}

// File structures
type RoomsFile struct {
	Rooms []RoomData `yaml:"rooms"`
}

type CasesFile struct {
	Cases []CaseData `yaml:"cases"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	rooms, err := loadRooms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	cases, err := loadCases(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}

	// Create rooms first so the board has its column layout
	roomCreated := 0
	for _, roomData := range rooms {
		created, err := createRoom(db, roomData)
		if err != nil {
			return fmt.Errorf("failed to create room %s: %w", roomData.Name, err)
		}
		if created {
			roomCreated++
		}
	}
	log.Printf("📋 Rooms: %d created, %d total", roomCreated, len(rooms))

	// Create cases
	caseCreated := 0
	for _, caseData := range cases {
		created, err := createCase(db, caseData)
		if err != nil {
			return fmt.Errorf("failed to create case %s: %w", caseData.HN, err)
		}
		if created {
			caseCreated++
		}
	}
	log.Printf("📋 Cases: %d created, %d total", caseCreated, len(cases))

	// A single seq bump is enough to make polling boards refetch
	if caseCreated > 0 || roomCreated > 0 {
		if err := bumpSeq(db); err != nil {
			return fmt.Errorf("failed to bump board counter: %w", err)
		}
	}

	return nil
}

func loadRooms(dataDir string) ([]RoomData, error) {
	path := filepath.Join(dataDir, "rooms.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file RoomsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Rooms, nil
}

func loadCases(dataDir string) ([]CaseData, error) {
	path := filepath.Join(dataDir, "cases.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file CasesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Cases, nil
}

func createRoom(db *gorm.DB, data RoomData) (bool, error) {
	name, ok := models.NormalizeRoomName(data.Name)
	if !ok {
		return false, fmt.Errorf("invalid room name %q", data.Name)
	}

	var existing models.ORRoom
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	room := models.ORRoom{Name: name, Position: data.Position}
	if err := db.Create(&room).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createCase(db *gorm.DB, data CaseData) (bool, error) {
	room := ""
	if data.ORRoom != "" {
		normalized, ok := models.NormalizeRoomName(data.ORRoom)
		if !ok {
			return false, fmt.Errorf("invalid room name %q", data.ORRoom)
		}
		room = normalized
	}

	record := models.CaseRecord{
		ORRoom:        room,
		Date:          data.Date,
		ScheduledTime: data.ScheduledTime,
		Queue:         data.Queue,
		Urgency:       models.Urgency(data.Urgency),
		Period:        models.Period(data.Period),
		HN:            data.HN,
		PatientName:   data.PatientName,
		Age:           data.Age,
		Department:    data.Department,
		Doctor:        data.Doctor,
		Diagnoses:     models.StringList(data.Diagnoses),
		Operations:    models.StringList(data.Operations),
		Ward:          data.Ward,
		CaseSize:      models.CaseSize(data.CaseSize),
		Assist1:       data.Assist1,
		Assist2:       data.Assist2,
		Scrub:         data.Scrub,
		Circulate:     data.Circulate,
		State:         models.CaseStateScheduled,
	}
	if record.Urgency == "" {
		record.Urgency = models.UrgencyElective
	}
	if record.Period == "" {
		record.Period = models.PeriodInHours
	}
	record.EnsureCaseUID()

	var existing models.CaseRecord
	err := db.Where("case_uid = ?", record.CaseUID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	if err := db.Create(&record).Error; err != nil {
		return false, err
	}
	return true, nil
}

func bumpSeq(db *gorm.DB) error {
	return db.Model(&models.BoardCounter{}).
		Where("id = ?", models.BoardCounterRowID).
		UpdateColumn("seq", gorm.Expr("seq + 1")).Error
}
