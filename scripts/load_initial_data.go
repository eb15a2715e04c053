package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"recipeshare-backend/internal/config"
	"recipeshare-backend/internal/database"
	"recipeshare-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TagData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Slug  string `yaml:"slug"`
}

type TagsFile struct {
	Tags []TagData `yaml:"tags"`
}

func main() {
	log.Println("🚀 Loading initial data...")

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

	dataDir := "scripts/data"
	if err := loadTags(db, filepath.Join(dataDir, "tags.yaml")); err != nil {
		log.Fatalf("Failed to load tags: %v", err)
	}
	if err := loadIngredients(db, filepath.Join(dataDir, "ingredients.csv")); err != nil {
		log.Fatalf("Failed to load ingredients: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
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
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadTags reads tags.yaml and creates any tag not present yet, matched by slug.
func loadTags(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file TagsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created := 0
	for _, tagData := range file.Tags {
		var existing models.Tag
		err := db.Where("slug = ?", tagData.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up tag %s: %w", tagData.Slug, err)
		}

		tag := models.Tag{
			Name:  tagData.Name,
			Color: tagData.Color,
			Slug:  tagData.Slug,
		}
		if err := db.Create(&tag).Error; err != nil {
			return fmt.Errorf("failed to create tag %s: %w", tagData.Slug, err)
		}
		created++
	}

	log.Printf("📋 Tags: %d created, %d total", created, len(file.Tags))
	return nil
}

// loadIngredients reads a two-column CSV (name, measurement unit) and creates
// any pair not present yet.
func loadIngredients(db *gorm.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	total := 0
	created := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		total++

		name, unit := record[0], record[1]

		var existing models.Ingredient
		err = db.Where("name = ? AND measurement_unit = ?", name, unit).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up ingredient %s: %w", name, err)
		}

		ingredient := models.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		}
		if err := db.Create(&ingredient).Error; err != nil {
			return fmt.Errorf("failed to create ingredient %s: %w", name, err)
		}
		created++
	}

	log.Printf("📋 Ingredients: %d created, %d total", created, total)
	return nil
}
