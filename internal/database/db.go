package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dkarpov/hirehub/internal/models"
)

// Connect opens the Postgres connection and runs migrations. TranslateError
// is required: the unique indexes on accounts.email and the
// (applicant_id, job_id) pair are the only duplicate detection in the system,
// and services rely on gorm.ErrDuplicatedKey coming back from Create.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the three tables and their indexes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Account{}, &models.JobPosting{}, &models.Application{})
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
