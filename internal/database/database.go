package database

import (
	"fmt"
	"time"

	"claims-portal-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Model + relation name, created after the tables exist. Relations with an
// inverse (Center.Departments, Center.Lecturers) are declared on the parent.
var foreignKeys = []struct {
	model    interface{}
	relation string
}{
	{&models.Center{}, "Coordinator"},
	{&models.Center{}, "Departments"},
	{&models.Center{}, "Lecturers"},
	{&models.User{}, "Department"},
	{&models.Claim{}, "SubmittedBy"},
	{&models.Claim{}, "ProcessedBy"},
	{&models.Claim{}, "Center"},
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
// users and centers reference each other, so tables are migrated first and
// foreign keys are added in a second phase.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(opts.LogLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates tables, indexes, check constraints and foreign keys.
// Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	all := []interface{}{
		&models.User{},
		&models.Center{},
		&models.Department{},
		&models.Claim{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	m := db.Migrator()
	for _, fk := range foreignKeys {
		if m.HasConstraint(fk.model, fk.relation) {
			continue
		}
		if err := m.CreateConstraint(fk.model, fk.relation); err != nil {
			return fmt.Errorf("create constraint %s: %w", fk.relation, err)
		}
	}
	return nil
}
