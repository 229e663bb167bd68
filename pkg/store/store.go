// Package store persists submitted jobs in a sqlite database so job status
// and log locations survive daemon restarts.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrJobNotFound = errors.New("job not found")

// Mode records how a job was dispatched.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeBatch Mode = "batch"
)

// JobRecord is one submitted job. Resource directives are denormalized onto
// the record so a registry row is self-describing.
type JobRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"uniqueIndex"`
	Name      string
	Mode      Mode
	State     string
	ExitCode  int
	// SchedulerJobID is the external scheduler's id for batch jobs, zero for
	// local jobs.
	SchedulerJobID int64
	Partition      string
	CPUs           int
	GPUs           int
	MemoryBytes    uint64
	WallTimeSecs   int64
	LogPath        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Store wraps the gorm handle.
type Store struct {
	db *gorm.DB
}

// Open connects to (or creates) the sqlite database at path and migrates the
// schema. Use ":memory:" for an ephemeral registry.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open job registry %s: %w", path, err)
	}

	if err := db.AutoMigrate(&JobRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate job registry: %w", err)
	}

	return &Store{db: db}, nil
}

// Create inserts a new job record.
func (s *Store) Create(record *JobRecord) error {
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create job record: %w", err)
	}
	return nil
}

// Get looks a job up by its UUID.
func (s *Store) Get(jobUUID string) (*JobRecord, error) {
	var record JobRecord
	err := s.db.Where("uuid = ?", jobUUID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job record: %w", err)
	}
	return &record, nil
}

// UpdateState records a job's new state and exit code.
func (s *Store) UpdateState(jobUUID string, state string, exitCode int) error {
	result := s.db.Model(&JobRecord{}).
		Where("uuid = ?", jobUUID).
		Updates(map[string]interface{}{"state": state, "exit_code": exitCode})
	if result.Error != nil {
		return fmt.Errorf("failed to update job record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// List returns all job records, newest first.
func (s *Store) List() ([]JobRecord, error) {
	var records []JobRecord
	if err := s.db.Order("created_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list job records: %w", err)
	}
	return records, nil
}
