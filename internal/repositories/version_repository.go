package repositories

import (
	"errors"
	"fmt"

	"costbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVersionNotFound = errors.New("master file version not found")

// VersionRepository handles database operations for master file versions
type VersionRepository struct {
	db *gorm.DB
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(db *gorm.DB) VersionRepositoryInterface {
	return &VersionRepository{
		db: db,
	}
}

// Create stores a new master file version
func (r *VersionRepository) Create(version *models.MasterFileVersion) error {
	if version == nil {
		return errors.New("version cannot be nil")
	}

	if err := r.db.Create(version).Error; err != nil {
		return fmt.Errorf("failed to create master file version: %w", err)
	}

	return nil
}

// GetByID retrieves a master file version by its ID
func (r *VersionRepository) GetByID(id uuid.UUID) (*models.MasterFileVersion, error) {
	version := &models.MasterFileVersion{ID: id}
	if err := r.db.First(version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get master file version: %w", err)
	}

	return version, nil
}

// List retrieves all master file versions, newest first, without file bodies
func (r *VersionRepository) List() ([]models.MasterFileVersion, error) {
	var versions []models.MasterFileVersion

	if err := r.db.Select("id", "name", "file_path", "date").Order("date DESC").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to list master file versions: %w", err)
	}

	return versions, nil
}

// Latest retrieves the most recent master file version
func (r *VersionRepository) Latest() (*models.MasterFileVersion, error) {
	var version models.MasterFileVersion

	if err := r.db.Order("date DESC").First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get latest master file version: %w", err)
	}

	return &version, nil
}
