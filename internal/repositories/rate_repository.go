package repositories

import (
	"errors"
	"fmt"

	"costbook/internal/models"

	"gorm.io/gorm"
)

var ErrNoMasterRates = errors.New("no master rates loaded")

const rateBatchSize = 500

// RateRepository handles database operations for the master rate table
type RateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new rate repository
func NewRateRepository(db *gorm.DB) RateRepositoryInterface {
	return &RateRepository{
		db: db,
	}
}

// ReplaceAll swaps the entire master rate table for a new upload inside
// a single transaction. A re-upload fully supersedes the previous table.
func (r *RateRepository) ReplaceAll(entries []models.RateEntry) error {
	if len(entries) == 0 {
		return errors.New("entries cannot be empty")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RateEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear master rates: %w", err)
		}

		if err := tx.CreateInBatches(entries, rateBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert master rates: %w", err)
		}

		return nil
	})
}

// GetAll retrieves the full master rate table
func (r *RateRepository) GetAll() ([]models.RateEntry, error) {
	var entries []models.RateEntry

	if err := r.db.Order("item_code ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get master rates: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNoMasterRates
	}

	return entries, nil
}

// Count returns the number of master rate entries
func (r *RateRepository) Count() (int64, error) {
	var count int64

	if err := r.db.Model(&models.RateEntry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count master rates: %w", err)
	}

	return count, nil
}
