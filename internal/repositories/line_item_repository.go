package repositories

import (
	"errors"
	"fmt"

	"costbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrProposalNotFound = errors.New("proposal not found")
)

const lineItemBatchSize = 500

// LineItemRepository handles database operations for proposal line items
type LineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository creates a new line item repository
func NewLineItemRepository(db *gorm.DB) LineItemRepositoryInterface {
	return &LineItemRepository{
		db: db,
	}
}

// CreateBatch inserts line items in batches
func (r *LineItemRepository) CreateBatch(items []models.LineItem) error {
	if len(items) == 0 {
		return errors.New("items cannot be empty")
	}

	if err := r.db.CreateInBatches(items, lineItemBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create line items: %w", err)
	}

	return nil
}

// GetByID retrieves a line item by its ID
func (r *LineItemRepository) GetByID(id uuid.UUID) (*models.LineItem, error) {
	lineItem := &models.LineItem{ID: id}
	if err := r.db.First(lineItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineItemNotFound
		}
		return nil, fmt.Errorf("failed to get line item by ID: %w", err)
	}

	return lineItem, nil
}

// GetByProposal retrieves the line items of a proposal in upload order
func (r *LineItemRepository) GetByProposal(proposal string) ([]models.LineItem, error) {
	var items []models.LineItem

	if err := r.db.Where("proposal = ?", proposal).Order("created_at ASC, line ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get line items by proposal: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrProposalNotFound
	}

	return items, nil
}

// ListProposals returns the distinct proposal names stored for a project
func (r *LineItemRepository) ListProposals(projectID uuid.UUID) ([]string, error) {
	var proposals []string

	if err := r.db.Model(&models.LineItem{}).
		Where("project_id = ?", projectID).
		Distinct("proposal").
		Order("proposal ASC").
		Pluck("proposal", &proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	return proposals, nil
}

// ProposalExists reports whether any line items exist for a proposal name
func (r *LineItemRepository) ProposalExists(proposal string) (bool, error) {
	var count int64

	if err := r.db.Model(&models.LineItem{}).Where("proposal = ?", proposal).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check proposal existence: %w", err)
	}

	return count > 0, nil
}

// UpdatePrice atomically updates a line item's price and extended total
func (r *LineItemRepository) UpdatePrice(id uuid.UUID, price, totalPrice decimal.Decimal) error {
	result := r.db.Model(&models.LineItem{ID: id}).Updates(map[string]interface{}{
		"price":       price,
		"total_price": totalPrice,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update line item price: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrLineItemNotFound
	}

	return nil
}

// ReplaceProposal swaps the stored line items of a proposal for a new
// set inside a single transaction.
func (r *LineItemRepository) ReplaceProposal(proposal string, items []models.LineItem) error {
	if proposal == "" {
		return errors.New("proposal cannot be empty")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal = ?", proposal).Delete(&models.LineItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing line items: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(items, lineItemBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert replacement line items: %w", err)
		}

		return nil
	})
}

// DeleteByProposal removes all line items of a proposal
func (r *LineItemRepository) DeleteByProposal(proposal string) error {
	result := r.db.Where("proposal = ?", proposal).Delete(&models.LineItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete line items: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProposalNotFound
	}

	return nil
}
