package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryUncategorized is the normalized category for rows the master
// rate table did not classify. Aggregation and charting key off this
// value; sorting compares the raw (possibly empty) category string.
const CategoryUncategorized = "Uncategorized"

// LineDisplayNA is rendered wherever a row has no line number.
const LineDisplayNA = "N/A"

var (
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrMissingProposal  = errors.New("proposal file name is required")
)

// LineItem is one row of a vendor proposal. TotalPrice is derived state:
// it must always equal Quantity * Price and is never set directly by
// callers outside RecalculateTotal.
type LineItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Line        *int            `gorm:"index" json:"line"`
	Item        string          `gorm:"type:varchar(100);index" json:"item"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,4);default:0" json:"quantity"`
	Unit        string          `gorm:"type:varchar(50)" json:"unit"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_price"`
	Proposal    string          `gorm:"type:varchar(255);not null;index" json:"proposal"`
	CallOrder   *int            `json:"call_order,omitempty"`
	AgencyID    string          `gorm:"type:varchar(100)" json:"agency_id,omitempty"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"project_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}

	now := time.Now()
	if li.CreatedAt.IsZero() {
		li.CreatedAt = now
	}
	if li.UpdatedAt.IsZero() {
		li.UpdatedAt = now
	}

	li.RecalculateTotal()

	return li.Validate()
}

func (li *LineItem) BeforeUpdate(tx *gorm.DB) error {
	li.UpdatedAt = time.Now()
	return li.Validate()
}

func (li *LineItem) Validate() error {
	if li.Proposal == "" {
		return ErrMissingProposal
	}

	if li.Quantity.IsNegative() {
		return ErrNegativeQuantity
	}

	if li.Price.IsNegative() {
		return ErrNegativePrice
	}

	return nil
}

// RecalculateTotal restores the TotalPrice invariant from the current
// Quantity and Price. Every edit path that touches Price must call this
// before the row is considered valid.
func (li *LineItem) RecalculateTotal() {
	li.TotalPrice = li.Quantity.Mul(li.Price)
}

// SetPrice applies a new unit price and recomputes the derived total.
func (li *LineItem) SetPrice(price decimal.Decimal) {
	li.Price = price
	li.RecalculateTotal()
}

// NormalizedCategory maps an absent category to CategoryUncategorized.
func (li *LineItem) NormalizedCategory() string {
	if li.Category == "" {
		return CategoryUncategorized
	}
	return li.Category
}

// DisplayLine renders the line number, or "N/A" when absent.
func (li *LineItem) DisplayLine() string {
	if li.Line == nil {
		return LineDisplayNA
	}
	return strconv.Itoa(*li.Line)
}

// HasLine reports whether the row carries an explicit line number.
func (li *LineItem) HasLine() bool {
	return li.Line != nil
}

func (li *LineItem) TableName() string {
	return "proposal_line_items"
}
