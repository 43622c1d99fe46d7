package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrMissingItemCode = errors.New("item code is required")

// RateEntry is one row of the master reference rate table. Populate
// matches proposal line items against it by exact item code.
type RateEntry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ItemCode        string          `gorm:"type:varchar(100);not null;index" json:"item_code"`
	ItemDescription string          `gorm:"type:text" json:"item_description"`
	Unit            string          `gorm:"type:varchar(50)" json:"unit"`
	Rate            decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"rate"`
	Category        string          `gorm:"type:varchar(100)" json:"category"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

func (re *RateEntry) BeforeCreate(tx *gorm.DB) error {
	if re.ID == uuid.Nil {
		re.ID = uuid.New()
	}

	if re.CreatedAt.IsZero() {
		re.CreatedAt = time.Now()
	}

	return re.Validate()
}

func (re *RateEntry) Validate() error {
	if re.ItemCode == "" {
		return ErrMissingItemCode
	}
	return nil
}

func (re *RateEntry) TableName() string {
	return "master_rate_entries"
}

// RateLookup is an item-code keyed view of the master table used by the
// populate path.
type RateLookup map[string]RateEntry

// BuildRateLookup indexes rate entries by item code. Later entries win
// on duplicate codes, matching upload order.
func BuildRateLookup(entries []RateEntry) RateLookup {
	lookup := make(RateLookup, len(entries))
	for _, entry := range entries {
		lookup[entry.ItemCode] = entry
	}
	return lookup
}

// Resolve returns the rate and category for an item code. Unknown codes
// resolve to a zero rate and an empty category, which aggregation later
// normalizes to Uncategorized.
func (rl RateLookup) Resolve(itemCode string) (decimal.Decimal, string, bool) {
	entry, ok := rl[itemCode]
	if !ok {
		return decimal.Zero, "", false
	}
	return entry.Rate, entry.Category, true
}
