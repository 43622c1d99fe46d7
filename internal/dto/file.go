package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// File / line item Request DTOs

// UpdateLineItemRequest edits the unit price of one worksheet row. The
// row is addressed by its stable row handle, never by display position.
// NewPrice arrives as raw text; values that do not parse become zero.
type UpdateLineItemRequest struct {
	FileName string `json:"file_name" validate:"required"`
	RowID    string `json:"row_id" validate:"required,uuid4"`
	NewPrice string `json:"new_price"`
}

// File / line item Response DTOs

// LineItemResponse is one worksheet row as rendered to the client
type LineItemResponse struct {
	RowID       string          `json:"row_id"`
	Line        string          `json:"line"`
	Item        string          `json:"item"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// FileContentsResponse is a loaded worksheet with its running total
type FileContentsResponse struct {
	FileName  string             `json:"file_name"`
	Items     []LineItemResponse `json:"items"`
	TotalCost decimal.Decimal    `json:"total_cost"`
}

// FileListResponse lists the proposal files stored for a project
type FileListResponse struct {
	Files []string `json:"files"`
}

// UpdateLineItemResponse returns the edited row and the new total
type UpdateLineItemResponse struct {
	Row       LineItemResponse `json:"row"`
	TotalCost decimal.Decimal  `json:"total_cost"`
}

// PopulateResponse is the worksheet after reconciliation against the
// master rate table
type PopulateResponse struct {
	FileName  string             `json:"file_name"`
	Items     []LineItemResponse `json:"items"`
	TotalCost decimal.Decimal    `json:"total_cost"`
	Matched   int                `json:"matched"`
	Unmatched int                `json:"unmatched"`
}

// UploadResponse acknowledges a stored proposal upload
type UploadResponse struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
}

// ChartResponse carries parallel vectors for category visualization
type ChartResponse struct {
	Labels      []string          `json:"labels"`
	Values      []decimal.Decimal `json:"values"`
	Percentages []decimal.Decimal `json:"percentages"`
	Colors      []string          `json:"colors"`
}

// VersionResponse is one archived master rate workbook
type VersionResponse struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// VersionListResponse lists archived master rate workbooks, newest first
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
}
