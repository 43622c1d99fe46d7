package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterFileVersion keeps one uploaded master rate workbook verbatim so
// earlier rate tables can be inspected after re-uploads.
type MasterFileVersion struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	FilePath    string    `gorm:"type:varchar(512);not null" json:"file_path"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	FileContent []byte    `gorm:"type:bytea" json:"-"`
}

func (v *MasterFileVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	if v.Date.IsZero() {
		v.Date = time.Now()
	}
	return nil
}

func (v *MasterFileVersion) TableName() string {
	return "master_file_versions"
}
