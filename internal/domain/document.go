package domain

import (
	"time"

	"gorm.io/gorm"
)

// Document is a schemaless record persisted by the SQL document backend.
// Body holds the JSON encoding of the stored value.
type Document struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Collection string    `gorm:"size:128;not null;index" json:"collection"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}

// BeforeCreate hook
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return nil
}
