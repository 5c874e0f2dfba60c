package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the identity and bookkeeping columns shared by every entity.
type BaseModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"lastUpdatedAt"`
}

// BeforeCreate assigns a fresh UUID when the caller did not set one.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
