package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditActionDeactivate is the action label written when a product is soft-deleted.
const AuditActionDeactivate = "DEACTIVATE"

type Product struct {
	BaseModel
	Name        string          `gorm:"size:200;not null;index" json:"name"`
	Description string          `gorm:"size:1000" json:"description,omitempty"`
	Category    string          `gorm:"size:100" json:"category,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`

	// Soft-delete bookkeeping. A deactivated product keeps its row so that
	// historical order items stay resolvable.
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
	DeletedByUserID *uuid.UUID `gorm:"type:uuid" json:"deletedByUserId,omitempty"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProductAudit is an append-only record of a product deactivation. Rows are never
// updated or removed, and deliberately carry no cascading foreign keys: they must
// outlive the product they describe.
type ProductAudit struct {
	ID                uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"productId"`
	Action            string     `gorm:"size:50;not null;default:'DEACTIVATE'" json:"action"`
	PerformedByUserID *uuid.UUID `gorm:"type:uuid" json:"performedByUserId,omitempty"`
	PerformedAt       time.Time  `gorm:"autoCreateTime" json:"performedAt"`
	Notes             string     `gorm:"size:1000" json:"notes,omitempty"`
}
