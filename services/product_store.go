package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
)

// ProductFilter is the predicate shared by the page query and the total count,
// so pagination metadata always agrees with the returned rows.
type ProductFilter struct {
	Term       string // case-insensitive substring over name/description/category
	Category   string // exact match
	ActiveOnly bool
	Offset     int
	Limit      int
}

// ProductStore is the persistence gateway for products. Implementations must
// return ErrProductNotFound for absent rows and must commit DeactivateWithAudit
// atomically: the product flip and the audit insert both land or neither does.
type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error

	// FindByID excludes soft-deleted rows unless includeInactive is set. The
	// delete path opts in so a second delete sees "already inactive" rather
	// than "not found".
	FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*models.Product, error)

	Search(ctx context.Context, f ProductFilter) ([]models.Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
	LowStock(ctx context.Context, threshold int) ([]models.Product, error)

	CountOrderItems(ctx context.Context, productID uuid.UUID) (int64, error)

	HardDelete(ctx context.Context, id uuid.UUID) error
	DeactivateWithAudit(ctx context.Context, p *models.Product, audit *models.ProductAudit) error
}
