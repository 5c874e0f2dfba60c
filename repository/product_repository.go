package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// ProductRepository is the gorm-backed persistence gateway for products.
type ProductRepository struct {
	db *gorm.DB
}

var _ services.ProductStore = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*models.Product, error) {
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var product models.Product
	if err := query.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Search(ctx context.Context, f services.ProductFilter) ([]models.Product, int64, error) {
	// Both the count and the page run under the same conditions so the
	// reported total matches the rows returned.
	apply := func(q *gorm.DB) *gorm.DB {
		if f.ActiveOnly {
			q = q.Where("is_active = ?", true)
		}
		if f.Term != "" {
			like := "%" + f.Term + "%"
			q = q.Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", like, like, like)
		}
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		return q
	}

	var total int64
	if err := apply(r.db.WithContext(ctx).Model(&models.Product{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := apply(r.db.WithContext(ctx).Model(&models.Product{})).
		Order("name ASC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *ProductRepository) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND stock <= ?", true, threshold).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) CountOrderItems(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *ProductRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// DeactivateWithAudit flips the product inactive and appends the audit row in
// one transaction. A torn state (deactivated but unaudited, or the reverse)
// must never be observable.
func (r *ProductRepository) DeactivateWithAudit(ctx context.Context, p *models.Product, audit *models.ProductAudit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
}
