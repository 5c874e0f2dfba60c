package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CesarAntIT/SmallDeliverySystem/logger"
	"github.com/CesarAntIT/SmallDeliverySystem/models"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
	maxCategoryLength    = 100

	DefaultPageSize          = 10
	DefaultLowStockThreshold = 5
)

// DeleteOutcome tags which of the two delete modes actually happened.
type DeleteOutcome string

const (
	OutcomeHardDeleted     DeleteOutcome = "hard_deleted"     // no order items referenced the product
	OutcomeDeactivated     DeleteOutcome = "deactivated"      // soft-deleted with an audit row
	OutcomeAlreadyInactive DeleteOutcome = "already_inactive" // idempotent no-op
)

type SearchParams struct {
	Term       string
	Category   string
	ActiveOnly bool
	Page       int
	PageSize   int
}

type PagedProducts struct {
	Items      []models.Product `json:"items"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// ProductDetails is a product plus how many order items reference it.
type ProductDetails struct {
	models.Product
	TotalOrderItems int64 `json:"totalOrderItems"`
}

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    *bool           `json:"isActive"` // update only; ignored on create
}

type ProductService struct {
	store ProductStore
	log   *logger.Logger
}

func NewProductService(store ProductStore, log *logger.Logger) *ProductService {
	return &ProductService{store: store, log: log}
}

// Search returns one page of products ordered by name, with a total count
// computed under the same predicate.
func (s *ProductService) Search(ctx context.Context, params SearchParams) (*PagedProducts, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = DefaultPageSize
	}

	filter := ProductFilter{
		Term:       strings.TrimSpace(params.Term),
		Category:   strings.TrimSpace(params.Category),
		ActiveOnly: params.ActiveOnly,
		Offset:     (params.Page - 1) * params.PageSize,
		Limit:      params.PageSize,
	}

	items, total, err := s.store.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if items == nil {
		items = []models.Product{}
	}

	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	return &PagedProducts{
		Items:      items,
		TotalCount: total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductDetails, error) {
	product, err := s.store.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	count, err := s.store.CountOrderItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count order items: %w", err)
	}
	return &ProductDetails{Product: *product, TotalOrderItems: count}, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price.Round(2),
		Stock:       input.Stock,
		IsActive:    true,
	}
	if err := s.store.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	s.log.Infow("product created", "productId", product.ID, "name", product.Name)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.store.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Category = strings.TrimSpace(input.Category)
	product.Price = input.Price.Round(2)
	product.Stock = input.Stock
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error {
	if newStock < 0 {
		ve := newValidationError()
		ve.Fields["stock"] = "stock cannot be negative"
		return ve
	}

	product, err := s.store.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	product.Stock = newStock
	product.LastUpdatedAt = time.Now().UTC()
	return s.store.Update(ctx, product)
}

// Delete removes a product physically when nothing references it, and
// deactivates it with an audit row otherwise. Deleting an already-inactive
// product is a no-op success.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID, deletedBy *uuid.UUID) (DeleteOutcome, error) {
	// Look past the active-only filter so a repeated delete is detected as
	// "already gone" instead of "not found".
	product, err := s.store.FindByID(ctx, id, true)
	if err != nil {
		return "", err
	}
	if !product.IsActive {
		return OutcomeAlreadyInactive, nil
	}

	references, err := s.store.CountOrderItems(ctx, id)
	if err != nil {
		return "", fmt.Errorf("count order items: %w", err)
	}

	if references == 0 {
		if err := s.store.HardDelete(ctx, id); err != nil {
			return "", fmt.Errorf("hard delete product: %w", err)
		}
		s.log.Infow("product deleted", "productId", id)
		return OutcomeHardDeleted, nil
	}

	now := time.Now().UTC()
	product.IsActive = false
	product.DeletedAt = &now
	product.DeletedByUserID = deletedBy
	product.LastUpdatedAt = now

	audit := &models.ProductAudit{
		ProductID:         id,
		Action:            models.AuditActionDeactivate,
		PerformedByUserID: deletedBy,
		PerformedAt:       now,
		Notes:             fmt.Sprintf("referenced by %d order item(s)", references),
	}

	if err := s.store.DeactivateWithAudit(ctx, product, audit); err != nil {
		return "", fmt.Errorf("deactivate product: %w", err)
	}
	s.log.Infow("product deactivated", "productId", id, "orderItems", references)
	return OutcomeDeactivated, nil
}

func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

func (s *ProductService) ListLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.store.LowStock(ctx, threshold)
}

func validateProductInput(input ProductInput) error {
	ve := newValidationError()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		ve.Fields["name"] = "name is required"
	} else if len(name) > maxNameLength {
		ve.Fields["name"] = fmt.Sprintf("name must be at most %d characters", maxNameLength)
	}
	if len(input.Description) > maxDescriptionLength {
		ve.Fields["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLength)
	}
	if len(input.Category) > maxCategoryLength {
		ve.Fields["category"] = fmt.Sprintf("category must be at most %d characters", maxCategoryLength)
	}
	if !input.Price.IsPositive() {
		ve.Fields["price"] = "price must be greater than zero"
	}
	if input.Stock < 0 {
		ve.Fields["stock"] = "stock cannot be negative"
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
