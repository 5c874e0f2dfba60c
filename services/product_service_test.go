package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/CesarAntIT/SmallDeliverySystem/logger"
	"github.com/CesarAntIT/SmallDeliverySystem/models"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
	"github.com/CesarAntIT/SmallDeliverySystem/testutil"
)

type ProductServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *testutil.InMemoryProductStore
	service *services.ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutil.NewInMemoryProductStore()
	s.service = services.NewProductService(s.store, logger.NewNop())
}

func (s *ProductServiceSuite) createProduct(name, category string, price float64, stock int) *models.Product {
	product, err := s.service.Create(s.ctx, services.ProductInput{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
	})
	s.Require().NoError(err)
	return product
}

func (s *ProductServiceSuite) TestCreateSetsDefaultsAndIsRetrievable() {
	product := s.createProduct("Widget", "tools", 9.99, 10)

	s.True(product.IsActive)
	s.NotEqual(uuid.Nil, product.ID)
	s.False(product.CreatedAt.IsZero())
	s.False(product.LastUpdatedAt.IsZero())

	details, err := s.service.GetByID(s.ctx, product.ID)
	s.Require().NoError(err)
	s.Equal("Widget", details.Name)
	s.Equal(int64(0), details.TotalOrderItems)
	s.True(details.Price.Equal(decimal.NewFromFloat(9.99)))
}

func (s *ProductServiceSuite) TestCreateRejectsInvalidInput() {
	_, err := s.service.Create(s.ctx, services.ProductInput{
		Name:  "  ",
		Price: decimal.Zero,
		Stock: -3,
	})
	s.Require().Error(err)

	ve, ok := services.AsValidationError(err)
	s.Require().True(ok)
	s.Contains(ve.Fields, "name")
	s.Contains(ve.Fields, "price")
	s.Contains(ve.Fields, "stock")
}

func (s *ProductServiceSuite) TestGetByIDNotFound() {
	_, err := s.service.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, services.ErrProductNotFound)
}

func (s *ProductServiceSuite) TestDeleteUnreferencedProductIsPhysical() {
	product := s.createProduct("Widget", "", 9.99, 10)

	outcome, err := s.service.Delete(s.ctx, product.ID, nil)
	s.Require().NoError(err)
	s.Equal(services.OutcomeHardDeleted, outcome)

	_, err = s.service.GetByID(s.ctx, product.ID)
	s.ErrorIs(err, services.ErrProductNotFound)

	// The row is gone even when the active-only filter is bypassed.
	_, err = s.store.FindByID(s.ctx, product.ID, true)
	s.ErrorIs(err, services.ErrProductNotFound)
	s.Empty(s.store.Audits())
}

func (s *ProductServiceSuite) TestDeleteReferencedProductDeactivatesWithAudit() {
	product := s.createProduct("Gadget", "", 4.50, 3)
	s.store.AddOrderItemReference(product.ID)

	actor := uuid.New()
	outcome, err := s.service.Delete(s.ctx, product.ID, &actor)
	s.Require().NoError(err)
	s.Equal(services.OutcomeDeactivated, outcome)

	stored, err := s.store.FindByID(s.ctx, product.ID, true)
	s.Require().NoError(err)
	s.False(stored.IsActive)
	s.Require().NotNil(stored.DeletedAt)
	s.Require().NotNil(stored.DeletedByUserID)
	s.Equal(actor, *stored.DeletedByUserID)

	audits := s.store.Audits()
	s.Require().Len(audits, 1)
	s.Equal(models.AuditActionDeactivate, audits[0].Action)
	s.Equal(product.ID, audits[0].ProductID)
	s.Require().NotNil(audits[0].PerformedByUserID)
	s.Equal(actor, *audits[0].PerformedByUserID)

	// Deactivated products fall out of default reads.
	_, err = s.service.GetByID(s.ctx, product.ID)
	s.ErrorIs(err, services.ErrProductNotFound)
}

func (s *ProductServiceSuite) TestDeleteIsIdempotent() {
	product := s.createProduct("Gadget", "", 4.50, 3)
	s.store.AddOrderItemReference(product.ID)

	outcome, err := s.service.Delete(s.ctx, product.ID, nil)
	s.Require().NoError(err)
	s.Equal(services.OutcomeDeactivated, outcome)

	outcome, err = s.service.Delete(s.ctx, product.ID, nil)
	s.Require().NoError(err)
	s.Equal(services.OutcomeAlreadyInactive, outcome)

	// The second call must not append another audit row.
	s.Len(s.store.Audits(), 1)
}

func (s *ProductServiceSuite) TestDeleteNotFound() {
	_, err := s.service.Delete(s.ctx, uuid.New(), nil)
	s.ErrorIs(err, services.ErrProductNotFound)
}

func (s *ProductServiceSuite) TestSearchActiveOnlyExcludesDeactivated() {
	s.createProduct("Apple", "fruit", 1.00, 5)
	s.createProduct("Banana", "fruit", 2.00, 5)
	inactive := s.createProduct("Cherry", "fruit", 3.00, 5)
	s.store.AddOrderItemReference(inactive.ID)
	_, err := s.service.Delete(s.ctx, inactive.ID, nil)
	s.Require().NoError(err)

	result, err := s.service.Search(s.ctx, services.SearchParams{ActiveOnly: true, Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), result.TotalCount)
	for _, p := range result.Items {
		s.True(p.IsActive)
	}

	// Opting out of the filter surfaces the deactivated row again.
	result, err = s.service.Search(s.ctx, services.SearchParams{ActiveOnly: false, Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(3), result.TotalCount)
}

func (s *ProductServiceSuite) TestSearchPaginationOrdersByName() {
	s.createProduct("Delta", "", 1.00, 1)
	s.createProduct("Alpha", "", 1.00, 1)
	s.createProduct("Charlie", "", 1.00, 1)
	s.createProduct("Bravo", "", 1.00, 1)

	result, err := s.service.Search(s.ctx, services.SearchParams{ActiveOnly: true, Page: 2, PageSize: 2})
	s.Require().NoError(err)
	s.Equal(int64(4), result.TotalCount)
	s.Equal(2, result.TotalPages)
	s.Require().Len(result.Items, 2)
	s.Equal("Charlie", result.Items[0].Name)
	s.Equal("Delta", result.Items[1].Name)
}

func (s *ProductServiceSuite) TestSearchByTermAndCategory() {
	s.createProduct("Hammer", "tools", 10.00, 5)
	s.createProduct("Screwdriver", "tools", 5.00, 5)
	s.createProduct("Notebook", "office", 2.00, 5)

	result, err := s.service.Search(s.ctx, services.SearchParams{Term: "hamm", ActiveOnly: true, Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(1), result.TotalCount)
	s.Equal("Hammer", result.Items[0].Name)

	result, err = s.service.Search(s.ctx, services.SearchParams{Category: "tools", ActiveOnly: true, Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), result.TotalCount)

	result, err = s.service.Search(s.ctx, services.SearchParams{Term: "missing", ActiveOnly: true, Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(0), result.TotalCount)
	s.Empty(result.Items)
}

func (s *ProductServiceSuite) TestUpdateReplacesFields() {
	product := s.createProduct("Widget", "tools", 9.99, 10)

	active := false
	updated, err := s.service.Update(s.ctx, product.ID, services.ProductInput{
		Name:     "Widget Pro",
		Category: "hardware",
		Price:    decimal.NewFromFloat(19.99),
		Stock:    4,
		IsActive: &active,
	})
	s.Require().NoError(err)
	s.Equal("Widget Pro", updated.Name)
	s.Equal("hardware", updated.Category)
	s.Equal(4, updated.Stock)
	s.False(updated.IsActive)
	s.True(updated.LastUpdatedAt.After(product.CreatedAt) || updated.LastUpdatedAt.Equal(product.CreatedAt))
}

func (s *ProductServiceSuite) TestUpdateNotFound() {
	_, err := s.service.Update(s.ctx, uuid.New(), services.ProductInput{
		Name:  "Ghost",
		Price: decimal.NewFromFloat(1.00),
	})
	s.ErrorIs(err, services.ErrProductNotFound)
}

func (s *ProductServiceSuite) TestUpdateStockRejectsNegativeAndKeepsPrior() {
	product := s.createProduct("Widget", "", 9.99, 10)

	err := s.service.UpdateStock(s.ctx, product.ID, -1)
	s.Require().Error(err)
	_, ok := services.AsValidationError(err)
	s.True(ok)

	details, err := s.service.GetByID(s.ctx, product.ID)
	s.Require().NoError(err)
	s.Equal(10, details.Stock)

	s.Require().NoError(s.service.UpdateStock(s.ctx, product.ID, 0))
	details, err = s.service.GetByID(s.ctx, product.ID)
	s.Require().NoError(err)
	s.Equal(0, details.Stock)
}

func (s *ProductServiceSuite) TestListCategoriesDistinctSortedActiveOnly() {
	s.createProduct("A", "tools", 1.00, 1)
	s.createProduct("B", "tools", 1.00, 1)
	s.createProduct("C", "office", 1.00, 1)
	s.createProduct("D", "", 1.00, 1)
	inactive := s.createProduct("E", "legacy", 1.00, 1)
	s.store.AddOrderItemReference(inactive.ID)
	_, err := s.service.Delete(s.ctx, inactive.ID, nil)
	s.Require().NoError(err)

	categories, err := s.service.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"office", "tools"}, categories)
}

func (s *ProductServiceSuite) TestListLowStockOrdersByStockAscending() {
	s.createProduct("Plenty", "", 1.00, 50)
	s.createProduct("Low", "", 1.00, 3)
	s.createProduct("Lower", "", 1.00, 1)
	s.createProduct("Edge", "", 1.00, 5)

	products, err := s.service.ListLowStock(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().Len(products, 3)
	s.Equal("Lower", products[0].Name)
	s.Equal("Low", products[1].Name)
	s.Equal("Edge", products[2].Name)
}
