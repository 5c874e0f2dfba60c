package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

type createProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
}

// CreateProduct registers a new catalog entry and answers 201 with a Location
// header pointing at the detail route.
func CreateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		product, err := svc.Create(c.Request.Context(), services.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.Header("Location", fmt.Sprintf("/products/%s", product.ID))
		c.JSON(http.StatusCreated, product)
	}
}
