package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// GetCategories returns the distinct, sorted category labels in use by active
// products.
func GetCategories(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetLowStock lists active products at or below the given stock threshold.
// Query param: threshold (default 5).
func GetLowStock(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		threshold, err := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(services.DefaultLowStockThreshold)))
		if err != nil || threshold < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}

		products, err := svc.ListLowStock(c.Request.Context(), threshold)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
