package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// GetProducts returns one page of the catalog filtered by search term and
// category. Query params: searchTerm, category, page, pageSize, activeOnly.
func GetProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
		if err != nil || pageSize < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pageSize"})
			return
		}
		activeOnly, err := strconv.ParseBool(c.DefaultQuery("activeOnly", "true"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activeOnly"})
			return
		}

		result, err := svc.Search(c.Request.Context(), services.SearchParams{
			Term:       c.Query("searchTerm"),
			Category:   c.Query("category"),
			ActiveOnly: activeOnly,
			Page:       page,
			PageSize:   pageSize,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
