package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// UpdateStock sets the absolute stock level. The body is a bare JSON integer.
func UpdateStock(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var newStock int
		if err := c.ShouldBindJSON(&newStock); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Body must be an integer stock value"})
			return
		}

		if err := svc.UpdateStock(c.Request.Context(), id, newStock); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
