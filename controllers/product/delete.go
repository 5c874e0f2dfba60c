package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// DeleteProduct removes a product. Unreferenced products are dropped outright;
// products referenced by order items are deactivated with an audit record.
// Repeating the call on an already-inactive product still answers 204.
func DeleteProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Identity of the requester, when the deployment forwards one.
		var deletedBy *uuid.UUID
		if raw := c.GetHeader("X-User-Id"); raw != "" {
			if userID, parseErr := uuid.Parse(raw); parseErr == nil {
				deletedBy = &userID
			}
		}

		if _, err := svc.Delete(c.Request.Context(), id, deletedBy); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
