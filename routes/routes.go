package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// SetupRoutes is the single entry-point that wires up every resource group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, productService *services.ProductService) {
	SetupProductRoutes(r, db, productService)
	SetupOrderRoutes(r, db)
	SetupUserRoutes(r, db)
}
