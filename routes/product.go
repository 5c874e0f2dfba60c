package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/CesarAntIT/SmallDeliverySystem/controllers/product"
	"github.com/CesarAntIT/SmallDeliverySystem/services"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, svc *services.ProductService) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(svc))
		products.GET("/categories", productcontroller.GetCategories(svc))
		products.GET("/low-stock", productcontroller.GetLowStock(svc))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		products.GET("/:id", productcontroller.GetProductByID(svc))
		products.POST("", productcontroller.CreateProduct(svc))
		products.PUT("/:id", productcontroller.UpdateProduct(svc))
		products.PATCH("/:id/stock", productcontroller.UpdateStock(svc))
		products.DELETE("/:id", productcontroller.DeleteProduct(svc))
	}
}
