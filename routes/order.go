package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/CesarAntIT/SmallDeliverySystem/controllers/order"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.POST("", ordercontroller.CreateOrder(db))
		orders.GET("", ordercontroller.GetOrders(db))
		orders.GET("/ws", ordercontroller.OrderWebSocketHandler)
		orders.GET("/:id", ordercontroller.GetOrderByID(db))
		orders.PUT("/:id/status", ordercontroller.UpdateOrderStatus(db))
	}
}
