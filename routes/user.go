package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	usercontroller "github.com/CesarAntIT/SmallDeliverySystem/controllers/user"
)

// SetupUserRoutes registers "/users/*" and "/delivery-people" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("", usercontroller.RegisterUser(db))
		users.GET("/:id", usercontroller.GetUser(db))
		users.PUT("/:id", usercontroller.UpdateUser(db))
		users.POST("/:id/addresses", usercontroller.AddAddress(db))
		users.POST("/:id/delivery-person", usercontroller.CreateDeliveryPerson(db))
	}

	r.GET("/delivery-people", usercontroller.ListDeliveryPeople(db))
}
