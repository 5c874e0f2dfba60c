package usercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
)

type createDeliveryPersonRequest struct {
	Vehicle     string `json:"vehicle" binding:"max=50"`
	IsAvailable *bool  `json:"isAvailable"`
}

// CreateDeliveryPerson attaches the 1:1 courier profile to a user. A user can
// hold at most one profile, so a second attempt answers 409.
func CreateDeliveryPerson(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var req createDeliveryPersonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var existing models.DeliveryPerson
		err = db.First(&existing, "user_id = ?", user.ID).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User already has a delivery profile"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check delivery profile"})
			return
		}

		profile := models.DeliveryPerson{
			UserID:      user.ID,
			Vehicle:     req.Vehicle,
			IsAvailable: true,
		}
		if req.IsAvailable != nil {
			profile.IsAvailable = *req.IsAvailable
		}

		if err := db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery profile"})
			return
		}
		c.JSON(http.StatusCreated, profile)
	}
}

// ListDeliveryPeople lists courier profiles, optionally only available ones.
// Query param: available.
func ListDeliveryPeople(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User")

		if raw := c.Query("available"); raw != "" {
			available, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid available"})
				return
			}
			query = query.Where("is_available = ?", available)
		}

		var people []models.DeliveryPerson
		if err := query.Find(&people).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery people"})
			return
		}
		c.JSON(http.StatusOK, people)
	}
}
