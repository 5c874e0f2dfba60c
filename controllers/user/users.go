package usercontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
)

type registerUserRequest struct {
	FullName    string `json:"fullName" binding:"required,max=150"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username" binding:"required,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
}

type updateUserRequest struct {
	FullName    string `json:"fullName" binding:"required,max=150"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    *bool  `json:"isActive"`
}

type addAddressRequest struct {
	Street string `json:"street" binding:"required,max=50"`
	City   string `json:"city" binding:"max=50"`
	Region string `json:"region" binding:"max=50"`
}

func mapUserRole(role string) (models.UserRole, error) {
	switch strings.ToLower(role) {
	case "", string(models.RoleCustomer):
		return models.RoleCustomer, nil
	case string(models.RoleDeliveryPerson):
		return models.RoleDeliveryPerson, nil
	case string(models.RoleAdmin):
		return models.RoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

// RegisterUser creates an account with a bcrypt-hashed password.
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		role, err := mapUserRole(req.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			FullName:     req.FullName,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// GetUser returns one user with addresses and the delivery profile, if any.
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.Preload("Addresses").Preload("DeliveryPerson").First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser replaces the mutable profile fields.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			}
			return
		}

		user.FullName = req.FullName
		user.Email = req.Email
		user.PhoneNumber = req.PhoneNumber
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// AddAddress attaches a new address to a user.
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var req addAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		address := models.Address{
			UserID: user.ID,
			Street: req.Street,
			City:   req.City,
			Region: req.Region,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}
