package ordercontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CesarAntIT/SmallDeliverySystem/models"
)

var errInsufficientStock = errors.New("insufficient stock")

// -------- Request Structs --------

type orderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customerId" binding:"required"`
	AddressID    *uuid.UUID         `json:"addressId"`
	Observations string             `json:"observations"`
	ShippingFee  decimal.Decimal    `json:"shippingFee"`
	Items        []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status           string     `json:"status" binding:"required"`
	DeliveryPersonID *uuid.UUID `json:"deliveryPersonId"`
}

// mapOrderStatus converts the wire value into the enum.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CreateOrder places an order. Unit prices are captured from the current
// catalog price and frozen on the order items; stock is deducted inside the
// same transaction under row locks.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		order := models.Order{
			CustomerID:   req.CustomerID,
			AddressID:    req.AddressID,
			Observations: req.Observations,
			ShippingFee:  req.ShippingFee.Round(2),
			Status:       models.OrderStatusPending,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			subtotal := decimal.Zero
			items := make([]models.OrderItem, 0, len(req.Items))

			for _, it := range req.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("is_active = ?", true).
					First(&product, "id = ?", it.ProductID).Error; err != nil {
					return err
				}

				if product.Stock < it.Quantity {
					return errInsufficientStock
				}
				product.Stock -= it.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				item := models.OrderItem{
					ProductID: product.ID,
					Quantity:  it.Quantity,
					UnitPrice: product.Price,
				}
				items = append(items, item)
				subtotal = subtotal.Add(item.Subtotal())
			}

			order.Items = items
			order.Subtotal = subtotal
			order.TotalAmount = subtotal.Add(order.ShippingFee)
			return tx.Create(&order).Error
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or inactive"})
			case errors.Is(err, errInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetOrderByID returns one order with its items.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetOrders lists orders, optionally restricted to one customer.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if raw := c.Query("customerId"); raw != "" {
			customerID, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customerId"})
				return
			}
			query = query.Where("customer_id = ?", customerID)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus transitions an order and stamps the matching milestone
// timestamp (confirmed / dispatched / delivered) the first time it is reached.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		now := time.Now().UTC()
		order.Status = status
		switch status {
		case models.OrderStatusProcessing:
			if order.ConfirmedAt == nil {
				order.ConfirmedAt = &now
			}
		case models.OrderStatusShipped:
			if order.DispatchedAt == nil {
				order.DispatchedAt = &now
			}
		case models.OrderStatusDelivered:
			if order.DeliveredAt == nil {
				order.DeliveredAt = &now
			}
		}
		if req.DeliveryPersonID != nil {
			order.DeliveryPersonID = req.DeliveryPersonID
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}
