package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // handed to a delivery person
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the order
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before shipping
	OrderStatusReturned   OrderStatus = "returned"   // customer returned the order
)

type Order struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customerId"`
	Customer   *User     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	AddressID *uuid.UUID `gorm:"type:uuid" json:"addressId,omitempty"`
	Address   *Address   `gorm:"foreignKey:AddressID" json:"address,omitempty"`

	DeliveryPersonID *uuid.UUID      `gorm:"type:uuid" json:"deliveryPersonId,omitempty"`
	DeliveryPerson   *DeliveryPerson `gorm:"foreignKey:DeliveryPersonID" json:"deliveryPerson,omitempty"`

	Status OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(18,2)" json:"shippingFee"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(18,2)" json:"totalAmount"`

	Observations string `gorm:"size:1000" json:"observations,omitempty"`

	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem captures a product line at order time. Quantity and unit price are
// frozen when the order is placed; they do not track later product changes.
type OrderItem struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey" json:"orderId"`
	Order   *Order    `gorm:"foreignKey:OrderID" json:"-"`

	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"unitPrice"`
}

// Subtotal is always derived from quantity and unit price, never stored.
func (oi OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
