package models

import "github.com/google/uuid"

type UserRole string

const (
	RoleCustomer       UserRole = "customer"
	RoleDeliveryPerson UserRole = "delivery_person"
	RoleAdmin          UserRole = "admin"
)

type User struct {
	BaseModel
	FullName     string   `gorm:"size:150;not null" json:"fullName"`
	Email        string   `gorm:"size:100;index" json:"email"`
	PhoneNumber  string   `gorm:"size:30" json:"phoneNumber,omitempty"`
	Username     string   `gorm:"size:50;not null" json:"username"`
	PasswordHash string   `gorm:"size:200;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);default:'customer'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`

	Addresses      []Address       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	DeliveryPerson *DeliveryPerson `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"deliveryPerson,omitempty"`
}

type Address struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	User   *User     `gorm:"foreignKey:UserID" json:"-"`

	Street string `gorm:"size:50;not null" json:"street"`
	City   string `gorm:"size:50" json:"city,omitempty"`
	Region string `gorm:"size:50" json:"region,omitempty"`
}

// DeliveryPerson is the 1:1 courier extension of a User.
type DeliveryPerson struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	Vehicle     string `gorm:"size:50" json:"vehicle,omitempty"`

	OrdersAssigned []Order `gorm:"foreignKey:DeliveryPersonID" json:"-"`
}
