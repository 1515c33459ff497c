package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderNumber   string         `json:"order_number" gorm:"unique;not null"`
	SessionID     string         `json:"session_id" gorm:"index"`
	UserID        *uint          `json:"user_id" gorm:"index"` // nil for guest orders
	CustomerName  string         `json:"customer_name" gorm:"not null"`
	CustomerPhone string         `json:"customer_phone"`
	OrderType     string         `json:"order_type" gorm:"default:'pickup'"` // pickup, delivery, dine_in
	Status        string         `json:"status" gorm:"default:'pending'"`    // pending, processing, completed, cancelled
	Subtotal      float64        `json:"subtotal" gorm:"not null"`
	TaxRate       float64        `json:"tax_rate"`
	TaxAmount     float64        `json:"tax_amount"`
	TotalAmount   float64        `json:"total_amount" gorm:"not null"`
	PlacedAt      time.Time      `json:"placed_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeDineIn   OrderType = "dine_in"
)
