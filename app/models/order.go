package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order. The back-office only reads these; they are
// written by the storefront.
type Order struct {
	ID     uint            `gorm:"primaryKey"               json:"id"`
	UserID uint            `gorm:"not null;index"           json:"user_id"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)"       json:"total"`
	Status string          `gorm:"size:50;default:pending"  json:"status"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is one line of an order. Rows cascade-delete with either
// parent (order or product).
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"                  json:"id"`
	OrderID   uint            `gorm:"not null;index"              json:"order_id"`
	ProductID uint            `gorm:"not null;index"              json:"product_id"`
	Quantity  uint            `gorm:"not null"                    json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
