package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusShipped  = "shipped"
	OrderStatusCanceled = "canceled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// OrderNumber is assigned exactly once by the sequencer and never
	// rewritten afterwards.
	OrderNumber string `gorm:"size:30;uniqueIndex;not null" json:"order_number"`
	Status      string `gorm:"size:20;default:pending" json:"status"`

	CustomerName  string `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:254" json:"customer_email"`
	CustomerPhone string `gorm:"size:50" json:"customer_phone"`
	Address       string `gorm:"size:300" json:"address"`
	City          string `gorm:"size:100" json:"city"`
	PostalCode    string `gorm:"size:20" json:"postal_code"`

	// Total is always derived from the items; it is recomputed whenever
	// they change and never accepted from a client.
	Total decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
