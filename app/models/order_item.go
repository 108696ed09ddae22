package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem snapshots the unit price at order time; later product price
// changes never reach past orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"-"`
	ProductID uint            `gorm:"not null;index" json:"product"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"-"`
	Quantity  uint            `gorm:"default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

// LineTotal is price * quantity; anything unusable counts as zero.
func (i *OrderItem) LineTotal() decimal.Decimal {
	if i.Price.IsNegative() {
		return decimal.Zero
	}
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
