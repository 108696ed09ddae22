package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const PlaceholderImageURL = "https://via.placeholder.com/800x800?text=No+Image"

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// ImagePath holds an uploaded file path and wins over the external URL.
	ImageURL  string `gorm:"size:300" json:"-"`
	ImagePath string `gorm:"size:300" json:"image"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	StyleTemplateID *uint                 `json:"-"`
	StyleTemplate   *ProductStyleTemplate `gorm:"foreignKey:StyleTemplateID" json:"style_template"`

	InStock           bool  `gorm:"default:true" json:"in_stock"`
	StockQty          *uint `json:"stock_qty"`
	LowStockThreshold uint  `gorm:"default:5" json:"low_stock_threshold"`
	NotifyOnLowStock  bool  `gorm:"default:true" json:"notify_on_low_stock"`

	Popularity uint `gorm:"default:0" json:"popularity"`
	TrendScore uint `gorm:"default:0" json:"trend_score"`

	IsAvailable bool `gorm:"-" json:"is_available"`
	IsLowStock  bool `gorm:"-" json:"is_low_stock"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.RefreshDerived()
	return nil
}

// RefreshDerived recomputes the availability flags from the stock fields.
func (p *Product) RefreshDerived() {
	p.IsAvailable = p.InStock && (p.StockQty == nil || *p.StockQty > 0)
	p.IsLowStock = p.StockQty != nil && *p.StockQty > 0 && *p.StockQty <= p.LowStockThreshold
}

// EffectiveImageURL prefers the uploaded image over the external URL and
// falls back to a placeholder so the frontend always gets something to show.
func (p *Product) EffectiveImageURL() string {
	if p.ImagePath != "" {
		return p.ImagePath
	}
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return PlaceholderImageURL
}
