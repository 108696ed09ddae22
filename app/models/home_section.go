package models

const (
	SectionKindCategory = "category"
	SectionKindNewest   = "newest"
	SectionKindPopular  = "popular"
	SectionKindTrend    = "trend"
)

type HomeSection struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	SiteID uint   `gorm:"not null;index" json:"-"`
	Title  string `gorm:"size:100;not null" json:"title"`

	// Kind picks the product source; CategoryID is only meaningful for
	// kind=category and may still be nil (yielding an empty section).
	Kind       string    `gorm:"size:20;default:category" json:"kind"`
	CategoryID *uint     `json:"category"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	Limit   uint `gorm:"default:8" json:"limit"`
	Columns uint `gorm:"default:4" json:"columns"`
	Order   uint `gorm:"column:display_order;default:0" json:"order"`
}
