package models

type ProductStyleTemplate struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	CardBgColor   string `gorm:"size:20;default:#ffffff" json:"card_bg_color"`
	PriceColor    string `gorm:"size:20;default:#2563eb" json:"price_color"`
	ButtonVariant string `gorm:"size:20;default:primary" json:"button_variant"`
	PrimaryColor  string `gorm:"size:20;default:#2563eb" json:"primary_color"`
	OutlineColor  string `gorm:"size:20;default:#2563eb" json:"outline_color"`
	RoundedPx     uint   `gorm:"default:10" json:"rounded_px"`
	ImageHeightPx uint   `gorm:"default:200" json:"image_height_px"`
	ShowBadges    bool   `gorm:"default:true" json:"show_badges"`
}
