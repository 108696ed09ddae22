package models

type Menu struct {
	ID    uint       `gorm:"primaryKey" json:"id"`
	Name  string     `gorm:"size:100;not null" json:"name"`
	Items []MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"items"`
}

type MenuItem struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	MenuID uint   `gorm:"not null;index" json:"-"`
	Label  string `gorm:"size:100;not null" json:"label"`
	URL    string `gorm:"size:300;not null" json:"url"`
	Order  uint   `gorm:"column:display_order;default:0" json:"order"`
}
