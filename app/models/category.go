package models

import (
	"time"
)

// Category forms a forest: a nil ParentID marks a root. Sibling names are
// unique; deleting a parent re-roots its children instead of cascading.
type Category struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Name     string     `gorm:"size:100;not null;uniqueIndex:idx_category_name_parent" json:"name"`
	ParentID *uint      `gorm:"uniqueIndex:idx_category_name_parent;index" json:"parent"`
	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
