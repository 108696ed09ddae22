package models

type Carousel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	SiteID uint   `gorm:"not null;index" json:"-"`
	Title  string `gorm:"size:150;not null" json:"title"`

	Animation      string `gorm:"size:16;default:slide" json:"animation"`
	SpeedMs        uint   `gorm:"default:3000" json:"speed_ms"`
	SingleSlider   bool   `gorm:"default:false" json:"single_slider"`
	SliderHeightPx uint   `gorm:"default:360" json:"slider_height_px"`
	Order          uint   `gorm:"column:display_order;default:0" json:"order"`

	Slides          []CarouselSlide          `gorm:"foreignKey:CarouselID;constraint:OnDelete:CASCADE" json:"-"`
	CategorySources []CarouselCategorySource `gorm:"foreignKey:CarouselID;constraint:OnDelete:CASCADE" json:"-"`
}

// CarouselSlide is manually authored content; composition always puts these
// before any generated slides.
type CarouselSlide struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CarouselID uint   `gorm:"not null;index" json:"-"`
	Title      string `gorm:"size:150" json:"title"`
	ImageURL   string `gorm:"size:300;not null" json:"image_url"`
	LinkURL    string `gorm:"size:300" json:"link_url"`
	Order      uint   `gorm:"column:display_order;default:0" json:"order"`
}

// CarouselCategorySource generates slides from a category's products at
// composition time; nothing generated is ever persisted.
type CarouselCategorySource struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CarouselID uint      `gorm:"not null;index" json:"-"`
	CategoryID uint      `gorm:"not null" json:"category"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Limit      uint      `gorm:"default:8" json:"limit"`
	Ordering   string    `gorm:"size:20;default:newest" json:"ordering"`
	Order      uint      `gorm:"column:display_order;default:0" json:"order"`
}

// HomeCarouselSection places a carousel on the homepage at a given position.
type HomeCarouselSection struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SiteID     uint      `gorm:"not null;index" json:"-"`
	CarouselID uint      `gorm:"not null" json:"-"`
	Carousel   *Carousel `gorm:"foreignKey:CarouselID" json:"carousel"`
	Order      uint      `gorm:"column:display_order;default:0" json:"order"`
}
