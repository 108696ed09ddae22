package models

// SiteSettingID pins the settings singleton to one well-known row. Every
// reader and writer goes through this id, so the uniqueness guarantee is the
// primary key itself.
const SiteSettingID uint = 1

const (
	CarouselAnimNone      = "none"
	CarouselAnimSlide     = "slide"
	CarouselAnimFade      = "fade"
	CarouselAnimSlideFade = "slide_fade"
	CarouselAnimZoomIn    = "zoom_in"
	CarouselAnimZoomOut   = "zoom_out"
	CarouselAnimSkew      = "skew"
	CarouselAnimKenburns  = "kenburns"
)

type SiteSetting struct {
	ID uint `gorm:"primaryKey" json:"-"`

	HomeProductLimit uint `gorm:"default:12" json:"home_product_limit"`
	HomeColumns      uint `gorm:"default:4" json:"home_columns"`
	HomeOrder        uint `gorm:"default:0" json:"home_order"`

	FloatingCartBg       string `gorm:"size:20;default:#2563eb" json:"floating_cart_bg"`
	FloatingCartText     string `gorm:"size:20;default:#ffffff" json:"floating_cart_text"`
	FloatingCartBorder   string `gorm:"size:20;default:#2563eb" json:"floating_cart_border"`
	FloatingCartPosition string `gorm:"size:2;default:br" json:"floating_cart_position"`
	FloatingCartRadius   uint   `gorm:"default:999" json:"floating_cart_radius"`

	PrimaryMenuID *uint `json:"-"`
	PrimaryMenu   *Menu `gorm:"foreignKey:PrimaryMenuID" json:"-"`

	MenuBgColor        string `gorm:"size:20" json:"menu_bg_color"`
	MenuTextColor      string `gorm:"size:20" json:"menu_text_color"`
	MenuHoverBgColor   string `gorm:"size:20" json:"menu_hover_bg_color"`
	MenuHoverTextColor string `gorm:"size:20" json:"menu_hover_text_color"`
	MenuLinkGapPx      uint   `gorm:"default:12" json:"menu_link_gap_px"`
	MenuRadiusPx       uint   `gorm:"default:8" json:"menu_radius_px"`

	MenuCardEnabled     bool   `gorm:"default:false" json:"menu_card_enabled"`
	MenuCardBgColor     string `gorm:"size:20" json:"menu_card_bg_color"`
	MenuCardBorderColor string `gorm:"size:20" json:"menu_card_border_color"`
	MenuCardBorderPx    uint   `gorm:"default:1" json:"menu_card_border_px"`
	MenuCardPaddingPx   uint   `gorm:"default:8" json:"menu_card_padding_px"`
	MenuCardRadiusPx    uint   `gorm:"default:12" json:"menu_card_radius_px"`
	MenuCardShadow      bool   `gorm:"default:true" json:"menu_card_shadow"`

	CarouselAnimation string `gorm:"size:16;default:slide" json:"carousel_animation"`
	CarouselSpeedMs   uint   `gorm:"default:3000" json:"carousel_speed_ms"`

	// Order numbering state. OrderCounter is only ever written inside the
	// sequencer's row-locked transaction.
	OrderPrefix  string `gorm:"size:20;default:ORD-" json:"order_prefix"`
	OrderCounter uint   `gorm:"default:0" json:"order_counter"`

	Sections         []HomeSection         `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
	Carousels        []Carousel            `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
	CarouselSections []HomeCarouselSection `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
}

// DefaultSiteSetting is the row created on first access.
func DefaultSiteSetting() SiteSetting {
	return SiteSetting{
		ID:                   SiteSettingID,
		HomeProductLimit:     12,
		HomeColumns:          4,
		FloatingCartBg:       "#2563eb",
		FloatingCartText:     "#ffffff",
		FloatingCartBorder:   "#2563eb",
		FloatingCartPosition: "br",
		FloatingCartRadius:   999,
		MenuLinkGapPx:        12,
		MenuRadiusPx:         8,
		MenuCardBorderPx:     1,
		MenuCardPaddingPx:    8,
		MenuCardRadiusPx:     12,
		MenuCardShadow:       true,
		CarouselAnimation:    CarouselAnimSlide,
		CarouselSpeedMs:      3000,
		OrderPrefix:          "ORD-",
	}
}
