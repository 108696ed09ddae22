package services

import (
	"shopfront/app/models"

	"github.com/shopspring/decimal"
)

// Payload shapes consumed by the storefront frontend. Field names are a
// stable contract; changing them breaks the deployed UI.

type ProductPayload struct {
	ID                uint                         `json:"id"`
	Name              string                       `json:"name"`
	Description       string                       `json:"description"`
	Price             decimal.Decimal              `json:"price"`
	ImageURL          string                       `json:"image_url"`
	Image             string                       `json:"image"`
	Category          string                       `json:"category"`
	InStock           bool                         `json:"in_stock"`
	StockQty          *uint                        `json:"stock_qty"`
	LowStockThreshold uint                         `json:"low_stock_threshold"`
	NotifyOnLowStock  bool                         `json:"notify_on_low_stock"`
	IsAvailable       bool                         `json:"is_available"`
	IsLowStock        bool                         `json:"is_low_stock"`
	StyleTemplate     *models.ProductStyleTemplate `json:"style_template"`
}

type SlidePayload struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Order    uint   `json:"order"`
}

type CarouselPayload struct {
	ID             uint           `json:"id"`
	Title          string         `json:"title"`
	Animation      string         `json:"animation"`
	SpeedMs        uint           `json:"speed_ms"`
	SingleSlider   bool           `json:"single_slider"`
	SliderHeightPx uint           `json:"slider_height_px"`
	Order          uint           `json:"order"`
	Slides         []SlidePayload `json:"slides"`
}

type CarouselSectionPayload struct {
	ID       uint            `json:"id"`
	Order    uint            `json:"order"`
	Carousel CarouselPayload `json:"carousel"`
}

type SectionPayload struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Kind         string           `json:"kind"`
	Category     *uint            `json:"category"`
	CategoryName string           `json:"category_name"`
	Limit        uint             `json:"limit"`
	Columns      uint             `json:"columns"`
	Order        uint             `json:"order"`
	Products     []ProductPayload `json:"products"`
}

type HomePayload struct {
	HomeProductLimit uint `json:"home_product_limit"`
	HomeColumns      uint `json:"home_columns"`
	HomeOrder        uint `json:"home_order"`

	FloatingCartBg       string `json:"floating_cart_bg"`
	FloatingCartText     string `json:"floating_cart_text"`
	FloatingCartBorder   string `json:"floating_cart_border"`
	FloatingCartPosition string `json:"floating_cart_position"`
	FloatingCartRadius   uint   `json:"floating_cart_radius"`

	MenuBgColor        string `json:"menu_bg_color"`
	MenuTextColor      string `json:"menu_text_color"`
	MenuHoverBgColor   string `json:"menu_hover_bg_color"`
	MenuHoverTextColor string `json:"menu_hover_text_color"`
	MenuLinkGapPx      uint   `json:"menu_link_gap_px"`
	MenuRadiusPx       uint   `json:"menu_radius_px"`

	MenuCardEnabled     bool   `json:"menu_card_enabled"`
	MenuCardBgColor     string `json:"menu_card_bg_color"`
	MenuCardBorderColor string `json:"menu_card_border_color"`
	MenuCardBorderPx    uint   `json:"menu_card_border_px"`
	MenuCardPaddingPx   uint   `json:"menu_card_padding_px"`
	MenuCardRadiusPx    uint   `json:"menu_card_radius_px"`
	MenuCardShadow      bool   `json:"menu_card_shadow"`

	PrimaryMenu *models.Menu `json:"primary_menu"`

	Sections         []SectionPayload         `json:"sections"`
	Carousels        []CarouselPayload        `json:"carousels"`
	CarouselSections []CarouselSectionPayload `json:"carousel_sections"`
}

func productPayload(p models.Product) ProductPayload {
	p.RefreshDerived()
	categoryName := ""
	if p.Category != nil {
		categoryName = p.Category.Name
	}
	return ProductPayload{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		ImageURL:          p.EffectiveImageURL(),
		Image:             p.ImagePath,
		Category:          categoryName,
		InStock:           p.InStock,
		StockQty:          p.StockQty,
		LowStockThreshold: p.LowStockThreshold,
		NotifyOnLowStock:  p.NotifyOnLowStock,
		IsAvailable:       p.IsAvailable,
		IsLowStock:        p.IsLowStock,
		StyleTemplate:     p.StyleTemplate,
	}
}

// ProductPayloads maps catalog rows into the frontend product shape.
func ProductPayloads(products []models.Product) []ProductPayload {
	out := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		out = append(out, productPayload(p))
	}
	return out
}
