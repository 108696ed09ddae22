package services

import (
	"context"

	"shopfront/app/models"
	"shopfront/app/repositories"
)

// HomeService assembles the admin-configured homepage into one payload:
// singleton settings, styling, primary menu, product sections and carousel
// sections.
type HomeService struct {
	settingsRepo repositories.SiteSettingRepositoryImpl
	catalogRepo  repositories.CatalogRepositoryImpl
	carouselSvc  *CarouselService
}

func NewHomeService(
	settingsRepo repositories.SiteSettingRepositoryImpl,
	catalogRepo repositories.CatalogRepositoryImpl,
	carouselSvc *CarouselService,
) *HomeService {
	return &HomeService{
		settingsRepo: settingsRepo,
		catalogRepo:  catalogRepo,
		carouselSvc:  carouselSvc,
	}
}

func (s *HomeService) Compose(ctx context.Context) (*HomePayload, error) {
	site, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	payload := &HomePayload{
		HomeProductLimit:     site.HomeProductLimit,
		HomeColumns:          site.HomeColumns,
		HomeOrder:            site.HomeOrder,
		FloatingCartBg:       site.FloatingCartBg,
		FloatingCartText:     site.FloatingCartText,
		FloatingCartBorder:   site.FloatingCartBorder,
		FloatingCartPosition: site.FloatingCartPosition,
		FloatingCartRadius:   site.FloatingCartRadius,
		MenuBgColor:          site.MenuBgColor,
		MenuTextColor:        site.MenuTextColor,
		MenuHoverBgColor:     site.MenuHoverBgColor,
		MenuHoverTextColor:   site.MenuHoverTextColor,
		MenuLinkGapPx:        site.MenuLinkGapPx,
		MenuRadiusPx:         site.MenuRadiusPx,
		MenuCardEnabled:      site.MenuCardEnabled,
		MenuCardBgColor:      site.MenuCardBgColor,
		MenuCardBorderColor:  site.MenuCardBorderColor,
		MenuCardBorderPx:     site.MenuCardBorderPx,
		MenuCardPaddingPx:    site.MenuCardPaddingPx,
		MenuCardRadiusPx:     site.MenuCardRadiusPx,
		MenuCardShadow:       site.MenuCardShadow,
		PrimaryMenu:          site.PrimaryMenu,
		Sections:             []SectionPayload{},
		Carousels:            []CarouselPayload{},
		CarouselSections:     []CarouselSectionPayload{},
	}

	for _, section := range site.Sections {
		resolved, err := s.resolveSection(ctx, section)
		if err != nil {
			return nil, err
		}
		payload.Sections = append(payload.Sections, resolved)
	}

	// Carousels referenced from the homepage, deduplicated but kept in
	// section order; each carousel section also embeds its composition.
	seen := map[uint]bool{}
	for _, cs := range site.CarouselSections {
		if cs.Carousel == nil {
			continue
		}
		composed, err := s.carouselSvc.Compose(ctx, cs.Carousel)
		if err != nil {
			return nil, err
		}
		if !seen[cs.Carousel.ID] {
			seen[cs.Carousel.ID] = true
			payload.Carousels = append(payload.Carousels, composed)
		}
		payload.CarouselSections = append(payload.CarouselSections, CarouselSectionPayload{
			ID:       cs.ID,
			Order:    cs.Order,
			Carousel: composed,
		})
	}

	return payload, nil
}

func (s *HomeService) resolveSection(ctx context.Context, section models.HomeSection) (SectionPayload, error) {
	payload := SectionPayload{
		ID:       section.ID,
		Title:    section.Title,
		Kind:     section.Kind,
		Category: section.CategoryID,
		Limit:    section.Limit,
		Columns:  section.Columns,
		Order:    section.Order,
		Products: []ProductPayload{},
	}
	if section.Category != nil {
		payload.CategoryName = section.Category.Name
	}

	var candidates []models.Product
	var err error
	if section.Kind == models.SectionKindCategory {
		// A category section without a category resolves to nothing.
		if section.CategoryID == nil {
			return payload, nil
		}
		candidates, err = s.catalogRepo.FindByCategory(ctx, *section.CategoryID)
	} else {
		candidates, err = s.catalogRepo.GetAll(ctx)
	}
	if err != nil {
		return SectionPayload{}, err
	}

	selected := SelectProducts(candidates, sectionSortKey(section.Kind), int(section.Limit))
	payload.Products = ProductPayloads(selected)
	return payload, nil
}
