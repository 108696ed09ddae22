package services

import (
	"context"
	"fmt"
	"sort"

	"shopfront/app/models"
	"shopfront/app/repositories"
)

// CarouselService composes a carousel's slide list: manual slides first,
// then slides generated from its category sources. Generated slides are
// ephemeral and rebuilt on every request.
type CarouselService struct {
	catalogRepo repositories.CatalogRepositoryImpl
}

func NewCarouselService(catalogRepo repositories.CatalogRepositoryImpl) *CarouselService {
	return &CarouselService{catalogRepo: catalogRepo}
}

func (s *CarouselService) Compose(ctx context.Context, carousel *models.Carousel) (CarouselPayload, error) {
	payload := CarouselPayload{
		ID:             carousel.ID,
		Title:          carousel.Title,
		Animation:      carousel.Animation,
		SpeedMs:        carousel.SpeedMs,
		SingleSlider:   carousel.SingleSlider,
		SliderHeightPx: carousel.SliderHeightPx,
		Order:          carousel.Order,
		Slides:         []SlidePayload{},
	}

	manual := make([]models.CarouselSlide, len(carousel.Slides))
	copy(manual, carousel.Slides)
	sort.SliceStable(manual, func(i, j int) bool {
		if manual[i].Order != manual[j].Order {
			return manual[i].Order < manual[j].Order
		}
		return manual[i].ID < manual[j].ID
	})
	for _, slide := range manual {
		payload.Slides = append(payload.Slides, SlidePayload{
			ID:       slide.ID,
			Title:    slide.Title,
			ImageURL: slide.ImageURL,
			LinkURL:  slide.LinkURL,
			Order:    slide.Order,
		})
	}

	sources := make([]models.CarouselCategorySource, len(carousel.CategorySources))
	copy(sources, carousel.CategorySources)
	sort.SliceStable(sources, func(i, j int) bool {
		if sources[i].Order != sources[j].Order {
			return sources[i].Order < sources[j].Order
		}
		return sources[i].ID < sources[j].ID
	})

	for _, src := range sources {
		candidates, err := s.catalogRepo.FindByCategory(ctx, src.CategoryID)
		if err != nil {
			return CarouselPayload{}, fmt.Errorf("carousel %d: resolving category source %d: %w", carousel.ID, src.ID, err)
		}
		// An empty category simply contributes nothing.
		for _, p := range SelectProducts(candidates, src.Ordering, int(src.Limit)) {
			payload.Slides = append(payload.Slides, SlidePayload{
				ID:       p.ID,
				Title:    p.Name,
				ImageURL: p.EffectiveImageURL(),
				LinkURL:  fmt.Sprintf("/product/%d", p.ID),
				Order:    0,
			})
		}
	}

	return payload, nil
}
