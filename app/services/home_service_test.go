package services

import (
	"context"
	"testing"

	"shopfront/app/models"

	"gorm.io/gorm"
)

type fakeSettings struct {
	site  models.SiteSetting
	calls int
}

func (f *fakeSettings) GetOrCreate(ctx context.Context) (*models.SiteSetting, error) {
	f.calls++
	site := f.site
	return &site, nil
}

func (f *fakeSettings) LockForUpdate(ctx context.Context, tx *gorm.DB) (*models.SiteSetting, error) {
	site := f.site
	return &site, nil
}

func (f *fakeSettings) Update(ctx context.Context, setting *models.SiteSetting) error {
	f.site = *setting
	return nil
}

func newHomeServiceForTest(site models.SiteSetting, catalog *fakeCatalog) (*HomeService, *fakeSettings) {
	settings := &fakeSettings{site: site}
	return NewHomeService(settings, catalog, NewCarouselService(catalog)), settings
}

func TestHomeComposeCopiesStyling(t *testing.T) {
	site := models.DefaultSiteSetting()
	site.HomeProductLimit = 6
	site.FloatingCartBg = "#123456"
	site.MenuCardEnabled = true

	svc, _ := newHomeServiceForTest(site, &fakeCatalog{})
	payload, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if payload.HomeProductLimit != 6 {
		t.Errorf("HomeProductLimit = %d", payload.HomeProductLimit)
	}
	if payload.FloatingCartBg != "#123456" {
		t.Errorf("FloatingCartBg = %q", payload.FloatingCartBg)
	}
	if !payload.MenuCardEnabled {
		t.Error("MenuCardEnabled not copied")
	}
	if payload.Sections == nil || payload.Carousels == nil || payload.CarouselSections == nil {
		t.Error("collection fields should be empty slices, not nil")
	}
}

func TestHomeComposeCategorySectionWithoutCategoryIsEmpty(t *testing.T) {
	site := models.DefaultSiteSetting()
	site.Sections = []models.HomeSection{
		{ID: 1, Title: "Orphan", Kind: models.SectionKindCategory, Limit: 8},
	}

	catalog := &fakeCatalog{all: []models.Product{{ID: 1, Name: "X"}}}
	svc, _ := newHomeServiceForTest(site, catalog)

	payload, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(payload.Sections) != 1 {
		t.Fatalf("got %d sections", len(payload.Sections))
	}
	if got := payload.Sections[0].Products; len(got) != 0 {
		t.Fatalf("orphan category section has %d products, want 0", len(got))
	}
}

func TestHomeComposeSectionKinds(t *testing.T) {
	catID := uint(5)
	site := models.DefaultSiteSetting()
	site.Sections = []models.HomeSection{
		{ID: 1, Title: "Popular", Kind: models.SectionKindPopular, Limit: 2},
		{ID: 2, Title: "Shoes", Kind: models.SectionKindCategory, CategoryID: &catID, Limit: 8,
			Category: &models.Category{ID: catID, Name: "Shoes"}},
	}

	catalog := &fakeCatalog{
		all: []models.Product{
			{ID: 1, Name: "A", Popularity: 1},
			{ID: 2, Name: "B", Popularity: 9},
			{ID: 3, Name: "C", Popularity: 5},
		},
		byCategory: map[uint][]models.Product{
			catID: {{ID: 4, Name: "Sneaker"}, {ID: 5, Name: "Boot"}},
		},
	}
	svc, _ := newHomeServiceForTest(site, catalog)

	payload, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	popular := payload.Sections[0]
	if len(popular.Products) != 2 || popular.Products[0].Name != "B" || popular.Products[1].Name != "C" {
		t.Fatalf("popular section: %+v", popular.Products)
	}

	shoes := payload.Sections[1]
	if shoes.CategoryName != "Shoes" {
		t.Errorf("CategoryName = %q", shoes.CategoryName)
	}
	// category sections come back newest-first
	if len(shoes.Products) != 2 || shoes.Products[0].Name != "Boot" || shoes.Products[1].Name != "Sneaker" {
		t.Fatalf("category section: %+v", shoes.Products)
	}
}

func TestHomeComposeDeduplicatesCarousels(t *testing.T) {
	carousel := &models.Carousel{ID: 9, Title: "Hero",
		Slides: []models.CarouselSlide{{ID: 1, Title: "S", ImageURL: "a.jpg"}}}

	site := models.DefaultSiteSetting()
	site.CarouselSections = []models.HomeCarouselSection{
		{ID: 1, CarouselID: 9, Carousel: carousel, Order: 0},
		{ID: 2, CarouselID: 9, Carousel: carousel, Order: 1},
	}

	svc, _ := newHomeServiceForTest(site, &fakeCatalog{})
	payload, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if len(payload.Carousels) != 1 {
		t.Fatalf("got %d carousels, want 1", len(payload.Carousels))
	}
	if len(payload.CarouselSections) != 2 {
		t.Fatalf("got %d carousel sections, want 2", len(payload.CarouselSections))
	}
	for _, cs := range payload.CarouselSections {
		if cs.Carousel.ID != 9 || len(cs.Carousel.Slides) != 1 {
			t.Fatalf("carousel section missing composition: %+v", cs)
		}
	}
}

func TestHomeComposeSkipsDanglingCarouselSections(t *testing.T) {
	site := models.DefaultSiteSetting()
	site.CarouselSections = []models.HomeCarouselSection{
		{ID: 1, CarouselID: 77, Carousel: nil},
	}

	svc, _ := newHomeServiceForTest(site, &fakeCatalog{})
	payload, err := svc.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(payload.CarouselSections) != 0 || len(payload.Carousels) != 0 {
		t.Fatalf("dangling section leaked into payload: %+v", payload.CarouselSections)
	}
}
