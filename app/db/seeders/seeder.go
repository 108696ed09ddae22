package seeders

import (
	"log"

	"shopfront/app/db/fakers"
	"shopfront/app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const productsPerCategory = 10

// Run populates the database with a demo storefront: categories, products,
// a configured homepage and an admin login. Safe to run twice; everything is
// looked up before it is created.
func Run(db *gorm.DB) error {
	site := models.DefaultSiteSetting()
	if err := db.FirstOrCreate(&site, "id = ?", models.SiteSettingID).Error; err != nil {
		return err
	}

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}
	if err := seedProducts(db, categories); err != nil {
		return err
	}
	if err := seedMenu(db, &site); err != nil {
		return err
	}
	if err := seedHomepage(db, &site, categories); err != nil {
		return err
	}
	if err := seedPayment(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedCategories(db *gorm.DB) (map[string]*models.Category, error) {
	names := []struct {
		name   string
		parent string
	}{
		{name: "Electronics"},
		{name: "Audio", parent: "Electronics"},
		{name: "Apparel"},
		{name: "Home & Garden"},
	}

	out := map[string]*models.Category{}
	for _, n := range names {
		category := &models.Category{Name: n.name}
		if n.parent != "" {
			category.ParentID = &out[n.parent].ID
		}
		q := db.Where("name = ?", n.name)
		if category.ParentID == nil {
			q = q.Where("parent_id IS NULL")
		} else {
			q = q.Where("parent_id = ?", *category.ParentID)
		}
		if err := q.FirstOrCreate(category).Error; err != nil {
			return nil, err
		}
		out[n.name] = category
	}
	return out, nil
}

func seedProducts(db *gorm.DB, categories map[string]*models.Category) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Products already seeded, skipping")
		return nil
	}

	for _, category := range categories {
		for i := 0; i < productsPerCategory; i++ {
			if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedMenu(db *gorm.DB, site *models.SiteSetting) error {
	menu := models.Menu{Name: "Main"}
	if err := db.Where("name = ?", menu.Name).FirstOrCreate(&menu).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{MenuID: menu.ID, Label: "Home", URL: "/", Order: 0},
		{MenuID: menu.ID, Label: "Shop", URL: "/products", Order: 1},
		{MenuID: menu.ID, Label: "Contact", URL: "/contact", Order: 2},
	}
	for i := range items {
		err := db.Where("menu_id = ? AND label = ?", menu.ID, items[i].Label).
			FirstOrCreate(&items[i]).Error
		if err != nil {
			return err
		}
	}

	if site.PrimaryMenuID == nil {
		return db.Model(site).Update("primary_menu_id", menu.ID).Error
	}
	return nil
}

func seedHomepage(db *gorm.DB, site *models.SiteSetting, categories map[string]*models.Category) error {
	sections := []models.HomeSection{
		{SiteID: site.ID, Title: "New Arrivals", Kind: models.SectionKindNewest, Limit: 8, Columns: 4, Order: 0},
		{SiteID: site.ID, Title: "Trending Now", Kind: models.SectionKindTrend, Limit: 8, Columns: 4, Order: 1},
		{SiteID: site.ID, Title: "Electronics", Kind: models.SectionKindCategory, CategoryID: &categories["Electronics"].ID, Limit: 8, Columns: 4, Order: 2},
	}
	for i := range sections {
		err := db.Where("site_id = ? AND title = ?", site.ID, sections[i].Title).
			FirstOrCreate(&sections[i]).Error
		if err != nil {
			return err
		}
	}

	carousel := models.Carousel{
		SiteID:         site.ID,
		Title:          "Hero",
		Animation:      models.CarouselAnimSlide,
		SpeedMs:        4000,
		SliderHeightPx: 420,
	}
	if err := db.Where("site_id = ? AND title = ?", site.ID, carousel.Title).FirstOrCreate(&carousel).Error; err != nil {
		return err
	}

	slides := []models.CarouselSlide{
		{CarouselID: carousel.ID, Title: "Summer Sale", ImageURL: "https://picsum.photos/seed/sale/1600/420", LinkURL: "/products", Order: 0},
		{CarouselID: carousel.ID, Title: "Free Shipping", ImageURL: "https://picsum.photos/seed/shipping/1600/420", LinkURL: "/products", Order: 1},
	}
	for i := range slides {
		err := db.Where("carousel_id = ? AND title = ?", carousel.ID, slides[i].Title).
			FirstOrCreate(&slides[i]).Error
		if err != nil {
			return err
		}
	}

	source := models.CarouselCategorySource{
		CarouselID: carousel.ID,
		CategoryID: categories["Apparel"].ID,
		Limit:      4,
		Ordering:   "popular",
	}
	err := db.Where("carousel_id = ? AND category_id = ?", carousel.ID, source.CategoryID).
		FirstOrCreate(&source).Error
	if err != nil {
		return err
	}

	placement := models.HomeCarouselSection{SiteID: site.ID, CarouselID: carousel.ID, Order: 0}
	return db.Where("site_id = ? AND carousel_id = ?", site.ID, carousel.ID).
		FirstOrCreate(&placement).Error
}

func seedPayment(db *gorm.DB) error {
	setting := models.DefaultPaymentSetting()
	if err := db.FirstOrCreate(&setting, "id = ?", models.PaymentSettingID).Error; err != nil {
		return err
	}

	gateways := []models.PaymentGateway{
		{Name: "Demo", DisplayName: "Demo Gateway", Code: "demo", Enabled: true, TestMode: true, ButtonLabel: "Pay now", Order: 0},
		{Name: "BankTransfer", DisplayName: "Bank Transfer", Code: "bank_transfer", Enabled: true, TestMode: true, ButtonLabel: "Transfer", Order: 1},
	}
	for i := range gateways {
		if err := db.Where("code = ?", gateways[i].Code).FirstOrCreate(&gateways[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  string(hashed),
		FirstName: "Site",
		LastName:  "Admin",
		IsAdmin:   true,
	}
	if err := db.Where("username = ?", admin.Username).FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user ready (admin / admin12345)")
	return nil
}
