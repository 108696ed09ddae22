package migrations

import (
	"shopfront/app/models"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.ProductStyleTemplate{},
		&models.Product{},
		&models.Menu{},
		&models.MenuItem{},
		&models.SiteSetting{},
		&models.HomeSection{},
		&models.Carousel{},
		&models.CarouselSlide{},
		&models.CarouselCategorySource{},
		&models.HomeCarouselSection{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentSetting{},
		&models.PaymentGateway{},
	)
}
