package repositories

import (
	"context"
	"errors"

	"shopfront/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingRepositoryImpl interface {
	// GetOrCreate returns the settings singleton with the whole homepage
	// graph preloaded, creating the row on first access. Concurrent first
	// readers converge on the same row.
	GetOrCreate(ctx context.Context) (*models.SiteSetting, error)

	// LockForUpdate reads the singleton under an exclusive row lock inside
	// the caller's transaction, creating it first if needed. The lock is
	// held until the transaction ends.
	LockForUpdate(ctx context.Context, tx *gorm.DB) (*models.SiteSetting, error)

	Update(ctx context.Context, setting *models.SiteSetting) error
}

type siteSettingRepository struct {
	db *gorm.DB
}

func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepositoryImpl {
	return &siteSettingRepository{db: db}
}

func (r *siteSettingRepository) preloaded(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("PrimaryMenu.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, id")
		}).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, id")
		}).
		Preload("Sections.Category").
		Preload("CarouselSections", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, id")
		}).
		Preload("CarouselSections.Carousel.Slides", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, id")
		}).
		Preload("CarouselSections.Carousel.CategorySources", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, id")
		})
}

func (r *siteSettingRepository) GetOrCreate(ctx context.Context) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.preloaded(r.db.WithContext(ctx)).First(&setting, "id = ?", models.SiteSettingID).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// First access: insert the default row. DoNothing makes a lost race
	// harmless; the re-read below converges every caller on the winner.
	fresh := models.DefaultSiteSetting()
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	if err := r.preloaded(r.db.WithContext(ctx)).First(&setting, "id = ?", models.SiteSettingID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *siteSettingRepository) LockForUpdate(ctx context.Context, tx *gorm.DB) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&setting, "id = ?", models.SiteSettingID).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.DefaultSiteSetting()
	if err := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	err = tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&setting, "id = ?", models.SiteSettingID).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *siteSettingRepository) Update(ctx context.Context, setting *models.SiteSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
