package repositories

import (
	"context"
	"errors"

	"shopfront/app/models"

	"gorm.io/gorm"
)

// ErrDuplicateSibling reports a (name, parent) collision among siblings or
// among roots.
var ErrDuplicateSibling = errors.New("a category with this name already exists under the same parent")

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetRoots(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) siblingExists(tx *gorm.DB, category *models.Category) (bool, error) {
	q := tx.Model(&models.Category{}).Where("name = ?", category.Name)
	if category.ParentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *category.ParentID)
	}
	if category.ID != 0 {
		q = q.Where("id <> ?", category.ID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	tx := r.db.WithContext(ctx)
	dup, err := r.siblingExists(tx, category)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateSibling
	}
	return tx.Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name, id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetRoots(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("parent_id IS NULL").Order("name, id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	tx := r.db.WithContext(ctx)
	dup, err := r.siblingExists(tx, category)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateSibling
	}
	return tx.Save(category).Error
}

// Delete re-roots children and detaches products instead of cascading, so
// removing a parent never removes anything below it.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.CarouselCategorySource{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.HomeSection{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}
