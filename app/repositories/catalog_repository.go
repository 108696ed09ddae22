package repositories

import (
	"context"
	"errors"
	"strings"

	"shopfront/app/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrProductReferenced blocks deletion of products that still appear in
// order history.
var ErrProductReferenced = errors.New("product is referenced by existing order items")

// ProductFilter mirrors the storefront list query params. Zero values mean
// "no constraint".
type ProductFilter struct {
	Query        string
	CategoryID   *uint
	CategoryName string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Ordering     string
}

type CatalogRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryImpl {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("StyleTemplate").
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Category").
		Preload("StyleTemplate")

	if filter.Query != "" {
		keyword := "%" + strings.ToLower(filter.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != "" {
		q = q.Where("category_id IN (SELECT id FROM categories WHERE LOWER(name) = ?)", strings.ToLower(filter.CategoryName))
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	switch filter.Ordering {
	case "newest":
		q = q.Order("id DESC")
	case "oldest":
		q = q.Order("id")
	case "price_asc":
		q = q.Order("price, id")
	case "price_desc":
		q = q.Order("price DESC, id DESC")
	default:
		q = q.Order("id")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) FindByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("StyleTemplate").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("StyleTemplate").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *catalogRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *catalogRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// Delete refuses to remove a product that order items still point at, so
// order history stays intact.
func (r *catalogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductReferenced
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
