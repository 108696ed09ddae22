package repositories

import (
	"context"

	"shopfront/app/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error
	GetByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	// ReplaceForOrder swaps an order's line items inside one transaction;
	// callers recompute the total right after.
	ReplaceForOrder(ctx context.Context, tx *gorm.DB, orderID uint, items []models.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepository) GetByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) ReplaceForOrder(ctx context.Context, tx *gorm.DB, orderID uint, items []models.OrderItem) error {
	if err := tx.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = orderID
	}
	return r.BulkCreate(ctx, tx, items)
}
