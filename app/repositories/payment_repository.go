package repositories

import (
	"context"
	"errors"

	"shopfront/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepositoryImpl interface {
	GetOrCreateSetting(ctx context.Context) (*models.PaymentSetting, error)
	GetEnabledGateways(ctx context.Context) ([]models.PaymentGateway, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryImpl {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetOrCreateSetting(ctx context.Context) (*models.PaymentSetting, error) {
	var setting models.PaymentSetting
	err := r.db.WithContext(ctx).First(&setting, "id = ?", models.PaymentSettingID).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.DefaultPaymentSetting()
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&setting, "id = ?", models.PaymentSettingID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *paymentRepository) GetEnabledGateways(ctx context.Context) ([]models.PaymentGateway, error) {
	var gateways []models.PaymentGateway
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("display_order, id").
		Find(&gateways).Error
	if err != nil {
		return nil, err
	}
	return gateways, nil
}
