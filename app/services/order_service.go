package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"shopfront/app/models"
	"shopfront/app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxOrderNumberAttempts bounds the collision-skip loop. Hitting the bound
// means the order_number space around the counter has been manually seeded
// or corrupted and needs operator attention.
const maxOrderNumberAttempts = 100

var (
	ErrProductNotFound      = errors.New("order references a product that does not exist")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNumberExhausted = errors.New("could not find a free order number; counter space looks corrupted")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
)

// ValidationError wraps field-level input problems so handlers can map them
// to a 400 instead of a 500.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

type OrderItemInput struct {
	Product  uint             `json:"product" validate:"required"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

type OrderInput struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerEmail string           `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string           `json:"customer_phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	PostalCode    string           `json:"postal_code"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderService owns order capture: input validation, atomic order-number
// assignment and the derived total.
type OrderService struct {
	db            *gorm.DB
	validate      *validator.Validate
	settingsRepo  repositories.SiteSettingRepositoryImpl
	catalogRepo   repositories.CatalogRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
}

func NewOrderService(
	db *gorm.DB,
	settingsRepo repositories.SiteSettingRepositoryImpl,
	catalogRepo repositories.CatalogRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
) *OrderService {
	return &OrderService{
		db:            db,
		validate:      validator.New(),
		settingsRepo:  settingsRepo,
		catalogRepo:   catalogRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// Create captures an order in one transaction: nothing is persisted unless
// the number is assigned, the items are stored and the total is computed.
func (s *OrderService) Create(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Err: err}
	}

	// Resolve products up front so a bad reference never creates a partial
	// order.
	products := make(map[uint]*models.Product, len(input.Items))
	for _, item := range input.Items {
		if _, ok := products[item.Product]; ok {
			continue
		}
		product, err := s.catalogRepo.GetByID(ctx, item.Product)
		if err != nil {
			return nil, fmt.Errorf("resolving product %d: %w", item.Product, err)
		}
		if product == nil {
			return nil, &ValidationError{Err: fmt.Errorf("%w: id %d", ErrProductNotFound, item.Product)}
		}
		products[item.Product] = product
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("OrderService.Create: rolling back after panic: %v", r)
			tx.Rollback()
			panic(r)
		}
	}()

	number, err := s.nextOrderNumber(ctx, tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	order := &models.Order{
		OrderNumber:   number,
		Status:        models.OrderStatusPending,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		City:          input.City,
		PostalCode:    input.PostalCode,
		Total:         decimal.Zero,
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := products[in.Product].Price
		if in.Price != nil {
			price = *in.Price
		}
		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: in.Product,
			Quantity:  uint(qty),
			Price:     price,
		})
	}
	if err := s.orderItemRepo.BulkCreate(ctx, tx, items); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	order.Total = RecomputeTotal(items)
	if err := s.orderRepo.UpdateTotal(ctx, tx, order.ID, order.Total); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to store order total: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	order.Items = items
	return order, nil
}

// nextOrderNumber implements the sequencer. The settings row is locked for
// the whole read-increment-collision-check-persist sequence, so concurrent
// creations serialize here and numbers come out strictly increasing in lock
// grant order.
func (s *OrderService) nextOrderNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	site, err := s.settingsRepo.LockForUpdate(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("failed to lock settings row: %w", err)
	}

	site.OrderCounter++
	candidate := fmt.Sprintf("%s%06d", site.OrderPrefix, site.OrderCounter)

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		exists, err := s.orderRepo.NumberExists(ctx, tx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			err := tx.WithContext(ctx).Model(&models.SiteSetting{}).
				Where("id = ?", models.SiteSettingID).
				Update("order_counter", site.OrderCounter).Error
			if err != nil {
				return "", fmt.Errorf("failed to persist order counter: %w", err)
			}
			return candidate, nil
		}
		// Collision with manually seeded data; skip forward.
		site.OrderCounter++
		candidate = fmt.Sprintf("%s%06d", site.OrderPrefix, site.OrderCounter)
	}
	return "", ErrOrderNumberExhausted
}

// RecomputeTotal derives an order total from its line items. Unusable
// values contribute zero; the total is always defined.
func RecomputeTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total.Round(2)
}

// ReplaceItems swaps an order's line items (admin edits) and recomputes the
// total in the same transaction, keeping it derivable at all times.
func (s *OrderService) ReplaceItems(ctx context.Context, orderID uint, inputs []OrderItemInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.catalogRepo.GetByID(ctx, in.Product)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &ValidationError{Err: fmt.Errorf("%w: id %d", ErrProductNotFound, in.Product)}
		}
		qty := in.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := product.Price
		if in.Price != nil {
			price = *in.Price
		}
		items = append(items, models.OrderItem{
			OrderID:   orderID,
			ProductID: in.Product,
			Quantity:  uint(qty),
			Price:     price,
		})
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	if err := s.orderItemRepo.ReplaceForOrder(ctx, tx, orderID, items); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to replace order items: %w", err)
	}
	total := RecomputeTotal(items)
	if err := s.orderRepo.UpdateTotal(ctx, tx, orderID, total); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to store order total: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit item update: %w", err)
	}

	order.Items = items
	order.Total = total
	return order, nil
}

// UpdateStatus moves an order through its lifecycle; the order number and
// total are untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, &ValidationError{Err: fmt.Errorf("%w: %q", ErrInvalidOrderStatus, status)}
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
