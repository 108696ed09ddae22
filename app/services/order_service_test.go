package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"shopfront/app/models"
	"shopfront/app/models/migrations"
	"shopfront/app/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database restricted to a single connection,
// so concurrent transactions queue instead of hitting busy errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

func newOrderServiceForTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(
		db,
		repositories.NewSiteSettingRepository(db),
		repositories.NewCatalogRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewOrderItemRepository(db),
	)
	return svc, db
}

func createProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: decimal.RequireFromString(price)}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("creating product: %v", err)
	}
	return p
}

func setOrderCounter(t *testing.T, db *gorm.DB, counter uint) {
	t.Helper()
	site := models.DefaultSiteSetting()
	if err := db.FirstOrCreate(&site, "id = ?", models.SiteSettingID).Error; err != nil {
		t.Fatalf("creating settings: %v", err)
	}
	err := db.Model(&models.SiteSetting{}).
		Where("id = ?", models.SiteSettingID).
		Update("order_counter", counter).Error
	if err != nil {
		t.Fatalf("setting counter: %v", err)
	}
}

func TestOrderCreateComputesTotalAndDefaults(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p1 := createProduct(t, db, "Mug", "10.00")
	p2 := createProduct(t, db, "Coaster", "5.50")

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items: []OrderItemInput{
			{Product: p1.ID, Quantity: 3},
			{Product: p2.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if want := decimal.RequireFromString("41.00"); !order.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", order.Total, want)
	}
	if order.OrderNumber != "ORD-000001" {
		t.Errorf("OrderNumber = %q, want ORD-000001", order.OrderNumber)
	}

	var stored models.Order
	if err := db.Preload("Items").First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reloading order: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("stored %d items, want 2", len(stored.Items))
	}
	if !stored.Total.Equal(order.Total) {
		t.Errorf("stored Total = %s", stored.Total)
	}
}

func TestOrderNumberUsesPrefixAndCounter(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")
	setOrderCounter(t, db, 41)

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items:        []OrderItemInput{{Product: p.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.OrderNumber != "ORD-000042" {
		t.Errorf("OrderNumber = %q, want ORD-000042", order.OrderNumber)
	}
}

func TestOrderNumberSkipsCollisions(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")
	setOrderCounter(t, db, 42)

	// Manually seeded order already holds the next number in line.
	seeded := models.Order{
		OrderNumber:  "ORD-000043",
		Status:       models.OrderStatusPending,
		CustomerName: "Legacy",
		Total:        decimal.Zero,
	}
	if err := db.Create(&seeded).Error; err != nil {
		t.Fatalf("seeding order: %v", err)
	}

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items:        []OrderItemInput{{Product: p.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.OrderNumber != "ORD-000044" {
		t.Errorf("OrderNumber = %q, want ORD-000044", order.OrderNumber)
	}

	var site models.SiteSetting
	if err := db.First(&site, "id = ?", models.SiteSettingID).Error; err != nil {
		t.Fatalf("reloading settings: %v", err)
	}
	if site.OrderCounter != 44 {
		t.Errorf("OrderCounter = %d, want 44", site.OrderCounter)
	}
}

func TestOrderCreateConcurrentNumbersAreDistinct(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")

	const n = 8
	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := svc.Create(context.Background(), OrderInput{
				CustomerName: fmt.Sprintf("Customer %d", i),
				Items:        []OrderItemInput{{Product: p.ID, Quantity: 1}},
			})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			numbers <- order.OrderNumber
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for number := range numbers {
		if seen[number] {
			t.Fatalf("duplicate order number %q", number)
		}
		seen[number] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d numbers, want %d", len(seen), n)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")

	cases := []struct {
		name  string
		input OrderInput
	}{
		{"missing customer name", OrderInput{
			Items: []OrderItemInput{{Product: p.ID, Quantity: 1}},
		}},
		{"no items", OrderInput{CustomerName: "Ada"}},
		{"bad email", OrderInput{
			CustomerName:  "Ada",
			CustomerEmail: "not-an-email",
			Items:         []OrderItemInput{{Product: p.ID, Quantity: 1}},
		}},
		{"unknown product", OrderInput{
			CustomerName: "Ada",
			Items:        []OrderItemInput{{Product: 9999, Quantity: 1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
		})
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("counting orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d orders persisted by rejected inputs", count)
	}
}

func TestOrderCreateDefaultsQuantityAndPrice(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")
	override := decimal.RequireFromString("7.25")

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items: []OrderItemInput{
			{Product: p.ID, Quantity: 0},
			{Product: p.ID, Quantity: 2, Price: &override},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// 1 x 10.00 + 2 x 7.25
	if want := decimal.RequireFromString("24.50"); !order.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", order.Total, want)
	}
}

func TestReplaceItemsRecomputesTotal(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p1 := createProduct(t, db, "Mug", "10.00")
	p2 := createProduct(t, db, "Coaster", "5.50")

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items: []OrderItemInput{
			{Product: p1.ID, Quantity: 3},
			{Product: p2.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.ReplaceItems(context.Background(), order.ID, []OrderItemInput{
		{Product: p2.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("ReplaceItems: %v", err)
	}
	if want := decimal.RequireFromString("11.00"); !updated.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", updated.Total, want)
	}

	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		t.Fatalf("loading items: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != p2.ID {
		t.Fatalf("stored items: %+v", items)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, db := newOrderServiceForTest(t)
	p := createProduct(t, db, "Mug", "10.00")

	order, err := svc.Create(context.Background(), OrderInput{
		CustomerName: "Ada",
		Items:        []OrderItemInput{{Product: p.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), order.ID, "teleported"); err == nil {
		t.Fatal("invalid status accepted")
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.OrderStatusShipped {
		t.Errorf("Status = %q", updated.Status)
	}
	if updated.OrderNumber != order.OrderNumber {
		t.Errorf("order number changed on status update")
	}

	if _, err := svc.UpdateStatus(context.Background(), 9999, models.OrderStatusPaid); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("got %v, want ErrOrderNotFound", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if stored.Status != models.OrderStatusShipped {
		t.Errorf("stored Status = %q", stored.Status)
	}
}

func TestRecomputeTotalIgnoresNegativePrices(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("3.00")},
		{Quantity: 1, Price: decimal.RequireFromString("-5.00")},
	}
	if want := decimal.RequireFromString("6.00"); !RecomputeTotal(items).Equal(want) {
		t.Errorf("RecomputeTotal = %s, want %s", RecomputeTotal(items), want)
	}
}
