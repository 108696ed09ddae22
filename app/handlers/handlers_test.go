package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfront/app/models"
	"shopfront/app/models/migrations"
	"shopfront/app/repositories"
	"shopfront/app/services"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

// newTestRouter wires the API without the session and CSRF layers so tests
// hit handlers directly.
func newTestRouter(t *testing.T, db *gorm.DB) *mux.Router {
	t.Helper()
	renderer := render.New()

	settingsRepo := repositories.NewSiteSettingRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	carouselSvc := services.NewCarouselService(catalogRepo)
	homeSvc := services.NewHomeService(settingsRepo, catalogRepo, carouselSvc)
	orderSvc := services.NewOrderService(db, settingsRepo, catalogRepo, orderRepo, orderItemRepo)

	homeHandler := NewHomeHandler(renderer, homeSvc)
	productHandler := NewProductHandler(renderer, catalogRepo)
	categoryHandler := NewCategoryHandler(renderer, categoryRepo)
	orderHandler := NewOrderHandler(renderer, orderSvc, orderRepo)

	router := mux.NewRouter()
	router.HandleFunc("/api/home/", homeHandler.HomeConfigGet).Methods("GET")
	router.HandleFunc("/api/products/", productHandler.ListGet).Methods("GET")
	router.HandleFunc("/api/products/{id}/", productHandler.PartialUpdatePatch).Methods("PATCH")
	router.HandleFunc("/api/categories/tree/", categoryHandler.TreeGet).Methods("GET")
	router.HandleFunc("/api/orders/", orderHandler.CreatePost).Methods("POST")
	router.HandleFunc("/api/orders/{id}/", orderHandler.DetailGet).Methods("GET")
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHomeEndpointComposesConfiguredSections(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	site := models.DefaultSiteSetting()
	if err := db.Create(&site).Error; err != nil {
		t.Fatalf("creating settings: %v", err)
	}
	category := models.Category{Name: "Shoes"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("creating category: %v", err)
	}
	products := []models.Product{
		{Name: "Sneaker", Price: decimal.RequireFromString("45.00"), CategoryID: &category.ID},
		{Name: "Boot", Price: decimal.RequireFromString("120.00"), CategoryID: &category.ID},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("creating products: %v", err)
	}
	section := models.HomeSection{
		SiteID: site.ID, Title: "Shoes", Kind: models.SectionKindCategory,
		CategoryID: &category.ID, Limit: 8, Columns: 4,
	}
	if err := db.Create(&section).Error; err != nil {
		t.Fatalf("creating section: %v", err)
	}

	rec := doJSON(t, router, "GET", "/api/home/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		HomeProductLimit uint `json:"home_product_limit"`
		Sections         []struct {
			Title    string `json:"title"`
			Products []struct {
				Name     string `json:"name"`
				ImageURL string `json:"image_url"`
			} `json:"products"`
		} `json:"sections"`
		Carousels []interface{} `json:"carousels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if payload.HomeProductLimit != 12 {
		t.Errorf("home_product_limit = %d", payload.HomeProductLimit)
	}
	if len(payload.Sections) != 1 || payload.Sections[0].Title != "Shoes" {
		t.Fatalf("sections: %+v", payload.Sections)
	}
	got := payload.Sections[0].Products
	if len(got) != 2 || got[0].Name != "Boot" || got[1].Name != "Sneaker" {
		t.Fatalf("section products: %+v", got)
	}
	if got[0].ImageURL == "" {
		t.Error("image_url missing the placeholder fallback")
	}
	if payload.Carousels == nil {
		t.Error("carousels should be [] not null")
	}
}

func TestOrderCreateIgnoresClientStatusAndTotal(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	product := models.Product{Name: "Mug", Price: decimal.RequireFromString("10.00")}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("creating product: %v", err)
	}

	body := map[string]interface{}{
		"customer_name": "Ada",
		"status":        "paid",
		"total":         "0.01",
		"items": []map[string]interface{}{
			{"product": product.ID, "quantity": 2},
		},
	}
	rec := doJSON(t, router, "POST", "/api/orders/", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		OrderNumber string `json:"order_number"`
		Status      string `json:"status"`
		Total       string `json:"total"`
		Items       []struct {
			ProductName string `json:"product_name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want pending", resp.Status)
	}
	if !decimal.RequireFromString(resp.Total).Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("total = %q, want 20.00", resp.Total)
	}
	if resp.OrderNumber == "" {
		t.Error("order_number missing")
	}
	if len(resp.Items) != 1 || resp.Items[0].ProductName != "Mug" {
		t.Errorf("items: %+v", resp.Items)
	}
}

func TestOrderCreateRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	rec := doJSON(t, router, "POST", "/api/orders/", map[string]interface{}{
		"customer_name": "Ada",
		"items":         []interface{}{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "POST", "/api/orders/", map[string]interface{}{
		"customer_name": "Ada",
		"items":         []map[string]interface{}{{"product": 9999}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown product: status %d", rec.Code)
	}
}

func TestProductPatchRejectsUnknownFields(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	product := models.Product{Name: "Mug", Price: decimal.RequireFromString("10.00")}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("creating product: %v", err)
	}

	rec := doJSON(t, router, "PATCH", "/api/products/1/", map[string]interface{}{
		"id": 99,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp["detail"] != "Field not editable: id" {
		t.Errorf("detail = %q", resp["detail"])
	}

	rec = doJSON(t, router, "PATCH", "/api/products/1/", map[string]interface{}{
		"name": "Tea Mug",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("allowed patch: status %d: %s", rec.Code, rec.Body.String())
	}
	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if reloaded.Name != "Tea Mug" {
		t.Errorf("name = %q", reloaded.Name)
	}
}

func TestCategoryTreeEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	root := models.Category{Name: "Apparel"}
	if err := db.Create(&root).Error; err != nil {
		t.Fatalf("creating root: %v", err)
	}
	child := models.Category{Name: "Shirts", ParentID: &root.ID}
	if err := db.Create(&child).Error; err != nil {
		t.Fatalf("creating child: %v", err)
	}

	rec := doJSON(t, router, "GET", "/api/categories/tree/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var tree []struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
		} `json:"children"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tree); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(tree) != 1 || tree[0].Name != "Apparel" {
		t.Fatalf("tree: %+v", tree)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Name != "Shirts" {
		t.Fatalf("children: %+v", tree[0].Children)
	}
}
