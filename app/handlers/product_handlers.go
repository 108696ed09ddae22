package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"shopfront/app/models"
	"shopfront/app/repositories"
	"shopfront/app/services"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

// patchableProductFields is the allow-list for partial updates; anything
// outside it is rejected rather than silently ignored. Keys are payload
// names, values the column they map to.
var patchableProductFields = map[string]string{
	"name":                "name",
	"description":         "description",
	"price":               "price",
	"image_url":           "image_url",
	"image":               "image_path",
	"category_id":         "category_id",
	"style_template_id":   "style_template_id",
	"in_stock":            "in_stock",
	"stock_qty":           "stock_qty",
	"low_stock_threshold": "low_stock_threshold",
	"notify_on_low_stock": "notify_on_low_stock",
	"popularity":          "popularity",
	"trend_score":         "trend_score",
}

type ProductInput struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	ImageURL          string          `json:"image_url"`
	Image             string          `json:"image"`
	CategoryID        *uint           `json:"category_id"`
	StyleTemplateID   *uint           `json:"style_template_id"`
	InStock           *bool           `json:"in_stock"`
	StockQty          *uint           `json:"stock_qty"`
	LowStockThreshold *uint           `json:"low_stock_threshold"`
	NotifyOnLowStock  *bool           `json:"notify_on_low_stock"`
	Popularity        uint            `json:"popularity"`
	TrendScore        uint            `json:"trend_score"`
}

type ProductHandler struct {
	render      *render.Render
	catalogRepo repositories.CatalogRepositoryImpl
}

func NewProductHandler(renderer *render.Render, catalogRepo repositories.CatalogRepositoryImpl) *ProductHandler {
	return &ProductHandler{render: renderer, catalogRepo: catalogRepo}
}

func (h *ProductHandler) ListGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.ProductFilter{
		Query:        query.Get("q"),
		CategoryName: query.Get("category"),
		MinPrice:     queryDecimal(r, "min_price"),
		MaxPrice:     queryDecimal(r, "max_price"),
		Ordering:     query.Get("ordering"),
	}
	if raw := query.Get("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			filter.CategoryID = &cid
		}
	}

	products, err := h.catalogRepo.Find(r.Context(), filter)
	if err != nil {
		log.Printf("ProductHandler.ListGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to list products"})
		return
	}
	h.render.JSON(w, http.StatusOK, services.ProductPayloads(products))
}

func (h *ProductHandler) DetailGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid product id"})
		return
	}
	product, err := h.catalogRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.DetailGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, services.ProductPayloads([]models.Product{*product})[0])
}

func (h *ProductHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}
	if input.Name == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "name is required"})
		return
	}

	product := productFromInput(input)
	if err := h.catalogRepo.Create(r.Context(), product); err != nil {
		log.Printf("ProductHandler.CreatePost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to create product"})
		return
	}
	h.render.JSON(w, http.StatusCreated, services.ProductPayloads([]models.Product{*product})[0])
}

func (h *ProductHandler) UpdatePut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid product id"})
		return
	}
	existing, err := h.catalogRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.UpdatePut: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load product"})
		return
	}
	if existing == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}

	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}
	if input.Name == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "name is required"})
		return
	}

	updated := productFromInput(input)
	updated.ID = existing.ID
	if err := h.catalogRepo.Update(r.Context(), updated); err != nil {
		log.Printf("ProductHandler.UpdatePut: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to update product"})
		return
	}
	h.render.JSON(w, http.StatusOK, services.ProductPayloads([]models.Product{*updated})[0])
}

// PartialUpdatePatch applies a field-map update validated against the
// allow-list, the bulk-edit path used by the back office.
func (h *ProductHandler) PartialUpdatePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid product id"})
		return
	}

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}
	fields := map[string]interface{}{}
	for key, value := range patch {
		column, allowed := patchableProductFields[key]
		if !allowed {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Field not editable: " + key})
			return
		}
		fields[column] = value
	}
	if len(fields) == 0 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "No fields to update"})
		return
	}

	if err := h.catalogRepo.UpdateFields(r.Context(), id, fields); err != nil {
		log.Printf("ProductHandler.PartialUpdatePatch: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to update product"})
		return
	}

	product, err := h.catalogRepo.GetByID(r.Context(), id)
	if err != nil || product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, services.ProductPayloads([]models.Product{*product})[0])
}

func (h *ProductHandler) DeleteDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid product id"})
		return
	}
	if err := h.catalogRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProductReferenced) {
			h.render.JSON(w, http.StatusConflict, map[string]string{"detail": "Product is referenced by existing orders"})
			return
		}
		log.Printf("ProductHandler.DeleteDelete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to delete product"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClonePost duplicates a product under a "(Copy)" name.
func (h *ProductHandler) ClonePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid product id"})
		return
	}
	src, err := h.catalogRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.ClonePost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load product"})
		return
	}
	if src == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}

	clone := *src
	clone.ID = 0
	clone.Name = src.Name + " (Copy)"
	clone.Category = nil
	clone.StyleTemplate = nil
	if err := h.catalogRepo.Create(r.Context(), &clone); err != nil {
		log.Printf("ProductHandler.ClonePost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to clone product"})
		return
	}
	h.render.JSON(w, http.StatusCreated, services.ProductPayloads([]models.Product{clone})[0])
}

func productFromInput(input ProductInput) *models.Product {
	product := &models.Product{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		ImageURL:          input.ImageURL,
		ImagePath:         input.Image,
		CategoryID:        input.CategoryID,
		StyleTemplateID:   input.StyleTemplateID,
		InStock:           true,
		StockQty:          input.StockQty,
		Popularity:        input.Popularity,
		TrendScore:        input.TrendScore,
		LowStockThreshold: 5,
		NotifyOnLowStock:  true,
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.NotifyOnLowStock != nil {
		product.NotifyOnLowStock = *input.NotifyOnLowStock
	}
	return product
}
