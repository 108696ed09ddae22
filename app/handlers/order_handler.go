package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"shopfront/app/models"
	"shopfront/app/repositories"
	"shopfront/app/services"

	"github.com/unrolled/render"
)

type OrderHandler struct {
	render    *render.Render
	orderSvc  *services.OrderService
	orderRepo repositories.OrderRepository
}

func NewOrderHandler(renderer *render.Render, orderSvc *services.OrderService, orderRepo repositories.OrderRepository) *OrderHandler {
	return &OrderHandler{render: renderer, orderSvc: orderSvc, orderRepo: orderRepo}
}

// CreatePost captures a new order. Status and total are server-assigned;
// anything the client sends for them is ignored by the input shape.
func (h *OrderHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}

	order, err := h.orderSvc.Create(r.Context(), input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": vErr.Error()})
			return
		}
		log.Printf("OrderHandler.CreatePost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to create order"})
		return
	}

	// Reload with product names for the response.
	full, err := h.orderRepo.GetByID(r.Context(), order.ID)
	if err != nil || full == nil {
		full = order
	}
	h.render.JSON(w, http.StatusCreated, newOrderResponse(full))
}

func (h *OrderHandler) ListGet(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	var orders []models.Order
	var err error
	if email != "" {
		orders, err = h.orderRepo.FindByEmail(r.Context(), email)
	} else {
		orders, err = h.orderRepo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("OrderHandler.ListGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to list orders"})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, newOrderResponse(&orders[i]))
	}
	h.render.JSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) DetailGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid order id"})
		return
	}
	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("OrderHandler.DetailGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load order"})
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, newOrderResponse(order))
}

type statusInput struct {
	Status string `json:"status"`
}

func (h *OrderHandler) StatusPatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid order id"})
		return
	}
	var input statusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}

	order, err := h.orderSvc.UpdateStatus(r.Context(), id, input.Status)
	if err != nil {
		h.writeOrderError(w, err, "Failed to update order status")
		return
	}
	h.render.JSON(w, http.StatusOK, newOrderResponse(order))
}

type itemsInput struct {
	Items []services.OrderItemInput `json:"items"`
}

// ItemsPut replaces the order's line items (back-office edits); the total
// is recomputed server-side so it can never drift from the items.
func (h *OrderHandler) ItemsPut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid order id"})
		return
	}
	var input itemsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body"})
		return
	}

	order, err := h.orderSvc.ReplaceItems(r.Context(), id, input.Items)
	if err != nil {
		h.writeOrderError(w, err, "Failed to update order items")
		return
	}

	full, err := h.orderRepo.GetByID(r.Context(), order.ID)
	if err != nil || full == nil {
		full = order
	}
	h.render.JSON(w, http.StatusOK, newOrderResponse(full))
}

func (h *OrderHandler) writeOrderError(w http.ResponseWriter, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": vErr.Error()})
	case errors.Is(err, services.ErrOrderNotFound):
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
	default:
		log.Printf("OrderHandler: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": fallback})
	}
}
