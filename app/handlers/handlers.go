package handlers

import (
	"net/http"
	"strconv"

	"shopfront/app/models"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// pathID pulls the numeric {id} var out of the route.
func pathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryDecimal parses an optional decimal query param; malformed values are
// ignored rather than failing the listing.
func queryDecimal(r *http.Request, name string) *decimal.Decimal {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

type orderItemResponse struct {
	ID          uint            `json:"id"`
	Product     uint            `json:"product"`
	ProductName string          `json:"product_name"`
	Quantity    uint            `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type orderResponse struct {
	ID            uint                `json:"id"`
	OrderNumber   string              `json:"order_number"`
	Status        string              `json:"status"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	PostalCode    string              `json:"postal_code"`
	Total         decimal.Decimal     `json:"total"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
	Items         []orderItemResponse `json:"items"`
}

func newOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Address:       order.Address,
		City:          order.City,
		PostalCode:    order.PostalCode,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     order.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Items:         []orderItemResponse{},
	}
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		resp.Items = append(resp.Items, orderItemResponse{
			ID:          item.ID,
			Product:     item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return resp
}
