package handlers

import (
	"log"
	"net/http"

	"shopfront/app/repositories"
	"shopfront/app/utils/format"

	"github.com/unrolled/render"
)

type PaymentHandler struct {
	render      *render.Render
	paymentRepo repositories.PaymentRepositoryImpl
}

func NewPaymentHandler(renderer *render.Render, paymentRepo repositories.PaymentRepositoryImpl) *PaymentHandler {
	return &PaymentHandler{render: renderer, paymentRepo: paymentRepo}
}

// SettingsGet serves the display-only payment form configuration.
func (h *PaymentHandler) SettingsGet(w http.ResponseWriter, r *http.Request) {
	setting, err := h.paymentRepo.GetOrCreateSetting(r.Context())
	if err != nil {
		log.Printf("PaymentHandler.SettingsGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load payment settings"})
		return
	}

	resp := map[string]interface{}{
		"title":             setting.Title,
		"description":       setting.Description,
		"button_label":      setting.ButtonLabel,
		"success_message":   setting.SuccessMessage,
		"enabled":           setting.Enabled,
		"require_login":     setting.RequireLogin,
		"test_mode":         setting.TestMode,
		"gateway_name":      setting.GatewayName,
		"currency":          setting.Currency,
		"fixed_fee":         setting.FixedFee,
		"fee_percent":       setting.FeePercent,
		"fixed_fee_display": format.Money(setting.Currency, setting.FixedFee),
	}
	h.render.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) GatewaysGet(w http.ResponseWriter, r *http.Request) {
	gateways, err := h.paymentRepo.GetEnabledGateways(r.Context())
	if err != nil {
		log.Printf("PaymentHandler.GatewaysGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load payment gateways"})
		return
	}
	h.render.JSON(w, http.StatusOK, gateways)
}
