package handlers

import (
	"log"
	"net/http"

	"shopfront/app/services"

	"github.com/unrolled/render"
)

type HomeHandler struct {
	render  *render.Render
	homeSvc *services.HomeService
}

func NewHomeHandler(renderer *render.Render, homeSvc *services.HomeService) *HomeHandler {
	return &HomeHandler{render: renderer, homeSvc: homeSvc}
}

// HomeConfigGet serves the aggregated homepage payload the storefront
// renders from.
func (h *HomeHandler) HomeConfigGet(w http.ResponseWriter, r *http.Request) {
	payload, err := h.homeSvc.Compose(r.Context())
	if err != nil {
		log.Printf("HomeConfigGet: failed to compose homepage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load homepage configuration"})
		return
	}
	h.render.JSON(w, http.StatusOK, payload)
}
