package fipe

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	fipeservice "github.com/lfmorais/nara/backend/internal/service/fipe"
	"github.com/lfmorais/nara/backend/pkg/utils"
)

// Handler exposes the FIPE reference-data lookups over HTTP.
type Handler struct {
	fipe *fipeservice.Service
}

// New creates the FIPE handler.
func New(fipe *fipeservice.Service) *Handler {
	return &Handler{fipe: fipe}
}

// RegisterRoutes mounts the FIPE routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/fipe/marcas", h.handleBrands)
	r.Get("/fipe/modelos", h.handleModels)
}

func (h *Handler) handleBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.fipe.Brands(r.Context())
	if err != nil {
		log.Printf("[fipe] brand fetch failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erro ao buscar marcas de veículos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, brands)
}

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	brandID := r.URL.Query().Get("brandId")
	if brandID == "" {
		brandID = "1"
	}

	models, err := h.fipe.Models(r.Context(), brandID)
	if err != nil {
		log.Printf("[fipe] model fetch failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erro ao buscar modelos de veículos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models)
}
