package directory

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	directoryservice "github.com/lfmorais/nara/backend/internal/service/directory"
	"github.com/lfmorais/nara/backend/pkg/utils"
)

// Handler exposes resident lookups over HTTP.
type Handler struct {
	store directoryservice.Store
}

// New creates the directory handler.
func New(store directoryservice.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the resident lookup routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/user/{cpf}", h.handleFindByCPF)
}

func (h *Handler) handleFindByCPF(w http.ResponseWriter, r *http.Request) {
	cpf := chi.URLParam(r, "cpf")

	person, err := h.store.FindPersonByCPF(r.Context(), cpf)
	if errors.Is(err, directoryservice.ErrPersonNotFound) {
		utils.RespondError(w, http.StatusNotFound, "CPF não encontrado.")
		return
	}
	if err != nil {
		log.Printf("[directory] cpf lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Erro ao consultar o CPF no banco de dados.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, person)
}
