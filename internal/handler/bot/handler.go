package bot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	botmodel "github.com/lfmorais/nara/backend/internal/model/bot"
	"github.com/lfmorais/nara/backend/pkg/utils"
)

// Engine is the diagnostic surface the handler reads from.
type Engine interface {
	ListSessions() []botmodel.ChatSession
}

// Handler exposes the bot's in-memory state over HTTP.
type Handler struct {
	engine Engine
}

// New creates the bot handler.
func New(engine Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes mounts the bot diagnostic routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bot/chat", h.handleListSessions)
}

// handleListSessions returns the current sessions as-is.
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.engine.ListSessions())
}
