package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	bothandler "github.com/lfmorais/nara/backend/internal/handler/bot"
	directoryhandler "github.com/lfmorais/nara/backend/internal/handler/directory"
	fipehandler "github.com/lfmorais/nara/backend/internal/handler/fipe"
	middlewarePkg "github.com/lfmorais/nara/backend/internal/middleware"
	botservice "github.com/lfmorais/nara/backend/internal/service/bot"
	directoryservice "github.com/lfmorais/nara/backend/internal/service/directory"
	fipeservice "github.com/lfmorais/nara/backend/internal/service/fipe"
	"github.com/lfmorais/nara/backend/internal/transport/ws"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(engine *botservice.Engine, store directoryservice.Store, fipeSvc *fipeservice.Service, transport *ws.Adapter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	botHandler := bothandler.New(engine)
	directoryHandler := directoryhandler.New(store)
	fipeHandler := fipehandler.New(fipeSvc)

	r.Route("/api", func(api chi.Router) {
		botHandler.RegisterRoutes(api)
		directoryHandler.RegisterRoutes(api)
		fipeHandler.RegisterRoutes(api)
	})

	// The chat transport lives outside the /api tree.
	transport.RegisterRoutes(r)

	return r
}
