package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lfmorais/nara/backend/internal/config"
	"github.com/lfmorais/nara/backend/internal/handler"
	"github.com/lfmorais/nara/backend/internal/model/catalog"
	botservice "github.com/lfmorais/nara/backend/internal/service/bot"
	"github.com/lfmorais/nara/backend/internal/service/directory"
	fipeservice "github.com/lfmorais/nara/backend/internal/service/fipe"
	"github.com/lfmorais/nara/backend/internal/service/media"
	"github.com/lfmorais/nara/backend/internal/transport/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := newDirectoryStore(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to the residents database: %v", err)
	}

	engine := botservice.NewEngine(botservice.Config{
		Directory:   store,
		Images:      media.NewResizer(),
		Catalog:     catalog.Seed(),
		IdleTimeout: cfg.Bot.IdleTimeout,
	})

	transport := ws.NewAdapter(engine)
	engine.SetSender(transport)

	fipeSvc := fipeservice.NewService(cfg.Fipe.BaseURL)

	router := handler.NewRouter(engine, store, fipeSvc, transport)

	startServer(ctx, cfg.Server, router)
}

func newDirectoryStore(ctx context.Context, cfg config.DatabaseConfig) (directory.Store, error) {
	if cfg.DSN == "" {
		log.Println("DATABASE_URL not set, using in-memory residents store")
		return directory.NewMemoryStore(), nil
	}

	db, err := directory.OpenPostgres(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	log.Println("connected to the residents database")
	return directory.NewPostgres(db), nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("NARA backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
