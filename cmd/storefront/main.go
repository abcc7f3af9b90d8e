package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/lumishop/storefront/internal/cart/app"
	"github.com/lumishop/storefront/internal/cart/infra/store"
	catalogapp "github.com/lumishop/storefront/internal/catalog/app"
	"github.com/lumishop/storefront/internal/catalog/infra/fakestore"
	"github.com/lumishop/storefront/internal/contact"
	"github.com/lumishop/storefront/internal/notify"

	"github.com/lumishop/storefront/api/handlers"
	"github.com/lumishop/storefront/pkg/config"
	"github.com/lumishop/storefront/pkg/logger"
	"github.com/lumishop/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	cartStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", string(cfg.StoreBackend)).Msg("store init failed")
	}

	events := notify.NewRing(50)
	notifier := notify.Fanout{notify.NewLogSink(log), events}

	// One manager per process, handed to every consumer by reference. The
	// cart it hydrates is the session's single source of truth.
	cartManager := cartapp.NewManager(ctx, cartStore, cfg.CartKey, notifier, log)

	catalogSvc := catalogapp.NewService(fakestore.NewClient(cfg.CatalogBaseURL))
	contactSvc := contact.NewService(log)

	router := handlers.NewRouter(
		handlers.NewProductHandler(catalogSvc, log),
		handlers.NewCartHandler(cartManager, catalogSvc, events, log),
		handlers.NewContactHandler(contactSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", addr).Msg("http server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown error")
	}

	wg.Wait()
	log.Info().Msg("bye")
}

func newStore(ctx context.Context, cfg config.Config) (cartapp.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendFile:
		return store.NewFile(cfg.StoreFileDir)
	case config.BackendRedis:
		return store.DialRedis(ctx, cfg.RedisURL)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
