package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mix-store/internal/auth"
	"mix-store/internal/catalog"
	"mix-store/internal/config"
	"mix-store/internal/database"
	"mix-store/internal/handler"
	"mix-store/internal/model"
	"mix-store/internal/repository"
	"mix-store/internal/router"
	"mix-store/internal/service"
	"mix-store/internal/session"
	"mix-store/internal/stylist"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mix-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Remote order store
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return err
	}

	// Sessions, catalogue and accounts
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(redisClient, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	seed, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return err
	}
	if _, err := productRepo.SeedIfEmpty(ctx, seed); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	directory := auth.NewDirectory(redisClient, logger)
	if err := directory.SeedDemoUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed demo users: %w", err)
	}

	store := session.NewStore(redisClient, cfg.Redis.SessionTTL(), logger)
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	// Offline when no API key is configured
	var generator stylist.Generator
	if cfg.Stylist.APIKey != "" {
		generator = stylist.NewClient(cfg.Stylist, logger)
	} else {
		logger.Warn().Msg("stylist API key not set, running offline")
	}
	assistant := stylist.New(generator, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, assistant, logger)
	cartService := service.NewCartService(productRepo, store, logger)
	orderService := service.NewOrderService(orderRepo, store, logger)
	userService := service.NewUserService(directory, store, orderService, logger)
	chatService := service.NewChatService(assistant, productRepo, store, logger)

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		Session: handler.NewSessionHandler(tokens, logger),
		Product: handler.NewProductHandler(productService, logger),
		Cart:    handler.NewCartHandler(cartService, logger),
		Auth:    handler.NewAuthHandler(userService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Stylist: handler.NewStylistHandler(chatService, logger),
	}, tokens, store, userService, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Stylist.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog returns the products used to seed an empty catalogue. Without a
// seed path the built-in inventory is used; with S3 enabled the seed is read
// from the bucket first and from disk if that fails.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) ([]model.Product, error) {
	if cfg.SeedPath == "" {
		logger.Info().Msg("using built-in catalog")
		return catalog.DefaultProducts(), nil
	}

	var s3Loader catalog.Loader
	if cfg.S3Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for catalog seed (S3 disabled)")
	}

	loader := catalog.NewFallbackLoader(s3Loader, catalog.NewFileLoader(logger), cfg.S3Prefix, logger)

	products, err := loader.Load(ctx, cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog seed: %w", err)
	}
	return products, nil
}
