package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-order/internal/auth"
	"food-order/internal/cache"
	"food-order/internal/config"
	"food-order/internal/database"
	"food-order/internal/events"
	"food-order/internal/handler"
	"food-order/internal/media"
	"food-order/internal/notifier"
	"food-order/internal/repository"
	"food-order/internal/router"
	"food-order/internal/service"

	"github.com/redis/go-redis/v9"
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
	logger.Info().Msg("starting food-order API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(pool, logger)
	foodRepo := repository.NewFoodRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	deliveryRepo := repository.NewDeliveryUserRepository(pool, logger)
	offerRepo := repository.NewOfferRepository(pool, logger)
	txnRepo := repository.NewTransactionRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	images, err := newImageStore(ctx, cfg.Media, logger)
	if err != nil {
		return err
	}

	emailSender := newEmailSender(ctx, cfg.Email, logger)
	smsSender := newSMSSender(cfg.SMS, logger)

	catalogue, closeCache := newCatalogueCache(ctx, cfg.Redis, logger)
	defer closeCache()

	publisher := newPublisher(cfg.Kafka, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	tokens := auth.NewTokenManager(cfg.Auth.AppSecret, cfg.Auth.TokenTTL)

	// Initialize services
	adminService := service.NewAdminService(vendorRepo, txnRepo, deliveryRepo, logger)
	vendorService := service.NewVendorService(vendorRepo, foodRepo, images, catalogue, tokens, logger)
	shoppingService := service.NewShoppingService(vendorRepo, foodRepo, offerRepo, catalogue, logger)
	customerService := service.NewCustomerService(customerRepo, tokens, emailSender, smsSender, logger)
	cartService := service.NewCartService(customerRepo, foodRepo, logger)
	offerService := service.NewOfferService(offerRepo, logger)
	paymentService := service.NewPaymentService(txnRepo, offerRepo, logger)
	deliveryService := service.NewDeliveryService(deliveryRepo, tokens, logger)
	orderService := service.NewOrderService(service.OrderDeps{
		Orders:       orderRepo,
		Foods:        foodRepo,
		Transactions: txnRepo,
		Vendors:      vendorRepo,
		Customers:    customerRepo,
		Delivery:     deliveryRepo,
		Events:       publisher,
		Email:        emailSender,
	}, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Admin:    handler.NewAdminHandler(adminService, logger),
		Vendor:   handler.NewVendorHandler(vendorService, orderService, offerService, logger),
		Customer: handler.NewCustomerHandler(customerService, cartService, offerService, paymentService, orderService, logger),
		Delivery: handler.NewDeliveryHandler(deliveryService, logger),
		Shopping: handler.NewShoppingHandler(shoppingService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, router.Options{
		APIKey:         cfg.Auth.APIKey,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ImagesDir:      cfg.Media.LocalDir,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
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

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Drain order side effects before the publisher and pool go away
		orderService.Close()

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newImageStore keeps images on disk and, when enabled, uploads to S3 first.
func newImageStore(ctx context.Context, cfg config.MediaConfig, logger zerolog.Logger) (media.Store, error) {
	local, err := media.NewFileStore(cfg.LocalDir, cfg.PublicBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image directory: %w", err)
	}

	if !cfg.S3Enabled {
		logger.Info().Msg("using local file system for images (S3 disabled)")
		return local, nil
	}

	s3Store, err := media.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 store, falling back to local file system only")
		return local, nil
	}

	return media.NewFallbackStore(s3Store, local, logger), nil
}

func newEmailSender(ctx context.Context, cfg config.EmailConfig, logger zerolog.Logger) notifier.EmailSender {
	if !cfg.Enabled {
		return notifier.NewNopEmailSender(logger)
	}

	sender, err := notifier.NewSESEmailSender(ctx, cfg.Region, cfg.Sender, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialise SES, emails will be logged only")
		return notifier.NewNopEmailSender(logger)
	}
	return sender
}

func newSMSSender(cfg config.SMSConfig, logger zerolog.Logger) notifier.SMSSender {
	if !cfg.Enabled {
		return notifier.NewNopSMSSender(logger)
	}

	return notifier.NewHTTPSMSSender(notifier.SMSConfig{
		URL:      cfg.URL,
		Username: cfg.Username,
		APIKey:   cfg.APIKey,
		SenderID: cfg.SenderID,
	}, logger)
}

// newCatalogueCache returns the shopping cache and a func releasing it.
func newCatalogueCache(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (cache.Cache, func()) {
	if !cfg.Enabled {
		return cache.NewNopCache(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, catalogue caching disabled")
		client.Close()
		return cache.NewNopCache(), func() {}
	}

	return cache.NewRedisCache(client, cfg.TTL, logger), func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
}

func newPublisher(cfg config.KafkaConfig, logger zerolog.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.NewNopPublisher(logger)
	}
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic, logger)
}
