package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/catalog"
	"github.com/anthony-garcia-santos/techstorage/internal/checkout"
	"github.com/anthony-garcia-santos/techstorage/internal/dashboard"
	"github.com/anthony-garcia-santos/techstorage/internal/events"
	"github.com/anthony-garcia-santos/techstorage/internal/favorite"
	"github.com/anthony-garcia-santos/techstorage/internal/logger"
	"github.com/anthony-garcia-santos/techstorage/internal/order"
	"github.com/anthony-garcia-santos/techstorage/internal/review"
	"github.com/anthony-garcia-santos/techstorage/internal/router"
	"github.com/anthony-garcia-santos/techstorage/internal/storage"
	"github.com/anthony-garcia-santos/techstorage/internal/storage/file"
	"github.com/anthony-garcia-santos/techstorage/internal/storage/postgres"
	"github.com/anthony-garcia-santos/techstorage/internal/storage/redis"
	"github.com/anthony-garcia-santos/techstorage/internal/user"
	"github.com/anthony-garcia-santos/techstorage/internal/util/idgen"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

// openStore picks the backend: Postgres, then Redis, then files in DataDir.
func openStore(cfg *Config) (storage.Store, string, error) {
	switch {
	case cfg.DatabaseURI != "":
		s, err := postgres.NewPostgresStorage(cfg.DatabaseURI)
		return s, "postgres", err
	case cfg.RedisAddr != "":
		s, err := redis.NewStorage(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisPrefix)
		return s, "redis", err
	default:
		s, err := file.NewStorage(cfg.DataDir)
		return s, "file", err
	}
}

func run() error {
	cfg, err := NewConfig()
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, backend, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", backend, err)
	}
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := store.Ping(pingCtx); err != nil {
		return fmt.Errorf("ping %s storage: %w", backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Log.Warn("failed to close storage", zap.Error(err))
		}
	}()
	logger.Log.Info("storage ready", zap.String("backend", backend))

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		kafkaPub := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer kafkaPub.Close()

		// stopped after srv.Shutdown so in-flight requests still publish
		dispatchCtx, stopDispatch := context.WithCancel(context.Background())
		dispatcher := events.NewDispatcher(kafkaPub, cfg.EventQueueSize)
		dispatcher.Start(dispatchCtx, cfg.EventWorkers)
		defer func() {
			stopDispatch()
			dispatcher.Wait()
		}()
		publisher = dispatcher
	}

	ids := idgen.UUID{}

	catalogSvc, err := catalog.NewService(ctx, store, ids)
	if err != nil {
		return err
	}
	if cfg.SeedCatalog {
		if err := catalogSvc.Seed(ctx, catalog.DefaultProducts()); err != nil {
			return err
		}
	}

	orderSvc, err := order.NewService(ctx, order.NewKVRepository(store), ids, publisher, order.Options{
		DeliveryWindow: cfg.DeliveryWindow,
		Strict:         cfg.StrictStatus,
	})
	if err != nil {
		return err
	}

	userSvc := user.NewService(cfg.AdminEmail, []byte(cfg.JWTSecret), cfg.JWTTTL)
	checkoutSvc := checkout.NewService(orderSvc, cfg.PaymentDelay)

	r := router.NewRouter(router.Handlers{
		User:      user.NewHandler(userSvc),
		Catalog:   catalog.NewHandler(catalogSvc),
		Order:     order.NewHandler(orderSvc),
		Checkout:  checkout.NewHandler(checkoutSvc, catalogSvc),
		Favorite:  favorite.NewHandler(favorite.NewService(store), catalogSvc),
		Review:    review.NewHandler(review.NewService(store, ids), catalogSvc),
		Dashboard: dashboard.NewHandler(orderSvc),
	}, userSvc)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.PaymentDelay,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("ListenAndServe()", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("server stopped gracefully")
	return nil
}
