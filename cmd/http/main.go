package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace/ecommerce/internal/config"
	"marketplace/ecommerce/internal/handler"
	"marketplace/ecommerce/internal/logging"
	"marketplace/ecommerce/internal/repository"
	"marketplace/ecommerce/internal/repository/memory"
	"marketplace/ecommerce/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type stores struct {
	products service.ProductStore
	users    service.UserStore
	orders   service.OrderStore
	close    func()
}

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Setup storage
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to set up storage")
	}
	defer st.close()

	// 3. Seed the catalog before accepting traffic
	if cfg.SeedProducts {
		if err := service.SeedProducts(ctx, st.products, log); err != nil {
			log.WithError(err).Fatal("Failed to seed products")
		}
	}

	// 4. Setup Logic
	var hasher service.PasswordHasher = service.PlainHasher{}
	if cfg.PasswordHashing == config.PasswordHashingBcrypt {
		hasher = service.BcryptHasher{}
	}

	opts := handler.Options{Logger: log}
	if cfg.AuthRateLimit.RPS > 0 {
		opts.AuthLimiter = handler.NewRateLimiter(cfg.AuthRateLimit.RPS, cfg.AuthRateLimit.Burst, log)
	}

	h := handler.NewHandler(
		handler.NewProductHandler(service.NewCatalogService(st.products), log),
		handler.NewAuthHandler(service.NewAuthService(st.users, hasher), log),
		handler.NewOrderHandler(service.NewOrderService(st.orders), log),
		opts,
	)

	// 5. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 6. Run Server with Graceful Shutdown
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.ServerPort).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Server stopped with error")
		st.close()
		os.Exit(1)
	}

	log.Info("Server exiting")
}

func openStores(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*stores, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage; data is lost on restart")
		return &stores{
			products: memory.NewProductRepository(),
			users:    memory.NewUserRepository(),
			orders:   memory.NewOrderRepository(),
			close:    func() {},
		}, nil
	}

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, err
	}
	log.Info("Connected to database")

	if err := repository.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	return &stores{
		products: repository.NewProductRepository(dbPool),
		users:    repository.NewUserRepository(dbPool),
		orders:   repository.NewOrderRepository(dbPool),
		close:    dbPool.Close,
	}, nil
}
