// Package cmd assembles the application: configuration, logging,
// persistence, services, controllers and the HTTP server with graceful
// shutdown.
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopapi/api"
	"shopapi/api/health"
	apiitem "shopapi/api/item"
	apimember "shopapi/api/member"
	apiorder "shopapi/api/order"
	itemapp "shopapi/application/item"
	memberapp "shopapi/application/member"
	orderapp "shopapi/application/order"
	"shopapi/config"
	itemdomain "shopapi/domain/item"
	memberdomain "shopapi/domain/member"
	orderdomain "shopapi/domain/order"
	"shopapi/domain/shared"
	"shopapi/infrastructure/persistence/memory"
	"shopapi/infrastructure/persistence/mysql"
	"shopapi/infrastructure/persistence/retry"
	"shopapi/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled application.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// NewApp builds the application from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	if err := logger.Init(logger.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env))

	var (
		db         *gorm.DB
		sqlDB      *sql.DB
		memberRepo memberdomain.Repository
		itemRepo   itemdomain.Repository
		orderRepo  orderdomain.Repository
		orderViews orderdomain.ViewRepository
		uow        shared.UnitOfWork
	)

	switch cfg.Database.Type {
	case "memory":
		logger.Info("Using in-memory persistence layer")
		store := memory.NewStore()
		memberRepo = store.Members()
		itemRepo = store.Items()
		orderRepo = store.Orders()
		orderViews = store.OrderViews()
		uow = store.UnitOfWork()

	default:
		logger.Info("Using MySQL/GORM persistence layer")

		var err error
		db, err = mysql.Connect(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}

		sqlDB, err = db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping MySQL: %w", err)
		}
		logger.Info("Connected to MySQL successfully")

		if cfg.IsDevelopment() {
			if err := mysql.Migrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}

		memberRepo = mysql.NewMemberRepository(db)
		itemRepo = mysql.NewItemRepository(db)
		orderRepo = mysql.NewOrderRepository(db)
		orderViews = mysql.NewOrderViewRepository(db, cfg.Listing)

		mysqlUow := mysql.NewUnitOfWork(db)
		mysqlUow.SetRetryConfig(retry.FromAppConfig(cfg.Database.Retry))
		uow = mysqlUow
	}

	memberService := memberapp.NewService(memberRepo)
	itemService := itemapp.NewService(itemRepo)
	orderService := orderapp.NewService(orderRepo, orderViews, memberRepo, itemRepo, uow)

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		apimember.NewController(memberService),
		apiitem.NewController(itemService),
		apiorder.NewController(orderService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config: cfg,
		router: router,
		server: server,
		db:     db,
	}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully within
// the configured timeout.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	logger.Info("Server stopped")
	_ = logger.Sync()
	return nil
}
