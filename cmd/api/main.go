package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightningcath-stock-api/internal/cache"
	"lightningcath-stock-api/internal/config"
	"lightningcath-stock-api/internal/handler"
	"lightningcath-stock-api/internal/mailer"
	"lightningcath-stock-api/internal/middleware"
	"lightningcath-stock-api/internal/repository"
	"lightningcath-stock-api/internal/router"
	"lightningcath-stock-api/internal/service"
	"lightningcath-stock-api/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	log.Info("starting LightningCath stock API")

	cfg := config.MustLoad()
	log.Info("configuration loaded",
		zap.String("environment", cfg.App.Environment),
		zap.String("store", cfg.Store.Type),
		zap.String("cache", cfg.Cache.Type))

	// Snapshot store selection
	var stockRepo repository.StockRepository
	switch cfg.Store.Type {
	case "mysql":
		mysqlRepo, err := repository.NewMySQLStockRepository(cfg.Store.DSN(), logger.Named(log, "store"))
		if err != nil {
			log.Fatal("failed to initialize MySQL store", zap.Error(err))
		}
		stockRepo = mysqlRepo
		log.Info("MySQL snapshot store initialized")
	case "redis":
		redisRepo, err := repository.NewRedisStockRepository(
			cfg.Cache.RedisAddress(), cfg.Cache.RedisPassword, cfg.Cache.RedisDB,
			logger.Named(log, "store"))
		if err != nil {
			log.Fatal("failed to initialize Redis store", zap.Error(err))
		}
		stockRepo = redisRepo
		log.Info("Redis snapshot store initialized")
	case "memory":
		stockRepo = repository.NewMemoryStockRepository(logger.Named(log, "store"))
		log.Info("in-memory snapshot store initialized")
	default: // sqlite
		sqliteRepo, err := repository.NewSQLiteStockRepository(cfg.Store.Path, logger.Named(log, "store"))
		if err != nil {
			log.Fatal("failed to initialize SQLite store", zap.Error(err))
		}
		stockRepo = sqliteRepo
		log.Info("SQLite snapshot store initialized", zap.String("path", cfg.Store.Path))
	}
	defer stockRepo.Close()

	// View cache and session store
	var appCache cache.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis cache unavailable, falling back to memory", zap.Error(err))
			appCache = cache.NewMemoryCache()
		} else {
			appCache = cache.NewRedisCache(redisClient, "")
			log.Info("Redis cache initialized")
		}
	default:
		appCache = cache.NewMemoryCache()
	}
	defer appCache.Close()

	// Outbound mail transport
	var mail mailer.Mailer
	if cfg.Mailer.ResendAPIKey != "" {
		mail = mailer.NewResendMailer(cfg.Mailer.ResendAPIKey, cfg.Mailer.Timeout, logger.Named(log, "mailer"))
		log.Info("Resend mailer initialized")
	} else {
		mail = mailer.NewLogMailer(logger.Named(log, "mailer"))
		log.Warn("no RESEND_API_KEY set, RFQ emails will only be logged")
	}

	// Services
	stockView := service.NewStockView(stockRepo, appCache, cfg.Cache.TTL, logger.Named(log, "view"))
	stockEditor := service.NewStockEditor(stockRepo, logger.Named(log, "editor"))
	tokenService := service.NewTokenService(appCache, cfg.App.AdminKey, cfg.App.SessionTTL, logger.Named(log, "auth"))
	rfqService := service.NewRFQService(mail, cfg.Mailer.VendorEmail, cfg.Mailer.FromAddress, logger.Named(log, "rfq"))

	if cfg.App.AdminKey == "" {
		log.Warn("no ADMIN_KEY set, admin login is disabled")
	}

	// Handlers and router
	r := router.New(router.Config{
		Handler:        handler.New(cfg.App.Version),
		StockHandler:   handler.NewStockHandler(stockView),
		RFQHandler:     handler.NewRFQHandler(rfqService),
		AdminHandler:   handler.NewAdminHandler(stockEditor, stockView, tokenService),
		AuthMiddleware: middleware.NewAdminAuth(tokenService),
		Logger:         log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("address", cfg.Server.Address()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}
