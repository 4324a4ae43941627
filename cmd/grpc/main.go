package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pb "github.com/fekuna/omnipos-warehouse-service/api/warehousev1"
	"github.com/fekuna/omnipos-warehouse-service/config"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/database"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/guard"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/middleware"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	authH "github.com/fekuna/omnipos-warehouse-service/internal/auth/handler"
	authRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/auth/repository"
	authUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/auth/usecase"

	cartH "github.com/fekuna/omnipos-warehouse-service/internal/cart/handler"
	cartRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/cart/repository"
	cartUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/cart/usecase"

	catH "github.com/fekuna/omnipos-warehouse-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/category/usecase"

	"github.com/fekuna/omnipos-warehouse-service/internal/inventory"
	invH "github.com/fekuna/omnipos-warehouse-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-warehouse-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/inventory/usecase"

	prodH "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"

	reportH "github.com/fekuna/omnipos-warehouse-service/internal/report/handler"
	reportUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/report/usecase"

	"github.com/fekuna/omnipos-warehouse-service/internal/withdrawal"
	wdH "github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/handler"
	wdRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/repository"
	wdUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/withdrawal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Session store
	sessionRepo, closeSession, err := newSessionRepository(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not initialize session store", zap.String("backend", cfg.Session.Backend), zap.Error(err))
	}
	defer closeSession()

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewMemoryRepository()
	prodRepo := prodRepoPkg.NewMemoryRepository()
	invRepo := invRepoPkg.NewMemoryRepository()
	cartRepo := cartRepoPkg.NewMemoryRepository()
	wdRepo := wdRepoPkg.NewMemoryRepository()
	stock := guard.New()

	// 5. Kafka producer, optional
	var (
		stockEvents      inventory.EventPublisher
		withdrawalEvents withdrawal.EventPublisher
	)
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		defer producer.Close()
		stockEvents = producer
		withdrawalEvents = producer
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.EventsTopic))
	}

	// 6. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, stock, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, stock, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, prodRepo, prodUC, stock, stockEvents, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartRepo, prodUC, stock, appLogger)
	wdUC := wdUCPkg.NewWithdrawalUseCase(wdUCPkg.Deps{
		Repo:      wdRepo,
		Carts:     cartRepo,
		Catalog:   prodUC,
		Products:  prodRepo,
		Movements: invRepo,
		Stock:     stock,
		Events:    withdrawalEvents,
		Logger:    appLogger,
	})
	authUC := authUCPkg.NewAuthUseCase(sessionRepo, authUCPkg.Account{
		User: model.User{
			ID:           cfg.Session.UserID,
			Name:         cfg.Session.UserName,
			Email:        cfg.Session.UserEmail,
			EmployeeCode: cfg.Session.EmployeeCode,
			Role:         cfg.Session.UserRole,
			Section:      cfg.Session.UserSection,
		},
		DefaultPassword: cfg.Session.DefaultPassword,
		BcryptCost:      cfg.Session.BcryptCost,
	}, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(prodUC, wdUC, appLogger)

	if cfg.Seed {
		if err := seed(ctx, catUC, prodUC); err != nil {
			appLogger.Fatal("Could not seed sample data", zap.Error(err))
		}
		appLogger.Info("Sample data seeded")
	}

	// 6.5 Initialize Listeners
	if cfg.Kafka.Enabled {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.StockTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.StockTopic))

		invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
		go invListener.Start(ctx)
	}

	// 7. Initialize Handlers
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)
	cartHandler := cartH.NewCartHandler(cartUC, appLogger)
	wdHandler := wdH.NewWithdrawalHandler(wdUC, appLogger)
	authHandler := authH.NewAuthHandler(authUC, appLogger)
	reportHandler := reportH.NewReportHandler(reportUC, appLogger)

	// 8. Start gRPC Server
	port := listenAddr(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(appLogger),
			auth.SessionInterceptor(authUC, appLogger),
		),
	)

	pb.RegisterCategoryServiceServer(grpcServer, catHandler)
	pb.RegisterProductServiceServer(grpcServer, prodHandler)
	pb.RegisterInventoryServiceServer(grpcServer, invHandler)
	pb.RegisterCartServiceServer(grpcServer, cartHandler)
	pb.RegisterWithdrawalServiceServer(grpcServer, wdHandler)
	pb.RegisterAuthServiceServer(grpcServer, authHandler)
	pb.RegisterReportServiceServer(grpcServer, reportHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 9. Start HTTP download server
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	reportH.NewDownloadHandler(reportUC, appLogger).Register(router)

	httpServer := &http.Server{
		Addr:              listenAddr(cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	appLogger.Info("Starting HTTP server", zap.String("port", httpServer.Addr))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP server shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func listenAddr(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

// newSessionRepository opens the configured session backend. The returned
// close func is always non-nil.
func newSessionRepository(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (auth.Repository, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory, "":
		return authRepoPkg.NewMemoryRepository(), func() {}, nil

	case config.SessionBackendRedis:
		client, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, func() {}, err
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return authRepoPkg.NewRedisRepository(client), func() { _ = client.Close() }, nil

	case config.SessionBackendPostgres:
		db, err := database.NewPostgres(&database.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			return nil, func() {}, err
		}
		repo := authRepoPkg.NewPGRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, func() {}, err
		}
		log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		return repo, func() { _ = db.Close() }, nil

	default:
		return nil, func() {}, errors.New("unknown session backend " + cfg.Session.Backend)
	}
}
