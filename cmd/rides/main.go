package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lokalapp/lokal/internal/pkg/config"
	"github.com/lokalapp/lokal/internal/pkg/database"
	"github.com/lokalapp/lokal/internal/pkg/health"
	httpclient "github.com/lokalapp/lokal/internal/pkg/http"
	"github.com/lokalapp/lokal/internal/pkg/logger"
	"github.com/lokalapp/lokal/internal/pkg/middleware"
	natspkg "github.com/lokalapp/lokal/internal/pkg/nats"
	nrpkg "github.com/lokalapp/lokal/internal/pkg/newrelic"
	"github.com/lokalapp/lokal/services/rides/gateway"
	ridesHTTP "github.com/lokalapp/lokal/services/rides/handler/http"
	"github.com/lokalapp/lokal/services/rides/repository"
	"github.com/lokalapp/lokal/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/rides.env"
	}
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repositories
	flowRepo := repository.NewFlowRepo(configs, redisClient)
	historyRepo := repository.NewHistoryRepo(configs, postgresClient)

	// Gateway to the ONDC exchange and the event broker
	exchangeClient := httpclient.NewClient(configs.ONDC.GatewayURL, httpclient.DefaultTimeout)
	rideGW := gateway.NewRideGW(configs, exchangeClient, natsClient)

	// UseCase
	rideUC, err := usecase.NewRideUC(configs, flowRepo, historyRepo, rideGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride usecase", zap.Error(err))
	}

	// HTTP handler
	ridesHandler := ridesHTTP.NewRidesHandler(rideUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", postgresClient.Ping)
	healthSvc.AddChecker("redis", redisClient.Ping)
	healthSvc.AddChecker("nats", func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats disconnected")
		}
		return nil
	})
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)

	ridesHandler.RegisterRoutes(e, configs.JWT)

	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server", zap.String("app", appName))
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
}
