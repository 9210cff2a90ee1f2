package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/roadside-assistance/application/admin"
	geocodeapp "github.com/muhammadheryan/roadside-assistance/application/geocode"
	notificationapp "github.com/muhammadheryan/roadside-assistance/application/notification"
	requestapp "github.com/muhammadheryan/roadside-assistance/application/request"
	userapp "github.com/muhammadheryan/roadside-assistance/application/user"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	redisclient "github.com/muhammadheryan/roadside-assistance/cmd/redis"
	_ "github.com/muhammadheryan/roadside-assistance/docs"
	redisRepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	requestRepo "github.com/muhammadheryan/roadside-assistance/repository/request"
	txRepo "github.com/muhammadheryan/roadside-assistance/repository/tx"
	userRepo "github.com/muhammadheryan/roadside-assistance/repository/user"
	"github.com/muhammadheryan/roadside-assistance/thirdparty/nominatim"
	"github.com/muhammadheryan/roadside-assistance/thirdparty/rabbitmq"
	"github.com/muhammadheryan/roadside-assistance/transport"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"github.com/muhammadheryan/roadside-assistance/utils/metrics"
	validatorx "github.com/muhammadheryan/roadside-assistance/utils/validator"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// @title ROADSIDE ASSISTANCE API
// @version 1.0
// @description Roadside assistance marketplace API Documentation
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pflag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		panic(err)
	}

	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(logger.Options{Environment: cfg.Environment, Level: cfg.LogLevel, Service: "api"}); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	// Broker is optional: without it events are dropped and the API keeps serving
	var publisher rabbitmq.RequestEventPublisher = rabbitmq.NoopPublisher{}
	amqpPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, status events disabled", zap.Error(err))
	} else {
		publisher = amqpPublisher
		defer amqpPublisher.Close()
	}

	m := metrics.New(cfg.Metrics.Namespace)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	geocoder := nominatim.NewClient(cfg.Geocoding.BaseURL, cfg.Geocoding.UserAgent, cfg.Geocoding.Timeout)

	// Initialize application layers
	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:         userapp.NewUserApp(cfg, TxRepo, UserRepo, RedisRepo),
		RequestApp:      requestapp.NewRequestApp(RequestRepo, publisher, m),
		AdminApp:        adminapp.NewAdminApp(UserRepo, RequestRepo),
		NotificationApp: notificationapp.NewNotificationApp(cfg, RedisRepo),
		GeocodeApp:      geocodeapp.NewGeocodeApp(cfg, RedisRepo, geocoder),
	}, m)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownWait)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
