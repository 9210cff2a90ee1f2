package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/thirdparty/rabbitmq"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// notifier consumes request status events and records them through the API's internal endpoint.
func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pflag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		panic(err)
	}
	cfg := config.Load()

	if err := logger.Init(logger.Options{Environment: cfg.Environment, Level: cfg.LogLevel, Service: "notifier"}); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Notifier running", zap.String("queue", rabbitmq.RequestStatusQueue), zap.String("api", cfg.Internal.APIURL))

	select {
	case <-ctx.Done():
		logger.Info("Shutting down notifier")
	case <-done:
		logger.Warn("consumer stopped")
	}
}
