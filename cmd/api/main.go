package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/UnicloudAfrica/uniclo-sub012/docs"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/routes"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/app"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/config"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Silo Storage Order API
// @version         1.0
// @description     Object storage order wizard: pricing, order submission, payment tracking and provisioning progress.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()
	if err := logging.Initialize(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		panic(err)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeFn, err := app.Build(ctx, cfg)
	if err != nil {
		logging.L().Fatal("[app][main] failed to build dependencies", zap.Error(err))
	}
	defer closeFn()

	if err := routes.Run(ctx, cfg.Port, deps); err != nil {
		logging.L().Fatal("[app][main] failed to startup the application", zap.Error(err))
	}
}
