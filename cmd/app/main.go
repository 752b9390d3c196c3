package main

import (
	"context"

	"drivio/config"
	"drivio/di"
	"drivio/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.Consumer.Start(ctx)
	app.Scheduler.Start()
	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
