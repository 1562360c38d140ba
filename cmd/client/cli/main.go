package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/thronos/careerforge/internal/client/cli"
	"github.com/thronos/careerforge/internal/client/config"
	"github.com/thronos/careerforge/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logging.NewTextLogger(os.Stderr, cfg.LogLevel))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
