package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/vmashkova/restopick/api"
	"github.com/vmashkova/restopick/config"
)

func main() {
	cfg := config.LoadConfig()

	store, err := api.NewVenuePg(cfg.Postgres.ConnStr())
	if err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg, api.NewHandler(store))
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("failed to run the api server: %v", err)
	}
}
