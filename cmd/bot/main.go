package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/vmashkova/restopick/bot"
	"github.com/vmashkova/restopick/config"
)

func main() {
	cfg := config.LoadConfig()

	sessions, err := bot.NewSessionStore(cfg.Sessions)
	if err != nil {
		log.Fatal("failed to build session store:", err)
	}

	b, err := bot.New(cfg, sessions)
	if err != nil {
		log.Fatal("failed to connect to telegram:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("failed to run the bot: %v", err)
	}
}
