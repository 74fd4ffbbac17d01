// Runs the recommendation API and the Telegram bot in a single process, for
// platforms that only give us one service slot. Either part exiting takes the
// other down with it.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vmashkova/restopick/api"
	"github.com/vmashkova/restopick/bot"
	"github.com/vmashkova/restopick/config"
)

func main() {
	cfg := config.LoadConfig()

	store, err := api.NewVenuePg(cfg.Postgres.ConnStr())
	if err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}
	server := api.NewServer(cfg, api.NewHandler(store))

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

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx)
	})
	g.Go(func() error {
		return b.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("shutting down: %v", err)
	}
}
