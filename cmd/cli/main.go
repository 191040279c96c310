package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophsocial/internal/client/cli"
	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	initSignalHandler(cancel)

	cfg := config.LoadConfig()
	logger := logging.NewConsole(os.Stderr, cfg.LogLevel).With("app", "gophsocial")

	h, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s storage: %v", cfg.StorageBackend, err)
	}
	defer func() {
		if err := h.Close(); err != nil {
			logger.Error(ctx, "close storage", "error", err)
		}
	}()
	logger.Debug(ctx, "storage ready", "backend", h.Backend)

	store := session.NewStore(session.NewStoragePersistence(h.Repo), session.WithLogger(logger))
	defer store.Close()

	app := cli.NewApp(cfg, store, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "app stopped", "error", err)
	}
}

// initSignalHandler cancels the app context on SIGINT, SIGTERM or SIGQUIT,
// which aborts a pending sign-in or post.
func initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}
