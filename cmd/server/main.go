package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"clanPortal/internal/auth"
	"clanPortal/internal/config"
	"clanPortal/internal/httpserver"
	"clanPortal/internal/store"
	"clanPortal/repository"
)

func main() {
	// Load .env if present; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	st, err := store.Open(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	if err := repository.EnsureCollections(st); err != nil {
		log.Fatalf("ensure collections: %v", err)
	}

	deps := httpserver.Deps{
		Users:        repository.NewUserRepository(st),
		Applications: repository.NewApplicationRepository(st),
		Bulletins:    repository.NewBulletinRepository(st),
		Sessions:     auth.NewSessionManager(cfg.Session.TTL),
		Config:       cfg,
	}

	shutdown, err := httpserver.Start(deps)
	if err != nil {
		log.Fatalf("start http server: %v", err)
	}
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
