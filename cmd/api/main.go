package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	semaphore "github.com/kitabist/semaphore-go"
	"github.com/kitabist/semaphore-go/cache/redis"
	"github.com/kitabist/semaphore-go/internal/config"
	"github.com/kitabist/semaphore-go/internal/db/gormdb"
	"github.com/kitabist/semaphore-go/internal/handler"
	sendlogRepo "github.com/kitabist/semaphore-go/internal/repository/gorm/sendlog"
	routes "github.com/kitabist/semaphore-go/internal/router"
	"github.com/kitabist/semaphore-go/internal/server"
	"github.com/kitabist/semaphore-go/internal/service"
	"gorm.io/gorm"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Init DB.
	dsn := cfg.PostgresDSN()
	db, err := gormdb.New(dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}

	if err := db.Conn().(*gorm.DB).AutoMigrate(&sendlogRepo.RecordModel{}); err != nil {
		log.Fatalf("failed to migrate send_log table: %v", err)
	}

	// Init SMS provider client. GET responses are memoized in Redis so the
	// proxied read endpoints don't hammer the provider.
	smsClient, err := semaphore.NewClient(
		cfg.Semaphore.APIKey,
		semaphore.WithCache(cache),
		semaphore.WithCacheTTL(cfg.Semaphore.CacheTTL),
		semaphore.WithTimeout(cfg.Semaphore.Timeout),
	)
	if err != nil {
		log.Fatalf("failed to create SMS provider client: %v", err)
	}

	if resp := smsClient.GetAccount(rootCtx); resp.Failed() {
		log.Fatalf("failed to reach SMS provider: %s", resp.ErrorMessage())
	}

	// Init repository and services.
	repo := sendlogRepo.NewRepository(db)
	relaySvc := service.NewRelayService(repo, smsClient, cache, cfg.Semaphore.SenderName)

	// Handlers
	homeHandler := handler.NewHomeHandler(cache, smsClient)
	messageHandler := handler.NewMessageHandler(relaySvc, smsClient)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Message: messageHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give in-flight requests some time to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}
