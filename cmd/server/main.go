package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/config"
	"storefront-api/internal/api"
	"storefront-api/internal/broker"
	"storefront-api/internal/genai"
	"storefront-api/internal/notify"
	"storefront-api/internal/sessions"
	"storefront-api/internal/store"
	"storefront-api/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting storefront API")

	tp, err := util.InitTracer("storefront-api", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	log.Println("Database connected")

	// Session memory degrades to in-process storage when Redis is absent.
	var sessionStore sessions.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := sessions.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.AI.HistoryLimit)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			log.Println("Falling back to in-memory session storage")
			sessionStore = sessions.NewMemoryStore(cfg.AI.HistoryLimit)
		} else {
			defer redisStore.Close()
			sessionStore = redisStore
			log.Println("Redis connected")
		}
	} else {
		sessionStore = sessions.NewMemoryStore(cfg.AI.HistoryLimit)
		log.Println("REDIS_ADDR not configured, using in-memory session storage")
	}

	generator := genai.NewClient(cfg.AI, sessionStore)

	var notifier notify.Notifier
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
		defer producer.Close()
		notifier = notify.NewEventNotifier(producer)
		log.Println("Kafka producer initialized")
	} else {
		notifier = notify.NewLogNotifier()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(db, generator, notifier)
	handler.SetupRoutes(router, cfg.CORS)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
