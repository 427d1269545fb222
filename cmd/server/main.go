package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rahul0401-coder/intraview-AI-career/internal/config"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories"
	"github.com/rahul0401-coder/intraview-AI-career/internal/repositories/memory"
	mongostore "github.com/rahul0401-coder/intraview-AI-career/internal/repositories/mongo"
	"github.com/rahul0401-coder/intraview-AI-career/internal/routers"
	"github.com/rahul0401-coder/intraview-AI-career/internal/session"
	"github.com/rahul0401-coder/intraview-AI-career/internal/utils"
)

func main() {
	utils.InitLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	var stores *repositories.Stores
	var mongoClient *mongostore.Client
	if cfg.MongoURI != "" {
		mongoClient, err = mongostore.NewClient(context.Background(), cfg.MongoURI)
		if err != nil {
			logger.Fatal("failed to connect to mongo", zap.Error(err))
		}
		db, err := mongoClient.DB(cfg.MongoDB)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		stores = mongostore.NewStores(db)
		logger.Info("using mongo storage", zap.String("db", cfg.MongoDB))
	} else {
		stores = memory.NewStores()
		logger.Warn("MONGO_URI not set, using in-memory storage")
	}

	hub := session.NewHub()
	var bus *session.Bus
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		bus = session.NewBus(rdb, hub, logger)
		logger.Info("live-code event bus connected", zap.String("redis", cfg.RedisAddr))
	} else {
		logger.Warn("REDIS_ADDR not set, live-code fanout is single-instance")
	}

	router := routers.New(routers.Deps{
		Cfg:    cfg,
		Log:    logger,
		Stores: stores,
		Hub:    hub,
		Bus:    bus,
	})

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: the live-code WebSocket route holds its
		// connection open indefinitely.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("server shutting down...")
	bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect mongo", zap.Error(err))
		}
	}
	logger.Info("server exited")
}
