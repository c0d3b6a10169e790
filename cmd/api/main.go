package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kamchatour/market-backend/internal/config"
	"github.com/kamchatour/market-backend/internal/db"
	"github.com/kamchatour/market-backend/internal/logger"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	conn, err := db.Connect(cfg)
	if err != nil {
		zlog.Fatal("db connect error", zap.Error(err))
	}
	if err := conn.AutoMigrate(model.All()...); err != nil {
		zlog.Fatal("auto migrate error", zap.Error(err))
	}

	srv := server.New(conn, cfg, zlog)
	addr := ":" + cfg.Port
	zlog.Info("starting server", zap.String("addr", addr))
	if err := srv.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
