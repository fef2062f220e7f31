package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintgo/backend/internal/api/handler"
	"complaintgo/backend/internal/api/middleware"
	"complaintgo/backend/internal/complaint"
	"complaintgo/backend/internal/config"
	"complaintgo/backend/internal/logger"
	"complaintgo/backend/internal/models"
	"complaintgo/backend/internal/notifier"
	"complaintgo/backend/internal/storage"
	"complaintgo/backend/internal/summarizer"
	"complaintgo/backend/internal/telegram"
)

func setupDependencies(cfg *config.Config, zapLogger *zap.Logger) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	// 2. Migrations (table creation)
	if err := db.AutoMigrate(&models.Complaint{}); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	// 3. Redis. The event channel is best effort, so an unreachable Redis
	// degrades to no fan-out instead of refusing to start.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		zapLogger.Warn("Redis unreachable, complaint events disabled", zap.Error(err))
		rdb = nil
	}

	zapLogger.Info("database connection established, migrations complete")
	return db, rdb
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	defer zapLogger.Sync()
	zapLogger.Info("starting complaint service", zap.String("addr", cfg.HTTP.Addr))

	// 1. Dependency initialization
	db, rdb := setupDependencies(cfg, zapLogger)
	s := storage.NewStorageService(db, rdb)

	// 2. Outbound collaborators
	sum := summarizer.NewClient(cfg.Summarizer, zapLogger)
	mailer := notifier.NewMailer(cfg.Mail)

	var alerter complaint.Alerter
	if cfg.Telegram.Enabled() {
		tg, err := telegram.NewAlerter(cfg.Telegram, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to start Telegram alerter", zap.Error(err))
		}
		alerter = tg
	}

	// 3. Core service and routing
	svc := complaint.NewService(s, sum, mailer, alerter, zapLogger)
	h := handler.NewHandler(svc, zapLogger)

	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.CORS())

	r.POST("/send-complaint", h.SendComplaint)
	r.GET("/complaints", h.GetComplaints)

	// 4. HTTP server
	server := &http.Server{
		Addr:           cfg.HTTP.Addr,
		Handler:        r,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	zapLogger.Fatal("server stopped", zap.Error(server.ListenAndServe()))
}
