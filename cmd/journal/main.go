package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradelog/internal/config"
	cronrunner "tradelog/internal/cron"
	"tradelog/internal/handler"
	"tradelog/internal/logger"
	"tradelog/internal/repository/csvstore"
	"tradelog/internal/service"
)

func main() {
	cfgPath := os.Getenv("TJ_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("TJ_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, err := csvstore.Open(cfg.Store.Dir, cfg.Store.TradesFile, cfg.Store.DailyFile)
	if err != nil {
		logger.Fatal("store open failed", zap.Error(err))
	}

	tradeSvc := &service.TradeService{Repo: store, Logger: logger}
	dailySvc := &service.DailyService{Repo: store, Logger: logger}
	progressSvc := &service.ProgressService{Repo: store}
	backupSvc := &service.BackupService{
		Files:  store.Files(),
		Config: cfg.Backup,
		Logger: logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{Store: store}
	healthHandler.Register(engine)
	tradeHandler := &handler.TradeHandler{Trades: tradeSvc}
	tradeHandler.Register(engine)
	dailyHandler := &handler.DailyHandler{Daily: dailySvc}
	dailyHandler.Register(engine)
	progressHandler := &handler.ProgressHandler{Progress: progressSvc}
	progressHandler.Register(engine)
	chartsHandler := &handler.ChartsHandler{Progress: progressSvc}
	chartsHandler.Register(engine)
	adminHandler := &handler.AdminHandler{Repo: store, Backup: backupSvc}
	adminHandler.Register(engine)
	metaHandler := &handler.MetaHandler{}
	metaHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.Backup, func(ctx context.Context) {
			if _, err := backupSvc.Run(); err != nil {
				logger.Warn("scheduled backup failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register backup failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
