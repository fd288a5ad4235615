package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fund-dashboard/internal/dashboard"
	"fund-dashboard/internal/dashboard/config"
	"fund-dashboard/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 初始化配置文件
	cfg := config.InitConfig()

	// 初始化 trace provider
	logger.InitTrace("fund-dashboard", "dashboard")
	ctx, span := logger.StartSpan(context.Background(), "main", "main")
	defer span.End()

	// 创建 root logger 并注入 trace 上下文
	rootLogger := logger.NewLoggerWithDir("dashboard", cfg.Log.Dir)
	logger.SetLogLevel(cfg.Log.Level)
	tl := logger.WithTrace(ctx, rootLogger)
	defer func() { _ = rootLogger.Sync() }()

	// 启动配置热加载监听
	go config.WatchConfig(config.DefaultDir, &cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	core, err := dashboard.New(ctx, cfg, tl)
	if err != nil {
		tl.Error("Failed to init dashboard", zap.Error(err))
		os.Exit(1)
	}

	go func() {
		tl.Info("Starting fund dashboard...")
		core.Start(ctx)
	}()

	// 监听操作系统信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	tl.Info("Received shutdown signal, starting graceful shutdown...")

	cancel()
	core.Stop(context.Background())
}
