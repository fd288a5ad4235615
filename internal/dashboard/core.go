package dashboard

import (
	"context"
	"time"

	"fund-dashboard/internal/dashboard/config"
	"fund-dashboard/internal/dashboard/data"
	"fund-dashboard/internal/dashboard/job"
	"fund-dashboard/internal/dashboard/monitor"
	"fund-dashboard/internal/dashboard/repository"

	"go.uber.org/zap"
)

type Core struct {
	cfg       config.Config
	tl        *zap.Logger
	repo      repository.Repository
	client    *data.Client
	scheduler *job.Scheduler
	refresh   *job.FundRefresh
	metrics   *monitor.MetricsServer
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Core, error) {
	// 初始化repo
	repo, err := repository.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	client := data.NewClient(repo, data.Options{SkipUnsetQueries: cfg.Subgraph.SkipUnsetQueries}, logger)

	// 初始化作业调度器
	scheduler := job.NewScheduler(logger)

	// 预热最近几天的 block number
	warmup := job.NewBlockWarmup(client, logger)
	scheduler.RegisterOnceJob("block_warmup", warmup.Run)

	// 定时刷新关注的基金
	refresh := job.NewFundRefresh(client, cfg.Watch.Funds, logger)
	scheduler.RegisterJob("fund_refresh", cfg.Watch.IntervalDuration(), refresh.Run)

	return &Core{
		cfg:       cfg,
		tl:        logger,
		repo:      repo,
		client:    client,
		scheduler: scheduler,
		refresh:   refresh,
		metrics:   monitor.NewMetricsServer(cfg.Monitor, logger),
	}, nil
}

// Client 供一次性命令复用同一套连接
func (c *Core) Client() *data.Client {
	return c.client
}

func (c *Core) Start(ctx context.Context) {
	c.tl.Info("Starting dashboard core...",
		zap.String("data_url", c.cfg.Subgraph.DataURL),
		zap.String("block_url", c.cfg.Subgraph.BlockURL),
		zap.Int("watched_funds", len(c.cfg.Watch.Funds)))
	// 启动监控服务
	c.metrics.Run()

	// 启动调度器
	c.scheduler.Start(ctx)
	c.tl.Info("Dashboard started successfully")

	<-ctx.Done()
	c.tl.Info("Shutting down dashboard due to context cancellation...")
}

// Stop 优雅关闭 Core 的所有资源
func (c *Core) Stop(ctx context.Context) {
	c.tl.Info("Stopping dashboard core...")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c.scheduler.Stop(ctx)
	c.refresh.Stop()

	if err := c.metrics.Stop(ctx); err != nil {
		c.tl.Warn("metrics server shutdown", zap.Error(err))
	}
	if err := c.repo.Close(); err != nil {
		c.tl.Warn("repository close", zap.Error(err))
	}

	c.tl.Info("Dashboard core stopped.")
}
