package job

import (
	"context"
	"fmt"
	"time"

	"fund-dashboard/internal/dashboard/data"

	"go.uber.org/zap"
)

const warmupDays = 7

// BlockWarmup 预热最近几天 UTC 0 点的 block number, FundOverview 的历史查询走同样的时间点
type BlockWarmup struct {
	client *data.Client
	now    func() time.Time
	tl     *zap.Logger
}

func NewBlockWarmup(client *data.Client, logger *zap.Logger) *BlockWarmup {
	return &BlockWarmup{client: client, now: time.Now, tl: logger}
}

func (w *BlockWarmup) Run(ctx context.Context) error {
	now := w.now()
	failed := 0
	for i := 1; i <= warmupDays; i++ {
		ts := data.DayStart(now, i)
		r := w.client.BlockNumberAt(ctx, ts)
		if n, ok := r.Data(); ok {
			w.tl.Debug("block cache warmed", zap.Int64("timestamp", ts), zap.Int64("block", n))
			continue
		}
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("block warmup: %d of %d lookups failed", failed, warmupDays)
	}
	return nil
}
