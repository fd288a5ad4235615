package data

import (
	"context"
	"time"

	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/utils"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	overviewSnapshots    = 30
	overviewTransactions = 20
	secondsPerDay        = 86400
)

// FundOverview 基金详情页所需数据
type FundOverview struct {
	Fund         model.Fund           `json:"fund"`
	Snapshots    []model.FundSnapshot `json:"snapshots"`
	Transactions []model.Transaction  `json:"transactions"`
	// 相对前一日 UTC 0 点的变化, 无法取得历史块时 HasChange=false
	HasChange          bool    `json:"hasChange"`
	VolumeChangeUSD    float64 `json:"volumeChangeUSD"`
	InvestorCountDelta int64   `json:"investorCountDelta"`
}

// DayStart daysAgo 天前的 UTC 0 点, 历史块查询统一对齐到这里以便命中缓存
func DayStart(now time.Time, daysAgo int) int64 {
	return utils.TimeWindow(now.Unix(), secondsPerDay) - int64(daysAgo)*secondsPerDay
}

// FundOverview 并发拉取; 基金本身失败或不存在则整体失败/不存在, 附属数据失败只降级
func (c *Client) FundOverview(ctx context.Context, fund string) result.Result[FundOverview] {
	if c.skip(fund) {
		return result.NewNotFound[FundOverview]()
	}

	var (
		current   result.Result[model.Fund]
		previous  result.Result[model.Fund]
		snapshots result.Result[[]model.FundSnapshot]
		txs       result.Result[[]model.Transaction]
	)
	var wg conc.WaitGroup
	wg.Go(func() { current = c.Fund(ctx, fund) })
	wg.Go(func() { snapshots = c.FundSnapshots(ctx, fund, overviewSnapshots) })
	wg.Go(func() { txs = c.FundTransactions(ctx, fund, overviewTransactions) })
	wg.Go(func() {
		block := c.BlockNumberAt(ctx, DayStart(c.now(), 1))
		n, ok := block.Data()
		if !ok {
			previous = result.Map(block, func(int64) model.Fund { return model.Fund{} })
			return
		}
		previous = c.FundAtBlock(ctx, fund, n)
	})
	wg.Wait()

	f, ok := current.Data()
	if !ok {
		return result.Map(current, func(model.Fund) FundOverview { return FundOverview{} })
	}

	overview := FundOverview{
		Fund:         f,
		Snapshots:    []model.FundSnapshot{},
		Transactions: []model.Transaction{},
	}
	if s, ok := snapshots.Data(); ok {
		overview.Snapshots = s
	} else if err := snapshots.Err(); err != nil {
		c.tl.Warn("fund snapshots unavailable", zap.String("fund", fund), zap.Error(err))
	}
	if t, ok := txs.Data(); ok {
		overview.Transactions = t
	} else if err := txs.Err(); err != nil {
		c.tl.Warn("fund transactions unavailable", zap.String("fund", fund), zap.Error(err))
	}
	if p, ok := previous.Data(); ok {
		overview.HasChange = true
		overview.VolumeChangeUSD = f.VolumeUSD - p.VolumeUSD
		overview.InvestorCountDelta = f.InvestorCount - p.InvestorCount
	} else if err := previous.Err(); err != nil {
		c.tl.Warn("fund 24h change unavailable", zap.String("fund", fund), zap.Error(err))
	}
	return result.NewReady(overview)
}
