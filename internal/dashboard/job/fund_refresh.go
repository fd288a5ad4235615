package job

import (
	"context"
	"fmt"
	"strings"

	"fund-dashboard/internal/dashboard/data"
	"fund-dashboard/internal/dashboard/monitor"
	"fund-dashboard/internal/dashboard/result"

	"go.uber.org/zap"
)

// FundRefresh 定时刷新被关注基金的概览, 写入 prometheus 指标
type FundRefresh struct {
	funds    []string
	trackers map[string]*data.Tracker[string, data.FundOverview]
	tl       *zap.Logger
}

func NewFundRefresh(client *data.Client, funds []string, logger *zap.Logger) *FundRefresh {
	r := &FundRefresh{
		trackers: make(map[string]*data.Tracker[string, data.FundOverview], len(funds)),
		tl:       logger,
	}
	for _, f := range funds {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if _, dup := r.trackers[f]; dup {
			continue
		}
		r.funds = append(r.funds, f)
		r.trackers[f] = data.NewTracker("fund_overview", client.FundOverview).OnChange(r.record)
	}
	return r
}

// Run 对每个基金发起刷新并等待本轮结果
func (r *FundRefresh) Run(ctx context.Context) error {
	for _, f := range r.funds {
		t := r.trackers[f]
		if _, cur := t.Current(); cur.IsLoading() {
			t.Update(ctx, f)
			continue
		}
		t.Refresh(ctx)
	}

	failed := 0
	for _, f := range r.funds {
		t := r.trackers[f]
		t.Wait()
		if _, cur := t.Current(); !cur.IsReady() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fund overviews unavailable", failed, len(r.funds))
	}
	return nil
}

// Stop 取消进行中的查询
func (r *FundRefresh) Stop() {
	for _, t := range r.trackers {
		t.Stop()
	}
}

// Snapshot 当前所有基金的结果
func (r *FundRefresh) Snapshot() map[string]result.Result[data.FundOverview] {
	out := make(map[string]result.Result[data.FundOverview], len(r.funds))
	for _, f := range r.funds {
		_, cur := r.trackers[f].Current()
		out[f] = cur
	}
	return out
}

func (r *FundRefresh) record(fund string, res result.Result[data.FundOverview]) {
	overview, ok := res.Data()
	if !ok {
		monitor.FundRefreshFailures.WithLabelValues(fund, res.State().String()).Inc()
		r.tl.Warn("fund overview unavailable", zap.String("fund", fund), zap.Stringer("state", res.State()), zap.Error(res.Err()))
		return
	}
	monitor.FundVolumeUSD.WithLabelValues(fund).Set(overview.Fund.VolumeUSD)
	monitor.FundInvestorCount.WithLabelValues(fund).Set(float64(overview.Fund.InvestorCount))
	monitor.FundProfitRatioUSD.WithLabelValues(fund).Set(overview.Fund.ProfitRatioUSD)
	if overview.HasChange {
		monitor.FundVolumeChangeUSD.WithLabelValues(fund).Set(overview.VolumeChangeUSD)
	}
	r.tl.Info("fund overview refreshed",
		zap.String("fund", fund),
		zap.Float64("volume_usd", overview.Fund.VolumeUSD),
		zap.Int64("investor_count", overview.Fund.InvestorCount),
		zap.Int("snapshots", len(overview.Snapshots)),
		zap.Int("transactions", len(overview.Transactions)),
	)
}
