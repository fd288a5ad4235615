package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SubgraphRequests 子图请求
	SubgraphRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subgraph_requests_total",
			Help: "Total number of subgraph queries by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	SubgraphRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "subgraph_request_duration_seconds",
			Help:    "Latency of subgraph queries.",
			Buckets: []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"operation"},
	)
	StaleResponsesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_stale_responses_dropped_total",
			Help: "Responses discarded because newer parameters were requested.",
		},
		[]string{"tracker"},
	)

	// BlockCacheLookups block 缓存
	BlockCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "block_cache_lookups_total",
			Help: "Block number cache lookups by layer (local, redis, miss).",
		},
		[]string{"layer"},
	)

	// FundVolumeUSD watch 任务刷新的基金指标
	FundVolumeUSD = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fund_volume_usd",
			Help: "Current fund volume in USD.",
		},
		[]string{"fund"},
	)
	FundVolumeChangeUSD = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fund_volume_change_usd_24h",
			Help: "Fund volume change in USD over the last 24 hours.",
		},
		[]string{"fund"},
	)
	FundInvestorCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fund_investor_count",
			Help: "Number of investors in the fund.",
		},
		[]string{"fund"},
	)
	FundProfitRatioUSD = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fund_profit_ratio_usd",
			Help: "Fund profit ratio in USD terms.",
		},
		[]string{"fund"},
	)
	FundRefreshFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_refresh_failures_total",
			Help: "Fund overview refreshes that did not produce data.",
		},
		[]string{"fund", "state"},
	)
)

func init() {
	prometheus.MustRegister(
		// 子图指标
		SubgraphRequests,
		SubgraphRequestDuration,
		StaleResponsesDropped,
		BlockCacheLookups,

		// 基金指标
		FundVolumeUSD,
		FundVolumeChangeUSD,
		FundInvestorCount,
		FundProfitRatioUSD,
		FundRefreshFailures,
	)
}

// ObserveQuery 签名与 graphql.Observer 一致
func ObserveQuery(operation string, cached bool, duration time.Duration, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case cached:
		outcome = "cached"
	}
	SubgraphRequests.WithLabelValues(operation, outcome).Inc()
	if !cached {
		SubgraphRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

func ObserveBlockCacheHit(layer string) {
	BlockCacheLookups.WithLabelValues(layer).Inc()
}

func ObserveBlockCacheMiss() {
	BlockCacheLookups.WithLabelValues("miss").Inc()
}
