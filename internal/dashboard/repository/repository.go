package repository

import (
	"context"
	"errors"
	"strings"

	"fund-dashboard/internal/dashboard/cache"
	"fund-dashboard/internal/dashboard/config"
	"fund-dashboard/internal/dashboard/monitor"
	"fund-dashboard/pkg/evm_client"
	"fund-dashboard/pkg/graphql"
	"fund-dashboard/pkg/httpclient"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const userAgent = "fund-dashboard/1.0"

type repositoryImpl struct {
	cfg         config.Config
	logger      *zap.Logger
	dataClient  *graphql.Client
	blockClient *graphql.Client
	blockCache  *cache.BlockCache
	ethClient   *ethclient.Client
	rdb         *redis.Client
}

// New 按配置构造全部客户端; 可选依赖 (rpc, redis) 连接失败时降级
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &repositoryImpl{
		cfg:    cfg,
		logger: logger,
	}

	httpCfg := httpclient.HTTPClientConfig{
		Timeout:   cfg.Subgraph.TimeoutDuration(),
		RateLimit: cfg.Subgraph.RateLimit,
		UserAgent: userAgent,
		APIKey:    cfg.Subgraph.APIKey,
	}
	r.dataClient = graphql.NewClient(graphql.Config{
		Endpoint:    cfg.Subgraph.DataURL,
		FetchPolicy: graphql.NoCache,
		HTTP:        httpCfg,
	}, logger).WithObserver(monitor.ObserveQuery)
	r.blockClient = graphql.NewClient(graphql.Config{
		Endpoint:    cfg.Subgraph.BlockURL,
		FetchPolicy: graphql.CacheFirst,
		CacheTTL:    cfg.Subgraph.BlockCacheTTLDuration(),
		HTTP:        httpCfg,
	}, logger).WithObserver(monitor.ObserveQuery)

	// 初始化 Redis (可选)
	if strings.TrimSpace(cfg.Redis.Address) != "" {
		r.rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: 10,
		})
		if err := r.rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("failed to connect to redis, continue with local cache only", zap.Error(err))
			_ = r.rdb.Close()
			r.rdb = nil
		}
	} else {
		logger.Info("redis address empty, block cache is process local")
	}
	r.blockCache = cache.NewBlockCache(cfg.Subgraph.BlockURL, logger, r.rdb, cfg.Subgraph.BlockCacheTTLDuration()).
		WithHooks(monitor.ObserveBlockCacheHit, monitor.ObserveBlockCacheMiss)

	// 初始化 rpc client (可选)
	if strings.TrimSpace(cfg.RPC.URL) != "" {
		client, err := evm_client.Dial(ctx, cfg.RPC.URL)
		if err != nil {
			logger.Warn("failed to dial rpc, on-chain balances disabled", zap.Error(err))
		} else {
			r.ethClient = client
		}
	}

	return r, nil
}

// NewWithClients 直接注入已构造的客户端
func NewWithClients(dataClient, blockClient *graphql.Client, blockCache *cache.BlockCache, ethClient *ethclient.Client, rdb *redis.Client) Repository {
	return &repositoryImpl{
		dataClient:  dataClient,
		blockClient: blockClient,
		blockCache:  blockCache,
		ethClient:   ethClient,
		rdb:         rdb,
	}
}

func (r *repositoryImpl) GetDataClient() *graphql.Client {
	return r.dataClient
}

func (r *repositoryImpl) GetBlockClient() *graphql.Client {
	return r.blockClient
}

func (r *repositoryImpl) GetBlockCache() *cache.BlockCache {
	return r.blockCache
}

func (r *repositoryImpl) GetEthClient() *ethclient.Client {
	return r.ethClient
}

func (r *repositoryImpl) GetRDB() *redis.Client {
	return r.rdb
}

func (r *repositoryImpl) Close() error {
	var errs []error
	if r.dataClient != nil {
		errs = append(errs, r.dataClient.Close())
	}
	if r.blockClient != nil {
		errs = append(errs, r.blockClient.Close())
	}
	if r.ethClient != nil {
		r.ethClient.Close()
	}
	if r.rdb != nil {
		errs = append(errs, r.rdb.Close())
	}
	return errors.Join(errs...)
}
