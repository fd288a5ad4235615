package repository

import (
	"fund-dashboard/internal/dashboard/cache"
	"fund-dashboard/pkg/graphql"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"
)

type RedisClient = *redis.Client

// Repository 进程内唯一的一组客户端, main 中构造一次后注入各组件
type Repository interface {
	// 数据子图, no-cache
	GetDataClient() *graphql.Client
	// block 子图, cache-first
	GetBlockClient() *graphql.Client
	GetBlockCache() *cache.BlockCache
	// 可能为 nil (未配置 rpc.url)
	GetEthClient() *ethclient.Client
	// 可能为 nil (未配置 redis.address)
	GetRDB() RedisClient
	Close() error
}
