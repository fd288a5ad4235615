package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fund-dashboard/pkg/utils"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	BLOCK_CACHE_TTL       = 10 * time.Minute // 本地缓存过期时间
	BLOCK_CACHE_REDIS_TTL = 24 * time.Hour
)

// BlockCache timestamp -> block number, 映射不可变, 本地 + Redis 两级
type BlockCache struct {
	subgraph   string
	tl         *zap.Logger
	localCache *cache.Cache
	redis      *redis.Client
	redisTTL   time.Duration
	onHit      func(layer string)
	onMiss     func()
}

// NewBlockCache rdb 可为 nil, 此时只用本地缓存
func NewBlockCache(subgraph string, tl *zap.Logger, rdb *redis.Client, redisTTL time.Duration) *BlockCache {
	if redisTTL <= 0 {
		redisTTL = BLOCK_CACHE_REDIS_TTL
	}
	return &BlockCache{
		subgraph:   subgraph,
		tl:         tl,
		localCache: cache.New(BLOCK_CACHE_TTL, time.Minute),
		redis:      rdb,
		redisTTL:   redisTTL,
	}
}

// WithHooks 注入命中/未命中回调, 用于指标
func (c *BlockCache) WithHooks(onHit func(layer string), onMiss func()) *BlockCache {
	c.onHit = onHit
	c.onMiss = onMiss
	return c
}

func (c *BlockCache) Get(ctx context.Context, timestamp int64) (int64, bool) {
	key := utils.BlockNumberKey(c.subgraph, timestamp)
	if v, ok := c.localCache.Get(key); ok {
		c.hit("local")
		return v.(int64), true
	}
	if c.redis != nil {
		val, err := c.redis.Get(ctx, key).Result()
		switch {
		case err == nil:
			if n, perr := strconv.ParseInt(val, 10, 64); perr == nil {
				c.localCache.SetDefault(key, n)
				c.hit("redis")
				return n, true
			}
			c.tl.Warn("invalid block number in redis", zap.String("key", key), zap.String("value", val))
		case errors.Is(err, redis.Nil):
		default:
			c.tl.Warn("redis get block number failed", zap.String("key", key), zap.Error(err))
		}
	}
	if c.onMiss != nil {
		c.onMiss()
	}
	return 0, false
}

// Set redis 写失败只记日志
func (c *BlockCache) Set(ctx context.Context, timestamp, number int64) {
	key := utils.BlockNumberKey(c.subgraph, timestamp)
	c.localCache.SetDefault(key, number)
	if c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, key, strconv.FormatInt(number, 10), c.redisTTL).Err(); err != nil {
		c.tl.Warn("redis set block number failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *BlockCache) hit(layer string) {
	if c.onHit != nil {
		c.onHit(layer)
	}
}
