// Package data exposes one function per subgraph entity query. Every function binds
// a static document with defaulted variables, runs it on the data or block client,
// normalizes the wire payload and resolves to a result.Result; none of them return
// a Go error.
package data

import (
	"context"
	"slices"
	"time"

	"fund-dashboard/internal/dashboard/cache"
	"fund-dashboard/internal/dashboard/chain"
	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/repository"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/graphql"

	"go.uber.org/zap"
)

const (
	defaultFirst = 100
	maxFirst     = 1000
)

type Options struct {
	// SkipUnsetQueries 必填地址为空时直接返回 NotFound, 不发请求
	SkipUnsetQueries bool
	// Now 默认 time.Now
	Now func() time.Time
}

// Client 所有 hook 的入口, 构造后只读
type Client struct {
	data      *graphql.Client
	block     *graphql.Client
	blocks    *cache.BlockCache
	eth       chain.Backend
	skipUnset bool
	now       func() time.Time
	tl        *zap.Logger
}

func NewClient(repo repository.Repository, opts Options, tl *zap.Logger) *Client {
	c := &Client{
		data:      repo.GetDataClient(),
		block:     repo.GetBlockClient(),
		blocks:    repo.GetBlockCache(),
		skipUnset: opts.SkipUnsetQueries,
		now:       time.Now,
		tl:        tl,
	}
	if opts.Now != nil {
		c.now = opts.Now
	}
	// 避免 typed-nil 接口
	if eth := repo.GetEthClient(); eth != nil {
		c.eth = eth
	}
	return c
}

// WithBackend 替换 RPC backend
func (c *Client) WithBackend(b chain.Backend) *Client {
	cp := *c
	cp.eth = b
	return &cp
}

// Page 分页参数, 零值取默认
type Page struct {
	First int
	Skip  int
}

func (p Page) vars() (int, int) {
	return clampFirst(p.First), max(p.Skip, 0)
}

func clampFirst(first int) int {
	if first <= 0 {
		return defaultFirst
	}
	return min(first, maxFirst)
}

// skip 必填地址全部解析为哨兵值且开启 SkipUnsetQueries 时为 true
func (c *Client) skip(addrs ...string) bool {
	if !c.skipUnset {
		return false
	}
	for _, a := range addrs {
		if model.IsSentinel(model.AddressOrSentinel(a)) {
			return true
		}
	}
	return false
}

func queryOne[W, V any](ctx context.Context, gc *graphql.Client, req graphql.Request, field string, norm func(W) V) result.Result[V] {
	var payload map[string]*W
	if err := gc.Query(ctx, req, &payload); err != nil {
		return result.NewFailed[V](err)
	}
	w := payload[field]
	if w == nil {
		return result.NewNotFound[V]()
	}
	return result.NewReady(norm(*w))
}

func queryList[W, V any](ctx context.Context, gc *graphql.Client, req graphql.Request, field string, norm func(W) V) result.Result[[]V] {
	var payload map[string][]W
	if err := gc.Query(ctx, req, &payload); err != nil {
		return result.NewFailed[[]V](err)
	}
	wires := payload[field]
	if len(wires) == 0 {
		return result.NewNotFound[[]V]()
	}
	return result.NewReady(model.NormalizeAll(wires, norm))
}

// queryRecent 按时间倒序取最近 first 条, 再翻转为正序返回
func queryRecent[W, V any](ctx context.Context, gc *graphql.Client, req graphql.Request, field string, norm func(W) V) result.Result[[]V] {
	return result.Map(queryList(ctx, gc, req, field, norm), func(list []V) []V {
		slices.Reverse(list)
		return list
	})
}
