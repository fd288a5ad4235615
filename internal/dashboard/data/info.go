package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fund-dashboard/internal/dashboard/chain"
	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/query"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/graphql"
	"fund-dashboard/pkg/utils"
)

// blockWindow BlockNumberAt 在 (t, t+600) 内查找第一个块
const blockWindow = 600

var ErrRPCNotConfigured = errors.New("rpc endpoint not configured")

func (c *Client) WhitelistTokens(ctx context.Context) result.Result[[]model.Token] {
	req := graphql.Request{
		OperationName: query.OpWhitelistTokens,
		Query:         query.WhitelistTokens,
	}
	return queryList(ctx, c.data, req, "whitelistTokens", model.NormalizeToken)
}

func (c *Client) Token(ctx context.Context, token string) result.Result[model.Token] {
	if c.skip(token) {
		return result.NewNotFound[model.Token]()
	}
	req := graphql.Request{
		OperationName: query.OpToken,
		Query:         query.Token,
		Variables:     map[string]interface{}{"token": model.AddressOrSentinel(token)},
	}
	return queryOne(ctx, c.data, req, "token", model.NormalizeToken)
}

// InfoSnapshots factory 级别的日快照
func (c *Client) InfoSnapshots(ctx context.Context, first int) result.Result[[]model.InfoSnapshot] {
	req := graphql.Request{
		OperationName: query.OpInfoSnapshots,
		Query:         query.InfoSnapshots,
		Variables:     map[string]interface{}{"first": clampFirst(first)},
	}
	return queryRecent(ctx, c.data, req, "infoSnapshots", model.NormalizeInfoSnapshot)
}

func (c *Client) Factory(ctx context.Context, factory string) result.Result[model.Factory] {
	if c.skip(factory) {
		return result.NewNotFound[model.Factory]()
	}
	req := graphql.Request{
		OperationName: query.OpFactory,
		Query:         query.Factory,
		Variables:     map[string]interface{}{"factory": model.AddressOrSentinel(factory)},
	}
	return queryOne(ctx, c.data, req, "factory", model.NormalizeFactory)
}

// BlockNumberAt 时间戳对应的块高, 走 block 子图, 结果写入两级缓存
func (c *Client) BlockNumberAt(ctx context.Context, timestamp int64) result.Result[int64] {
	if !utils.IsUnixSeconds(timestamp) {
		return result.NewFailed[int64](fmt.Errorf("timestamp %d is not unix seconds", timestamp))
	}
	if c.blocks != nil {
		if n, ok := c.blocks.Get(ctx, timestamp); ok {
			return result.NewReady(n)
		}
	}

	req := graphql.Request{
		OperationName: query.OpBlockAt,
		Query:         query.BlockAt,
		Variables: map[string]interface{}{
			"timestampFrom": strconv.FormatInt(timestamp, 10),
			"timestampTo":   strconv.FormatInt(timestamp+blockWindow, 10),
		},
	}
	r := result.Map(queryList(ctx, c.block, req, "blocks", model.NormalizeBlock), func(blocks []model.Block) int64 {
		return blocks[0].Number
	})
	if n, ok := r.Data(); ok && c.blocks != nil {
		c.blocks.Set(ctx, timestamp, n)
	}
	return r
}

// FundHoldings 子图给出持仓 token 列表, RPC 读取实时余额
func (c *Client) FundHoldings(ctx context.Context, fund string) result.Result[chain.Holdings] {
	if c.eth == nil {
		return result.NewFailed[chain.Holdings](ErrRPCNotConfigured)
	}
	fr := c.Fund(ctx, fund)
	f, ok := fr.Data()
	if !ok {
		return result.Map(fr, func(model.Fund) chain.Holdings { return chain.Holdings{} })
	}
	holdings, err := chain.GetFundHoldings(ctx, c.eth, f.Address, chain.TokensOf(f))
	if err != nil {
		return result.NewFailed[chain.Holdings](err)
	}
	return result.NewReady(holdings)
}
