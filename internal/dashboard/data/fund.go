package data

import (
	"context"

	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/query"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/graphql"
)

func (c *Client) Fund(ctx context.Context, fund string) result.Result[model.Fund] {
	if c.skip(fund) {
		return result.NewNotFound[model.Fund]()
	}
	req := graphql.Request{
		OperationName: query.OpFund,
		Query:         query.Fund,
		Variables:     map[string]interface{}{"fund": model.AddressOrSentinel(fund)},
	}
	return queryOne(ctx, c.data, req, "fund", model.NormalizeFund)
}

// FundAtBlock 基金在指定块高的状态, 用于计算区间变化
func (c *Client) FundAtBlock(ctx context.Context, fund string, block int64) result.Result[model.Fund] {
	if c.skip(fund) {
		return result.NewNotFound[model.Fund]()
	}
	req := graphql.Request{
		OperationName: query.OpFundAtBlock,
		Query:         query.FundAtBlock,
		Variables: map[string]interface{}{
			"fund":  model.AddressOrSentinel(fund),
			"block": block,
		},
	}
	return queryOne(ctx, c.data, req, "fund", model.NormalizeFund)
}

// Funds 按 volumeUSD 倒序
func (c *Client) Funds(ctx context.Context, page Page) result.Result[[]model.Fund] {
	first, skip := page.vars()
	req := graphql.Request{
		OperationName: query.OpFunds,
		Query:         query.Funds,
		Variables:     map[string]interface{}{"first": first, "skip": skip},
	}
	return queryList(ctx, c.data, req, "funds", model.NormalizeFund)
}

func (c *Client) ManagingFunds(ctx context.Context, manager string) result.Result[[]model.Fund] {
	if c.skip(manager) {
		return result.NewNotFound[[]model.Fund]()
	}
	req := graphql.Request{
		OperationName: query.OpManagingFunds,
		Query:         query.ManagingFunds,
		Variables:     map[string]interface{}{"manager": model.AddressOrSentinel(manager)},
	}
	return queryList(ctx, c.data, req, "funds", model.NormalizeFund)
}

// InvestingFunds 投资者在各个基金中的账户
func (c *Client) InvestingFunds(ctx context.Context, investor string) result.Result[[]model.Investor] {
	if c.skip(investor) {
		return result.NewNotFound[[]model.Investor]()
	}
	req := graphql.Request{
		OperationName: query.OpInvestingFunds,
		Query:         query.InvestingFunds,
		Variables:     map[string]interface{}{"investor": model.AddressOrSentinel(investor)},
	}
	return queryList(ctx, c.data, req, "investors", model.NormalizeInvestor)
}

// FundSnapshots 最近 first 条, 按时间正序, 用于图表
func (c *Client) FundSnapshots(ctx context.Context, fund string, first int) result.Result[[]model.FundSnapshot] {
	if c.skip(fund) {
		return result.NewNotFound[[]model.FundSnapshot]()
	}
	req := graphql.Request{
		OperationName: query.OpFundSnapshots,
		Query:         query.FundSnapshots,
		Variables: map[string]interface{}{
			"fund":  model.AddressOrSentinel(fund),
			"first": clampFirst(first),
		},
	}
	return queryRecent(ctx, c.data, req, "fundSnapshots", model.NormalizeFundSnapshot)
}
