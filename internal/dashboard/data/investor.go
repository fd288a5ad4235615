package data

import (
	"context"

	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/query"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/graphql"
)

func (c *Client) Investor(ctx context.Context, fund, investor string) result.Result[model.Investor] {
	if c.skip(fund, investor) {
		return result.NewNotFound[model.Investor]()
	}
	req := graphql.Request{
		OperationName: query.OpInvestor,
		Query:         query.Investor,
		Variables:     map[string]interface{}{"id": model.CompositeID(fund, investor)},
	}
	return queryOne(ctx, c.data, req, "investor", model.NormalizeInvestor)
}

func (c *Client) FundInvestors(ctx context.Context, fund string, page Page) result.Result[[]model.Investor] {
	if c.skip(fund) {
		return result.NewNotFound[[]model.Investor]()
	}
	first, skip := page.vars()
	req := graphql.Request{
		OperationName: query.OpFundInvestors,
		Query:         query.FundInvestors,
		Variables: map[string]interface{}{
			"fund":  model.AddressOrSentinel(fund),
			"first": first,
			"skip":  skip,
		},
	}
	return queryList(ctx, c.data, req, "investors", model.NormalizeInvestor)
}

func (c *Client) InvestorSnapshots(ctx context.Context, fund, investor string, first int) result.Result[[]model.InvestorSnapshot] {
	if c.skip(fund, investor) {
		return result.NewNotFound[[]model.InvestorSnapshot]()
	}
	req := graphql.Request{
		OperationName: query.OpInvestorSnapshots,
		Query:         query.InvestorSnapshots,
		Variables: map[string]interface{}{
			"fund":     model.AddressOrSentinel(fund),
			"investor": model.AddressOrSentinel(investor),
			"first":    clampFirst(first),
		},
	}
	return queryRecent(ctx, c.data, req, "investorSnapshots", model.NormalizeInvestorSnapshot)
}

func (c *Client) Manager(ctx context.Context, fund, manager string) result.Result[model.Manager] {
	if c.skip(fund, manager) {
		return result.NewNotFound[model.Manager]()
	}
	req := graphql.Request{
		OperationName: query.OpManager,
		Query:         query.Manager,
		Variables:     map[string]interface{}{"id": model.CompositeID(fund, manager)},
	}
	return queryOne(ctx, c.data, req, "manager", model.NormalizeManager)
}

func (c *Client) ManagerSnapshots(ctx context.Context, fund, manager string, first int) result.Result[[]model.ManagerSnapshot] {
	if c.skip(fund, manager) {
		return result.NewNotFound[[]model.ManagerSnapshot]()
	}
	req := graphql.Request{
		OperationName: query.OpManagerSnapshots,
		Query:         query.ManagerSnapshots,
		Variables: map[string]interface{}{
			"fund":    model.AddressOrSentinel(fund),
			"manager": model.AddressOrSentinel(manager),
			"first":   clampFirst(first),
		},
	}
	return queryRecent(ctx, c.data, req, "managerSnapshots", model.NormalizeManagerSnapshot)
}
