package data

import (
	"context"

	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/query"
	"fund-dashboard/internal/dashboard/result"
	"fund-dashboard/pkg/graphql"
	transactionutils "fund-dashboard/pkg/utils/transaction_utils"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// FundTransactions 基金的 deposit / withdraw 记录
func (c *Client) FundTransactions(ctx context.Context, fund string, first int) result.Result[[]model.Transaction] {
	if c.skip(fund) {
		return result.NewNotFound[[]model.Transaction]()
	}
	req := graphql.Request{
		OperationName: query.OpFundTransactions,
		Query:         query.FundTransactions,
		Variables: map[string]interface{}{
			"fund":  model.AddressOrSentinel(fund),
			"first": clampFirst(first),
		},
	}
	return queryList(ctx, c.data, req, "transactions", model.NormalizeTransaction)
}

func (c *Client) InvestorTransactions(ctx context.Context, fund, investor string, first int) result.Result[[]model.Transaction] {
	return c.investorScoped(ctx, query.OpInvestorTransactions, query.InvestorTransactions, "transactions", "", fund, investor, first)
}

// SwapTransactions swaps 实体没有 type 字段, 统一补为 Swap
func (c *Client) SwapTransactions(ctx context.Context, fund, investor string, first int) result.Result[[]model.Transaction] {
	return c.investorScoped(ctx, query.OpSwapTransactions, query.SwapTransactions, "swaps", model.TxSwap, fund, investor, first)
}

func (c *Client) LiquidityTransactions(ctx context.Context, fund, investor string, first int) result.Result[[]model.Transaction] {
	return c.investorScoped(ctx, query.OpLiquidityTransactions, query.LiquidityTransactions, "liquidityTransactions", "", fund, investor, first)
}

// FeeTransactions manager 提取管理费记录
func (c *Client) FeeTransactions(ctx context.Context, fund string, first int) result.Result[[]model.Transaction] {
	if c.skip(fund) {
		return result.NewNotFound[[]model.Transaction]()
	}
	req := graphql.Request{
		OperationName: query.OpFeeTransactions,
		Query:         query.FeeTransactions,
		Variables: map[string]interface{}{
			"fund":  model.AddressOrSentinel(fund),
			"first": clampFirst(first),
		},
	}
	return queryList(ctx, c.data, req, "feeTransactions", withDefaultType(model.TxWithdrawFee))
}

// InvestorHistory 合并 deposit/withdraw, swap, liquidity 三类记录, 按时间倒序, 最多 first 条
func (c *Client) InvestorHistory(ctx context.Context, fund, investor string, first int) result.Result[[]model.Transaction] {
	if c.skip(fund, investor) {
		return result.NewNotFound[[]model.Transaction]()
	}

	var txs, swaps, liquidity result.Result[[]model.Transaction]
	var wg conc.WaitGroup
	wg.Go(func() { txs = c.InvestorTransactions(ctx, fund, investor, first) })
	wg.Go(func() { swaps = c.SwapTransactions(ctx, fund, investor, first) })
	wg.Go(func() { liquidity = c.LiquidityTransactions(ctx, fund, investor, first) })
	wg.Wait()

	var lists [][]model.Transaction
	for _, r := range []result.Result[[]model.Transaction]{txs, swaps, liquidity} {
		if err := r.Err(); err != nil {
			// 任一失败整体失败, 避免展示不完整的历史
			c.tl.Warn("investor history query failed", zap.String("fund", fund), zap.String("investor", investor), zap.Error(err))
			return result.NewFailed[[]model.Transaction](err)
		}
		if list, ok := r.Data(); ok {
			lists = append(lists, list)
		}
	}
	merged := transactionutils.MergeByTimestamp(lists...)
	if len(merged) == 0 {
		return result.NewNotFound[[]model.Transaction]()
	}
	if limit := clampFirst(first); len(merged) > limit {
		merged = merged[:limit]
	}
	return result.NewReady(merged)
}

func (c *Client) investorScoped(ctx context.Context, op, doc, field string, defaultType model.TxType, fund, investor string, first int) result.Result[[]model.Transaction] {
	if c.skip(fund, investor) {
		return result.NewNotFound[[]model.Transaction]()
	}
	req := graphql.Request{
		OperationName: op,
		Query:         doc,
		Variables: map[string]interface{}{
			"fund":     model.AddressOrSentinel(fund),
			"investor": model.AddressOrSentinel(investor),
			"first":    clampFirst(first),
		},
	}
	norm := model.NormalizeTransaction
	if defaultType != "" {
		norm = withDefaultType(defaultType)
	}
	return queryList(ctx, c.data, req, field, norm)
}

func withDefaultType(t model.TxType) func(model.TransactionWire) model.Transaction {
	return func(w model.TransactionWire) model.Transaction {
		if w.Type == "" {
			w.Type = string(t)
		}
		return model.NormalizeTransaction(w)
	}
}
