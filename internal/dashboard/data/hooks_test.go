package data

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/internal/dashboard/query"
	"fund-dashboard/internal/dashboard/result"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunds_Paging(t *testing.T) {
	f := newFakeSubgraph().on(query.OpFunds, `{"data":{"funds":[`+fundJSON("0x1", "1", "1")+`,`+fundJSON("0x2", "2", "2")+`]}}`)
	c := newTestClient(t, f, Options{})
	ctx := context.Background()

	funds, ok := c.Funds(ctx, Page{First: 5000, Skip: -3}).Data()
	require.True(t, ok)
	require.Len(t, funds, 2)
	assert.Equal(t, "0x1", funds[0].Address)
	assert.Equal(t, "0x2", funds[1].Address)

	vars := f.calls(query.OpFunds)[0].Variables
	assert.Equal(t, float64(maxFirst), vars["first"])
	assert.Equal(t, float64(0), vars["skip"])

	c.Funds(ctx, Page{First: 10, Skip: 20})
	vars = f.calls(query.OpFunds)[1].Variables
	assert.Equal(t, float64(10), vars["first"])
	assert.Equal(t, float64(20), vars["skip"])
}

func TestTransactions_DefaultTypes(t *testing.T) {
	f := newFakeSubgraph().
		on(query.OpSwapTransactions, `{"data":{"swaps":[{"id":"s1","transaction":"0xh","timestamp":"10","tokenIn":"0xa","amountIn":"1.5"}]}}`).
		on(query.OpFeeTransactions, `{"data":{"feeTransactions":[{"id":"f1","timestamp":"11","amountUSD":"2"},{"id":"f2","type":"Deposit"}]}}`).
		on(query.OpLiquidityTransactions, `{"data":{"liquidityTransactions":[{"id":"l1","type":"MintNewPosition","tokenId":"7"}]}}`)
	c := newTestClient(t, f, Options{})
	ctx := context.Background()

	swaps, ok := c.SwapTransactions(ctx, fundAddr, investorAddr, 0).Data()
	require.True(t, ok)
	assert.Equal(t, model.TxSwap, swaps[0].Type)
	assert.Equal(t, "0xh", swaps[0].Hash)
	assert.Equal(t, 1.5, swaps[0].AmountIn)

	fees, ok := c.FeeTransactions(ctx, fundAddr, 0).Data()
	require.True(t, ok)
	assert.Equal(t, model.TxWithdrawFee, fees[0].Type)
	assert.Equal(t, model.TxDeposit, fees[1].Type, "explicit type is kept")

	liq, ok := c.LiquidityTransactions(ctx, fundAddr, investorAddr, 0).Data()
	require.True(t, ok)
	assert.True(t, liq[0].Type.IsLiquidity())
	assert.Equal(t, "7", liq[0].TokenID)
}

func TestInvestorHistory(t *testing.T) {
	f := newFakeSubgraph().
		on(query.OpInvestorTransactions, `{"data":{"transactions":[{"id":"d1","timestamp":"100","type":"Deposit"},{"id":"w1","timestamp":"400","type":"Withdraw"}]}}`).
		on(query.OpSwapTransactions, `{"data":{"swaps":[{"id":"s1","timestamp":"300"}]}}`).
		on(query.OpLiquidityTransactions, `{"data":{"liquidityTransactions":[]}}`)
	c := newTestClient(t, f, Options{})

	history, ok := c.InvestorHistory(context.Background(), fundAddr, investorAddr, 5).Data()
	require.True(t, ok)
	ids := make([]string, len(history))
	for i, tx := range history {
		ids[i] = tx.ID
	}
	assert.Equal(t, []string{"w1", "s1", "d1"}, ids)
	assert.Equal(t, model.TxSwap, history[1].Type)

	for _, op := range []string{query.OpInvestorTransactions, query.OpSwapTransactions, query.OpLiquidityTransactions} {
		vars := f.calls(op)[0].Variables
		assert.Equal(t, float64(5), vars["first"], op)
		assert.Equal(t, strings.ToLower(investorAddr), vars["investor"], op)
	}

	f.on(query.OpSwapTransactions, `{"errors":[{"message":"timeout"}]}`)
	r := c.InvestorHistory(context.Background(), fundAddr, investorAddr, 5)
	assert.Equal(t, result.Failed, r.State(), "partial history is not shown")
}

func TestInvestorHistory_Truncated(t *testing.T) {
	f := newFakeSubgraph().
		on(query.OpInvestorTransactions, `{"data":{"transactions":[{"id":"d1","timestamp":"500"},{"id":"d2","timestamp":"100"}]}}`).
		on(query.OpSwapTransactions, `{"data":{"swaps":[{"id":"s1","timestamp":"400"},{"id":"s2","timestamp":"200"}]}}`).
		on(query.OpLiquidityTransactions, `{"data":{"liquidityTransactions":[{"id":"l1","timestamp":"300"},{"id":"l2","timestamp":"50"}]}}`)
	c := newTestClient(t, f, Options{})

	// 三类记录各取 first 条, 合并后只保留最新的 first 条
	history, ok := c.InvestorHistory(context.Background(), fundAddr, investorAddr, 2).Data()
	require.True(t, ok)
	require.Len(t, history, 2)
	assert.Equal(t, "d1", history[0].ID)
	assert.Equal(t, "s1", history[1].ID)
}

func TestSnapshots_MostRecentAscending(t *testing.T) {
	// subgraph 按 timestamp 倒序返回最近的点
	f := newFakeSubgraph().
		on(query.OpFundSnapshots, `{"data":{"fundSnapshots":[{"timestamp":"300"},{"timestamp":"200"},{"timestamp":"100"}]}}`).
		on(query.OpInvestorSnapshots, `{"data":{"investorSnapshots":[{"timestamp":"300"},{"timestamp":"200"},{"timestamp":"100"}]}}`).
		on(query.OpManagerSnapshots, `{"data":{"managerSnapshots":[{"timestamp":"300"},{"timestamp":"200"},{"timestamp":"100"}]}}`).
		on(query.OpInfoSnapshots, `{"data":{"infoSnapshots":[{"timestamp":"300"},{"timestamp":"200"},{"timestamp":"100"}]}}`)
	c := newTestClient(t, f, Options{})
	ctx := context.Background()
	want := []int64{100, 200, 300}

	fs, ok := c.FundSnapshots(ctx, fundAddr, 3).Data()
	require.True(t, ok)
	assert.Equal(t, want, []int64{fs[0].Timestamp, fs[1].Timestamp, fs[2].Timestamp})

	is, ok := c.InvestorSnapshots(ctx, fundAddr, investorAddr, 3).Data()
	require.True(t, ok)
	assert.Equal(t, want, []int64{is[0].Timestamp, is[1].Timestamp, is[2].Timestamp})

	ms, ok := c.ManagerSnapshots(ctx, fundAddr, investorAddr, 3).Data()
	require.True(t, ok)
	assert.Equal(t, want, []int64{ms[0].Timestamp, ms[1].Timestamp, ms[2].Timestamp})

	infos, ok := c.InfoSnapshots(ctx, 3).Data()
	require.True(t, ok)
	assert.Equal(t, want, []int64{infos[0].Timestamp, infos[1].Timestamp, infos[2].Timestamp})

	for _, op := range []string{query.OpFundSnapshots, query.OpInvestorSnapshots, query.OpManagerSnapshots, query.OpInfoSnapshots} {
		assert.Contains(t, f.calls(op)[0].Query, "orderDirection: desc", op)
	}
}

func TestBlockNumberAt(t *testing.T) {
	f := newFakeSubgraph().on(query.OpBlockAt, `{"data":{"blocks":[{"id":"0xb","number":"18500000","timestamp":"1700000012"}]}}`)
	c := newTestClient(t, f, Options{})
	ctx := context.Background()

	n, ok := c.BlockNumberAt(ctx, 1700000000).Data()
	require.True(t, ok)
	assert.Equal(t, int64(18500000), n)

	vars := f.calls(query.OpBlockAt)[0].Variables
	assert.Equal(t, "1700000000", vars["timestampFrom"])
	assert.Equal(t, "1700000600", vars["timestampTo"])

	n, ok = c.BlockNumberAt(ctx, 1700000000).Data()
	require.True(t, ok)
	assert.Equal(t, int64(18500000), n)
	assert.Len(t, f.calls(query.OpBlockAt), 1, "second lookup is cached")

	r := c.BlockNumberAt(ctx, 1700000000000)
	assert.Equal(t, result.Failed, r.State(), "milliseconds are rejected")
	assert.Len(t, f.calls(query.OpBlockAt), 1)
}

func TestFundOverview(t *testing.T) {
	f := newFakeSubgraph().
		on(query.OpFund, `{"data":{"fund":`+fundJSON("0xabc", "5", "1500")+`}}`).
		on(query.OpFundAtBlock, `{"data":{"fund":`+fundJSON("0xabc", "3", "1000.5")+`}}`).
		on(query.OpFundSnapshots, `{"data":{"fundSnapshots":[{"timestamp":"1699900000","volumeUSD":"900"}]}}`).
		on(query.OpFundTransactions, `{"data":{"transactions":[]}}`).
		on(query.OpBlockAt, `{"data":{"blocks":[{"number":"18500000","timestamp":"1700000012"}]}}`)
	c := newTestClient(t, f, Options{})
	c.now = func() time.Time { return time.Unix(1700086400, 0) }

	overview, ok := c.FundOverview(context.Background(), fundAddr).Data()
	require.True(t, ok)
	assert.Equal(t, int64(5), overview.Fund.InvestorCount)
	assert.True(t, overview.HasChange)
	assert.InDelta(t, 499.5, overview.VolumeChangeUSD, 1e-9)
	assert.Equal(t, int64(2), overview.InvestorCountDelta)
	assert.Len(t, overview.Snapshots, 1)
	assert.NotNil(t, overview.Transactions)
	assert.Empty(t, overview.Transactions)

	// 对齐到前一日 UTC 0 点
	assert.Equal(t, "1699920000", f.calls(query.OpBlockAt)[0].Variables["timestampFrom"])
	assert.Equal(t, float64(18500000), f.calls(query.OpFundAtBlock)[0].Variables["block"])
}

func TestFundOverview_Degrades(t *testing.T) {
	f := newFakeSubgraph().
		on(query.OpFund, `{"data":{"fund":`+fundJSON("0xabc", "5", "1500")+`}}`).
		on(query.OpFundSnapshots, `{"errors":[{"message":"boom"}]}`).
		on(query.OpFundTransactions, `{"data":{"transactions":[]}}`).
		on(query.OpBlockAt, `{"data":{"blocks":[]}}`)
	c := newTestClient(t, f, Options{})

	overview, ok := c.FundOverview(context.Background(), fundAddr).Data()
	require.True(t, ok)
	assert.False(t, overview.HasChange)
	assert.Empty(t, overview.Snapshots)
	assert.Empty(t, f.calls(query.OpFundAtBlock), "no historical query without a block")
}

type stubBackend struct{}

func (stubBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(1e18), nil
}

func (stubBackend) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return math.U256Bytes(big.NewInt(2_000_000)), nil
}

func (stubBackend) BlockNumber(context.Context) (uint64, error) { return 42, nil }

func TestFundHoldings(t *testing.T) {
	body := `{"data":{"fund":{"id":"` + strings.ToLower(fundAddr) + `","tokens":["0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"],"tokensSymbols":["USDC"],"tokensDecimals":["6"]}}}`
	f := newFakeSubgraph().on(query.OpFund, body)
	c := newTestClient(t, f, Options{})
	ctx := context.Background()

	r := c.FundHoldings(ctx, fundAddr)
	assert.True(t, errors.Is(r.Err(), ErrRPCNotConfigured))
	assert.Empty(t, f.calls(query.OpFund))

	holdings, ok := c.WithBackend(stubBackend{}).FundHoldings(ctx, fundAddr).Data()
	require.True(t, ok)
	assert.Equal(t, uint64(42), holdings.BlockNumber)
	assert.Equal(t, "1", holdings.Native.String())
	require.Len(t, holdings.Tokens, 1)
	assert.Equal(t, "2", holdings.Tokens[0].Amount.String())
}
