package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"sort"

	"fund-dashboard/internal/dashboard/calldata"
	"fund-dashboard/internal/dashboard/model"
	"fund-dashboard/pkg/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
)

const (
	nativeDecimals = 18
	maxConcurrency = 8
)

// Backend ethclient.Client 的子集
type Backend interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

type TokenBalance struct {
	Token    string          `json:"token"`
	Symbol   string          `json:"symbol"`
	Decimals uint8           `json:"decimals"`
	Raw      *big.Int        `json:"raw"`
	Amount   decimal.Decimal `json:"amount"`
}

// Holdings 基金地址在某个块上的链上余额
type Holdings struct {
	Fund        string          `json:"fund"`
	BlockNumber uint64          `json:"blockNumber"`
	Native      decimal.Decimal `json:"native"`
	Tokens      []TokenBalance  `json:"tokens"`
}

// TokensOf 从基金 view 中取出持仓 token 列表
func TokensOf(f model.Fund) []model.Token {
	tokens := make([]model.Token, 0, len(f.Tokens))
	for i, addr := range f.Tokens {
		t := model.Token{Address: addr, Decimals: nativeDecimals}
		if i < len(f.TokensSymbols) {
			t.Symbol = f.TokensSymbols[i]
		}
		if i < len(f.TokensDecimals) {
			t.Decimals = f.TokensDecimals[i]
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// GetFundHoldings 查询原生余额 + 各 ERC20 余额, 全部在同一个块高上读取
func GetFundHoldings(ctx context.Context, client Backend, fund string, tokens []model.Token) (Holdings, error) {
	if !common.IsHexAddress(fund) {
		return Holdings{}, fmt.Errorf("invalid fund address %q", fund)
	}
	fundAddr := common.HexToAddress(fund)
	for _, tok := range tokens {
		if tok.Decimals < 0 || tok.Decimals > math.MaxUint8 {
			return Holdings{}, fmt.Errorf("token %s decimals %d out of range", tok.Address, tok.Decimals)
		}
	}

	head, err := client.BlockNumber(ctx)
	if err != nil {
		return Holdings{}, fmt.Errorf("failed to get block number: %w", err)
	}
	blockNumber := new(big.Int).SetUint64(head)

	nativeBal, err := client.BalanceAt(ctx, fundAddr, blockNumber)
	if err != nil {
		return Holdings{}, fmt.Errorf("failed to get native balance: %w", err)
	}

	callData, err := calldata.BalanceOfCallData(fundAddr.Hex())
	if err != nil {
		return Holdings{}, err
	}

	type indexed struct {
		i   int
		bal TokenBalance
	}
	p := pool.NewWithResults[indexed]().WithContext(ctx).WithMaxGoroutines(maxConcurrency)
	for i, tok := range tokens {
		p.Go(func(ctx context.Context) (indexed, error) {
			if !common.IsHexAddress(tok.Address) {
				return indexed{}, fmt.Errorf("invalid token address %q", tok.Address)
			}
			token := common.HexToAddress(tok.Address)
			result, err := client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: callData}, blockNumber)
			if err != nil {
				return indexed{}, fmt.Errorf("call contract failed for %s: %w", token.Hex(), err)
			}
			raw, err := ParseBalanceResult(result)
			if err != nil {
				return indexed{}, fmt.Errorf("failed to parse balance for %s: %w", token.Hex(), err)
			}
			decimals := uint8(tok.Decimals)
			return indexed{i: i, bal: TokenBalance{
				Token:    token.Hex(),
				Symbol:   tok.Symbol,
				Decimals: decimals,
				Raw:      raw,
				Amount:   utils.AdjustDecimals(raw, decimals),
			}}, nil
		})
	}
	results, err := p.Wait()
	if err != nil {
		return Holdings{}, err
	}

	sort.Slice(results, func(a, b int) bool { return results[a].i < results[b].i })
	balances := make([]TokenBalance, len(results))
	for k, r := range results {
		balances[k] = r.bal
	}

	return Holdings{
		Fund:        fundAddr.Hex(),
		BlockNumber: head,
		Native:      utils.AdjustDecimals(nativeBal, nativeDecimals),
		Tokens:      balances,
	}, nil
}

// ParseBalanceResult 解析 balanceOf 返回值
func ParseBalanceResult(data []byte) (*big.Int, error) {
	if len(data) < 32 {
		return nil, fmt.Errorf("invalid balance data length: %d", len(data))
	}
	return new(big.Int).SetBytes(data[len(data)-32:]), nil
}
