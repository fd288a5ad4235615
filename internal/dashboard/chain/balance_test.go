package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"fund-dashboard/internal/dashboard/model"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fund = "0x1111111111111111111111111111111111111111"
	usdc = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	weth = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
)

type fakeBackend struct {
	mu       sync.Mutex
	head     uint64
	native   *big.Int
	balances map[common.Address]*big.Int
	failOn   common.Address
	blocks   []*big.Int
}

func (f *fakeBackend) BalanceAt(_ context.Context, _ common.Address, block *big.Int) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = append(f.blocks, block)
	return f.native, nil
}

func (f *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, block *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = append(f.blocks, block)
	if *call.To == f.failOn {
		return nil, errors.New("execution reverted")
	}
	return math.U256Bytes(new(big.Int).Set(f.balances[*call.To])), nil
}

func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) {
	return f.head, nil
}

func newBackend() *fakeBackend {
	return &fakeBackend{
		head:   19_000_000,
		native: big.NewInt(2_500_000_000_000_000_000),
		balances: map[common.Address]*big.Int{
			common.HexToAddress(usdc): big.NewInt(12_340_000),
			common.HexToAddress(weth): big.NewInt(1e18),
		},
	}
}

func TestGetFundHoldings(t *testing.T) {
	b := newBackend()
	tokens := []model.Token{
		{Address: usdc, Symbol: "USDC", Decimals: 6},
		{Address: weth, Symbol: "WETH", Decimals: 18},
	}

	h, err := GetFundHoldings(context.Background(), b, fund, tokens)
	require.NoError(t, err)
	assert.Equal(t, uint64(19_000_000), h.BlockNumber)
	assert.Equal(t, "2.5", h.Native.String())
	require.Len(t, h.Tokens, 2)
	assert.Equal(t, "USDC", h.Tokens[0].Symbol)
	assert.Equal(t, "12.34", h.Tokens[0].Amount.String())
	assert.Equal(t, "WETH", h.Tokens[1].Symbol)
	assert.Equal(t, "1", h.Tokens[1].Amount.String())

	for _, blk := range b.blocks {
		assert.Equal(t, int64(19_000_000), blk.Int64(), "all reads pinned to one block")
	}
}

func TestGetFundHoldings_Errors(t *testing.T) {
	b := newBackend()
	b.failOn = common.HexToAddress(weth)
	_, err := GetFundHoldings(context.Background(), b, fund, []model.Token{{Address: usdc, Decimals: 6}, {Address: weth, Decimals: 18}})
	assert.ErrorContains(t, err, "execution reverted")

	_, err = GetFundHoldings(context.Background(), newBackend(), "0xnope", nil)
	assert.Error(t, err)

	_, err = GetFundHoldings(context.Background(), newBackend(), fund, []model.Token{{Address: "bad"}})
	assert.Error(t, err)

	// decimals 超出 uint8 直接拒绝, 不做截断
	for _, d := range []int64{256, 300, -1} {
		_, err = GetFundHoldings(context.Background(), newBackend(), fund, []model.Token{{Address: usdc, Decimals: d}})
		assert.ErrorContains(t, err, "out of range", d)
	}
}

func TestTokensOf(t *testing.T) {
	f := model.Fund{
		Tokens:         []string{usdc, weth},
		TokensSymbols:  []string{"USDC"},
		TokensDecimals: []int64{6},
	}
	tokens := TokensOf(f)
	require.Len(t, tokens, 2)
	assert.Equal(t, model.Token{Address: usdc, Symbol: "USDC", Decimals: 6}, tokens[0])
	assert.Equal(t, model.Token{Address: weth, Decimals: 18}, tokens[1], "missing decimals default to 18")
}

func TestParseBalanceResult(t *testing.T) {
	_, err := ParseBalanceResult([]byte{1, 2})
	assert.Error(t, err)

	v, err := ParseBalanceResult(math.U256Bytes(big.NewInt(42)))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int64())
}
