package calldata

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePath(t *testing.T) {
	path, err := EncodePath([]string{weth, usdc, dai}, []uint32{3000, 500}, false)
	require.NoError(t, err)
	require.Len(t, path, 20+23*2)
	assert.Equal(t, common.HexToAddress(weth).Bytes(), path[:20])
	assert.Equal(t, []byte{0x00, 0x0b, 0xb8}, path[20:23])
	assert.Equal(t, common.HexToAddress(usdc).Bytes(), path[23:43])
	assert.Equal(t, []byte{0x00, 0x01, 0xf4}, path[43:46])
	assert.Equal(t, common.HexToAddress(dai).Bytes(), path[46:])

	reversed, err := EncodePath([]string{weth, usdc, dai}, []uint32{3000, 500}, true)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(dai).Bytes(), reversed[:20])
	assert.Equal(t, []byte{0x00, 0x01, 0xf4}, reversed[20:23])
	assert.Equal(t, common.HexToAddress(weth).Bytes(), reversed[46:])
}

func TestEncodePath_Errors(t *testing.T) {
	_, err := EncodePath([]string{weth}, nil, false)
	assert.Error(t, err)
	_, err = EncodePath([]string{weth, usdc}, []uint32{1 << 24}, false)
	assert.Error(t, err)
	_, err = EncodePath([]string{weth, "0xbad"}, []uint32{500}, false)
	assert.Error(t, err)
}

func TestEncodePath_Length(t *testing.T) {
	tokens := []string{weth, usdc, dai, fundAddr}
	properties := gopter.NewProperties(nil)

	properties.Property("length is 20 + 23 per hop", prop.ForAll(
		func(hops int, fee uint32, exactOutput bool) bool {
			fees := make([]uint32, hops)
			for i := range fees {
				fees[i] = fee
			}
			path, err := EncodePath(tokens[:hops+1], fees, exactOutput)
			return err == nil && len(path) == 20+23*hops
		},
		gen.IntRange(1, 3),
		gen.UInt32Range(0, 1<<24-1),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestSwapCallParameters(t *testing.T) {
	trades := []Trade{
		{
			Type:             ExactInputSingle,
			Tokens:           []string{weth, usdc},
			Fees:             []uint32{500},
			AmountIn:         big.NewInt(1e18),
			AmountOutMinimum: big.NewInt(1_800_000_000),
		},
		{
			Type:            ExactOutput,
			Tokens:          []string{usdc, weth, dai},
			Fees:            []uint32{500, 3000},
			AmountOut:       big.NewInt(100),
			AmountInMaximum: big.NewInt(200),
		},
	}
	p, err := SwapCallParameters(fundAddr, trades)
	require.NoError(t, err)
	args := decode(t, FundABI, "swap", p)
	assert.Equal(t, common.HexToAddress(fundAddr), args[0])
	assert.Equal(t, "0x00", p.Value)

	again, err := SwapCallParameters(fundAddr, trades)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestSwapCallParameters_Invalid(t *testing.T) {
	cases := map[string]Trade{
		"single hop with three tokens": {Type: ExactInputSingle, Tokens: []string{weth, usdc, dai}, Fees: []uint32{500, 500}, AmountIn: big.NewInt(1)},
		"fee count mismatch":           {Type: ExactInput, Tokens: []string{weth, usdc}, Fees: nil, AmountIn: big.NewInt(1)},
		"missing amountIn":             {Type: ExactInput, Tokens: []string{weth, usdc}, Fees: []uint32{500}},
		"missing amountInMaximum":      {Type: ExactOutputSingle, Tokens: []string{weth, usdc}, Fees: []uint32{500}, AmountOut: big.NewInt(1)},
		"unknown type":                 {Type: SwapType(9), Tokens: []string{weth, usdc}, Fees: []uint32{500}, AmountIn: big.NewInt(1)},
	}
	for name, trade := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := SwapCallParameters(fundAddr, []Trade{trade})
			assert.Error(t, err)
		})
	}

	_, err := SwapCallParameters(fundAddr, nil)
	assert.Error(t, err)
}

func TestSlippage(t *testing.T) {
	assert.Equal(t, "9950", MinimumAmountOut(big.NewInt(10_000), 50).String())
	assert.Equal(t, "10050", MaximumAmountIn(big.NewInt(10_000), 50).String())
	assert.Equal(t, "0", MinimumAmountOut(big.NewInt(10_000), 10_000).String())
	assert.Equal(t, "0", MaximumAmountIn(nil, 50).String())
}
