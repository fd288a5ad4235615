package calldata

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position() MintPosition {
	return MintPosition{
		Token0:         usdc,
		Token1:         weth,
		Fee:            3000,
		TickLower:      -60,
		TickUpper:      60,
		Amount0Desired: big.NewInt(1_000_000),
		Amount1Desired: big.NewInt(1e15),
	}
}

func TestMintNewPositionCallParameters(t *testing.T) {
	p, err := MintNewPositionCallParameters(fundAddr, position())
	require.NoError(t, err)
	decode(t, FundABI, "mintNewPosition", p)

	raw, err := hexutil.Decode(p.Calldata)
	require.NoError(t, err)
	// selector + fund + 9 个静态字段
	assert.Len(t, raw, 4+32*10)

	// int24 负数按补码编码
	tickLower := raw[4+32*4 : 4+32*5]
	for _, b := range tickLower[:28] {
		require.Equal(t, byte(0xff), b)
	}
}

func TestMintNewPositionCallParameters_Invalid(t *testing.T) {
	pos := position()
	pos.TickLower, pos.TickUpper = 60, -60
	_, err := MintNewPositionCallParameters(fundAddr, pos)
	assert.Error(t, err)

	pos = position()
	pos.TickUpper = 900000
	_, err = MintNewPositionCallParameters(fundAddr, pos)
	assert.Error(t, err)

	pos = position()
	pos.Fee = 1 << 24
	_, err = MintNewPositionCallParameters(fundAddr, pos)
	assert.Error(t, err)

	pos = position()
	pos.Amount0Desired = nil
	_, err = MintNewPositionCallParameters(fundAddr, pos)
	assert.Error(t, err)
}

func TestPositionBuilders(t *testing.T) {
	tokenID := big.NewInt(4242)

	inc, err := IncreaseLiquidityCallParameters(fundAddr, tokenID, big.NewInt(1), big.NewInt(2), nil, nil)
	require.NoError(t, err)
	decode(t, FundABI, "increaseLiquidity", inc)

	dec, err := DecreaseLiquidityCallParameters(fundAddr, tokenID, big.NewInt(10), nil, nil)
	require.NoError(t, err)
	decode(t, FundABI, "decreaseLiquidity", dec)

	collect, err := CollectPositionFeeCallParameters(fundAddr, tokenID, nil, nil)
	require.NoError(t, err)
	decode(t, FundABI, "collectPositionFee", collect)

	raw, err := hexutil.Decode(collect.Calldata)
	require.NoError(t, err)
	// amount0Max 缺省为 uint128 最大值
	amount0Max := new(big.Int).SetBytes(raw[4+32*2 : 4+32*3])
	assert.Equal(t, 0, amount0Max.Cmp(maxUint128))

	_, err = CollectPositionFeeCallParameters(fundAddr, tokenID, new(big.Int).Lsh(big.NewInt(1), 128), nil)
	assert.Error(t, err, "amount above uint128")

	_, err = DecreaseLiquidityCallParameters(fundAddr, nil, big.NewInt(1), nil, nil)
	assert.Error(t, err)
}
