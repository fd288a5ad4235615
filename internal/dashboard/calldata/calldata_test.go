package calldata

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fundAddr = "0x1111111111111111111111111111111111111111"
	weth     = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	usdc     = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	dai      = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

func selector(contract abi.ABI, method string) string {
	return hexutil.Encode(contract.Methods[method].ID)
}

func decode(t *testing.T, contract abi.ABI, method string, p MethodParameters) []interface{} {
	t.Helper()
	raw, err := hexutil.Decode(p.Calldata)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p.Calldata, selector(contract, method)))
	args, err := contract.Methods[method].Inputs.Unpack(raw[4:])
	require.NoError(t, err)
	return args
}

func TestStakeCallParameters(t *testing.T) {
	p, err := StakeCallParameters(big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, "0xa694fc3a"+strings.Repeat("0", 62)+"64", p.Calldata)
	assert.Equal(t, "0x00", p.Value)

	again, err := StakeCallParameters(big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestCalldataDeterminism(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("identical inputs give identical payloads", prop.ForAll(
		func(amount uint64, native bool) bool {
			a, errA := DepositCallParameters(fundAddr, weth, new(big.Int).SetUint64(amount), native)
			b, errB := DepositCallParameters(fundAddr, weth, new(big.Int).SetUint64(amount), native)
			return errA == nil && errB == nil && a == b
		},
		gen.UInt64(),
		gen.Bool(),
	))

	properties.Property("unstake round-trips the amount", prop.ForAll(
		func(amount uint64) bool {
			p, err := UnstakeCallParameters(new(big.Int).SetUint64(amount))
			if err != nil {
				return false
			}
			raw, _ := hexutil.Decode(p.Calldata)
			args, err := StakingABI.Methods["unstake"].Inputs.Unpack(raw[4:])
			return err == nil && args[0].(*big.Int).Uint64() == amount
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestSelectors(t *testing.T) {
	assert.Equal(t, "0x095ea7b3", selector(ERC20ABI, "approve"))
	assert.Equal(t, "0x70a08231", selector(ERC20ABI, "balanceOf"))
	assert.Equal(t, "0x2e17de78", selector(StakingABI, "unstake"))
	assert.Equal(t, "0xb88a802f", selector(StakingABI, "claimReward"))

	p, err := ClaimRewardCallParameters()
	require.NoError(t, err)
	assert.Equal(t, "0xb88a802f", p.Calldata)

	p, err = CreateFundCallParameters()
	require.NoError(t, err)
	assert.Equal(t, selector(FactoryABI, "createFund"), p.Calldata)
}

func TestDepositCallParameters(t *testing.T) {
	amount := big.NewInt(1_500_000_000_000_000_000)

	native, err := DepositCallParameters(fundAddr, weth, amount, true)
	require.NoError(t, err)
	assert.Equal(t, "0x14d1120d7b160000", native.Value)

	erc20, err := DepositCallParameters(fundAddr, weth, amount, false)
	require.NoError(t, err)
	assert.Equal(t, "0x00", erc20.Value)
	assert.Equal(t, native.Calldata, erc20.Calldata, "value does not change calldata")

	args := decode(t, FundABI, "deposit", erc20)
	assert.Equal(t, common.HexToAddress(fundAddr), args[0])
	assert.Equal(t, common.HexToAddress(weth), args[1])
	assert.Equal(t, 0, amount.Cmp(args[2].(*big.Int)))
}

func TestFundTokenAmountBuilders(t *testing.T) {
	w, err := WithdrawCallParameters(fundAddr, usdc, big.NewInt(5))
	require.NoError(t, err)
	args := decode(t, FundABI, "withdraw", w)
	assert.Equal(t, common.HexToAddress(usdc), args[1])

	f, err := WithdrawFeeCallParameters(fundAddr, usdc, big.NewInt(5))
	require.NoError(t, err)
	decode(t, FundABI, "withdrawFee", f)
	assert.NotEqual(t, w.Calldata, f.Calldata)

	s, err := SubscribeCallParameters(fundAddr)
	require.NoError(t, err)
	args = decode(t, FactoryABI, "subscribe", s)
	assert.Equal(t, common.HexToAddress(fundAddr), args[0])

	a, err := ApproveCallParameters(fundAddr, big.NewInt(7))
	require.NoError(t, err)
	decode(t, ERC20ABI, "approve", a)

	b, err := BalanceOfCallData(fundAddr)
	require.NoError(t, err)
	assert.Len(t, b, 4+32)
}

func TestInvalidInputs(t *testing.T) {
	_, err := SubscribeCallParameters("0x123")
	assert.ErrorContains(t, err, "invalid fund address")

	_, err = DepositCallParameters(fundAddr, "not-an-address", big.NewInt(1), false)
	assert.ErrorContains(t, err, "invalid token address")

	_, err = StakeCallParameters(nil)
	assert.Error(t, err)

	_, err = StakeCallParameters(big.NewInt(-1))
	assert.Error(t, err)

	_, err = ApproveCallParameters("", big.NewInt(1))
	assert.Error(t, err)
}

func TestIsNativeDeposit(t *testing.T) {
	assert.True(t, IsNativeDeposit(strings.ToLower(weth), weth, true))
	assert.False(t, IsNativeDeposit(weth, weth, false))
	assert.False(t, IsNativeDeposit(usdc, weth, true))
}

func TestToHex(t *testing.T) {
	assert.Equal(t, "0x00", ToHex(nil))
	assert.Equal(t, "0x00", ToHex(big.NewInt(0)))
	assert.Equal(t, "0x0f", ToHex(big.NewInt(15)))
	assert.Equal(t, "0x0100", ToHex(big.NewInt(256)))
}
