package calldata

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	minTick = -887272
	maxTick = 887272
)

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// MintPosition 新建 LP 仓位
type MintPosition struct {
	Token0         string
	Token1         string
	Fee            uint32
	TickLower      int32
	TickUpper      int32
	Amount0Desired *big.Int
	Amount1Desired *big.Int
	Amount0Min     *big.Int
	Amount1Min     *big.Int
}

type mintParams struct {
	Token0         common.Address `abi:"token0"`
	Token1         common.Address `abi:"token1"`
	Fee            *big.Int       `abi:"fee"`
	TickLower      *big.Int       `abi:"tickLower"`
	TickUpper      *big.Int       `abi:"tickUpper"`
	Amount0Desired *big.Int       `abi:"amount0Desired"`
	Amount1Desired *big.Int       `abi:"amount1Desired"`
	Amount0Min     *big.Int       `abi:"amount0Min"`
	Amount1Min     *big.Int       `abi:"amount1Min"`
}

type increaseParams struct {
	TokenID        *big.Int `abi:"tokenId"`
	Amount0Desired *big.Int `abi:"amount0Desired"`
	Amount1Desired *big.Int `abi:"amount1Desired"`
	Amount0Min     *big.Int `abi:"amount0Min"`
	Amount1Min     *big.Int `abi:"amount1Min"`
}

type collectParams struct {
	TokenID    *big.Int `abi:"tokenId"`
	Amount0Max *big.Int `abi:"amount0Max"`
	Amount1Max *big.Int `abi:"amount1Max"`
}

type decreaseParams struct {
	TokenID    *big.Int `abi:"tokenId"`
	Liquidity  *big.Int `abi:"liquidity"`
	Amount0Min *big.Int `abi:"amount0Min"`
	Amount1Min *big.Int `abi:"amount1Min"`
}

func MintNewPositionCallParameters(fund string, pos MintPosition) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	token0, err := parseAddress("token0", pos.Token0)
	if err != nil {
		return MethodParameters{}, err
	}
	token1, err := parseAddress("token1", pos.Token1)
	if err != nil {
		return MethodParameters{}, err
	}
	if pos.Fee > maxFee {
		return MethodParameters{}, fmt.Errorf("fee %d exceeds uint24", pos.Fee)
	}
	if pos.TickLower >= pos.TickUpper {
		return MethodParameters{}, fmt.Errorf("tickLower %d must be below tickUpper %d", pos.TickLower, pos.TickUpper)
	}
	if pos.TickLower < minTick || pos.TickUpper > maxTick {
		return MethodParameters{}, fmt.Errorf("ticks [%d, %d] out of range", pos.TickLower, pos.TickUpper)
	}

	p := mintParams{
		Token0:    token0,
		Token1:    token1,
		Fee:       new(big.Int).SetUint64(uint64(pos.Fee)),
		TickLower: big.NewInt(int64(pos.TickLower)),
		TickUpper: big.NewInt(int64(pos.TickUpper)),
	}
	if p.Amount0Desired, err = checkAmount("amount0Desired", pos.Amount0Desired); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount1Desired, err = checkAmount("amount1Desired", pos.Amount1Desired); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount0Min, err = amountOrZero("amount0Min", pos.Amount0Min); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount1Min, err = amountOrZero("amount1Min", pos.Amount1Min); err != nil {
		return MethodParameters{}, err
	}
	return encode(FundABI, "mintNewPosition", nil, fundAddr, p)
}

func IncreaseLiquidityCallParameters(fund string, tokenID, amount0Desired, amount1Desired, amount0Min, amount1Min *big.Int) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	var p increaseParams
	if p.TokenID, err = checkAmount("tokenId", tokenID); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount0Desired, err = checkAmount("amount0Desired", amount0Desired); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount1Desired, err = checkAmount("amount1Desired", amount1Desired); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount0Min, err = amountOrZero("amount0Min", amount0Min); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount1Min, err = amountOrZero("amount1Min", amount1Min); err != nil {
		return MethodParameters{}, err
	}
	return encode(FundABI, "increaseLiquidity", nil, fundAddr, p)
}

// CollectPositionFeeCallParameters 不限额时传 nil, 按 uint128 最大值收取
func CollectPositionFeeCallParameters(fund string, tokenID, amount0Max, amount1Max *big.Int) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	p := collectParams{Amount0Max: maxUint128, Amount1Max: maxUint128}
	if p.TokenID, err = checkAmount("tokenId", tokenID); err != nil {
		return MethodParameters{}, err
	}
	if amount0Max != nil {
		if p.Amount0Max, err = uint128Amount("amount0Max", amount0Max); err != nil {
			return MethodParameters{}, err
		}
	}
	if amount1Max != nil {
		if p.Amount1Max, err = uint128Amount("amount1Max", amount1Max); err != nil {
			return MethodParameters{}, err
		}
	}
	return encode(FundABI, "collectPositionFee", nil, fundAddr, p)
}

func DecreaseLiquidityCallParameters(fund string, tokenID, liquidity, amount0Min, amount1Min *big.Int) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	var p decreaseParams
	if p.TokenID, err = checkAmount("tokenId", tokenID); err != nil {
		return MethodParameters{}, err
	}
	if p.Liquidity, err = uint128Amount("liquidity", liquidity); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount0Min, err = amountOrZero("amount0Min", amount0Min); err != nil {
		return MethodParameters{}, err
	}
	if p.Amount1Min, err = amountOrZero("amount1Min", amount1Min); err != nil {
		return MethodParameters{}, err
	}
	return encode(FundABI, "decreaseLiquidity", nil, fundAddr, p)
}

func uint128Amount(field string, v *big.Int) (*big.Int, error) {
	amt, err := checkAmount(field, v)
	if err != nil {
		return nil, err
	}
	if amt.Cmp(maxUint128) > 0 {
		return nil, fmt.Errorf("%s exceeds uint128", field)
	}
	return amt, nil
}
