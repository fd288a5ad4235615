package calldata

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type SwapType uint8

const (
	ExactInputSingle SwapType = iota
	ExactInput
	ExactOutputSingle
	ExactOutput
)

const (
	maxFee    = 1<<24 - 1
	bpsDenom  = 10_000
	feeLength = 3
)

func (t SwapType) String() string {
	switch t {
	case ExactInputSingle:
		return "exactInputSingle"
	case ExactInput:
		return "exactInput"
	case ExactOutputSingle:
		return "exactOutputSingle"
	case ExactOutput:
		return "exactOutput"
	}
	return fmt.Sprintf("swapType(%d)", uint8(t))
}

func (t SwapType) isExactInput() bool {
	return t == ExactInputSingle || t == ExactInput
}

func (t SwapType) isSingle() bool {
	return t == ExactInputSingle || t == ExactOutputSingle
}

// Trade 一条已由路由给出的交易路径, Tokens 按 tokenIn -> tokenOut 排列, Fees 为每一跳的池子费率
type Trade struct {
	Type   SwapType
	Tokens []string
	Fees   []uint32
	// exact-input: AmountIn 固定, AmountOutMinimum 为下限
	// exact-output: AmountOut 固定, AmountInMaximum 为上限
	AmountIn         *big.Int
	AmountOut        *big.Int
	AmountInMaximum  *big.Int
	AmountOutMinimum *big.Int
}

type swapParams struct {
	SwapType         uint8          `abi:"swapType"`
	TokenIn          common.Address `abi:"tokenIn"`
	TokenOut         common.Address `abi:"tokenOut"`
	Fee              *big.Int       `abi:"fee"`
	Path             []byte         `abi:"path"`
	AmountIn         *big.Int       `abi:"amountIn"`
	AmountOut        *big.Int       `abi:"amountOut"`
	AmountInMaximum  *big.Int       `abi:"amountInMaximum"`
	AmountOutMinimum *big.Int       `abi:"amountOutMinimum"`
}

// SwapCallParameters 多笔 trade 打包为一次 swap 调用
func SwapCallParameters(fund string, trades []Trade) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	if len(trades) == 0 {
		return MethodParameters{}, fmt.Errorf("swap: no trades")
	}
	params := make([]swapParams, 0, len(trades))
	for i, t := range trades {
		p, err := buildSwapParams(t)
		if err != nil {
			return MethodParameters{}, fmt.Errorf("trade %d: %w", i, err)
		}
		params = append(params, p)
	}
	return encode(FundABI, "swap", nil, fundAddr, params)
}

func buildSwapParams(t Trade) (swapParams, error) {
	if t.Type > ExactOutput {
		return swapParams{}, fmt.Errorf("unknown swap type %d", t.Type)
	}
	if len(t.Tokens) < 2 {
		return swapParams{}, fmt.Errorf("%s: route needs at least two tokens", t.Type)
	}
	if len(t.Fees) != len(t.Tokens)-1 {
		return swapParams{}, fmt.Errorf("%s: %d tokens need %d fees, got %d", t.Type, len(t.Tokens), len(t.Tokens)-1, len(t.Fees))
	}
	if t.Type.isSingle() && len(t.Tokens) != 2 {
		return swapParams{}, fmt.Errorf("%s: single-hop swap takes exactly two tokens", t.Type)
	}

	tokenIn, err := parseAddress("tokenIn", t.Tokens[0])
	if err != nil {
		return swapParams{}, err
	}
	tokenOut, err := parseAddress("tokenOut", t.Tokens[len(t.Tokens)-1])
	if err != nil {
		return swapParams{}, err
	}

	p := swapParams{
		SwapType: uint8(t.Type),
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		Fee:      new(big.Int),
		Path:     []byte{},
	}
	if t.Type.isExactInput() {
		if p.AmountIn, err = checkAmount("amountIn", t.AmountIn); err != nil {
			return swapParams{}, err
		}
		if p.AmountOutMinimum, err = amountOrZero("amountOutMinimum", t.AmountOutMinimum); err != nil {
			return swapParams{}, err
		}
		p.AmountOut = new(big.Int)
		p.AmountInMaximum = new(big.Int)
	} else {
		if p.AmountOut, err = checkAmount("amountOut", t.AmountOut); err != nil {
			return swapParams{}, err
		}
		if p.AmountInMaximum, err = checkAmount("amountInMaximum", t.AmountInMaximum); err != nil {
			return swapParams{}, err
		}
		p.AmountIn = new(big.Int)
		p.AmountOutMinimum = new(big.Int)
	}

	if t.Type.isSingle() {
		if t.Fees[0] > maxFee {
			return swapParams{}, fmt.Errorf("fee %d exceeds uint24", t.Fees[0])
		}
		p.Fee = new(big.Int).SetUint64(uint64(t.Fees[0]))
		return p, nil
	}

	// exact-output 的 path 反向编码 (tokenOut 在前)
	if p.Path, err = EncodePath(t.Tokens, t.Fees, !t.Type.isExactInput()); err != nil {
		return swapParams{}, err
	}
	return p, nil
}

// EncodePath 编码多跳路径 token(20) fee(3) token(20) ...
func EncodePath(tokens []string, fees []uint32, exactOutput bool) ([]byte, error) {
	if len(tokens) < 2 || len(fees) != len(tokens)-1 {
		return nil, fmt.Errorf("path: %d tokens with %d fees", len(tokens), len(fees))
	}
	addrs := make([]common.Address, len(tokens))
	for i, tok := range tokens {
		a, err := parseAddress("path token", tok)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	hopFees := append([]uint32(nil), fees...)
	if exactOutput {
		for i, j := 0, len(addrs)-1; i < j; i, j = i+1, j-1 {
			addrs[i], addrs[j] = addrs[j], addrs[i]
		}
		for i, j := 0, len(hopFees)-1; i < j; i, j = i+1, j-1 {
			hopFees[i], hopFees[j] = hopFees[j], hopFees[i]
		}
	}

	path := make([]byte, 0, common.AddressLength+len(hopFees)*(feeLength+common.AddressLength))
	path = append(path, addrs[0].Bytes()...)
	for i, fee := range hopFees {
		if fee > maxFee {
			return nil, fmt.Errorf("path: fee %d exceeds uint24", fee)
		}
		path = append(path, byte(fee>>16), byte(fee>>8), byte(fee))
		path = append(path, addrs[i+1].Bytes()...)
	}
	return path, nil
}

// MinimumAmountOut amountOut * (1 - slippage), 向下取整
func MinimumAmountOut(amountOut *big.Int, slippageBps uint32) *big.Int {
	if amountOut == nil || slippageBps >= bpsDenom {
		return new(big.Int)
	}
	out := new(big.Int).Mul(amountOut, big.NewInt(int64(bpsDenom-slippageBps)))
	return out.Quo(out, big.NewInt(bpsDenom))
}

// MaximumAmountIn amountIn * (1 + slippage), 向下取整
func MaximumAmountIn(amountIn *big.Int, slippageBps uint32) *big.Int {
	if amountIn == nil {
		return new(big.Int)
	}
	in := new(big.Int).Mul(amountIn, big.NewInt(int64(bpsDenom+slippageBps)))
	return in.Quo(in, big.NewInt(bpsDenom))
}
