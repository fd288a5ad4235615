package calldata

import (
	"math/big"
	"strings"
)

func CreateFundCallParameters() (MethodParameters, error) {
	return encode(FactoryABI, "createFund", nil)
}

// SubscribeCallParameters 投资者加入基金
func SubscribeCallParameters(fund string) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	return encode(FactoryABI, "subscribe", nil, fundAddr)
}

// DepositCallParameters native=true 时 token 应为 WETH, value 等于 amount
func DepositCallParameters(fund, token string, amount *big.Int, native bool) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	tokenAddr, err := parseAddress("token", token)
	if err != nil {
		return MethodParameters{}, err
	}
	amt, err := checkAmount("amount", amount)
	if err != nil {
		return MethodParameters{}, err
	}
	var value *big.Int
	if native {
		value = amt
	}
	return encode(FundABI, "deposit", value, fundAddr, tokenAddr, amt)
}

func WithdrawCallParameters(fund, token string, amount *big.Int) (MethodParameters, error) {
	return fundTokenAmount("withdraw", fund, token, amount)
}

// WithdrawFeeCallParameters manager 提取管理费
func WithdrawFeeCallParameters(fund, token string, amount *big.Int) (MethodParameters, error) {
	return fundTokenAmount("withdrawFee", fund, token, amount)
}

func fundTokenAmount(method, fund, token string, amount *big.Int) (MethodParameters, error) {
	fundAddr, err := parseAddress("fund", fund)
	if err != nil {
		return MethodParameters{}, err
	}
	tokenAddr, err := parseAddress("token", token)
	if err != nil {
		return MethodParameters{}, err
	}
	amt, err := checkAmount("amount", amount)
	if err != nil {
		return MethodParameters{}, err
	}
	return encode(FundABI, method, nil, fundAddr, tokenAddr, amt)
}

// IsNativeDeposit token 为 WETH 且用户选择 ETH 支付
func IsNativeDeposit(token, weth string, payWithETH bool) bool {
	return payWithETH && strings.EqualFold(strings.TrimSpace(token), strings.TrimSpace(weth))
}
