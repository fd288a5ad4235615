package calldata

import "math/big"

func StakeCallParameters(amount *big.Int) (MethodParameters, error) {
	amt, err := checkAmount("amount", amount)
	if err != nil {
		return MethodParameters{}, err
	}
	return encode(StakingABI, "stake", nil, amt)
}

func UnstakeCallParameters(amount *big.Int) (MethodParameters, error) {
	amt, err := checkAmount("amount", amount)
	if err != nil {
		return MethodParameters{}, err
	}
	return encode(StakingABI, "unstake", nil, amt)
}

func ClaimRewardCallParameters() (MethodParameters, error) {
	return encode(StakingABI, "claimReward", nil)
}

// ApproveCallParameters ERC-20 授权, 目标合约为 token 本身
func ApproveCallParameters(spender string, amount *big.Int) (MethodParameters, error) {
	spenderAddr, err := parseAddress("spender", spender)
	if err != nil {
		return MethodParameters{}, err
	}
	amt, err := checkAmount("amount", amount)
	if err != nil {
		return MethodParameters{}, err
	}
	return encode(ERC20ABI, "approve", nil, spenderAddr, amt)
}

// BalanceOfCallData 只读调用, 不需要 value
func BalanceOfCallData(account string) ([]byte, error) {
	addr, err := parseAddress("account", account)
	if err != nil {
		return nil, err
	}
	return ERC20ABI.Pack("balanceOf", addr)
}
