// Package calldata builds ABI-encoded call payloads for the fund, factory, staking
// and ERC-20 contracts. Builders are pure: identical inputs give byte-identical output.
package calldata

import (
	"bytes"
	"embed"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

//go:embed abi/*.json
var abiFS embed.FS

var (
	FactoryABI = mustLoadABI("abi/factory.json")
	FundABI    = mustLoadABI("abi/fund.json")
	StakingABI = mustLoadABI("abi/staking.json")
	ERC20ABI   = mustLoadABI("abi/erc20.json")
)

// MethodParameters 交给钱包签名发送的 {calldata, value}
type MethodParameters struct {
	Calldata string `json:"calldata"`
	Value    string `json:"value"`
}

func mustLoadABI(name string) abi.ABI {
	raw, err := abiFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read abi %s: %v", name, err))
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse abi %s: %v", name, err))
	}
	return parsed
}

// ToHex 偶数长度十六进制, 0 编码为 0x00
func ToHex(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0x00"
	}
	h := v.Text(16)
	if len(h)%2 != 0 {
		h = "0" + h
	}
	return "0x" + h
}

func encode(contract abi.ABI, method string, value *big.Int, args ...interface{}) (MethodParameters, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return MethodParameters{}, fmt.Errorf("encode %s: %w", method, err)
	}
	return MethodParameters{
		Calldata: hexutil.Encode(data),
		Value:    ToHex(value),
	}, nil
}

// parseAddress 非法地址返回错误, 不做静默替换
func parseAddress(field, s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid %s address %q", field, s)
	}
	return common.HexToAddress(s), nil
}

func checkAmount(field string, v *big.Int) (*big.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("%s is required", field)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%s must not be negative: %s", field, v)
	}
	return new(big.Int).Set(v), nil
}

// amountOrZero 可选金额, nil 视为 0
func amountOrZero(field string, v *big.Int) (*big.Int, error) {
	if v == nil {
		return new(big.Int), nil
	}
	return checkAmount(field, v)
}
