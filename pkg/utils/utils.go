package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// IsUnixSeconds 检查时间戳是否为秒级
func IsUnixSeconds(ts int64) bool {
	// 1970-01-01 到 2100-01-01
	const maxUnix = 4_102_444_800
	return ts >= 0 && ts < maxUnix
}

// ChecksumAddress 将 EVM 地址转换为 EIP-55 Checksum 格式, 非法地址原样返回
func ChecksumAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if !common.IsHexAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}

// AdjustDecimals 调整精度显示
func AdjustDecimals(value *big.Int, decimals uint8) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -int32(decimals))
}

// FormatUnits wei -> 带精度字符串
func FormatUnits(amount *big.Int, decimals uint8) string {
	return AdjustDecimals(amount, decimals).StringFixed(int32(decimals))
}

// ParseUnits 带精度字符串 -> wei, 超出精度的小数位报错
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("parse amount %q: negative", amount)
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("parse amount %q: more than %d decimals", amount, decimals)
	}
	return scaled.BigInt(), nil
}
