package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawDecimal 是 subgraph 返回的字符串数值 (BigDecimal / BigInt / Int / Boolean).
// 所有解析都走这里, 空串或非法值统一解析为 0 / false.
type RawDecimal string

// UnmarshalJSON 同时接受 "1.5" 与 1.5 / true 两种写法, null 解析为空串
func (r *RawDecimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*r = RawDecimal(s)
		return nil
	}
	*r = RawDecimal(b)
	return nil
}

// Decimal 精确解析, ok=false 表示空值或非法值
func (r RawDecimal) Decimal() (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(r))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Float 展示用, 精度有损
func (r RawDecimal) Float() float64 {
	d, _ := r.Decimal()
	return d.InexactFloat64()
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Int 截断小数部分, 超出 int64 的值钳到边界
func (r RawDecimal) Int() int64 {
	d, _ := r.Decimal()
	d = d.Truncate(0)
	switch {
	case d.GreaterThan(maxInt64):
		return math.MaxInt64
	case d.LessThan(minInt64):
		return math.MinInt64
	}
	return d.IntPart()
}

// IntString 截断后的完整十进制整数, uint256 (tokenId 等) 用这个
func (r RawDecimal) IntString() string {
	d, _ := r.Decimal()
	return d.Truncate(0).String()
}

func (r RawDecimal) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(string(r))) {
	case "true", "1":
		return true
	}
	return false
}

// Floats 逐元素解析, 保持顺序和长度
func Floats(raw []RawDecimal) []float64 {
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = r.Float()
	}
	return out
}

func Ints(raw []RawDecimal) []int64 {
	out := make([]int64, len(raw))
	for i, r := range raw {
		out[i] = r.Int()
	}
	return out
}

func strs(raw []string) []string {
	out := make([]string, len(raw))
	copy(out, raw)
	return out
}
