package model

import "strings"

// NullAddress 未选择地址时的占位值, subgraph 的 Bytes!/String! 参数不能为 null
const NullAddress = "0x0000000000000000000000000000000000000000"

// AddressOrSentinel 空地址替换为 NullAddress, 其余统一小写 (subgraph Bytes id 为小写)
func AddressOrSentinel(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return NullAddress
	}
	return strings.ToLower(addr)
}

func IsSentinel(addr string) bool {
	return strings.EqualFold(strings.TrimSpace(addr), NullAddress)
}

// CompositeID 组装 Investor / Manager 的 id: <fund>-<participant>, 十六进制部分大写, 保留 0x 前缀
func CompositeID(fund, participant string) string {
	return upperHex(AddressOrSentinel(fund)) + "-" + upperHex(AddressOrSentinel(participant))
}

func upperHex(addr string) string {
	body := addr
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		body = body[2:]
	}
	return "0x" + strings.ToUpper(body)
}
