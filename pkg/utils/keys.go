package utils

import (
	"fmt"
	"strings"
)

func BlockNumberKey(subgraph string, timestamp int64) string {
	return fmt.Sprintf("fund_dashboard:block:%s:%d", strings.ToLower(subgraph), timestamp)
}

// TimeWindow 向下取整到窗口起点
func TimeWindow(timestamp, window int64) int64 {
	if window <= 0 {
		return timestamp
	}
	return timestamp - (timestamp % window)
}
