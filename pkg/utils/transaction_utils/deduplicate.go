package transactionutils

import (
	"sort"

	"fund-dashboard/internal/dashboard/model"
)

// DeduplicateTransactions 按 id 去重, 保留首次出现的记录
func DeduplicateTransactions(transactions []model.Transaction) []model.Transaction {
	deduplicated := make([]model.Transaction, 0, len(transactions))
	seen := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		if _, ok := seen[tx.ID]; ok {
			continue
		}
		seen[tx.ID] = struct{}{}
		deduplicated = append(deduplicated, tx)
	}
	return deduplicated
}

// MergeByTimestamp 合并多个查询结果, 去重后按时间倒序
func MergeByTimestamp(lists ...[]model.Transaction) []model.Transaction {
	var all []model.Transaction
	for _, l := range lists {
		all = append(all, l...)
	}
	merged := DeduplicateTransactions(all)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})
	return merged
}
