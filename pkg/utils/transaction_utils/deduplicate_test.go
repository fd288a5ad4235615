package transactionutils

import (
	"testing"

	"fund-dashboard/internal/dashboard/model"

	"github.com/stretchr/testify/assert"
)

func TestMergeByTimestamp(t *testing.T) {
	deposits := []model.Transaction{
		{ID: "a", Timestamp: 100, Type: model.TxDeposit},
		{ID: "b", Timestamp: 300, Type: model.TxWithdraw},
	}
	swaps := []model.Transaction{
		{ID: "c", Timestamp: 200, Type: model.TxSwap},
		{ID: "a", Timestamp: 100, Type: model.TxSwap},
	}

	merged := MergeByTimestamp(deposits, swaps, nil)
	ids := make([]string, 0, len(merged))
	for _, tx := range merged {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	assert.Equal(t, model.TxDeposit, merged[2].Type, "first occurrence wins")
}

func TestDeduplicateTransactions_Empty(t *testing.T) {
	assert.Empty(t, DeduplicateTransactions(nil))
	assert.NotNil(t, MergeByTimestamp())
}
