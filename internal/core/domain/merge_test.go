package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
)

var baseDate = time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

func newOp(hash string, opType domain.OperationType, dateOffset time.Duration, seq uint64) domain.Operation {
	return domain.Operation{
		ID:                        domain.NewOperationID(testAccountID, hash, opType),
		Hash:                      hash,
		AccountID:                 testAccountID,
		Type:                      opType,
		Value:                     decimal.NewFromInt(100),
		Date:                      baseDate.Add(dateOffset),
		TransactionSequenceNumber: seq,
	}
}

func TestMergeOperations(t *testing.T) {
	t.Parallel()

	opX := newOp("xxxx", domain.OperationTypeIn, 0, 3)
	opY := newOp("yyyy", domain.OperationTypeIn, time.Hour, 4)

	merged := domain.MergeOperations(
		[]domain.Operation{opX},
		[]domain.Operation{opX, opY},
	)
	require.Len(t, merged, 2)
	require.Equal(t, opY.ID, merged[0].ID)
	require.Equal(t, opX.ID, merged[1].ID)
}

func TestMergeOperationsExistingWins(t *testing.T) {
	t.Parallel()

	existing := newOp("xxxx", domain.OperationTypeIn, 0, 3)
	existing.Extra = map[string]string{"vendorField": "kept"}
	incoming := newOp("xxxx", domain.OperationTypeIn, 0, 3)

	merged := domain.MergeOperations(
		[]domain.Operation{existing},
		[]domain.Operation{incoming},
	)
	require.Len(t, merged, 1)
	require.Equal(t, "kept", merged[0].Extra["vendorField"])
}

func TestMergeOperationsSelfSend(t *testing.T) {
	t.Parallel()

	// A self-send yields two distinct operations sharing a hash.
	opIn := newOp("zzzz", domain.OperationTypeIn, 0, 5)
	opOut := newOp("zzzz", domain.OperationTypeOut, 0, 5)

	merged := domain.MergeOperations(nil, []domain.Operation{opIn, opOut})
	require.Len(t, merged, 2)
	require.Equal(t, opIn.ID, merged[0].ID)
	require.Equal(t, opOut.ID, merged[1].ID)
}

func TestMergeOperationsIdempotent(t *testing.T) {
	t.Parallel()

	incoming := []domain.Operation{
		newOp("aaaa", domain.OperationTypeIn, 2*time.Hour, 3),
		newOp("bbbb", domain.OperationTypeOut, time.Hour, 2),
		newOp("cccc", domain.OperationTypeIn, 0, 1),
	}

	once := domain.MergeOperations(nil, incoming)
	twice := domain.MergeOperations(once, incoming)
	require.Equal(t, once, twice)
}

func TestMergeOperationsPartitionIndependent(t *testing.T) {
	t.Parallel()

	existing := []domain.Operation{
		newOp("aaaa", domain.OperationTypeIn, 0, 1),
	}
	// Disjoint incoming batches, with a date tie across the split so the
	// stable ordering is observable.
	batchA := []domain.Operation{
		newOp("bbbb", domain.OperationTypeOut, time.Hour, 2),
		newOp("cccc", domain.OperationTypeIn, 2*time.Hour, 3),
	}
	batchB := []domain.Operation{
		newOp("dddd", domain.OperationTypeIn, time.Hour, 4),
		newOp("eeee", domain.OperationTypeOut, 3*time.Hour, 5),
	}

	oneShot := domain.MergeOperations(existing, append(append([]domain.Operation{}, batchA...), batchB...))
	sequential := domain.MergeOperations(domain.MergeOperations(existing, batchA), batchB)

	require.Equal(t, oneShot, sequential)
	require.Len(t, oneShot, 5)
	for i := 1; i < len(oneShot); i++ {
		require.False(t, oneShot[i].Date.After(oneShot[i-1].Date))
	}
}

func TestMergeOperationsSortsDescending(t *testing.T) {
	t.Parallel()

	merged := domain.MergeOperations(
		[]domain.Operation{newOp("bbbb", domain.OperationTypeIn, time.Hour, 2)},
		[]domain.Operation{
			newOp("cccc", domain.OperationTypeIn, 3*time.Hour, 4),
			newOp("aaaa", domain.OperationTypeIn, 0, 1),
		},
	)
	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		require.False(t, merged[i].Date.After(merged[i-1].Date))
	}
}

func TestReconcilePending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pending   []domain.Operation
		confirmed []domain.Operation
		expected  []string
	}{
		{
			name: "confirmed_hash_dropped",
			pending: []domain.Operation{
				newOp("aaaa", domain.OperationTypeOut, 0, 5),
			},
			confirmed: []domain.Operation{
				newOp("aaaa", domain.OperationTypeOut, 0, 2),
			},
			expected: []string{},
		},
		{
			name: "superseded_sequence_dropped",
			pending: []domain.Operation{
				newOp("bbbb", domain.OperationTypeOut, 0, 2),
			},
			confirmed: []domain.Operation{
				newOp("aaaa", domain.OperationTypeOut, time.Hour, 3),
			},
			expected: []string{},
		},
		{
			name: "newer_sequence_kept",
			pending: []domain.Operation{
				newOp("bbbb", domain.OperationTypeOut, 2*time.Hour, 4),
			},
			confirmed: []domain.Operation{
				newOp("aaaa", domain.OperationTypeOut, time.Hour, 3),
			},
			expected: []string{"bbbb"},
		},
		{
			name: "no_confirmed_keeps_all",
			pending: []domain.Operation{
				newOp("aaaa", domain.OperationTypeOut, 0, 1),
				newOp("bbbb", domain.OperationTypeOut, time.Hour, 2),
			},
			confirmed: nil,
			expected:  []string{"aaaa", "bbbb"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kept := domain.ReconcilePending(tt.pending, tt.confirmed)
			hashes := make([]string, 0, len(kept))
			for _, op := range kept {
				hashes = append(hashes, op.Hash)
			}
			require.Equal(t, tt.expected, hashes)
		})
	}
}
