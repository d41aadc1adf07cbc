package domain

import "sort"

// MergeOperations combines newly fetched operations with the existing
// history. Incoming duplicates of existing ids are dropped, the result is
// re-sorted descending by date. The sort is stable so operations sharing a
// date keep their relative order.
func MergeOperations(existing, incoming []Operation) []Operation {
	ids := make(map[string]struct{}, len(existing))
	for _, op := range existing {
		ids[op.ID] = struct{}{}
	}

	merged := make([]Operation, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	for _, op := range incoming {
		if _, ok := ids[op.ID]; ok {
			continue
		}
		ids[op.ID] = struct{}{}
		merged = append(merged, op)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}

// ReconcilePending drops every pending operation that has been confirmed or
// superseded. A pending operation is confirmed once its hash appears among
// the confirmed operations; it is superseded once its sequence number is no
// longer strictly greater than the newest confirmed operation's, e.g. after
// a replace-by-fee or a resend with a different hash. confirmed is expected
// sorted descending by date.
func ReconcilePending(pending, confirmed []Operation) []Operation {
	confirmedHashes := make(map[string]struct{}, len(confirmed))
	for _, op := range confirmed {
		confirmedHashes[op.Hash] = struct{}{}
	}

	var lastSequenceNumber uint64
	hasConfirmed := len(confirmed) > 0
	if hasConfirmed {
		lastSequenceNumber = confirmed[0].TransactionSequenceNumber
	}

	kept := make([]Operation, 0, len(pending))
	for _, op := range pending {
		if _, ok := confirmedHashes[op.Hash]; ok {
			continue
		}
		if hasConfirmed && op.TransactionSequenceNumber <= lastSequenceNumber {
			continue
		}
		kept = append(kept, op)
	}
	return kept
}
