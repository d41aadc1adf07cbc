package arkbridge

import (
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

// txToOperation converts a raw chain record into an immutable operation of
// the given account. Outgoing operations are valued fee-inclusive.
func txToOperation(account domain.Account, chainTx chain.Tx) domain.Operation {
	opType := domain.OperationTypeIn
	if chainTx.Sender() == account.FreshAddress {
		opType = domain.OperationTypeOut
	}

	value := chainTx.Amount()
	if opType == domain.OperationTypeOut {
		value = value.Add(chainTx.Fee())
	}

	return domain.Operation{
		ID:                        domain.NewOperationID(account.ID, chainTx.Hash(), opType),
		Hash:                      chainTx.Hash(),
		AccountID:                 account.ID,
		Type:                      opType,
		Value:                     value,
		Fee:                       chainTx.Fee(),
		BlockHash:                 chainTx.BlockHash(),
		BlockHeight:               chainTx.Epoch(),
		Senders:                   []string{chainTx.Sender()},
		Recipients:                []string{chainTx.Recipient()},
		Date:                      chainTx.Date(),
		TransactionSequenceNumber: chainTx.Confirmations(),
		Extra:                     chainTx.Extra(),
	}
}
