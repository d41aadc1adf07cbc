package arkbridge

import (
	"github.com/shopspring/decimal"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
)

// vendorFieldKey is the only extra field supported by ark transfers.
const vendorFieldKey = "vendorField"

// transaction is the immutable ark transfer being edited. Every edit returns
// a new value.
type transaction struct {
	amount      decimal.Decimal
	recipient   string
	fee         *decimal.Decimal
	vendorField string
}

func (t transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t transaction) Recipient() string {
	return t.recipient
}

func (t transaction) Fee() *decimal.Decimal {
	return t.fee
}

func (b *bridge) CreateTransaction(account domain.Account) ports.Transaction {
	return transaction{
		amount:    decimal.Zero,
		recipient: "",
		fee:       nil,
	}
}

func (b *bridge) EditTransactionAmount(
	account domain.Account, tx ports.Transaction, amount decimal.Decimal,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.amount = amount
	return t
}

func (b *bridge) EditTransactionRecipient(
	account domain.Account, tx ports.Transaction, recipient string,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.recipient = recipient
	return t
}

func (b *bridge) EditTransactionFee(
	account domain.Account, tx ports.Transaction, fee decimal.Decimal,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.fee = &fee
	return t
}

func (b *bridge) EditTransactionExtra(
	account domain.Account, tx ports.Transaction, field, value string,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok || field != vendorFieldKey {
		return tx
	}
	t.vendorField = value
	return t
}

func (b *bridge) IsRecipientValid(account domain.Account, recipient string) bool {
	if err := arkutil.ValidateAddress(recipient, b.addressVersion); err != nil {
		return false
	}
	return recipient != account.FreshAddress
}

func (b *bridge) GetRecipientWarning(account domain.Account, recipient string) error {
	if recipient == account.FreshAddress {
		return domain.ErrDestinationIsSource
	}
	return nil
}

func (b *bridge) GetTotalSpent(account domain.Account, tx ports.Transaction) decimal.Decimal {
	fee := decimal.Zero
	if tx.Fee() != nil {
		fee = *tx.Fee()
	}
	return tx.Amount().Add(fee)
}

func (b *bridge) GetMaxAmount(account domain.Account, tx ports.Transaction) decimal.Decimal {
	fee := decimal.Zero
	if tx.Fee() != nil {
		fee = *tx.Fee()
	}
	max := account.Balance.Sub(fee)
	if max.IsNegative() {
		return decimal.Zero
	}
	return max
}

func (b *bridge) CheckValidTransaction(account domain.Account, tx ports.Transaction) error {
	t, ok := tx.(transaction)
	if !ok {
		return domain.ErrOperationNotSupported
	}
	if t.recipient == account.FreshAddress {
		return domain.ErrDestinationIsSource
	}
	if !b.IsRecipientValid(account, t.recipient) {
		return domain.ErrInvalidRecipient
	}
	if t.fee == nil {
		return domain.ErrFeeNotLoaded
	}
	if !t.amount.IsPositive() {
		return domain.ErrAmountRequired
	}
	if b.GetTotalSpent(account, tx).GreaterThan(account.Balance) {
		return domain.ErrNotEnoughBalance
	}
	return nil
}
