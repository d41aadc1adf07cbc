package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCurrencyNotSupported is returned when no bridge is registered for a
	// currency family.
	ErrCurrencyNotSupported = errors.New("currency not supported")
	// ErrInvalidRecipient ...
	ErrInvalidRecipient = errors.New("recipient is not a valid address")
	// ErrDestinationIsSource is a distinguished kind of invalid recipient
	// raised when the destination equals the account's fresh address.
	ErrDestinationIsSource = fmt.Errorf("%w: destination is also the source", ErrInvalidRecipient)
	// ErrFeeNotLoaded ...
	ErrFeeNotLoaded = errors.New("transaction fees have not been loaded")
	// ErrAmountRequired ...
	ErrAmountRequired = errors.New("transaction amount must be greater than zero")
	// ErrNotEnoughBalance ...
	ErrNotEnoughBalance = errors.New("not enough balance to cover amount and fees")
	// ErrOperationNotSupported is returned by bridges for capabilities not
	// yet integrated for their currency family.
	ErrOperationNotSupported = errors.New("operation not supported by this bridge")
	// ErrMalformedAccountID ...
	ErrMalformedAccountID = errors.New("account id is malformed")
)
