package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/orbit-wallet/wallet-daemon/config"
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain/arkio"
)

var send = cli.Command{
	Name:  "send",
	Usage: "build, sign and broadcast a transfer from a saved account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "id of the sending account",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "recipient address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "amount to send, in the chain base unit",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "fee",
			Usage: "fee in the chain base unit, defaults to the network average",
		},
		&cli.StringFlag{
			Name:  "memo",
			Usage: "optional vendor field attached to the transfer",
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "id of the signing device",
			Value: "default",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	svc, err := getServices()
	if err != nil {
		return err
	}
	defer svc.cleanup()

	account, err := svc.repository.GetAccount(context.Background(), ctx.String("account"))
	if err != nil {
		return err
	}

	bridge, err := svc.registry.GetAccountBridge(*account)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(ctx.String("amount"))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	fee, err := resolveFee(ctx, *account)
	if err != nil {
		return err
	}

	tx := bridge.CreateTransaction(*account)
	tx = bridge.EditTransactionRecipient(*account, tx, ctx.String("to"))
	tx = bridge.EditTransactionAmount(*account, tx, amount)
	tx = bridge.EditTransactionFee(*account, tx, fee)
	if memo := ctx.String("memo"); memo != "" {
		tx = bridge.EditTransactionExtra(*account, tx, "vendorField", memo)
	}

	if warning := bridge.GetRecipientWarning(*account, ctx.String("to")); warning != nil {
		fmt.Printf("warning: %v\n", warning)
	}
	if err := bridge.CheckValidTransaction(*account, tx); err != nil {
		return err
	}
	fmt.Printf("total spent: %s\n", bridge.GetTotalSpent(*account, tx))

	for event := range bridge.SignAndBroadcast(
		context.Background(), *account, tx, ctx.String("device"),
	) {
		if event.Err != nil {
			return event.Err
		}
		switch event.Type {
		case ports.SignEventSigned:
			fmt.Printf("signed: %s\n", event.TxID)
		case ports.SignEventBroadcast:
			fmt.Printf("broadcast: %s\n", event.TxID)
			if event.PendingOperation != nil {
				pending := *event.PendingOperation
				if err := svc.repository.UpdateAccount(
					context.Background(), account.ID, appendPending(pending),
				); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// resolveFee parses the fee flag or falls back to the average fee advertised
// by the chain endpoint of the account.
func resolveFee(ctx *cli.Context, account domain.Account) (decimal.Decimal, error) {
	if raw := ctx.String("fee"); raw != "" {
		fee, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid fee: %w", err)
		}
		return fee, nil
	}

	endpoint := account.EndpointConfig
	if endpoint == "" {
		endpoint = config.GetString(config.ChainEndpointKey)
	}
	client, err := arkio.NewService(endpoint)
	if err != nil {
		return decimal.Zero, err
	}
	estimates, err := client.GetFeeEstimates()
	if err != nil {
		return decimal.Zero, err
	}
	return estimates.Avg, nil
}

func appendPending(operation domain.Operation) domain.Patch {
	return func(a domain.Account) domain.Account {
		a.PendingOperations = append(a.PendingOperations, operation)
		return a
	}
}
