package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/orbit-wallet/wallet-daemon/config"
)

var scan = cli.Command{
	Name:  "scan",
	Usage: "discover accounts on the signing device and save them",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "currency",
			Usage: "currency id to scan accounts for",
			Value: "ark",
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "id of the signing device",
			Value: "default",
		},
	},
	Action: scanAction,
}

func scanAction(ctx *cli.Context) error {
	currency, ok := config.GetCurrency(ctx.String("currency"))
	if !ok {
		return fmt.Errorf("unknown currency %s", ctx.String("currency"))
	}

	svc, err := getServices()
	if err != nil {
		return err
	}
	defer svc.cleanup()

	bridge, err := svc.registry.GetCurrencyBridge(currency)
	if err != nil {
		return err
	}

	for event := range bridge.ScanAccountsOnDevice(context.Background(), currency, ctx.String("device")) {
		if event.Err != nil {
			return event.Err
		}
		account := *event.Account
		if err := svc.repository.SaveAccount(context.Background(), account); err != nil {
			return err
		}
		fmt.Printf(
			"%s\t%s\tbalance=%s\toperations=%d\n",
			account.ID, account.Name, account.Balance, len(account.Operations),
		)
	}
	return nil
}
