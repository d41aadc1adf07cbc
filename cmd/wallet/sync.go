package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var syncaccounts = cli.Command{
	Name:   "sync",
	Usage:  "synchronize all saved accounts with the chain",
	Action: syncAction,
}

func syncAction(ctx *cli.Context) error {
	svc, err := getServices()
	if err != nil {
		return err
	}
	defer svc.cleanup()

	accounts, err := svc.repository.ListAccounts(context.Background())
	if err != nil {
		return err
	}

	for _, account := range accounts {
		bridge, err := svc.registry.GetAccountBridge(account)
		if err != nil {
			return err
		}

		for event := range bridge.Synchronize(context.Background(), account) {
			if event.Err != nil {
				return fmt.Errorf("syncing %s: %w", account.ID, event.Err)
			}
			if event.Patch == nil {
				continue
			}
			if err := svc.repository.UpdateAccount(context.Background(), account.ID, event.Patch); err != nil {
				return err
			}
		}

		updated, err := svc.repository.GetAccount(context.Background(), account.ID)
		if err != nil {
			return err
		}
		fmt.Printf(
			"%s\tbalance=%s\toperations=%d\tlast sync=%s\n",
			updated.ID, updated.Balance, len(updated.Operations), formatDate(updated.LastSyncDate),
		)
	}
	return nil
}
