package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "show the balance of every saved account",
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
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
		fmt.Printf(
			"%s\t%s\t%s %s\tpending=%d\n",
			account.ID, account.Name, account.Balance,
			account.Unit.Code, len(account.PendingOperations),
		)
	}
	return nil
}
