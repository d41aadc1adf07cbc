package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/orbit-wallet/wallet-daemon/config"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain/arkio"
)

var fees = cli.Command{
	Name:  "fees",
	Usage: "show the transfer fee estimates of the chain endpoint",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "chain API endpoint, defaults to the configured one",
		},
	},
	Action: feesAction,
}

func feesAction(ctx *cli.Context) error {
	endpoint := ctx.String("endpoint")
	if endpoint == "" {
		endpoint = config.GetString(config.ChainEndpointKey)
	}

	client, err := arkio.NewService(endpoint)
	if err != nil {
		return err
	}
	estimates, err := client.GetFeeEstimates()
	if err != nil {
		return err
	}

	fmt.Printf("min\t%s\n", estimates.Min)
	fmt.Printf("avg\t%s\n", estimates.Avg)
	fmt.Printf("max\t%s\n", estimates.Max)
	return nil
}
