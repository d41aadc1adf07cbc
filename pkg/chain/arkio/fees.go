package arkio

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

// transferType is the tx type of a plain transfer in the ark protocol.
const transferType = 0

func parseFeeEstimates(body string) (*chain.FeeEstimates, error) {
	res := feesResponse{}
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("invalid fees JSON")
	}

	for _, stats := range res.Data {
		if stats.Type != transferType {
			continue
		}

		min, err := decimal.NewFromString(stats.Min.String())
		if err != nil {
			return nil, fmt.Errorf("invalid min fee %s", stats.Min)
		}
		avg, err := decimal.NewFromString(stats.Avg.String())
		if err != nil {
			return nil, fmt.Errorf("invalid avg fee %s", stats.Avg)
		}
		max, err := decimal.NewFromString(stats.Max.String())
		if err != nil {
			return nil, fmt.Errorf("invalid max fee %s", stats.Max)
		}

		return &chain.FeeEstimates{Min: min, Avg: avg, Max: max}, nil
	}

	return nil, fmt.Errorf("no fee estimates for transfer transactions")
}
