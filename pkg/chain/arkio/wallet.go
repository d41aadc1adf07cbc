package arkio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

const txPageSize = 100

func (a *arkio) GetWallet(address string) (*chain.WalletInfo, error) {
	url := fmt.Sprintf("%s/api/wallets/%s", a.apiURL, address)
	status, resp, err := a.makeRequest("GET", url, "", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, chain.ErrWalletNotFound
	}
	if status != http.StatusOK {
		return nil, errors.New(resp)
	}

	return parseWallet(resp)
}

func (a *arkio) GetTransactions(address string, sinceEpoch int64) ([]chain.Tx, error) {
	url := fmt.Sprintf(
		"%s/api/wallets/%s/transactions?limit=%d&orderBy=timestamp.epoch:desc",
		a.apiURL, address, txPageSize,
	)
	if sinceEpoch > 0 {
		url = fmt.Sprintf("%s&timestamp.from=%d", url, sinceEpoch)
	}

	status, resp, err := a.makeRequest("GET", url, "", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, chain.ErrWalletNotFound
	}
	if status != http.StatusOK {
		return nil, errors.New(resp)
	}

	return parseTransactions(resp)
}

func (a *arkio) Broadcast(signedPayload []byte) (string, error) {
	url := fmt.Sprintf("%s/api/transactions", a.apiURL)
	body := fmt.Sprintf(`{"transactions":[%s]}`, signedPayload)
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	status, resp, err := a.makeRequest("POST", url, body, headers)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", errors.New(resp)
	}

	res := broadcastResponse{}
	if err := json.Unmarshal([]byte(resp), &res); err != nil {
		return "", fmt.Errorf("invalid broadcast JSON")
	}
	if len(res.Data.Invalid) > 0 {
		return "", fmt.Errorf("transaction %s rejected by the network", res.Data.Invalid[0])
	}
	if len(res.Data.Accept) <= 0 {
		return "", fmt.Errorf("transaction not accepted by the network")
	}

	return res.Data.Accept[0], nil
}

func (a *arkio) GetFeeEstimates() (*chain.FeeEstimates, error) {
	url := fmt.Sprintf("%s/api/node/fees?days=7", a.apiURL)
	status, resp, err := a.makeRequest("GET", url, "", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.New(resp)
	}

	return parseFeeEstimates(resp)
}
