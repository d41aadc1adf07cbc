package arkio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

/**** WALLET ****/

type walletData struct {
	Address   string      `json:"address"`
	PublicKey string      `json:"publicKey"`
	Balance   json.Number `json:"balance"`
	Nonce     json.Number `json:"nonce"`
}

type walletResponse struct {
	Data walletData `json:"data"`
}

func parseWallet(body string) (*chain.WalletInfo, error) {
	res := walletResponse{}
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("invalid wallet JSON")
	}

	balance, err := decimal.NewFromString(res.Data.Balance.String())
	if err != nil {
		return nil, fmt.Errorf("invalid balance %s for address %s", res.Data.Balance, res.Data.Address)
	}

	nonce, _ := res.Data.Nonce.Int64()

	return &chain.WalletInfo{
		Address:   res.Data.Address,
		PublicKey: res.Data.PublicKey,
		Balance:   balance,
		Nonce:     uint64(nonce),
	}, nil
}

/**** TRANSACTION ****/

type txTimestamp struct {
	Epoch int64  `json:"epoch"`
	Unix  int64  `json:"unix"`
	Human string `json:"human"`
}

// tx is the implementation of the chain.Tx interface for the ark REST API.
type tx struct {
	TxID            string      `json:"id"`
	BlockID         string      `json:"blockId"`
	TxVersion       int         `json:"version"`
	TxType          int         `json:"type"`
	TxAmount        json.Number `json:"amount"`
	TxFee           json.Number `json:"fee"`
	TxSender        string      `json:"sender"`
	TxRecipient     string      `json:"recipient"`
	TxVendorField   string      `json:"vendorField"`
	TxConfirmations uint64      `json:"confirmations"`
	Timestamp       txTimestamp `json:"timestamp"`
}

type txListResponse struct {
	Data []tx `json:"data"`
}

func parseTransactions(body string) ([]chain.Tx, error) {
	res := txListResponse{}
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("invalid tx list JSON")
	}

	txs := make([]chain.Tx, 0, len(res.Data))
	for i := range res.Data {
		txs = append(txs, &res.Data[i])
	}
	return txs, nil
}

func (t *tx) Hash() string {
	return t.TxID
}

func (t *tx) BlockHash() string {
	return t.BlockID
}

func (t *tx) Epoch() int64 {
	return t.Timestamp.Epoch
}

func (t *tx) Sender() string {
	return t.TxSender
}

func (t *tx) Recipient() string {
	return t.TxRecipient
}

func (t *tx) Amount() decimal.Decimal {
	amount, err := decimal.NewFromString(t.TxAmount.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func (t *tx) Fee() decimal.Decimal {
	fee, err := decimal.NewFromString(t.TxFee.String())
	if err != nil {
		return decimal.Zero
	}
	return fee
}

func (t *tx) Confirmations() uint64 {
	return t.TxConfirmations
}

func (t *tx) Date() time.Time {
	return time.Unix(t.Timestamp.Unix, 0).UTC()
}

func (t *tx) Extra() map[string]string {
	extra := map[string]string{}
	if t.TxVendorField != "" {
		extra["vendorField"] = t.TxVendorField
	}
	return extra
}

/**** FEES ****/

type feeStats struct {
	Type int         `json:"type"`
	Min  json.Number `json:"min"`
	Avg  json.Number `json:"avg"`
	Max  json.Number `json:"max"`
}

type feesResponse struct {
	Data []feeStats `json:"data"`
}

/**** BROADCAST ****/

type broadcastData struct {
	Accept  []string `json:"accept"`
	Invalid []string `json:"invalid"`
}

type broadcastResponse struct {
	Data broadcastData `json:"data"`
}
