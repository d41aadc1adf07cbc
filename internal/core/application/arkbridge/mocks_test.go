package arkbridge_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

// **** Chain client ****

type mockChainClient struct {
	mock.Mock
}

func (m *mockChainClient) GetWallet(address string) (*chain.WalletInfo, error) {
	args := m.Called(address)

	var res *chain.WalletInfo
	if a := args.Get(0); a != nil {
		res = a.(*chain.WalletInfo)
	}
	return res, args.Error(1)
}

func (m *mockChainClient) GetTransactions(address string, sinceEpoch int64) ([]chain.Tx, error) {
	args := m.Called(address, sinceEpoch)

	var res []chain.Tx
	if a := args.Get(0); a != nil {
		res = a.([]chain.Tx)
	}
	return res, args.Error(1)
}

func (m *mockChainClient) Broadcast(signedPayload []byte) (string, error) {
	args := m.Called(signedPayload)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockChainClient) GetFeeEstimates() (*chain.FeeEstimates, error) {
	args := m.Called()

	var res *chain.FeeEstimates
	if a := args.Get(0); a != nil {
		res = a.(*chain.FeeEstimates)
	}
	return res, args.Error(1)
}

// **** Signer ****

type mockSigner struct {
	mock.Mock
}

func (m *mockSigner) DeriveAddress(path string) (string, error) {
	args := m.Called(path)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockSigner) DerivePublicKey(path string) ([]byte, error) {
	args := m.Called(path)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockSigner) Sign(path string, payload []byte) ([]byte, error) {
	args := m.Called(path, payload)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

// **** Chain tx ****

// fakeTx is a plain chain.Tx fixture.
type fakeTx struct {
	hash          string
	blockHash     string
	epoch         int64
	sender        string
	recipient     string
	amount        decimal.Decimal
	fee           decimal.Decimal
	confirmations uint64
	date          time.Time
	extra         map[string]string
}

func (t fakeTx) Hash() string            { return t.hash }
func (t fakeTx) BlockHash() string       { return t.blockHash }
func (t fakeTx) Epoch() int64            { return t.epoch }
func (t fakeTx) Sender() string          { return t.sender }
func (t fakeTx) Recipient() string       { return t.recipient }
func (t fakeTx) Amount() decimal.Decimal { return t.amount }
func (t fakeTx) Fee() decimal.Decimal    { return t.fee }
func (t fakeTx) Confirmations() uint64   { return t.confirmations }
func (t fakeTx) Date() time.Time         { return t.date }
func (t fakeTx) Extra() map[string]string {
	if t.extra == nil {
		return map[string]string{}
	}
	return t.extra
}
