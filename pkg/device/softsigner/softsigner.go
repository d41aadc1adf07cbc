// Package softsigner implements the device.Signer interface in software from
// a bip39 mnemonic. It backs the mock bridge and lets integration tests run
// the full sign flow without hardware attached.
package softsigner

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

var (
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("signing mnemonic is invalid")
)

type softSigner struct {
	masterKey      *bip32.Key
	addressVersion byte
}

// NewSignerOpts is the struct given to the NewSigner method.
type NewSignerOpts struct {
	Mnemonic       []string
	AddressVersion byte
}

func (o NewSignerOpts) validate() error {
	if !bip39.IsMnemonicValid(strings.Join(o.Mnemonic, " ")) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewSigner returns a software device.Signer deriving keys from the given
// mnemonic.
func NewSigner(opts NewSignerOpts) (device.Signer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(strings.Join(opts.Mnemonic, " "), "")
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, err
	}

	return &softSigner{
		masterKey:      masterKey,
		addressVersion: opts.AddressVersion,
	}, nil
}

func (s *softSigner) DeriveAddress(path string) (string, error) {
	privKey, err := s.deriveKey(path)
	if err != nil {
		return "", err
	}
	pubKey := privKey.PubKey().SerializeCompressed()
	return arkutil.AddressFromPublicKey(pubKey, s.addressVersion)
}

func (s *softSigner) DerivePublicKey(path string) ([]byte, error) {
	privKey, err := s.deriveKey(path)
	if err != nil {
		return nil, err
	}
	return privKey.PubKey().SerializeCompressed(), nil
}

func (s *softSigner) Sign(path string, payload []byte) ([]byte, error) {
	privKey, err := s.deriveKey(path)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(payload)
	signature := ecdsa.Sign(privKey, hash[:])
	return signature.Serialize(), nil
}

func (s *softSigner) deriveKey(path string) (*secp256k1.PrivateKey, error) {
	bip32Path, err := device.ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	key := s.masterKey
	for _, component := range bip32Path {
		key, err = key.NewChildKey(component)
		if err != nil {
			return nil, err
		}
	}

	return secp256k1.PrivKeyFromBytes(key.Key), nil
}
