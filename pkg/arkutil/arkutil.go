package arkutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// MainnetVersion is the base58check version byte of ark mainnet addresses.
const MainnetVersion byte = 0x17

var (
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is not a valid base58check string")
	// ErrAddressWrongNetwork ...
	ErrAddressWrongNetwork = errors.New("address version does not match the network")
	// ErrInvalidPublicKey ...
	ErrInvalidPublicKey = errors.New("public key must be 33 bytes in compressed format")
)

// AddressFromPublicKey returns the base58check address of a compressed
// public key for the network identified by the given version byte.
func AddressFromPublicKey(pubKey []byte, version byte) (string, error) {
	if len(pubKey) != 33 {
		return "", ErrInvalidPublicKey
	}

	hasher := ripemd160.New()
	hasher.Write(pubKey)
	return base58.CheckEncode(hasher.Sum(nil), version), nil
}

// ValidateAddress checks that the given address is a well-formed base58check
// string carrying the expected network version byte.
func ValidateAddress(address string, version byte) error {
	payload, decodedVersion, err := base58.CheckDecode(address)
	if err != nil {
		return ErrInvalidAddress
	}
	if len(payload) != ripemd160.Size {
		return ErrInvalidAddress
	}
	if decodedVersion != version {
		return ErrAddressWrongNetwork
	}
	return nil
}

// TxIDFromBytes returns the tx hash of a fully serialized transaction
// payload, which in the ark protocol is the hex encoded sha256 of its bytes.
func TxIDFromBytes(serialized []byte) string {
	hash := sha256.Sum256(serialized)
	return hex.EncodeToString(hash[:])
}
