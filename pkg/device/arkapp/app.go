// Package arkapp talks to the ark app running on a hardware device. It
// implements the device.Signer interface on top of a raw APDU transport,
// serializing exchanges since the device handles one request at a time.
package arkapp

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

const (
	claArk           = 0xe0
	insGetPublicKey  = 0x02
	insSignTx        = 0x04
	p1NonConfirm     = 0x00
	p1More           = 0x01
	p2NoChaincode    = 0x40
	maxChunkSize     = 255
	statusOK         = 0x9000
	statusRejected   = 0x6985
	statusAppMissing = 0x6e00
)

type app struct {
	transport      device.Transport
	addressVersion byte

	// one APDU exchange at a time per device session
	mtx sync.Mutex
}

// NewSigner returns a device.Signer that drives the ark app over the given
// transport. addressVersion selects the network of derived addresses.
func NewSigner(transport device.Transport, addressVersion byte) device.Signer {
	return &app{transport: transport, addressVersion: addressVersion}
}

func (a *app) DeriveAddress(path string) (string, error) {
	pubKey, err := a.getPublicKey(path)
	if err != nil {
		return "", err
	}
	return arkutil.AddressFromPublicKey(pubKey, a.addressVersion)
}

func (a *app) DerivePublicKey(path string) ([]byte, error) {
	return a.getPublicKey(path)
}

func (a *app) Sign(path string, payload []byte) ([]byte, error) {
	bip32Path, err := device.ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	a.mtx.Lock()
	defer a.mtx.Unlock()

	chunks := splitSignPayload(serializePath(bip32Path), payload)
	var response []byte
	for i, chunk := range chunks {
		p1 := byte(p1NonConfirm)
		if i > 0 {
			p1 = p1More
		}
		apdu := buildAPDU(insSignTx, p1, 0x00, chunk)
		response, err = a.exchange(apdu)
		if err != nil {
			return nil, err
		}
	}

	if len(response) <= 0 {
		return nil, device.ErrInvalidResponse
	}
	return response, nil
}

func (a *app) getPublicKey(path string) ([]byte, error) {
	bip32Path, err := device.ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	a.mtx.Lock()
	defer a.mtx.Unlock()

	apdu := buildAPDU(insGetPublicKey, p1NonConfirm, p2NoChaincode, serializePath(bip32Path))
	response, err := a.exchange(apdu)
	if err != nil {
		return nil, err
	}

	if len(response) < 1 {
		return nil, device.ErrInvalidResponse
	}
	keyLen := int(response[0])
	if len(response) < 1+keyLen {
		return nil, device.ErrInvalidResponse
	}
	return response[1 : 1+keyLen], nil
}

// exchange performs one APDU round-trip and strips the trailing status word.
func (a *app) exchange(apdu []byte) ([]byte, error) {
	response, err := a.transport.Exchange(apdu)
	if err != nil {
		return nil, err
	}
	if len(response) < 2 {
		return nil, device.ErrInvalidResponse
	}

	sw := binary.BigEndian.Uint16(response[len(response)-2:])
	switch sw {
	case statusOK:
		return response[:len(response)-2], nil
	case statusRejected:
		return nil, device.ErrSignatureRejected
	case statusAppMissing:
		return nil, device.ErrAppNotOpen
	default:
		return nil, fmt.Errorf("device returned status %#x", sw)
	}
}

func buildAPDU(ins, p1, p2 byte, data []byte) []byte {
	apdu := []byte{claArk, ins, p1, p2, byte(len(data))}
	return append(apdu, data...)
}

// serializePath encodes a bip32 path as count byte plus big-endian components.
func serializePath(path device.DerivationPath) []byte {
	buf := make([]byte, 1+4*len(path))
	buf[0] = byte(len(path))
	for i, component := range path {
		binary.BigEndian.PutUint32(buf[1+4*i:], component)
	}
	return buf
}

// splitSignPayload prepends the serialized path to the tx bytes and splits
// the whole into transport-sized chunks.
func splitSignPayload(serializedPath, payload []byte) [][]byte {
	full := append(serializedPath, payload...)
	chunks := make([][]byte, 0, len(full)/maxChunkSize+1)
	for len(full) > maxChunkSize {
		chunks = append(chunks, full[:maxChunkSize])
		full = full[maxChunkSize:]
	}
	return append(chunks, full)
}
