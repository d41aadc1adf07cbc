package device

import "errors"

var (
	// ErrSignatureRejected is returned when the user refuses the signature
	// request on the device.
	ErrSignatureRejected = errors.New("signature request rejected on device")
	// ErrAppNotOpen ...
	ErrAppNotOpen = errors.New("required app is not open on device")
	// ErrInvalidResponse ...
	ErrInvalidResponse = errors.New("invalid response from device")
)

// Transport moves raw APDU frames to and from a hardware device session.
// Implementations are not required to be safe for concurrent use; adapters
// built on top of a Transport must serialize their exchanges.
type Transport interface {
	Exchange(apdu []byte) ([]byte, error)
	Close() error
}

// Signer derives addresses and signs transaction payloads for a given
// derivation path. It is the only collaborator allowed to touch key material.
type Signer interface {
	// DeriveAddress returns the address for the key at the given path.
	DeriveAddress(path string) (string, error)
	// DerivePublicKey returns the compressed public key at the given path.
	DerivePublicKey(path string) ([]byte, error)
	// Sign returns the signature of the given payload with the key at the
	// given path. It fails with ErrSignatureRejected if the request is
	// denied on the device.
	Sign(path string, payload []byte) ([]byte, error)
}
