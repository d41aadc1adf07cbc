package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
)

// NewAccountStore opens (or creates if not exists) the badger store holding
// the accounts on disk. An empty datadir opens an in-memory store.
func NewAccountStore(datadir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := datadir == ""

	opts := badger.DefaultOptions(datadir)
	opts.Logger = logger
	opts.InMemory = isInMemory

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, fmt.Errorf("opening account db: %w", err)
	}
	return store, nil
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	if _, err := buff.Write(data); err != nil {
		return err
	}
	return de.Decode(value)
}
