package arkbridge

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"
	log "github.com/sirupsen/logrus"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
	"github.com/orbit-wallet/wallet-daemon/pkg/bufferutil"
)

const (
	// transferType is the tx type of a plain transfer in the ark protocol.
	transferType = 0
	// vendorFieldSize is the fixed size of the vendor field in the wire
	// encoding.
	vendorFieldSize = 64
)

// arkEpoch is the network genesis time; wire timestamps count seconds from it.
var arkEpoch = time.Date(2017, 3, 21, 13, 0, 0, 0, time.UTC)

func (b *bridge) SignAndBroadcast(
	ctx context.Context, account domain.Account, tx ports.Transaction, deviceID string,
) <-chan ports.SignEvent {
	events := make(chan ports.SignEvent)

	go func() {
		defer close(events)

		if err := b.CheckValidTransaction(account, tx); err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}
		t := tx.(transaction)

		signer, err := b.signerFactory(deviceID)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}
		client, err := b.chainClient(account.EndpointConfig)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		if ctx.Err() != nil {
			return
		}
		senderPubKey, err := signer.DerivePublicKey(account.FreshAddressPath)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		timestamp := uint32(time.Now().UTC().Sub(arkEpoch) / time.Second)
		signableBytes, err := serializeTransfer(t, senderPubKey, timestamp, nil)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		// Last cancellation point before the device round-trip.
		if ctx.Err() != nil {
			return
		}
		signature, err := signer.Sign(account.FreshAddressPath, signableBytes)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		signedBytes, err := serializeTransfer(t, senderPubKey, timestamp, signature)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}
		txID := arkutil.TxIDFromBytes(signedBytes)

		if !emitSign(ctx, events, ports.SignEvent{Type: ports.SignEventSigned, TxID: txID}) {
			return
		}

		payload, err := json.Marshal(signedTransferPayload{
			ID:              txID,
			Type:            transferType,
			Timestamp:       timestamp,
			Amount:          uint64(t.amount.IntPart()),
			Fee:             uint64(t.fee.IntPart()),
			RecipientID:     t.recipient,
			SenderPublicKey: hex.EncodeToString(senderPubKey),
			Signature:       hex.EncodeToString(signature),
			VendorField:     t.vendorField,
		})
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		// Once submitted the effect is external; cancellation no longer
		// rolls back.
		if ctx.Err() != nil {
			return
		}
		broadcastID, err := client.Broadcast(payload)
		if err != nil {
			emitSign(ctx, events, ports.SignEvent{Err: err})
			return
		}

		log.WithFields(log.Fields{
			"account": account.ID,
			"tx":      broadcastID,
		}).Info("transaction broadcast")

		pending := newPendingOperation(account, t, broadcastID)
		emitSign(ctx, events, ports.SignEvent{
			Type:             ports.SignEventBroadcast,
			TxID:             broadcastID,
			PendingOperation: &pending,
		})
	}()

	return events
}

// serializeTransfer produces the wire encoding of a transfer. A nil
// signature yields the signable bytes, a non-nil one the full payload whose
// sha256 is the tx id.
func serializeTransfer(
	t transaction, senderPubKey []byte, timestamp uint32, signature []byte,
) ([]byte, error) {
	recipientPayload, recipientVersion, err := base58.CheckDecode(t.recipient)
	if err != nil {
		return nil, domain.ErrInvalidRecipient
	}

	s := bufferutil.NewSerializer()
	s.WriteUint8(transferType)
	s.WriteUint32(timestamp)
	s.WriteSlice(senderPubKey)
	s.WriteUint8(recipientVersion)
	s.WriteSlice(recipientPayload)
	s.WritePaddedSlice([]byte(t.vendorField), vendorFieldSize)
	s.WriteUint64(uint64(t.amount.IntPart()))
	s.WriteUint64(uint64(t.fee.IntPart()))
	if signature != nil {
		s.WriteSlice(signature)
	}
	return s.Bytes(), nil
}

type signedTransferPayload struct {
	ID              string `json:"id"`
	Type            int    `json:"type"`
	Timestamp       uint32 `json:"timestamp"`
	Amount          uint64 `json:"amount"`
	Fee             uint64 `json:"fee"`
	RecipientID     string `json:"recipientId"`
	SenderPublicKey string `json:"senderPublicKey"`
	Signature       string `json:"signature"`
	VendorField     string `json:"vendorField,omitempty"`
}

// newPendingOperation describes the just-broadcast transfer so the account
// store can track it until it is confirmed or superseded.
func newPendingOperation(account domain.Account, t transaction, txID string) domain.Operation {
	extra := map[string]string{}
	if t.vendorField != "" {
		extra[vendorFieldKey] = t.vendorField
	}

	var nextSequenceNumber uint64 = 1
	if len(account.Operations) > 0 {
		nextSequenceNumber = account.Operations[0].TransactionSequenceNumber + 1
	}

	return domain.Operation{
		ID:                        domain.NewOperationID(account.ID, txID, domain.OperationTypeOut),
		Hash:                      txID,
		AccountID:                 account.ID,
		Type:                      domain.OperationTypeOut,
		Value:                     t.amount.Add(*t.fee),
		Fee:                       *t.fee,
		Senders:                   []string{account.FreshAddress},
		Recipients:                []string{t.recipient},
		Date:                      time.Now().UTC(),
		TransactionSequenceNumber: nextSequenceNumber,
		Extra:                     extra,
	}
}

// emitSign delivers an event unless cancellation wins first. It reports
// whether the event was delivered.
func emitSign(ctx context.Context, events chan<- ports.SignEvent, event ports.SignEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
