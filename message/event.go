// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Event variant tags. Tags 0-3 are the original replies.
const (
	TransferEventTag byte = iota
	ApproveEventTag
	TotalSupplyEventTag
	BalanceEventTag
	TransitQueuedEventTag
	TransitConfirmedEventTag
	TransitCancelledEventTag
	AdminChangedEventTag
)

// Event is the wire form of a ledger event or reply.
type Event struct {
	ledger.Event
}

func (e Event) Encode(encoder scale.Encoder) error {
	switch evt := e.Event.(type) {
	case ledger.TransferEvent:
		return encodeFields(encoder, TransferEventTag,
			accountField(evt.From), accountField(evt.To), amountField(evt.Amount))
	case ledger.ApproveEvent:
		return encodeFields(encoder, ApproveEventTag,
			accountField(evt.From), accountField(evt.To), amountField(evt.Amount))
	case ledger.TotalSupplyEvent:
		return encodeFields(encoder, TotalSupplyEventTag, amountField(evt.Value))
	case ledger.BalanceEvent:
		return encodeFields(encoder, BalanceEventTag, amountField(evt.Value))
	case ledger.TransitQueuedEvent:
		return encodeFields(encoder, TransitQueuedEventTag,
			transitIDField(evt.ID), accountField(evt.Sender), accountField(evt.Destination),
			amountField(evt.Amount), tokenTypeField(evt.TokenType))
	case ledger.TransitConfirmedEvent:
		return encodeFields(encoder, TransitConfirmedEventTag,
			transitIDField(evt.ID), accountField(evt.Destination),
			amountField(evt.Amount), tokenTypeField(evt.TokenType))
	case ledger.TransitCancelledEvent:
		return encodeFields(encoder, TransitCancelledEventTag,
			transitIDField(evt.ID), accountField(evt.Sender),
			amountField(evt.Amount), tokenTypeField(evt.TokenType))
	case ledger.AdminChangedEvent:
		return encodeFields(encoder, AdminChangedEventTag, accountField(evt.From), accountField(evt.To))
	default:
		return fmt.Errorf("cannot encode event %T", e.Event)
	}
}

func (e *Event) Decode(decoder scale.Decoder) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch tag {
	case TransferEventTag, ApproveEventTag:
		var (
			from, to ledger.AccountID
			amount   ledger.Amount
		)
		if err := decodeFields(decoder, accountTarget(&from), accountTarget(&to), amountTarget(&amount)); err != nil {
			return err
		}
		if tag == TransferEventTag {
			e.Event = ledger.TransferEvent{From: from, To: to, Amount: amount}
		} else {
			e.Event = ledger.ApproveEvent{From: from, To: to, Amount: amount}
		}
	case TotalSupplyEventTag, BalanceEventTag:
		var value ledger.Amount
		if err := decodeFields(decoder, amountTarget(&value)); err != nil {
			return err
		}
		if tag == TotalSupplyEventTag {
			e.Event = ledger.TotalSupplyEvent{Value: value}
		} else {
			e.Event = ledger.BalanceEvent{Value: value}
		}
	case TransitQueuedEventTag:
		var evt ledger.TransitQueuedEvent
		if err := decodeFields(decoder, transitIDTarget(&evt.ID), accountTarget(&evt.Sender),
			accountTarget(&evt.Destination), amountTarget(&evt.Amount), tokenTypeTarget(&evt.TokenType)); err != nil {
			return err
		}
		e.Event = evt
	case TransitConfirmedEventTag:
		var evt ledger.TransitConfirmedEvent
		if err := decodeFields(decoder, transitIDTarget(&evt.ID), accountTarget(&evt.Destination),
			amountTarget(&evt.Amount), tokenTypeTarget(&evt.TokenType)); err != nil {
			return err
		}
		e.Event = evt
	case TransitCancelledEventTag:
		var evt ledger.TransitCancelledEvent
		if err := decodeFields(decoder, transitIDTarget(&evt.ID), accountTarget(&evt.Sender),
			amountTarget(&evt.Amount), tokenTypeTarget(&evt.TokenType)); err != nil {
			return err
		}
		e.Event = evt
	case AdminChangedEventTag:
		var evt ledger.AdminChangedEvent
		if err := decodeFields(decoder, accountTarget(&evt.From), accountTarget(&evt.To)); err != nil {
			return err
		}
		e.Event = evt
	default:
		return fmt.Errorf("unknown event variant %d", tag)
	}
	return nil
}

type fieldEncoder func(scale.Encoder) error
type fieldDecoder func(scale.Decoder) error

func encodeFields(encoder scale.Encoder, tag byte, fields ...fieldEncoder) error {
	if err := encoder.PushByte(tag); err != nil {
		return err
	}
	for _, f := range fields {
		if err := f(encoder); err != nil {
			return err
		}
	}
	return nil
}

func decodeFields(decoder scale.Decoder, fields ...fieldDecoder) error {
	for _, f := range fields {
		if err := f(decoder); err != nil {
			return err
		}
	}
	return nil
}

func accountField(id ledger.AccountID) fieldEncoder {
	return func(e scale.Encoder) error { return encodeAccount(e, id) }
}

func amountField(a ledger.Amount) fieldEncoder {
	return func(e scale.Encoder) error { return encodeAmount(e, a) }
}

func transitIDField(id ledger.TransitID) fieldEncoder {
	return func(e scale.Encoder) error { return encodeTransitID(e, id) }
}

func tokenTypeField(t ledger.TokenType) fieldEncoder {
	return func(e scale.Encoder) error { return encodeTokenType(e, t) }
}

func accountTarget(id *ledger.AccountID) fieldDecoder {
	return func(d scale.Decoder) (err error) {
		*id, err = decodeAccount(d)
		return err
	}
}

func amountTarget(a *ledger.Amount) fieldDecoder {
	return func(d scale.Decoder) (err error) {
		*a, err = decodeAmount(d)
		return err
	}
}

func transitIDTarget(id *ledger.TransitID) fieldDecoder {
	return func(d scale.Decoder) (err error) {
		*id, err = decodeTransitID(d)
		return err
	}
}

func tokenTypeTarget(t *ledger.TokenType) fieldDecoder {
	return func(d scale.Decoder) (err error) {
		*t, err = decodeTokenType(d)
		return err
	}
}

func EncodeEvent(e ledger.Event) ([]byte, error) {
	return Encode(Event{Event: e})
}

func DecodeEvent(data []byte) (ledger.Event, error) {
	var e Event
	if err := Decode(data, &e); err != nil {
		return nil, err
	}
	return e.Event, nil
}
