// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Action variant tags. Tags 0-5 are the original fungible token actions and
// must never be renumbered; bridge extensions are appended after them.
const (
	MintTag byte = iota
	BurnTag
	TransferTag
	ApproveTag
	TotalSupplyTag
	BalanceOfTag
	TransferToRemoteTag
	ConfirmTransitTag
	CancelTransitTag
	SetAdminTag
)

// Action is the wire form of a ledger action.
type Action struct {
	ledger.Action
}

func (a Action) Encode(encoder scale.Encoder) error {
	switch act := a.Action.(type) {
	case ledger.Mint:
		if err := encoder.PushByte(MintTag); err != nil {
			return err
		}
		return encodeAmount(encoder, act.Amount)
	case ledger.Burn:
		if err := encoder.PushByte(BurnTag); err != nil {
			return err
		}
		return encodeAmount(encoder, act.Amount)
	case ledger.Transfer:
		if err := encoder.PushByte(TransferTag); err != nil {
			return err
		}
		if err := encodeAccount(encoder, act.From); err != nil {
			return err
		}
		if err := encodeAccount(encoder, act.To); err != nil {
			return err
		}
		return encodeAmount(encoder, act.Amount)
	case ledger.Approve:
		if err := encoder.PushByte(ApproveTag); err != nil {
			return err
		}
		if err := encodeAccount(encoder, act.To); err != nil {
			return err
		}
		return encodeAmount(encoder, act.Amount)
	case ledger.TotalSupply:
		return encoder.PushByte(TotalSupplyTag)
	case ledger.BalanceOf:
		if err := encoder.PushByte(BalanceOfTag); err != nil {
			return err
		}
		return encodeAccount(encoder, act.Who)
	case ledger.TransferToRemote:
		if err := encoder.PushByte(TransferToRemoteTag); err != nil {
			return err
		}
		if err := encodeAccount(encoder, act.Destination); err != nil {
			return err
		}
		if err := encodeAmount(encoder, act.Amount); err != nil {
			return err
		}
		return encodeTokenType(encoder, act.TokenType)
	case ledger.ConfirmTransit:
		if err := encoder.PushByte(ConfirmTransitTag); err != nil {
			return err
		}
		return encodeTransitID(encoder, act.ID)
	case ledger.CancelTransit:
		if err := encoder.PushByte(CancelTransitTag); err != nil {
			return err
		}
		return encodeTransitID(encoder, act.ID)
	case ledger.SetAdmin:
		if err := encoder.PushByte(SetAdminTag); err != nil {
			return err
		}
		return encodeAccount(encoder, act.Admin)
	default:
		return fmt.Errorf("cannot encode action %T", a.Action)
	}
}

func (a *Action) Decode(decoder scale.Decoder) error {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch tag {
	case MintTag:
		amount, err := decodeAmount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.Mint{Amount: amount}
	case BurnTag:
		amount, err := decodeAmount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.Burn{Amount: amount}
	case TransferTag:
		from, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		to, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		amount, err := decodeAmount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.Transfer{From: from, To: to, Amount: amount}
	case ApproveTag:
		to, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		amount, err := decodeAmount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.Approve{To: to, Amount: amount}
	case TotalSupplyTag:
		a.Action = ledger.TotalSupply{}
	case BalanceOfTag:
		who, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.BalanceOf{Who: who}
	case TransferToRemoteTag:
		destination, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		amount, err := decodeAmount(decoder)
		if err != nil {
			return err
		}
		tokenType, err := decodeTokenType(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.TransferToRemote{Destination: destination, Amount: amount, TokenType: tokenType}
	case ConfirmTransitTag:
		id, err := decodeTransitID(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.ConfirmTransit{ID: id}
	case CancelTransitTag:
		id, err := decodeTransitID(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.CancelTransit{ID: id}
	case SetAdminTag:
		admin, err := decodeAccount(decoder)
		if err != nil {
			return err
		}
		a.Action = ledger.SetAdmin{Admin: admin}
	default:
		return fmt.Errorf("unknown action variant %d", tag)
	}
	return nil
}

func EncodeAction(a ledger.Action) ([]byte, error) {
	return Encode(Action{Action: a})
}

func DecodeAction(data []byte) (ledger.Action, error) {
	var a Action
	if err := Decode(data, &a); err != nil {
		return nil, err
	}
	return a.Action, nil
}
