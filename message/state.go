// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// InitConfig initializes the bridge: name, symbol and decimals followed by
// the admin and the minimum transit amount.
type InitConfig struct {
	Name      string
	Symbol    string
	Decimals  uint8
	Admin     ledger.AccountID
	MinAmount ledger.Amount
}

func NewInitConfig(c ledger.Config) InitConfig {
	return InitConfig(c)
}

func (c InitConfig) LedgerConfig() ledger.Config {
	return ledger.Config(c)
}

func (c InitConfig) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(c.Name); err != nil {
		return err
	}
	if err := encoder.Encode(c.Symbol); err != nil {
		return err
	}
	if err := encoder.PushByte(c.Decimals); err != nil {
		return err
	}
	return writeFields(encoder, accountField(c.Admin), amountField(c.MinAmount))
}

func (c *InitConfig) Decode(decoder scale.Decoder) error {
	name, err := decodeString(decoder)
	if err != nil {
		return err
	}
	symbol, err := decodeString(decoder)
	if err != nil {
		return err
	}
	c.Name, c.Symbol = name, symbol
	decimals, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	c.Decimals = decimals
	return decodeFields(decoder, accountTarget(&c.Admin), amountTarget(&c.MinAmount))
}

// BridgeState is the queryable snapshot: min amount, admin, total supply
// and the transit queue as (id, destination, amount, token type) tuples.
type BridgeState struct {
	ledger.Snapshot
}

func (s BridgeState) Encode(encoder scale.Encoder) error {
	err := writeFields(encoder, amountField(s.MinAmount), accountField(s.Admin), amountField(s.TotalSupply))
	if err != nil {
		return err
	}
	if err := encodeVecLen(encoder, len(s.TransitQueue)); err != nil {
		return err
	}
	for _, e := range s.TransitQueue {
		err := writeFields(encoder,
			transitIDField(e.ID), accountField(e.Destination), amountField(e.Amount), tokenTypeField(e.TokenType))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *BridgeState) Decode(decoder scale.Decoder) error {
	if err := decodeFields(decoder, amountTarget(&s.MinAmount), accountTarget(&s.Admin), amountTarget(&s.TotalSupply)); err != nil {
		return err
	}
	n, err := decodeVecLen(decoder)
	if err != nil {
		return err
	}
	s.TransitQueue = make([]ledger.TransitEntry, n)
	for i := range s.TransitQueue {
		e := &s.TransitQueue[i]
		err := decodeFields(decoder,
			transitIDTarget(&e.ID), accountTarget(&e.Destination), amountTarget(&e.Amount), tokenTypeTarget(&e.TokenType))
		if err != nil {
			return err
		}
	}
	return nil
}

// LedgerState is the persisted form of the whole ledger.
type LedgerState struct {
	ledger.State
}

func (s LedgerState) Encode(encoder scale.Encoder) error {
	if err := (InitConfig(s.Config)).Encode(encoder); err != nil {
		return err
	}
	if err := encodeAmount(encoder, s.TotalSupply); err != nil {
		return err
	}

	if err := encodeVecLen(encoder, len(s.Balances)); err != nil {
		return err
	}
	for _, b := range s.Balances {
		if err := writeFields(encoder, accountField(b.Account), amountField(b.Amount)); err != nil {
			return err
		}
	}

	if err := encodeVecLen(encoder, len(s.Allowances)); err != nil {
		return err
	}
	for _, a := range s.Allowances {
		if err := writeFields(encoder, accountField(a.Owner), accountField(a.Spender), amountField(a.Amount)); err != nil {
			return err
		}
	}

	if err := encodeVecLen(encoder, len(s.TransitQueue)); err != nil {
		return err
	}
	for _, e := range s.TransitQueue {
		err := writeFields(encoder,
			transitIDField(e.ID), accountField(e.Sender), accountField(e.Destination),
			amountField(e.Amount), tokenTypeField(e.TokenType))
		if err != nil {
			return err
		}
	}

	if err := encoder.Encode(uint64(s.NextTransitID)); err != nil {
		return err
	}
	return encoder.Encode(s.Nonce)
}

func (s *LedgerState) Decode(decoder scale.Decoder) error {
	var config InitConfig
	if err := config.Decode(decoder); err != nil {
		return err
	}
	s.Config = config.LedgerConfig()
	if err := decodeFields(decoder, amountTarget(&s.TotalSupply)); err != nil {
		return err
	}

	n, err := decodeVecLen(decoder)
	if err != nil {
		return err
	}
	s.Balances = make([]ledger.BalanceRecord, n)
	for i := range s.Balances {
		b := &s.Balances[i]
		if err := decodeFields(decoder, accountTarget(&b.Account), amountTarget(&b.Amount)); err != nil {
			return err
		}
	}

	n, err = decodeVecLen(decoder)
	if err != nil {
		return err
	}
	s.Allowances = make([]ledger.AllowanceRecord, n)
	for i := range s.Allowances {
		a := &s.Allowances[i]
		if err := decodeFields(decoder, accountTarget(&a.Owner), accountTarget(&a.Spender), amountTarget(&a.Amount)); err != nil {
			return err
		}
	}

	n, err = decodeVecLen(decoder)
	if err != nil {
		return err
	}
	s.TransitQueue = make([]ledger.TransitEntry, n)
	for i := range s.TransitQueue {
		e := &s.TransitQueue[i]
		err := decodeFields(decoder,
			transitIDTarget(&e.ID), accountTarget(&e.Sender), accountTarget(&e.Destination),
			amountTarget(&e.Amount), tokenTypeTarget(&e.TokenType))
		if err != nil {
			return err
		}
	}

	var nextID uint64
	if err := decoder.Decode(&nextID); err != nil {
		return err
	}
	s.NextTransitID = ledger.TransitID(nextID)
	return decoder.Decode(&s.Nonce)
}

// writeFields writes untagged fields.
func writeFields(encoder scale.Encoder, fields ...fieldEncoder) error {
	for _, f := range fields {
		if err := f(encoder); err != nil {
			return err
		}
	}
	return nil
}
