// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const AccountIDLen = 32

// AccountID identifies an actor on the bridge chain or a remote account/asset reference.
type AccountID [AccountIDLen]byte

// ZeroAccount is the mint source and burn sink reported in transfer events.
var ZeroAccount = AccountID{}

// NewAccountID copies a 32-byte slice into an AccountID.
func NewAccountID(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLen {
		return id, fmt.Errorf("account id must be %d bytes, got %d", AccountIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// AccountIDFromHex parses a 0x-prefixed or bare hex string.
func AccountIDFromHex(s string) (AccountID, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account id %q: %w", s, err)
	}
	return NewAccountID(b)
}

func (id AccountID) IsZero() bool {
	return id == ZeroAccount
}

func (id AccountID) Hex() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id AccountID) String() string {
	return id.Hex()
}

func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := AccountIDFromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
