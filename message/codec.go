// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"bytes"
	"fmt"
	"math"
	"math/big"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// maxVecLen bounds decoded sequence lengths.
const maxVecLen = 1 << 24

// Encode SCALE encodes v.
func Encode(v scale.Encodeable) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Encode(*scale.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode SCALE decodes data into v and rejects trailing bytes.
func Decode(data []byte, v scale.Decodeable) error {
	r := bytes.NewReader(data)
	if err := v.Decode(*scale.NewDecoder(r)); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes after message", r.Len())
	}
	return nil
}

// EncodeToHex SCALE encodes v into a 0x-prefixed hex string.
func EncodeToHex(v scale.Encodeable) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return codec.HexEncodeToString(b), nil
}

// DecodeFromHex decodes a 0x-prefixed hex string into v.
func DecodeFromHex(s string, v scale.Decodeable) error {
	b, err := codec.HexDecodeString(s)
	if err != nil {
		return err
	}
	return Decode(b, v)
}

func encodeAccount(encoder scale.Encoder, id ledger.AccountID) error {
	return encoder.Write(id[:])
}

func decodeAccount(decoder scale.Decoder) (ledger.AccountID, error) {
	var id ledger.AccountID
	err := decoder.Read(id[:])
	return id, err
}

func encodeAmount(encoder scale.Encoder, a ledger.Amount) error {
	return encoder.Encode(types.NewU128(*a.Big()))
}

func decodeAmount(decoder scale.Decoder) (ledger.Amount, error) {
	var u types.U128
	if err := decoder.Decode(&u); err != nil {
		return ledger.Amount{}, err
	}
	return ledger.AmountFromBig(u.Int)
}

// Transit ids are u128 on the wire.
func encodeTransitID(encoder scale.Encoder, id ledger.TransitID) error {
	return encoder.Encode(types.NewU128(*new(big.Int).SetUint64(uint64(id))))
}

func decodeTransitID(decoder scale.Decoder) (ledger.TransitID, error) {
	var u types.U128
	if err := decoder.Decode(&u); err != nil {
		return 0, err
	}
	if u.Int == nil {
		return 0, nil
	}
	if !u.Int.IsUint64() {
		return 0, fmt.Errorf("transit id %s out of range", u.Int)
	}
	return ledger.TransitID(u.Int.Uint64()), nil
}

const (
	tokenNative byte = 0
	tokenWrap   byte = 1
)

func encodeTokenType(encoder scale.Encoder, t ledger.TokenType) error {
	if !t.IsWrapped {
		return encoder.PushByte(tokenNative)
	}
	if err := encoder.PushByte(tokenWrap); err != nil {
		return err
	}
	return encodeAccount(encoder, t.Asset)
}

func decodeTokenType(decoder scale.Decoder) (ledger.TokenType, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return ledger.TokenType{}, err
	}
	switch b {
	case tokenNative:
		return ledger.NativeToken(), nil
	case tokenWrap:
		asset, err := decodeAccount(decoder)
		if err != nil {
			return ledger.TokenType{}, err
		}
		return ledger.WrappedToken(asset), nil
	default:
		return ledger.TokenType{}, fmt.Errorf("unknown token type variant %d", b)
	}
}

func encodeVecLen(encoder scale.Encoder, n int) error {
	return encoder.EncodeUintCompact(*big.NewInt(int64(n)))
}

func decodeVecLen(decoder scale.Decoder) (int, error) {
	n, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() || n.Uint64() > maxVecLen || n.Uint64() > math.MaxInt32 {
		return 0, fmt.Errorf("sequence length %s too large", n)
	}
	return int(n.Uint64()), nil
}

func decodeString(decoder scale.Decoder) (string, error) {
	n, err := decodeVecLen(decoder)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := decoder.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
