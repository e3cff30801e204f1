// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package message_test

import (
	"bytes"
	"testing"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/stretchr/testify/suite"
)

var (
	alice       = ledger.AccountID{1}
	bob         = ledger.AccountID{2}
	remoteAsset = ledger.AccountID{0xee}
)

func u128(v byte) []byte {
	b := make([]byte, 16)
	b[0] = v
	return b
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

type ActionCodecTestSuite struct {
	suite.Suite
}

func TestRunActionCodecTestSuite(t *testing.T) {
	suite.Run(t, new(ActionCodecTestSuite))
}

func (s *ActionCodecTestSuite) Test_Encode_KnownLayouts() {
	cases := []struct {
		action ledger.Action
		want   []byte
	}{
		{ledger.Mint{Amount: ledger.NewAmount(5)}, concat([]byte{0x00}, u128(5))},
		{ledger.Burn{Amount: ledger.NewAmount(3)}, concat([]byte{0x01}, u128(3))},
		{ledger.Transfer{From: alice, To: bob, Amount: ledger.NewAmount(9)}, concat([]byte{0x02}, alice[:], bob[:], u128(9))},
		{ledger.Approve{To: bob, Amount: ledger.NewAmount(1)}, concat([]byte{0x03}, bob[:], u128(1))},
		{ledger.TotalSupply{}, []byte{0x04}},
		{ledger.BalanceOf{Who: alice}, concat([]byte{0x05}, alice[:])},
		{
			ledger.TransferToRemote{Destination: bob, Amount: ledger.NewAmount(20), TokenType: ledger.NativeToken()},
			concat([]byte{0x06}, bob[:], u128(20), []byte{0x00}),
		},
		{
			ledger.TransferToRemote{Destination: bob, Amount: ledger.NewAmount(20), TokenType: ledger.WrappedToken(remoteAsset)},
			concat([]byte{0x06}, bob[:], u128(20), []byte{0x01}, remoteAsset[:]),
		},
		{ledger.ConfirmTransit{ID: 7}, concat([]byte{0x07}, u128(7))},
		{ledger.CancelTransit{ID: 2}, concat([]byte{0x08}, u128(2))},
		{ledger.SetAdmin{Admin: bob}, concat([]byte{0x09}, bob[:])},
	}

	for _, c := range cases {
		b, err := message.EncodeAction(c.action)
		s.Nil(err, c.action.Name())
		s.Equal(c.want, b, c.action.Name())

		decoded, err := message.DecodeAction(b)
		s.Nil(err, c.action.Name())
		s.Equal(c.action, decoded, c.action.Name())
	}
}

func (s *ActionCodecTestSuite) Test_Decode_UnknownTag() {
	_, err := message.DecodeAction([]byte{0x0a})

	s.NotNil(err)
}

func (s *ActionCodecTestSuite) Test_Decode_TrailingBytes() {
	_, err := message.DecodeAction([]byte{0x04, 0x00})

	s.NotNil(err)
}

func (s *ActionCodecTestSuite) Test_Decode_Truncated() {
	_, err := message.DecodeAction(concat([]byte{0x02}, alice[:], bob[:4]))

	s.NotNil(err)
}

func (s *ActionCodecTestSuite) Test_Decode_UnknownTokenType() {
	_, err := message.DecodeAction(concat([]byte{0x06}, bob[:], u128(20), []byte{0x02}))

	s.NotNil(err)
}

func (s *ActionCodecTestSuite) Test_Hex_RoundTrip() {
	hex, err := message.EncodeToHex(message.Action{Action: ledger.BalanceOf{Who: bob}})
	s.Nil(err)

	var a message.Action
	err = message.DecodeFromHex(hex, &a)
	s.Nil(err)
	s.Equal(ledger.BalanceOf{Who: bob}, a.Action)
}

type EventCodecTestSuite struct {
	suite.Suite
}

func TestRunEventCodecTestSuite(t *testing.T) {
	suite.Run(t, new(EventCodecTestSuite))
}

func (s *EventCodecTestSuite) Test_Encode_Replies() {
	b, err := message.EncodeEvent(ledger.TotalSupplyEvent{Value: ledger.NewAmount(7)})
	s.Nil(err)
	s.Equal(concat([]byte{0x02}, u128(7)), b)

	b, err = message.EncodeEvent(ledger.BalanceEvent{Value: ledger.NewAmount(1)})
	s.Nil(err)
	s.Equal(concat([]byte{0x03}, u128(1)), b)

	b, err = message.EncodeEvent(ledger.TransferEvent{From: ledger.ZeroAccount, To: alice, Amount: ledger.NewAmount(100)})
	s.Nil(err)
	s.Equal(concat([]byte{0x00}, ledger.ZeroAccount[:], alice[:], u128(100)), b)
}

func (s *EventCodecTestSuite) Test_RoundTrip_AllVariants() {
	events := []ledger.Event{
		ledger.TransferEvent{From: alice, To: bob, Amount: ledger.NewAmount(1)},
		ledger.ApproveEvent{From: alice, To: bob, Amount: ledger.NewAmount(2)},
		ledger.TotalSupplyEvent{Value: ledger.NewAmount(3)},
		ledger.BalanceEvent{Value: ledger.NewAmount(4)},
		ledger.TransitQueuedEvent{ID: 1, Sender: alice, Destination: bob, Amount: ledger.NewAmount(5), TokenType: ledger.NativeToken()},
		ledger.TransitConfirmedEvent{ID: 1, Destination: bob, Amount: ledger.NewAmount(5), TokenType: ledger.WrappedToken(remoteAsset)},
		ledger.TransitCancelledEvent{ID: 2, Sender: alice, Amount: ledger.NewAmount(6), TokenType: ledger.NativeToken()},
		ledger.AdminChangedEvent{From: alice, To: bob},
	}

	for i, evt := range events {
		b, err := message.EncodeEvent(evt)
		s.Nil(err)
		s.Equal(byte(i), b[0])

		decoded, err := message.DecodeEvent(b)
		s.Nil(err)
		s.Equal(evt, decoded)
	}
}

func (s *EventCodecTestSuite) Test_Decode_UnknownTag() {
	_, err := message.DecodeEvent([]byte{0x08})

	s.NotNil(err)
}

type StateCodecTestSuite struct {
	suite.Suite
	config ledger.Config
}

func TestRunStateCodecTestSuite(t *testing.T) {
	suite.Run(t, new(StateCodecTestSuite))
}

func (s *StateCodecTestSuite) SetupTest() {
	s.config = ledger.Config{
		Name:      "Vara",
		Symbol:    "VARA",
		Decimals:  12,
		Admin:     alice,
		MinAmount: ledger.NewAmount(10),
	}
}

func (s *StateCodecTestSuite) Test_InitConfig_RoundTrip() {
	b, err := message.Encode(message.NewInitConfig(s.config))
	s.Nil(err)

	var decoded message.InitConfig
	err = message.Decode(b, &decoded)
	s.Nil(err)
	s.Equal(s.config, decoded.LedgerConfig())
}

func (s *StateCodecTestSuite) Test_InitConfig_Truncated() {
	b, err := message.Encode(message.NewInitConfig(s.config))
	s.Nil(err)

	inputs := [][]byte{
		{},
		{0x01},
		{0x04, 0x61},
		b[:5],
		b[:len(b)-1],
	}
	for _, in := range inputs {
		var decoded message.InitConfig
		err = message.Decode(in, &decoded)
		s.NotNil(err, "input %x", in)
	}
}

func (s *StateCodecTestSuite) Test_InitConfig_EmptyStrings() {
	config := s.config
	config.Name = ""
	config.Symbol = ""
	b, err := message.Encode(message.NewInitConfig(config))
	s.Nil(err)
	s.Equal(byte(0x00), b[0])

	var decoded message.InitConfig
	err = message.Decode(b, &decoded)
	s.Nil(err)
	s.Equal(config, decoded.LedgerConfig())
}

func (s *StateCodecTestSuite) Test_LedgerState_Truncated() {
	l, err := ledger.Genesis(s.config, ledger.NewAmount(1000))
	s.Nil(err)
	b, err := message.Encode(message.LedgerState{State: l.State()})
	s.Nil(err)

	for _, n := range []int{0, 1, 3, 10, len(b) - 1} {
		var decoded message.LedgerState
		err = message.Decode(b[:n], &decoded)
		s.NotNil(err, "prefix of %d bytes", n)
	}
}

func (s *StateCodecTestSuite) Test_BridgeState_Layout() {
	snapshot := ledger.Snapshot{
		MinAmount:   ledger.NewAmount(10),
		Admin:       alice,
		TotalSupply: ledger.NewAmount(100),
		TransitQueue: []ledger.TransitEntry{
			{ID: 1, Sender: alice, Destination: bob, Amount: ledger.NewAmount(20), TokenType: ledger.NativeToken()},
		},
	}

	b, err := message.Encode(message.BridgeState{Snapshot: snapshot})
	s.Nil(err)
	s.Equal(concat(u128(10), alice[:], u128(100), []byte{0x04}, u128(1), bob[:], u128(20), []byte{0x00}), b)

	var decoded message.BridgeState
	err = message.Decode(b, &decoded)
	s.Nil(err)
	// the sender is not part of the snapshot wire form
	snapshot.TransitQueue[0].Sender = ledger.AccountID{}
	s.Equal(snapshot, decoded.Snapshot)
}

func (s *StateCodecTestSuite) Test_LedgerState_RoundTrip() {
	l, err := ledger.Genesis(s.config, ledger.NewAmount(1000))
	s.Nil(err)
	_, err = l.Handle(alice, ledger.Transfer{From: alice, To: bob, Amount: ledger.NewAmount(300)})
	s.Nil(err)
	_, err = l.Handle(bob, ledger.Approve{To: alice, Amount: ledger.NewAmount(50)})
	s.Nil(err)
	_, err = l.Handle(bob, ledger.TransferToRemote{Destination: alice, Amount: ledger.NewAmount(40), TokenType: ledger.NativeToken()})
	s.Nil(err)
	_, err = l.Handle(bob, ledger.TransferToRemote{Destination: alice, Amount: ledger.NewAmount(15), TokenType: ledger.WrappedToken(remoteAsset)})
	s.Nil(err)

	state := l.State()
	b, err := message.Encode(message.LedgerState{State: state})
	s.Nil(err)

	var decoded message.LedgerState
	err = message.Decode(b, &decoded)
	s.Nil(err)
	s.Equal(state, decoded.State)

	restored, err := ledger.FromState(decoded.State)
	s.Nil(err)
	s.Equal(l.BalanceOf(bob), restored.BalanceOf(bob))
	s.Equal(l.Nonce(), restored.Nonce())
	s.Equal(ledger.TransitID(3), restored.Transit().NextID())
}

func (s *StateCodecTestSuite) Test_LedgerState_RejectsOversizedVec() {
	b, err := message.Encode(message.NewInitConfig(s.config))
	s.Nil(err)
	// total supply followed by a compact length of 2^30
	b = concat(b, u128(0), []byte{0x03, 0x00, 0x00, 0x00, 0x40})

	var decoded message.LedgerState
	err = message.Decode(b, &decoded)
	s.NotNil(err)
}
