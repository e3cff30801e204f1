// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// Receiver overflow cannot be reached through minting while the supply
// invariant holds, so balances are seeded directly.
type ReceiverOverflowTestSuite struct {
	suite.Suite
	sender   AccountID
	receiver AccountID
	ledger   *Ledger
}

func TestRunReceiverOverflowTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiverOverflowTestSuite))
}

func (s *ReceiverOverflowTestSuite) SetupTest() {
	s.sender = AccountID{1}
	s.receiver = AccountID{2}
	s.ledger = New(Config{Name: "Vara", Symbol: "VARA", Decimals: 12, Admin: s.sender, MinAmount: NewAmount(10)})
	s.ledger.balances.set(s.sender, NewAmount(5))
	s.ledger.balances.set(s.receiver, MaxAmount)
}

func (s *ReceiverOverflowTestSuite) Test_BalanceStoreTransfer() {
	err := s.ledger.balances.Transfer(s.sender, s.receiver, NewAmount(1))

	s.ErrorIs(err, ErrOverflow)
	s.Equal(NewAmount(5), s.ledger.BalanceOf(s.sender))
	s.Equal(MaxAmount, s.ledger.BalanceOf(s.receiver))
}

func (s *ReceiverOverflowTestSuite) Test_LedgerTransfer_StateUnchanged() {
	before := s.ledger.State()

	evt, err := s.ledger.Handle(s.sender, Transfer{From: s.sender, To: s.receiver, Amount: NewAmount(1)})

	s.ErrorIs(err, ErrOverflow)
	s.Nil(evt)
	s.Equal(before, s.ledger.State())
}

func (s *ReceiverOverflowTestSuite) Test_SpenderTransfer_KeepsAllowance() {
	spender := AccountID{3}
	s.ledger.approvals.Approve(s.sender, spender, NewAmount(5))
	before := s.ledger.State()

	_, err := s.ledger.Handle(spender, Transfer{From: s.sender, To: s.receiver, Amount: NewAmount(2)})

	s.ErrorIs(err, ErrOverflow)
	s.Equal(before, s.ledger.State())
	s.Equal(NewAmount(5), s.ledger.Allowance(s.sender, spender))
}
