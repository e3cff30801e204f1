// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger_test

import (
	"testing"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/stretchr/testify/suite"
)

var remoteAsset = ledger.AccountID{0xee}

type TransitQueueTestSuite struct {
	suite.Suite
	balances *ledger.BalanceStore
	queue    *ledger.TransitQueue
}

func TestRunTransitQueueTestSuite(t *testing.T) {
	suite.Run(t, new(TransitQueueTestSuite))
}

func (s *TransitQueueTestSuite) SetupTest() {
	s.balances = ledger.NewBalanceStore()
	s.queue = ledger.NewTransitQueue(s.balances, ledger.NewAmount(10))
	s.Nil(s.balances.Mint(alice, ledger.NewAmount(100)))
}

func (s *TransitQueueTestSuite) Test_Enqueue_BelowMinimum() {
	_, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(5), ledger.NativeToken())

	s.ErrorIs(err, ledger.ErrBelowMinimum)
	s.Equal(0, s.queue.Len())
	s.Equal(ledger.NewAmount(100), s.balances.BalanceOf(alice))
}

func (s *TransitQueueTestSuite) Test_Enqueue_InsufficientBalance() {
	_, err := s.queue.Enqueue(bob, alice, ledger.NewAmount(10), ledger.NativeToken())

	s.ErrorIs(err, ledger.ErrInsufficientBalance)
	s.Equal(0, s.queue.Len())
	s.Equal(ledger.TransitID(1), s.queue.NextID())
}

func (s *TransitQueueTestSuite) Test_Enqueue_NativeReservesFunds() {
	id, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(30), ledger.NativeToken())

	s.Nil(err)
	s.Equal(ledger.TransitID(1), id)
	s.Equal(ledger.NewAmount(70), s.balances.BalanceOf(alice))
	s.Equal(ledger.NewAmount(100), s.balances.TotalSupply())
	inTransit, err := s.queue.NativeInTransit()
	s.Nil(err)
	s.Equal(ledger.NewAmount(30), inTransit)
}

func (s *TransitQueueTestSuite) Test_Enqueue_WrappedDoesNotDebit() {
	id, err := s.queue.Enqueue(bob, carol, ledger.NewAmount(500), ledger.WrappedToken(remoteAsset))

	s.Nil(err)
	entry, ok := s.queue.Get(id)
	s.True(ok)
	s.Equal(ledger.WrappedToken(remoteAsset), entry.TokenType)
	s.Equal(ledger.ZeroAmount, s.balances.BalanceOf(bob))
	inTransit, err := s.queue.NativeInTransit()
	s.Nil(err)
	s.Equal(ledger.ZeroAmount, inTransit)
}

func (s *TransitQueueTestSuite) Test_EnqueueThenCancel_RestoresBalance() {
	id, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(40), ledger.NativeToken())
	s.Nil(err)

	entry, err := s.queue.Cancel(id)

	s.Nil(err)
	s.Equal(alice, entry.Sender)
	s.Equal(ledger.NewAmount(100), s.balances.BalanceOf(alice))
	s.Equal(ledger.NewAmount(100), s.balances.TotalSupply())
	s.Equal(0, s.queue.Len())
}

func (s *TransitQueueTestSuite) Test_EnqueueThenConfirm_KeepsFundsDebited() {
	id, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(40), ledger.NativeToken())
	s.Nil(err)

	entry, err := s.queue.Confirm(id)

	s.Nil(err)
	s.Equal(bob, entry.Destination)
	s.Equal(ledger.NewAmount(60), s.balances.BalanceOf(alice))
	s.Equal(ledger.NewAmount(60), s.balances.TotalSupply())
	s.Equal(ledger.ZeroAmount, s.balances.BalanceOf(bob))
}

func (s *TransitQueueTestSuite) Test_Confirm_NotFound() {
	_, err := s.queue.Confirm(42)

	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *TransitQueueTestSuite) Test_Cancel_NotFound() {
	_, err := s.queue.Cancel(42)

	s.ErrorIs(err, ledger.ErrNotFound)
}

func (s *TransitQueueTestSuite) Test_ConfirmTwice_SecondIsNotFound() {
	id, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
	s.Nil(err)

	_, err = s.queue.Confirm(id)
	s.Nil(err)
	_, err = s.queue.Confirm(id)

	s.ErrorIs(err, ledger.ErrNotFound)
	s.Equal(ledger.NewAmount(90), s.balances.TotalSupply())
}

func (s *TransitQueueTestSuite) Test_Ids_StrictlyIncreasingAcrossCancellations() {
	first, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
	s.Nil(err)
	_, err = s.queue.Cancel(first)
	s.Nil(err)
	second, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
	s.Nil(err)
	third, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.WrappedToken(remoteAsset))
	s.Nil(err)

	s.Greater(uint64(second), uint64(first))
	s.Greater(uint64(third), uint64(second))
}

func (s *TransitQueueTestSuite) Test_Confirm_OutOfOrderKeepsFIFO() {
	first, _ := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
	second, _ := s.queue.Enqueue(alice, carol, ledger.NewAmount(11), ledger.NativeToken())
	third, _ := s.queue.Enqueue(alice, dave, ledger.NewAmount(12), ledger.NativeToken())

	_, err := s.queue.Confirm(second)
	s.Nil(err)

	entries := s.queue.Entries()
	s.Len(entries, 2)
	s.Equal(first, entries[0].ID)
	s.Equal(third, entries[1].ID)
}

func (s *TransitQueueTestSuite) Test_PendingFor_MatchesSenderOrDestination() {
	s.Nil(s.balances.Mint(bob, ledger.NewAmount(50)))
	toBob, _ := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
	fromBob, _ := s.queue.Enqueue(bob, carol, ledger.NewAmount(10), ledger.NativeToken())
	_, _ = s.queue.Enqueue(alice, carol, ledger.NewAmount(10), ledger.NativeToken())

	seq := s.queue.PendingFor(bob)

	var ids []ledger.TransitID
	for e := range seq {
		ids = append(ids, e.ID)
	}
	s.Equal([]ledger.TransitID{toBob, fromBob}, ids)

	// the sequence can be iterated again
	count := 0
	for range seq {
		count++
	}
	s.Equal(2, count)
}

func (s *TransitQueueTestSuite) Test_PendingFor_StopsEarly() {
	for i := 0; i < 3; i++ {
		_, err := s.queue.Enqueue(alice, bob, ledger.NewAmount(10), ledger.NativeToken())
		s.Nil(err)
	}

	count := 0
	for range s.queue.PendingFor(bob) {
		count++
		break
	}

	s.Equal(1, count)
}
