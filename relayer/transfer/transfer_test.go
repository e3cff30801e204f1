// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer_test

import (
	"testing"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/relayer/transfer"
	"github.com/stretchr/testify/suite"
)

type TransitOutcomeTestSuite struct {
	suite.Suite
}

func TestRunTransitOutcomeTestSuite(t *testing.T) {
	suite.Run(t, new(TransitOutcomeTestSuite))
}

func (s *TransitOutcomeTestSuite) Test_Action_Executed() {
	action, err := transfer.NewTransitOutcome(3, true).Action()

	s.Nil(err)
	s.Equal(ledger.ConfirmTransit{ID: 3}, action)
}

func (s *TransitOutcomeTestSuite) Test_Action_Failed() {
	action, err := transfer.NewTransitOutcome(3, false).Action()

	s.Nil(err)
	s.Equal(ledger.CancelTransit{ID: 3}, action)
}

func (s *TransitOutcomeTestSuite) Test_Action_UnknownType() {
	_, err := transfer.TransitOutcome{ID: 3, Type: "lost"}.Action()

	s.NotNil(err)
}

func (s *TransitOutcomeTestSuite) Test_String() {
	s.Equal("transit 7 failed", transfer.NewTransitOutcome(7, false).String())
}
