// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
)

type OutcomeType string

const (
	ExecutedOutcome OutcomeType = "executed"
	FailedOutcome   OutcomeType = "failed"
)

// TransitOutcome is the result of delivering a transit entry on the remote
// chain as reported by a relayer.
type TransitOutcome struct {
	ID   ledger.TransitID
	Type OutcomeType
}

func NewTransitOutcome(id ledger.TransitID, executed bool) TransitOutcome {
	if executed {
		return TransitOutcome{ID: id, Type: ExecutedOutcome}
	}
	return TransitOutcome{ID: id, Type: FailedOutcome}
}

// Action returns the ledger action settling the transit entry.
func (o TransitOutcome) Action() (ledger.Action, error) {
	switch o.Type {
	case ExecutedOutcome:
		return ledger.ConfirmTransit{ID: o.ID}, nil
	case FailedOutcome:
		return ledger.CancelTransit{ID: o.ID}, nil
	default:
		return nil, fmt.Errorf("unknown outcome type %s", o.Type)
	}
}

func (o TransitOutcome) String() string {
	return fmt.Sprintf("transit %d %s", o.ID, o.Type)
}
