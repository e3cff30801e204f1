// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

// Action is a request handled by the ledger on behalf of a caller.
type Action interface {
	// Name identifies the action in logs and metrics.
	Name() string
	// Mutates reports whether a successful action changes state.
	Mutates() bool
	isAction()
}

type Mint struct {
	Amount Amount
}

type Burn struct {
	Amount Amount
}

type Transfer struct {
	From   AccountID
	To     AccountID
	Amount Amount
}

type Approve struct {
	To     AccountID
	Amount Amount
}

type TotalSupply struct{}

type BalanceOf struct {
	Who AccountID
}

// TransferToRemote queues a transfer to an account on the remote chain.
type TransferToRemote struct {
	Destination AccountID
	Amount      Amount
	TokenType   TokenType
}

type ConfirmTransit struct {
	ID TransitID
}

type CancelTransit struct {
	ID TransitID
}

type SetAdmin struct {
	Admin AccountID
}

func (Mint) Name() string             { return "Mint" }
func (Burn) Name() string             { return "Burn" }
func (Transfer) Name() string         { return "Transfer" }
func (Approve) Name() string          { return "Approve" }
func (TotalSupply) Name() string      { return "TotalSupply" }
func (BalanceOf) Name() string        { return "BalanceOf" }
func (TransferToRemote) Name() string { return "TransferToRemote" }
func (ConfirmTransit) Name() string   { return "ConfirmTransit" }
func (CancelTransit) Name() string    { return "CancelTransit" }
func (SetAdmin) Name() string         { return "SetAdmin" }

func (Mint) Mutates() bool             { return true }
func (Burn) Mutates() bool             { return true }
func (Transfer) Mutates() bool         { return true }
func (Approve) Mutates() bool          { return true }
func (TotalSupply) Mutates() bool      { return false }
func (BalanceOf) Mutates() bool        { return false }
func (TransferToRemote) Mutates() bool { return true }
func (ConfirmTransit) Mutates() bool   { return true }
func (CancelTransit) Mutates() bool    { return true }
func (SetAdmin) Mutates() bool         { return true }

func (Mint) isAction()             {}
func (Burn) isAction()             {}
func (Transfer) isAction()         {}
func (Approve) isAction()          {}
func (TotalSupply) isAction()      {}
func (BalanceOf) isAction()        {}
func (TransferToRemote) isAction() {}
func (ConfirmTransit) isAction()   {}
func (CancelTransit) isAction()    {}
func (SetAdmin) isAction()         {}

// Event is emitted by every successful action. Query actions reply with
// their value as an event.
type Event interface {
	isEvent()
}

type TransferEvent struct {
	From   AccountID
	To     AccountID
	Amount Amount
}

type ApproveEvent struct {
	From   AccountID
	To     AccountID
	Amount Amount
}

type TotalSupplyEvent struct {
	Value Amount
}

type BalanceEvent struct {
	Value Amount
}

type TransitQueuedEvent struct {
	ID          TransitID
	Sender      AccountID
	Destination AccountID
	Amount      Amount
	TokenType   TokenType
}

type TransitConfirmedEvent struct {
	ID          TransitID
	Destination AccountID
	Amount      Amount
	TokenType   TokenType
}

type TransitCancelledEvent struct {
	ID        TransitID
	Sender    AccountID
	Amount    Amount
	TokenType TokenType
}

type AdminChangedEvent struct {
	From AccountID
	To   AccountID
}

func (TransferEvent) isEvent()         {}
func (ApproveEvent) isEvent()          {}
func (TotalSupplyEvent) isEvent()      {}
func (BalanceEvent) isEvent()          {}
func (TransitQueuedEvent) isEvent()    {}
func (TransitConfirmedEvent) isEvent() {}
func (TransitCancelledEvent) isEvent() {}
func (AdminChangedEvent) isEvent()     {}
