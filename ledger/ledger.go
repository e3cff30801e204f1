// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"fmt"
)

// Config is set once when the bridge is initialized. Only Admin may change
// afterwards.
type Config struct {
	Name      string
	Symbol    string
	Decimals  uint8
	Admin     AccountID
	MinAmount Amount
}

// Ledger is the bridge token ledger. It is the only mutator of its balance
// store, approval table and transit queue and is not safe for concurrent
// use; callers serialize access.
type Ledger struct {
	config    Config
	balances  *BalanceStore
	approvals *ApprovalTable
	transit   *TransitQueue
	nonce     uint64
}

func New(config Config) *Ledger {
	balances := NewBalanceStore()
	return &Ledger{
		config:    config,
		balances:  balances,
		approvals: NewApprovalTable(),
		transit:   NewTransitQueue(balances, config.MinAmount),
	}
}

// Genesis creates a ledger and mints the genesis supply to the admin.
func Genesis(config Config, supply Amount) (*Ledger, error) {
	l := New(config)
	if supply.IsZero() {
		return l, nil
	}
	if err := l.balances.Mint(config.Admin, supply); err != nil {
		return nil, fmt.Errorf("minting genesis supply: %w", err)
	}
	return l, nil
}

// Handle executes action on behalf of caller. Either the whole action is
// applied and its event returned, or an error is returned and state is
// unchanged.
func (l *Ledger) Handle(caller AccountID, action Action) (Event, error) {
	var (
		evt Event
		err error
	)
	switch a := action.(type) {
	case Mint:
		evt, err = l.mint(caller, a.Amount)
	case Burn:
		evt, err = l.burn(caller, a.Amount)
	case Transfer:
		evt, err = l.transfer(caller, a.From, a.To, a.Amount)
	case Approve:
		l.approvals.Approve(caller, a.To, a.Amount)
		evt = ApproveEvent{From: caller, To: a.To, Amount: a.Amount}
	case TotalSupply:
		return TotalSupplyEvent{Value: l.balances.TotalSupply()}, nil
	case BalanceOf:
		return BalanceEvent{Value: l.balances.BalanceOf(a.Who)}, nil
	case TransferToRemote:
		evt, err = l.transferToRemote(caller, a)
	case ConfirmTransit:
		evt, err = l.confirmTransit(caller, a.ID)
	case CancelTransit:
		evt, err = l.cancelTransit(caller, a.ID)
	case SetAdmin:
		evt, err = l.setAdmin(caller, a.Admin)
	default:
		return nil, fmt.Errorf("unsupported action %T", action)
	}
	if err != nil {
		return nil, err
	}

	l.nonce++
	return evt, nil
}

func (l *Ledger) mint(caller AccountID, amount Amount) (Event, error) {
	if err := l.onlyAdmin(caller, "mint"); err != nil {
		return nil, err
	}
	if err := l.balances.Mint(caller, amount); err != nil {
		return nil, err
	}
	return TransferEvent{From: ZeroAccount, To: caller, Amount: amount}, nil
}

func (l *Ledger) burn(caller AccountID, amount Amount) (Event, error) {
	if err := l.balances.Burn(caller, amount); err != nil {
		return nil, err
	}
	return TransferEvent{From: caller, To: ZeroAccount, Amount: amount}, nil
}

func (l *Ledger) transfer(caller, from, to AccountID, amount Amount) (Event, error) {
	spender := caller != from
	if spender {
		allowance := l.approvals.Allowance(from, caller)
		if allowance.LessThan(amount) {
			return nil, fmt.Errorf("%w: %s may spend %s of %s, requested %s", ErrInsufficientAllowance, caller, allowance, from, amount)
		}
	}
	if err := l.balances.Transfer(from, to, amount); err != nil {
		return nil, err
	}
	if spender {
		// cannot fail, the allowance was checked above
		if err := l.approvals.SpendAllowance(from, caller, amount); err != nil {
			return nil, err
		}
	}
	return TransferEvent{From: from, To: to, Amount: amount}, nil
}

func (l *Ledger) transferToRemote(caller AccountID, a TransferToRemote) (Event, error) {
	id, err := l.transit.Enqueue(caller, a.Destination, a.Amount, a.TokenType)
	if err != nil {
		return nil, err
	}
	return TransitQueuedEvent{
		ID:          id,
		Sender:      caller,
		Destination: a.Destination,
		Amount:      a.Amount,
		TokenType:   a.TokenType,
	}, nil
}

func (l *Ledger) confirmTransit(caller AccountID, id TransitID) (Event, error) {
	if err := l.onlyAdmin(caller, "confirm transit"); err != nil {
		return nil, err
	}
	entry, err := l.transit.Confirm(id)
	if err != nil {
		return nil, err
	}
	return TransitConfirmedEvent{
		ID:          entry.ID,
		Destination: entry.Destination,
		Amount:      entry.Amount,
		TokenType:   entry.TokenType,
	}, nil
}

func (l *Ledger) cancelTransit(caller AccountID, id TransitID) (Event, error) {
	if err := l.onlyAdmin(caller, "cancel transit"); err != nil {
		return nil, err
	}
	entry, err := l.transit.Cancel(id)
	if err != nil {
		return nil, err
	}
	return TransitCancelledEvent{
		ID:        entry.ID,
		Sender:    entry.Sender,
		Amount:    entry.Amount,
		TokenType: entry.TokenType,
	}, nil
}

func (l *Ledger) setAdmin(caller, admin AccountID) (Event, error) {
	if err := l.onlyAdmin(caller, "set admin"); err != nil {
		return nil, err
	}
	l.config.Admin = admin
	return AdminChangedEvent{From: caller, To: admin}, nil
}

func (l *Ledger) onlyAdmin(caller AccountID, op string) error {
	if caller != l.config.Admin {
		return fmt.Errorf("%w: %s is not allowed to %s", ErrUnauthorized, caller, op)
	}
	return nil
}

func (l *Ledger) Config() Config {
	return l.config
}

func (l *Ledger) BalanceOf(who AccountID) Amount {
	return l.balances.BalanceOf(who)
}

func (l *Ledger) TotalSupply() Amount {
	return l.balances.TotalSupply()
}

func (l *Ledger) Allowance(owner, spender AccountID) Amount {
	return l.approvals.Allowance(owner, spender)
}

func (l *Ledger) Transit() *TransitQueue {
	return l.transit
}

// Nonce counts the mutating actions committed so far.
func (l *Ledger) Nonce() uint64 {
	return l.nonce
}

// CheckInvariant verifies that the total supply equals the balances plus
// the native amounts in transit.
func (l *Ledger) CheckInvariant() error {
	balances, err := l.balances.Sum()
	if err != nil {
		return err
	}
	inTransit, err := l.transit.NativeInTransit()
	if err != nil {
		return err
	}
	accounted, err := balances.Add(inTransit)
	if err != nil {
		return err
	}
	if accounted != l.balances.TotalSupply() {
		return fmt.Errorf("supply mismatch: total supply %s, balances %s, native in transit %s", l.balances.TotalSupply(), balances, inTransit)
	}
	return nil
}
