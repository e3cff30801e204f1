// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"
)

type BalanceRecord struct {
	Account AccountID
	Amount  Amount
}

type AllowanceRecord struct {
	Owner   AccountID
	Spender AccountID
	Amount  Amount
}

// State is everything needed to restore a ledger. Balances and allowances
// are sorted by account so equal ledgers produce equal states.
type State struct {
	Config        Config
	TotalSupply   Amount
	Balances      []BalanceRecord
	Allowances    []AllowanceRecord
	TransitQueue  []TransitEntry
	NextTransitID TransitID
	Nonce         uint64
}

// Snapshot is the publicly queryable view of the bridge.
type Snapshot struct {
	MinAmount    Amount
	Admin        AccountID
	TotalSupply  Amount
	TransitQueue []TransitEntry
}

func (l *Ledger) State() State {
	balances := make([]BalanceRecord, 0, len(l.balances.balances))
	for account, amount := range l.balances.balances {
		balances = append(balances, BalanceRecord{Account: account, Amount: amount})
	}
	slices.SortFunc(balances, func(a, b BalanceRecord) int {
		return bytes.Compare(a.Account[:], b.Account[:])
	})

	allowances := make([]AllowanceRecord, 0, len(l.approvals.allowances))
	for key, amount := range l.approvals.allowances {
		allowances = append(allowances, AllowanceRecord{Owner: key.Owner, Spender: key.Spender, Amount: amount})
	}
	slices.SortFunc(allowances, func(a, b AllowanceRecord) int {
		if c := bytes.Compare(a.Owner[:], b.Owner[:]); c != 0 {
			return c
		}
		return bytes.Compare(a.Spender[:], b.Spender[:])
	})

	return State{
		Config:        l.config,
		TotalSupply:   l.balances.totalSupply,
		Balances:      balances,
		Allowances:    allowances,
		TransitQueue:  l.transit.Entries(),
		NextTransitID: l.transit.nextID,
		Nonce:         l.nonce,
	}
}

func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		MinAmount:    l.config.MinAmount,
		Admin:        l.config.Admin,
		TotalSupply:  l.balances.totalSupply,
		TransitQueue: l.transit.Entries(),
	}
}

// FromState rebuilds a ledger from a persisted state and rejects states
// that break the supply invariant or reuse transit ids.
func FromState(s State) (*Ledger, error) {
	l := New(s.Config)
	for _, b := range s.Balances {
		l.balances.set(b.Account, b.Amount)
	}
	l.balances.totalSupply = s.TotalSupply
	for _, a := range s.Allowances {
		l.approvals.Approve(a.Owner, a.Spender, a.Amount)
	}

	var last TransitID
	for _, e := range s.TransitQueue {
		if e.ID <= last || e.ID >= s.NextTransitID {
			return nil, fmt.Errorf("transit entry %d out of sequence (next id %d)", e.ID, s.NextTransitID)
		}
		last = e.ID
	}
	l.transit.entries = slices.Clone(s.TransitQueue)
	if s.NextTransitID > 0 {
		l.transit.nextID = s.NextTransitID
	}
	l.nonce = s.Nonce

	if err := l.CheckInvariant(); err != nil {
		return nil, err
	}
	return l, nil
}
