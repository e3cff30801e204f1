// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"fmt"
	"iter"
	"math"

	"golang.org/x/exp/slices"
)

// TransitID is the sequence number of a transit entry. Ids start at 1 and
// are never reused.
type TransitID uint64

// TokenType tells whether a transit moves the bridge's native token or
// records a claim on an asset held on the remote chain.
type TokenType struct {
	IsWrapped bool
	// Asset references the remote asset when IsWrapped is set.
	Asset AccountID
}

func NativeToken() TokenType {
	return TokenType{}
}

func WrappedToken(asset AccountID) TokenType {
	return TokenType{IsWrapped: true, Asset: asset}
}

func (t TokenType) String() string {
	if t.IsWrapped {
		return fmt.Sprintf("Wrap(%s)", t.Asset)
	}
	return "Native"
}

// TransitEntry is a cross-chain transfer waiting for the remote side.
type TransitEntry struct {
	ID          TransitID
	Sender      AccountID
	Destination AccountID
	Amount      Amount
	TokenType   TokenType
}

// TransitQueue keeps pending cross-chain transfers in request order.
type TransitQueue struct {
	balances  *BalanceStore
	minAmount Amount
	entries   []TransitEntry
	nextID    TransitID
}

func NewTransitQueue(balances *BalanceStore, minAmount Amount) *TransitQueue {
	return &TransitQueue{
		balances:  balances,
		minAmount: minAmount,
		nextID:    1,
	}
}

// Enqueue appends a transit entry. Native transfers are debited from the
// sender first; nothing is queued if the debit fails.
func (tq *TransitQueue) Enqueue(sender, destination AccountID, amount Amount, tokenType TokenType) (TransitID, error) {
	if amount.LessThan(tq.minAmount) {
		return 0, fmt.Errorf("%w: %s < %s", ErrBelowMinimum, amount, tq.minAmount)
	}
	if tq.nextID == math.MaxUint64 {
		return 0, fmt.Errorf("%w: transit sequence exhausted", ErrOverflow)
	}
	if !tokenType.IsWrapped {
		if err := tq.balances.reserve(sender, amount); err != nil {
			return 0, err
		}
	}

	id := tq.nextID
	tq.nextID++
	tq.entries = append(tq.entries, TransitEntry{
		ID:          id,
		Sender:      sender,
		Destination: destination,
		Amount:      amount,
		TokenType:   tokenType,
	})
	return id, nil
}

// Confirm finalizes a transit. A native amount is retired from the supply
// since it now lives on the remote chain; balances are left as they are.
func (tq *TransitQueue) Confirm(id TransitID) (TransitEntry, error) {
	i, err := tq.index(id)
	if err != nil {
		return TransitEntry{}, err
	}
	entry := tq.entries[i]
	if !entry.TokenType.IsWrapped {
		if err := tq.balances.retire(entry.Amount); err != nil {
			return TransitEntry{}, err
		}
	}
	tq.entries = slices.Delete(tq.entries, i, i+1)
	return entry, nil
}

// Cancel drops a transit and refunds native amounts to the sender.
func (tq *TransitQueue) Cancel(id TransitID) (TransitEntry, error) {
	i, err := tq.index(id)
	if err != nil {
		return TransitEntry{}, err
	}
	entry := tq.entries[i]
	if !entry.TokenType.IsWrapped {
		if err := tq.balances.release(entry.Sender, entry.Amount); err != nil {
			return TransitEntry{}, err
		}
	}
	tq.entries = slices.Delete(tq.entries, i, i+1)
	return entry, nil
}

func (tq *TransitQueue) Get(id TransitID) (TransitEntry, bool) {
	i, err := tq.index(id)
	if err != nil {
		return TransitEntry{}, false
	}
	return tq.entries[i], true
}

// PendingFor yields queued entries sent by or addressed to account. The
// sequence reads the queue as it is when iterated.
func (tq *TransitQueue) PendingFor(account AccountID) iter.Seq[TransitEntry] {
	return func(yield func(TransitEntry) bool) {
		for _, e := range tq.entries {
			if e.Sender != account && e.Destination != account {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a copy of the queue in request order.
func (tq *TransitQueue) Entries() []TransitEntry {
	return slices.Clone(tq.entries)
}

func (tq *TransitQueue) Len() int {
	return len(tq.entries)
}

func (tq *TransitQueue) NextID() TransitID {
	return tq.nextID
}

// NativeInTransit sums the amounts of native entries still queued.
func (tq *TransitQueue) NativeInTransit() (Amount, error) {
	sum := ZeroAmount
	for _, e := range tq.entries {
		if e.TokenType.IsWrapped {
			continue
		}
		var err error
		sum, err = sum.Add(e.Amount)
		if err != nil {
			return Amount{}, err
		}
	}
	return sum, nil
}

func (tq *TransitQueue) index(id TransitID) (int, error) {
	i := slices.IndexFunc(tq.entries, func(e TransitEntry) bool { return e.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return i, nil
}
