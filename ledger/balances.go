// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"fmt"
)

// BalanceStore keeps account balances and the total supply.
// Accounts with a zero balance are not stored.
type BalanceStore struct {
	balances    map[AccountID]Amount
	totalSupply Amount
}

func NewBalanceStore() *BalanceStore {
	return &BalanceStore{
		balances: make(map[AccountID]Amount),
	}
}

func (bs *BalanceStore) BalanceOf(who AccountID) Amount {
	return bs.balances[who]
}

func (bs *BalanceStore) TotalSupply() Amount {
	return bs.totalSupply
}

// Mint credits amount to the account and grows the total supply.
func (bs *BalanceStore) Mint(to AccountID, amount Amount) error {
	supply, err := bs.totalSupply.Add(amount)
	if err != nil {
		return fmt.Errorf("minting to %s: %w", to, err)
	}
	balance, err := bs.balances[to].Add(amount)
	if err != nil {
		return fmt.Errorf("minting to %s: %w", to, err)
	}

	bs.set(to, balance)
	bs.totalSupply = supply
	return nil
}

// Burn debits amount from the account and shrinks the total supply.
func (bs *BalanceStore) Burn(from AccountID, amount Amount) error {
	balance, err := bs.debit(from, amount)
	if err != nil {
		return err
	}
	supply, ok := bs.totalSupply.Sub(amount)
	if !ok {
		return fmt.Errorf("burn of %s exceeds total supply %s", amount, bs.totalSupply)
	}

	bs.set(from, balance)
	bs.totalSupply = supply
	return nil
}

// Transfer moves amount between two accounts. A transfer to self only
// checks the balance.
func (bs *BalanceStore) Transfer(from, to AccountID, amount Amount) error {
	fromBalance, err := bs.debit(from, amount)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	toBalance, err := bs.balances[to].Add(amount)
	if err != nil {
		return fmt.Errorf("crediting %s: %w", to, err)
	}

	bs.set(from, fromBalance)
	bs.set(to, toBalance)
	return nil
}

// reserve debits the account without touching the supply; the amount is
// accounted for by a native transit entry from now on.
func (bs *BalanceStore) reserve(from AccountID, amount Amount) error {
	balance, err := bs.debit(from, amount)
	if err != nil {
		return err
	}
	bs.set(from, balance)
	return nil
}

// release credits a previously reserved amount back to the account.
func (bs *BalanceStore) release(to AccountID, amount Amount) error {
	balance, err := bs.balances[to].Add(amount)
	if err != nil {
		return fmt.Errorf("refunding %s: %w", to, err)
	}
	bs.set(to, balance)
	return nil
}

// retire removes a reserved amount from the supply once it left the chain.
func (bs *BalanceStore) retire(amount Amount) error {
	supply, ok := bs.totalSupply.Sub(amount)
	if !ok {
		return fmt.Errorf("retiring %s exceeds total supply %s", amount, bs.totalSupply)
	}
	bs.totalSupply = supply
	return nil
}

func (bs *BalanceStore) debit(from AccountID, amount Amount) (Amount, error) {
	balance, ok := bs.balances[from].Sub(amount)
	if !ok {
		return Amount{}, fmt.Errorf("%w: account %s holds %s, needs %s", ErrInsufficientBalance, from, bs.balances[from], amount)
	}
	return balance, nil
}

func (bs *BalanceStore) set(who AccountID, amount Amount) {
	if amount.IsZero() {
		delete(bs.balances, who)
		return
	}
	bs.balances[who] = amount
}

// Sum adds up every stored balance.
func (bs *BalanceStore) Sum() (Amount, error) {
	sum := ZeroAmount
	for _, b := range bs.balances {
		var err error
		sum, err = sum.Add(b)
		if err != nil {
			return Amount{}, err
		}
	}
	return sum, nil
}
