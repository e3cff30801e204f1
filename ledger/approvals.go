// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"fmt"
)

type allowanceKey struct {
	Owner   AccountID
	Spender AccountID
}

// ApprovalTable holds what each spender may move on behalf of an owner.
// A zero allowance is never stored.
type ApprovalTable struct {
	allowances map[allowanceKey]Amount
}

func NewApprovalTable() *ApprovalTable {
	return &ApprovalTable{
		allowances: make(map[allowanceKey]Amount),
	}
}

// Approve replaces the allowance of spender over owner's funds.
func (at *ApprovalTable) Approve(owner, spender AccountID, amount Amount) {
	key := allowanceKey{Owner: owner, Spender: spender}
	if amount.IsZero() {
		delete(at.allowances, key)
		return
	}
	at.allowances[key] = amount
}

func (at *ApprovalTable) Allowance(owner, spender AccountID) Amount {
	return at.allowances[allowanceKey{Owner: owner, Spender: spender}]
}

// SpendAllowance decrements the allowance or fails without changing it.
func (at *ApprovalTable) SpendAllowance(owner, spender AccountID, amount Amount) error {
	current := at.Allowance(owner, spender)
	remaining, ok := current.Sub(amount)
	if !ok {
		return fmt.Errorf("%w: %s may spend %s of %s, requested %s", ErrInsufficientAllowance, spender, current, owner, amount)
	}
	at.Approve(owner, spender, remaining)
	return nil
}
