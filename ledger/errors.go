// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"errors"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrOverflow              = errors.New("amount overflow")
	ErrBelowMinimum          = errors.New("amount below bridge minimum")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("transit entry not found")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInsufficientBalance, "InsufficientBalance"},
	{ErrInsufficientAllowance, "InsufficientAllowance"},
	{ErrOverflow, "Overflow"},
	{ErrBelowMinimum, "BelowMinimum"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrNotFound, "NotFound"},
}

// ErrorKind returns the ledger error kind wrapped by err, or "Internal"
// for errors that did not originate in the ledger.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}
