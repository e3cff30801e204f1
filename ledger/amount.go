// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package ledger

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

const amountBits = 128

// Amount is an unsigned 128-bit token quantity.
type Amount struct {
	v uint256.Int
}

var (
	ZeroAmount = Amount{}
	MaxAmount  = func() Amount {
		var a Amount
		a.v.Lsh(uint256.NewInt(1), amountBits)
		a.v.SubUint64(&a.v, 1)
		return a
	}()
)

func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// AmountFromBig converts a big integer, failing if it is negative or wider than 128 bits.
func AmountFromBig(b *big.Int) (Amount, error) {
	var a Amount
	if b == nil {
		return a, nil
	}
	if b.Sign() < 0 {
		return a, fmt.Errorf("negative amount %s", b)
	}
	if b.BitLen() > amountBits {
		return a, fmt.Errorf("%w: %s exceeds 128 bits", ErrOverflow, b)
	}
	a.v.SetFromBig(b)
	return a, nil
}

// ParseAmount parses a base 10 amount.
func ParseAmount(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	return AmountFromBig(b)
}

func (a Amount) Add(o Amount) (Amount, error) {
	var r Amount
	_, overflow := r.v.AddOverflow(&a.v, &o.v)
	if overflow || r.v.BitLen() > amountBits {
		return Amount{}, fmt.Errorf("%w: %s + %s", ErrOverflow, a, o)
	}
	return r, nil
}

// Sub returns a - o and false if o > a.
func (a Amount) Sub(o Amount) (Amount, bool) {
	var r Amount
	if _, underflow := r.v.SubOverflow(&a.v, &o.v); underflow {
		return Amount{}, false
	}
	return r, true
}

func (a Amount) Cmp(o Amount) int {
	return a.v.Cmp(&o.v)
}

func (a Amount) LessThan(o Amount) bool {
	return a.v.Lt(&o.v)
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// Uint64 returns the amount truncated to 64 bits, for metrics only.
func (a Amount) Uint64() uint64 {
	return a.v.Uint64()
}

func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
