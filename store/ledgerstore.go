// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/syndtr/goleveldb/leveldb"
)

var (
	STATE_KEY    = "LEDGER:STATE"
	EVENT_PREFIX = "LEDGER:EVENT:"
	EVENT_KEY    = EVENT_PREFIX + "%020d"
)

// DecodeError is returned when a stored value can not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// JournalEntry is an event recorded by the mutation with the given nonce.
type JournalEntry struct {
	Nonce uint64
	Event ledger.Event
}

type LedgerStore struct {
	db KeyValueReaderWriter
}

func NewLedgerStore(db KeyValueReaderWriter) *LedgerStore {
	return &LedgerStore{
		db: db,
	}
}

// LoadState returns the last committed state. The boolean is false when
// nothing was stored yet.
func (ls *LedgerStore) LoadState() (ledger.State, bool, error) {
	v, err := ls.db.GetByKey([]byte(STATE_KEY))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return ledger.State{}, false, nil
		}
		return ledger.State{}, false, err
	}

	var s message.LedgerState
	if err := message.Decode(v, &s); err != nil {
		return ledger.State{}, false, &DecodeError{Key: STATE_KEY, Err: err}
	}
	return s.State, true, nil
}

// StoreState writes state without a journal entry.
func (ls *LedgerStore) StoreState(state ledger.State) error {
	v, err := message.Encode(message.LedgerState{State: state})
	if err != nil {
		return err
	}
	return ls.db.SetByKey([]byte(STATE_KEY), v)
}

// Commit atomically writes state together with the event produced by the
// mutation that led to it. The event is keyed by the state nonce.
func (ls *LedgerStore) Commit(state ledger.State, evt ledger.Event) error {
	s, err := message.Encode(message.LedgerState{State: state})
	if err != nil {
		return err
	}
	e, err := message.EncodeEvent(evt)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Put([]byte(STATE_KEY), s)
	batch.Put([]byte(fmt.Sprintf(EVENT_KEY, state.Nonce)), e)
	return ls.db.SetBatch(batch)
}

// Events returns journal entries with a nonce of at least from, oldest
// first, at most limit of them. A zero limit means no limit.
func (ls *LedgerStore) Events(from uint64, limit int) ([]JournalEntry, error) {
	entries := make([]JournalEntry, 0)
	var decodeErr error
	err := ls.db.IterateByPrefix([]byte(EVENT_PREFIX), func(key, value []byte) bool {
		nonce, err := strconv.ParseUint(strings.TrimPrefix(string(key), EVENT_PREFIX), 10, 64)
		if err != nil {
			decodeErr = &DecodeError{Key: string(key), Err: err}
			return false
		}
		if nonce < from {
			return true
		}

		evt, err := message.DecodeEvent(value)
		if err != nil {
			decodeErr = &DecodeError{Key: string(key), Err: err}
			return false
		}
		entries = append(entries, JournalEntry{Nonce: nonce, Event: evt})
		return limit <= 0 || len(entries) < limit
	})
	if err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return entries, nil
}
