// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/syndtr/goleveldb/leveldb"
)

type TransitStatus string

var (
	TRANSIT_KEY                    = "TRANSIT:STATUS:%d"
	MissingTransit   TransitStatus = "missing"
	PendingTransit   TransitStatus = "pending"
	ConfirmedTransit TransitStatus = "confirmed"
	CancelledTransit TransitStatus = "cancelled"
)

// Settled reports whether the transit reached a final status.
func (s TransitStatus) Settled() bool {
	return s == ConfirmedTransit || s == CancelledTransit
}

type TransitStore struct {
	db KeyValueReaderWriter
}

func NewTransitStore(db KeyValueReaderWriter) *TransitStore {
	return &TransitStore{
		db: db,
	}
}

// StoreTransitStatus stores the relay status of a transit entry
func (ts *TransitStore) StoreTransitStatus(id ledger.TransitID, status TransitStatus) error {
	key := bytes.Buffer{}
	key.WriteString(fmt.Sprintf(TRANSIT_KEY, id))

	return ts.db.SetByKey(key.Bytes(), []byte(status))
}

func (ts *TransitStore) TransitStatus(id ledger.TransitID) (TransitStatus, error) {
	key := bytes.Buffer{}
	key.WriteString(fmt.Sprintf(TRANSIT_KEY, id))

	v, err := ts.db.GetByKey(key.Bytes())
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingTransit, nil
		}
		return MissingTransit, err
	}

	return TransitStatus(string(v)), nil
}
