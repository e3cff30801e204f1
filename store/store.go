// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"github.com/syndtr/goleveldb/leveldb"
)

type KeyValueReader interface {
	GetByKey(key []byte) ([]byte, error)
	IterateByPrefix(prefix []byte, fn func(key, value []byte) bool) error
}

type KeyValueWriter interface {
	SetByKey(key []byte, value []byte) error
	SetBatch(batch *leveldb.Batch) error
}

type KeyValueReaderWriter interface {
	KeyValueReader
	KeyValueWriter
}
