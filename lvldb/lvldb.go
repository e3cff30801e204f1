// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type LVLDB struct {
	db *leveldb.DB
}

// NewLvlDB opens (or creates) the database at path.
func NewLvlDB(path string) (*LVLDB, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}
	return &LVLDB{db: ldb}, nil
}

// NewMemDB returns a database backed by memory storage.
func NewMemDB() (*LVLDB, error) {
	ldb, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.Open fail")
	}
	return &LVLDB{db: ldb}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	return db.db.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	return db.db.Put(key, value, &opt.WriteOptions{Sync: true})
}

// SetBatch atomically applies every write in batch.
func (db *LVLDB) SetBatch(batch *leveldb.Batch) error {
	err := db.db.Write(batch, &opt.WriteOptions{Sync: true})
	if err != nil {
		return errors.Wrap(err, "levelDB.Write fail")
	}
	return nil
}

// IterateByPrefix calls fn for every key starting with prefix in key order
// until fn returns false.
func (db *LVLDB) IterateByPrefix(prefix []byte, fn func(key, value []byte) bool) error {
	iter := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		if !fn(iter.Key(), iter.Value()) {
			break
		}
	}
	return errors.Wrap(iter.Error(), "levelDB iterator fail")
}

func (db *LVLDB) Close() error {
	return db.db.Close()
}
