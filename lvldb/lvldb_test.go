// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb_test

import (
	"testing"

	"github.com/ChainSafe/vara-bridge/lvldb"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"
)

type LvlDBTestSuite struct {
	suite.Suite
	db *lvldb.LVLDB
}

func TestRunLvlDBTestSuite(t *testing.T) {
	suite.Run(t, new(LvlDBTestSuite))
}

func (s *LvlDBTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(s.T().TempDir())
	s.Nil(err)
	s.db = db
}

func (s *LvlDBTestSuite) TearDownTest() {
	s.Nil(s.db.Close())
}

func (s *LvlDBTestSuite) Test_GetByKey_Missing() {
	_, err := s.db.GetByKey([]byte("missing"))

	s.ErrorIs(err, leveldb.ErrNotFound)
}

func (s *LvlDBTestSuite) Test_SetByKey_GetByKey() {
	err := s.db.SetByKey([]byte("key"), []byte("value"))
	s.Nil(err)

	v, err := s.db.GetByKey([]byte("key"))
	s.Nil(err)
	s.Equal([]byte("value"), v)
}

func (s *LvlDBTestSuite) Test_SetBatch_IterateByPrefix() {
	batch := new(leveldb.Batch)
	batch.Put([]byte("A:2"), []byte("two"))
	batch.Put([]byte("A:1"), []byte("one"))
	batch.Put([]byte("B:1"), []byte("other"))
	err := s.db.SetBatch(batch)
	s.Nil(err)

	var values []string
	err = s.db.IterateByPrefix([]byte("A:"), func(key, value []byte) bool {
		values = append(values, string(value))
		return true
	})
	s.Nil(err)
	s.Equal([]string{"one", "two"}, values)
}

func (s *LvlDBTestSuite) Test_IterateByPrefix_Stop() {
	s.Nil(s.db.SetByKey([]byte("A:1"), []byte("one")))
	s.Nil(s.db.SetByKey([]byte("A:2"), []byte("two")))

	calls := 0
	err := s.db.IterateByPrefix([]byte("A:"), func(key, value []byte) bool {
		calls++
		return false
	})
	s.Nil(err)
	s.Equal(1, calls)
}

func (s *LvlDBTestSuite) Test_MemDB() {
	db, err := lvldb.NewMemDB()
	s.Nil(err)
	defer db.Close()

	s.Nil(db.SetByKey([]byte("k"), []byte("v")))
	v, err := db.GetByKey([]byte("k"))
	s.Nil(err)
	s.Equal([]byte("v"), v)
}
