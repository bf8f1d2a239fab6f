// Package memdb registers an in-process, map-backed database.Driver.
// Useful for tests and for short-lived tooling that has no disk to put
// a Badger directory on; never the right choice for a long-running node
// since nothing here survives a restart.
package memdb

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/database"
)

const dbType = "memdb"

// DbType is the name this driver is registered under.
const DbType = dbType

func init() {
	if err := database.RegisterDriver(database.Driver{
		DbType: dbType,
		Create: newDB,
		Open:   newDB,
	}); err != nil {
		panic("failed to register memdb driver: " + err.String())
	}
}

func newDB(args ...interface{}) (database.DB, er.R) {
	return &memDB{data: make(map[string][]byte)}, nil
}

// memDB is the shared committed state; individual batches see it
// through a memTx overlay until they commit.
type memDB struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (d *memDB) Begin(writable bool) (database.Tx, er.R) {
	d.mu.Lock()
	defer d.mu.Unlock()
	snapshot := make(map[string][]byte, len(d.data))
	for k, v := range d.data {
		snapshot[k] = v
	}
	return &memTx{
		db:       d,
		base:     snapshot,
		writable: writable,
		puts:     make(map[string][]byte),
		deletes:  make(map[string]bool),
	}, nil
}

func (d *memDB) Close() er.R {
	return nil
}

// memTx is a single batch: reads check puts/deletes first, then fall
// back to the snapshot taken at Begin, giving read-your-own-writes
// without letting a concurrent writer's commit leak into this batch.
type memTx struct {
	db       *memDB
	base     map[string][]byte
	writable bool
	puts     map[string][]byte
	deletes  map[string]bool
	closed   bool
}

func (tx *memTx) checkOpen() er.R {
	if tx.closed {
		return database.ErrTxClosed.New("", nil)
	}
	return nil
}

func (tx *memTx) Writable() bool {
	return tx.writable
}

func (tx *memTx) Get(key []byte) ([]byte, bool, er.R) {
	if err := tx.checkOpen(); err != nil {
		return nil, false, err
	}
	k := string(key)
	if tx.deletes[k] {
		return nil, false, nil
	}
	if v, ok := tx.puts[k]; ok {
		return v, true, nil
	}
	if v, ok := tx.base[k]; ok {
		return v, true, nil
	}
	return nil, false, nil
}

func (tx *memTx) Put(key []byte, value []byte) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	if !tx.writable {
		return database.ErrTxNotWritable.New("", nil)
	}
	if len(key) == 0 {
		return database.ErrKeyRequired.New("", nil)
	}
	k := string(key)
	delete(tx.deletes, k)
	tx.puts[k] = bytes.Clone(value)
	return nil
}

func (tx *memTx) Delete(key []byte) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	if !tx.writable {
		return database.ErrTxNotWritable.New("", nil)
	}
	k := string(key)
	delete(tx.puts, k)
	tx.deletes[k] = true
	return nil
}

func (tx *memTx) Has(prefix []byte) (bool, er.R) {
	if err := tx.checkOpen(); err != nil {
		return false, err
	}
	found := false
	err := tx.ForEach(prefix, func(key, value []byte) er.R {
		found = true
		return er.LoopBreak
	})
	return found, err
}

func (tx *memTx) ForEach(prefix []byte, fn func(key, value []byte) er.R) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	p := string(prefix)
	seen := make(map[string]bool, len(tx.puts)+len(tx.base))
	var keys []string
	for k := range tx.puts {
		if strings.HasPrefix(k, p) {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for k := range tx.base {
		if !seen[k] && !tx.deletes[k] && strings.HasPrefix(k, p) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, ok := tx.puts[k]
		if !ok {
			v = tx.base[k]
		}
		if err := fn([]byte(k), v); err != nil {
			if er.IsLoopBreak(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (tx *memTx) Commit() er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	tx.closed = true
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	for k := range tx.deletes {
		delete(tx.db.data, k)
	}
	for k, v := range tx.puts {
		tx.db.data[k] = v
	}
	return nil
}

func (tx *memTx) Rollback() er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	tx.closed = true
	return nil
}
