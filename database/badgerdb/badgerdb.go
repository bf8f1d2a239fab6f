// Package badgerdb registers a database.Driver backed by
// github.com/dgraph-io/badger/v4, the persistent KV engine this module
// uses for the UTXO set and undo archive. Adapted from the Badger
// wrapper of a from-scratch UTXO chain in the retrieval pack, but
// reshaped around badger.Txn directly (rather than one-shot View/Update
// calls per operation) so a single database.Tx can batch an entire
// block's mutations and still observe its own writes mid-block, per
// this module's begin_batch/commit_batch/abort_batch contract.
package badgerdb

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"

	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/database"
)

const dbType = "badgerdb"

func init() {
	if err := database.RegisterDriver(database.Driver{
		DbType: dbType,
		Create: createDB,
		Open:   openDB,
	}); err != nil {
		panic("failed to register badgerdb driver: " + err.String())
	}
}

// DbType is the name this driver is registered under.
const DbType = dbType

type badgerDB struct {
	db *badger.DB
}

func createDB(args ...interface{}) (database.DB, er.R) {
	return openOrCreate(args...)
}

func openDB(args ...interface{}) (database.DB, er.R) {
	return openOrCreate(args...)
}

func openOrCreate(args ...interface{}) (database.DB, er.R) {
	if len(args) != 1 {
		return nil, er.Errorf("badgerdb: expected exactly one argument (path), got %d", len(args))
	}
	path, ok := args[0].(string)
	if !ok {
		return nil, er.Errorf("badgerdb: argument must be a directory path string")
	}
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, er.E(err)
	}
	return &badgerDB{db: db}, nil
}

func (b *badgerDB) Begin(writable bool) (database.Tx, er.R) {
	return &badgerTx{txn: b.db.NewTransaction(writable), writable: writable}, nil
}

func (b *badgerDB) Close() er.R {
	if err := b.db.Close(); err != nil {
		return er.E(err)
	}
	return nil
}

type badgerTx struct {
	txn      *badger.Txn
	writable bool
	closed   bool
}

func (tx *badgerTx) checkOpen() er.R {
	if tx.closed {
		return database.ErrTxClosed.New("", nil)
	}
	return nil
}

func (tx *badgerTx) Writable() bool {
	return tx.writable
}

func (tx *badgerTx) Get(key []byte) ([]byte, bool, er.R) {
	if err := tx.checkOpen(); err != nil {
		return nil, false, err
	}
	item, err := tx.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, er.E(err)
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, false, er.E(err)
	}
	return val, true, nil
}

func (tx *badgerTx) Put(key []byte, value []byte) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	if !tx.writable {
		return database.ErrTxNotWritable.New("", nil)
	}
	if len(key) == 0 {
		return database.ErrKeyRequired.New("", nil)
	}
	if err := tx.txn.Set(key, value); err != nil {
		return er.E(err)
	}
	return nil
}

func (tx *badgerTx) Delete(key []byte) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	if !tx.writable {
		return database.ErrTxNotWritable.New("", nil)
	}
	if err := tx.txn.Delete(key); err != nil {
		return er.E(err)
	}
	return nil
}

func (tx *badgerTx) Has(prefix []byte) (bool, er.R) {
	if err := tx.checkOpen(); err != nil {
		return false, err
	}
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := tx.txn.NewIterator(opts)
	defer it.Close()
	it.Seek(prefix)
	return it.ValidForPrefix(prefix), nil
}

func (tx *badgerTx) ForEach(prefix []byte, fn func(key, value []byte) er.R) er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := tx.txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		val, err := item.ValueCopy(nil)
		if err != nil {
			return er.E(err)
		}
		if rerr := fn(bytes.Clone(key), val); rerr != nil {
			if er.IsLoopBreak(rerr) {
				break
			}
			return rerr
		}
	}
	return nil
}

func (tx *badgerTx) Commit() er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	tx.closed = true
	if err := tx.txn.Commit(); err != nil {
		return er.E(err)
	}
	return nil
}

func (tx *badgerTx) Rollback() er.R {
	if err := tx.checkOpen(); err != nil {
		return err
	}
	tx.closed = true
	tx.txn.Discard()
	return nil
}
