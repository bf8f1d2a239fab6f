// Package utxostore is the concrete Store: blockchain.Store
// implemented over a single database.DB, keyed by two one-byte
// prefixes: 'u' for unspent outputs and 'd' for undo records.
package utxostore

import (
	"github.com/nodecore/utxochain/blockchain"
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
	"github.com/nodecore/utxochain/database"
)

const (
	utxoPrefix = 'u'
	undoPrefix = 'd'
)

// Store is a blockchain.Store backed by a single database.DB. Exactly
// one batch (database.Tx) may be open at a time, matching the engine's
// own single-batch-at-a-time usage.
type Store struct {
	db database.DB
	tx database.Tx
}

// New wraps db as a blockchain.Store.
func New(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) BeginBatch() er.R {
	if s.tx != nil {
		return er.New("utxostore: batch already open")
	}
	tx, err := s.db.Begin(true)
	if err != nil {
		return err
	}
	s.tx = tx
	return nil
}

func (s *Store) CommitBatch() er.R {
	if s.tx == nil {
		return er.New("utxostore: no open batch to commit")
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit()
}

func (s *Store) AbortBatch() er.R {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback()
}

func (s *Store) GetOutput(txid chainhash.Hash, index uint32) (blockchain.StoredOutput, bool, er.R) {
	val, ok, err := s.tx.Get(utxoKey(txid, index))
	if err != nil || !ok {
		return blockchain.StoredOutput{}, false, err
	}
	out, derr := decodeOutputValue(txid, index, val)
	if derr != nil {
		return blockchain.StoredOutput{}, false, derr
	}
	return out, true, nil
}

func (s *Store) AddUnspentOutput(out blockchain.StoredOutput) er.R {
	log.Tracef("add unspent output %s:%d", out.TxID, out.Index)
	key := utxoKey(out.TxID, out.Index)
	_, exists, err := s.tx.Get(key)
	if err != nil {
		return err
	}
	if exists {
		return er.Errorf("utxostore: unspent output %s:%d already exists", out.TxID, out.Index)
	}
	return s.tx.Put(key, encodeOutputValue(out))
}

func (s *Store) RemoveUnspentOutput(out blockchain.StoredOutput) er.R {
	log.Tracef("remove unspent output %s:%d", out.TxID, out.Index)
	return s.tx.Delete(utxoKey(out.TxID, out.Index))
}

func (s *Store) HasUnspentOutputs(txid chainhash.Hash, expectedCount int) (bool, er.R) {
	return s.tx.Has(utxoTxPrefix(txid))
}

func (s *Store) PutUndo(block blockchain.StoredBlock, undo blockchain.StoredUndoableBlock) er.R {
	log.Tracef("put undo for block %s at height %d", block.Hash, block.Height)
	return s.tx.Put(undoKey(block.Hash), encodeUndo(undo))
}

func (s *Store) GetUndo(blockHash chainhash.Hash) (blockchain.StoredUndoableBlock, bool, er.R) {
	val, ok, err := s.tx.Get(undoKey(blockHash))
	if err != nil || !ok {
		return blockchain.StoredUndoableBlock{}, false, err
	}
	undo, derr := decodeUndo(val)
	if derr != nil {
		return blockchain.StoredUndoableBlock{}, false, derr
	}
	return undo, true, nil
}

var _ blockchain.Store = (*Store)(nil)
