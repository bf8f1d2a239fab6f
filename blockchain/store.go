// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// Store is the persistent UTXO-set and undo-archive abstraction the
// engine consumes. It is transactional at block granularity: every
// top-level engine operation brackets its mutations in
// BeginBatch/CommitBatch, aborting on any failure. Nesting a second
// batch while one is open is not supported.
type Store interface {
	// BeginBatch starts a write transaction.
	BeginBatch() er.R

	// CommitBatch atomically publishes all pending mutations.
	CommitBatch() er.R

	// AbortBatch discards all pending mutations since the last
	// BeginBatch.
	AbortBatch() er.R

	// GetOutput looks up an output from the current UTXO set,
	// reflecting any writes made earlier in the open batch. ok is
	// false if no such output is unspent.
	GetOutput(txid chainhash.Hash, index uint32) (out StoredOutput, ok bool, err er.R)

	// AddUnspentOutput inserts out into the UTXO set. A duplicate key
	// is a store error: it should never occur if the engine is correct
	// and BIP30 holds.
	AddUnspentOutput(out StoredOutput) er.R

	// RemoveUnspentOutput deletes the entry keyed by out's (txid,
	// index).
	RemoveUnspentOutput(out StoredOutput) er.R

	// HasUnspentOutputs reports whether at least one output with the
	// given txid is currently unspent. expectedCount lets the store
	// short-circuit once that many have been found; used only for the
	// BIP30 check, which only needs a yes/no answer.
	HasUnspentOutputs(txid chainhash.Hash, expectedCount int) (bool, er.R)

	// PutUndo records block and its undo information, keyed by
	// block.Hash.
	PutUndo(block StoredBlock, undo StoredUndoableBlock) er.R

	// GetUndo fetches the undo record for blockHash. ok is false if
	// the block is unknown or its undo data has been pruned.
	GetUndo(blockHash chainhash.Hash) (undo StoredUndoableBlock, ok bool, err er.R)
}
