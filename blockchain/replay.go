// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/nodecore/utxochain/btcutil/er"

// ReplaySideBlock applies stored, a block previously seen on a side
// branch, forward. If the archived record retains the full transaction
// list, it is re-verified under the same rules Connect uses (so that
// activation-time, sigop-budget, and fee-balance invariants still hold
// under the now-longer chain prefix). If only the pruned delta
// survives, it is trusted and replayed directly, guarded by a BIP30
// check against the store's current state. Fails with a PrunedError if
// even the delta has been discarded.
func (e *Engine) ReplaySideBlock(stored StoredBlock) (TxOutputChanges, er.R) {
	if !e.cfg.Params.Passes(stored.Height, stored.Hash) {
		return TxOutputChanges{}, ErrCheckpointMismatch.New(stored.Hash.String(), nil)
	}

	if err := e.store.BeginBatch(); err != nil {
		return TxOutputChanges{}, NewStoreError(err)
	}
	g := newBatchGuard(e.store)
	defer g.close()

	undo, ok, err := e.store.GetUndo(stored.Hash)
	if err != nil {
		return TxOutputChanges{}, NewStoreError(err)
	}
	if !ok {
		return TxOutputChanges{}, NewPrunedError(stored.Hash)
	}

	var changes TxOutputChanges
	if undo.Kind() == KindFull {
		txs := make([]txForVerify, 0, len(undo.Transactions()))
		for _, tx := range undo.Transactions() {
			txs = append(txs, txForVerifyFromStored(tx))
		}
		changes, err = verifyTransactions(
			e.store, e.cfg.Params, e.verify(),
			stored.Height, stored.Timestamp,
			e.cfg.Params.IsCheckpoint(stored.Height),
			txs,
		)
		if err != nil {
			return TxOutputChanges{}, err
		}
	} else {
		delta := undo.Changes()
		if !e.cfg.Params.IsCheckpoint(stored.Height) {
			for _, out := range delta.Created {
				exists, err := e.store.HasUnspentOutputs(out.TxID, 1)
				if err != nil {
					return TxOutputChanges{}, NewStoreError(err)
				}
				if exists {
					return TxOutputChanges{}, ErrBIP30Duplicate.New(out.TxID.String(), nil)
				}
			}
		}
		for _, out := range delta.Created {
			if err := e.store.AddUnspentOutput(out); err != nil {
				return TxOutputChanges{}, NewStoreError(err)
			}
		}
		for _, out := range delta.Spent {
			if err := e.store.RemoveUnspentOutput(out); err != nil {
				return TxOutputChanges{}, NewStoreError(err)
			}
		}
		changes = delta
	}

	g.arm()
	return changes, nil
}
