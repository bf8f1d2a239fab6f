// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/nodecore/utxochain/btcutil/er"

// DisconnectBlock reverses oldBlock's effect on the UTXO set using its
// undo record. Leaves the batch open for the chain-selector to commit.
//
// Known limitation: disconnect relies only on the delta, not on any
// BIP30-era ambiguity, and is therefore incorrect for any historical
// block that legitimately created a duplicate coinbase then was itself
// reversed. Every such block lies in the checkpoint table; callers must
// enforce, via that table, that reorgs never cross it.
func (e *Engine) DisconnectBlock(oldBlock StoredBlock) er.R {
	if err := e.store.BeginBatch(); err != nil {
		return NewStoreError(err)
	}
	g := newBatchGuard(e.store)
	defer g.close()

	undo, ok, err := e.store.GetUndo(oldBlock.Hash)
	if err != nil {
		return NewStoreError(err)
	}
	if !ok {
		return NewPrunedError(oldBlock.Hash)
	}

	// Connect always archives the pruned delta, never the full
	// transaction list, so a KindFull record here means some caller used
	// AddToStoreFull to archive a side-branch block and then tried to
	// disconnect it without ever having connected it: a misuse of the
	// engine, not a case disconnect can recover from, since the delta of
	// inputs a never-applied block would have spent does not exist.
	if undo.Kind() != KindPruned {
		return AssertError("disconnect: undo record for " + oldBlock.Hash.String() + " is not a pruned delta")
	}
	changes := undo.Changes()

	for _, out := range changes.Spent {
		if err := e.store.AddUnspentOutput(out); err != nil {
			return NewStoreError(err)
		}
	}
	for _, out := range changes.Created {
		if err := e.store.RemoveUnspentOutput(out); err != nil {
			return NewStoreError(err)
		}
	}

	g.arm()
	return nil
}
