// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/wire"
)

// AddToStoreWithUndo archives header as prev's successor, recording
// delta as its undo record without touching the UTXO set. Used by the
// chain-selector to attach a side-branch block whose delta it already
// knows (e.g. recomputed from a just-disconnected main-chain block of
// the same height during a reorg), deferring its application until the
// branch is chosen via ConnectStored. ConnectStored trusts such a delta:
// it is applied as stored, guarded only by a BIP30 check.
func (e *Engine) AddToStoreWithUndo(prev StoredBlock, header wire.BlockHeader, delta TxOutputChanges) (StoredBlock, er.R) {
	if err := e.store.BeginBatch(); err != nil {
		return StoredBlock{}, NewStoreError(err)
	}
	g := newBatchGuard(e.store)
	defer g.close()

	stored := StoredBlock{
		Hash:      header.BlockHash(),
		Height:    prev.Height + 1,
		Timestamp: header.Timestamp.Unix(),
	}
	if err := e.store.PutUndo(stored, NewPrunedUndoableBlock(delta)); err != nil {
		return StoredBlock{}, NewStoreError(err)
	}

	g.arm()
	return stored, nil
}

// AddToStoreFull archives block as prev's successor, recording its full
// transaction list as the undo record without touching the UTXO set.
// Used by the chain-selector to attach a side-branch block it has never
// verified, so that a later ConnectStored can re-verify it in full via
// ReplaySideBlock rather than trusting an unverified delta.
func (e *Engine) AddToStoreFull(prev StoredBlock, block *wire.MsgBlock) (StoredBlock, er.R) {
	if err := e.store.BeginBatch(); err != nil {
		return StoredBlock{}, NewStoreError(err)
	}
	g := newBatchGuard(e.store)
	defer g.close()

	txs := make([]StoredTransaction, len(block.Transactions))
	for i, tx := range block.Transactions {
		fv := txForVerifyFromMsgTx(tx)
		txs[i] = StoredTransaction{
			TxID:       fv.txid,
			IsCoinBase: fv.isCoinBase,
			Inputs:     fv.inputs,
			Outputs:    fv.outputs,
		}
	}
	stored := StoredBlock{
		Hash:      block.BlockHash(),
		Height:    prev.Height + 1,
		Timestamp: block.Header.Timestamp.Unix(),
	}
	if err := e.store.PutUndo(stored, NewFullUndoableBlock(txs)); err != nil {
		return StoredBlock{}, NewStoreError(err)
	}

	g.arm()
	return stored, nil
}

// ShouldVerifyTransactions always reports true: this engine has no
// header-only mode that skips consensus verification.
func (e *Engine) ShouldVerifyTransactions() bool {
	return true
}

// ConnectNew satisfies ChainEngine by delegating to Connect.
func (e *Engine) ConnectNew(height int32, block *wire.MsgBlock) (TxOutputChanges, er.R) {
	return e.Connect(height, block)
}

// ConnectStored satisfies ChainEngine by delegating to ReplaySideBlock.
func (e *Engine) ConnectStored(stored StoredBlock) (TxOutputChanges, er.R) {
	return e.ReplaySideBlock(stored)
}

// Disconnect satisfies ChainEngine by delegating to DisconnectBlock.
func (e *Engine) Disconnect(oldBlock StoredBlock) er.R {
	return e.DisconnectBlock(oldBlock)
}

// PreSetChainHead commits the batch left open by whichever connect,
// replay, or disconnect call the selector just made, now that it has
// chosen the candidate as the new chain head.
func (e *Engine) PreSetChainHead() er.R {
	return e.store.CommitBatch()
}

// NotSettingChainHead aborts the batch left open by the selector's most
// recent call: the candidate did not become the new chain head after
// all.
func (e *Engine) NotSettingChainHead() er.R {
	return e.store.AbortBatch()
}
