// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/wire"
)

// ChainEngine is the capability interface a generic header-chain
// selector (out of scope here) consumes to drive block-connect,
// reorg-replay, and block-disconnect. The selector only ever sees
// ChainEngine, never the concrete Engine type, so block-connect
// behavior can be injected without the selector knowing its shape.
type ChainEngine interface {
	// AddToStoreWithUndo is the side-branch fast path: persist header
	// plus a pre-computed delta as the undoable record, without
	// touching the UTXO set. prev is the chain tip this block extends;
	// its Height+1 becomes the new block's height.
	AddToStoreWithUndo(prev StoredBlock, header wire.BlockHeader, delta TxOutputChanges) (StoredBlock, er.R)

	// AddToStoreFull is the full-block attach path: persist header
	// plus the full stored-transaction list as the undoable record, no
	// UTXO mutation yet.
	AddToStoreFull(prev StoredBlock, block *wire.MsgBlock) (StoredBlock, er.R)

	// ShouldVerifyTransactions is always true for this engine: it has no
	// header-only mode that skips verification.
	ShouldVerifyTransactions() bool

	// ConnectNew applies a newly-received block forward.
	ConnectNew(height int32, block *wire.MsgBlock) (TxOutputChanges, er.R)

	// ConnectStored re-applies a previously-archived block.
	ConnectStored(stored StoredBlock) (TxOutputChanges, er.R)

	// Disconnect reverses a block using its undo record.
	Disconnect(oldBlock StoredBlock) er.R

	// PreSetChainHead commits the batch opened by whichever of the
	// above the selector just called, now that it has decided the
	// candidate becomes the new chain head.
	PreSetChainHead() er.R

	// NotSettingChainHead aborts the open batch: the selector decided
	// the candidate does not extend the best chain after all.
	NotSettingChainHead() er.R
}
