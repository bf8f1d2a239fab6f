// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/txscript"
	"github.com/nodecore/utxochain/wire"
)

// Config bundles the per-network knobs the engine needs beyond the
// Store it mutates: the consensus parameters and the pluggable
// script-verification hook.
type Config struct {
	Params *chaincfg.Params

	// Verify is called once per spent input as
	// Verify(sigScript, prevOutScript). Defaults to
	// txscript.AlwaysValid when nil, matching the upstream gap.
	Verify txscript.Verify
}

// Engine implements ChainEngine: the block-connect, reorg-replay, and
// block-disconnect core, bound to one Store and Config.
type Engine struct {
	store Store
	cfg   Config
}

// NewEngine constructs an Engine over store, using cfg. A nil
// cfg.Verify is replaced with txscript.AlwaysValid.
func NewEngine(store Store, cfg Config) *Engine {
	if cfg.Verify == nil {
		cfg.Verify = txscript.AlwaysValid
	}
	return &Engine{store: store, cfg: cfg}
}

func (e *Engine) verify() txscript.Verify {
	return e.cfg.Verify
}

// Connect applies block's transactions forward at height, performing
// every consensus check, and returns the resulting TxOutputChanges. On
// any failure the open batch has already been aborted; on success the
// batch is left open for the chain-selector to commit via
// PreSetChainHead.
func (e *Engine) Connect(height int32, block *wire.MsgBlock) (TxOutputChanges, er.R) {
	if len(block.Transactions) == 0 {
		return TxOutputChanges{}, ErrNoTransactions.New("", nil)
	}

	blockHash := block.BlockHash()
	if !e.cfg.Params.Passes(height, blockHash) {
		return TxOutputChanges{}, ErrCheckpointMismatch.New(blockHash.String(), nil)
	}

	if err := e.store.BeginBatch(); err != nil {
		return TxOutputChanges{}, NewStoreError(err)
	}
	g := newBatchGuard(e.store)
	defer g.close()

	txs := make([]txForVerify, len(block.Transactions))
	for i, tx := range block.Transactions {
		txs[i] = txForVerifyFromMsgTx(tx)
	}

	changes, err := verifyTransactions(
		e.store, e.cfg.Params, e.verify(),
		height, block.Header.Timestamp.Unix(),
		e.cfg.Params.IsCheckpoint(height),
		txs,
	)
	if err != nil {
		return TxOutputChanges{}, err
	}

	// The undo entry recorded at connect time is always the delta, not
	// the transaction list. It is written under the block's hash, so it
	// replaces any full record an earlier AddToStoreFull stored for the
	// same block.
	stored := StoredBlock{Hash: blockHash, Height: height, Timestamp: block.Header.Timestamp.Unix()}
	if err := e.store.PutUndo(stored, NewPrunedUndoableBlock(changes)); err != nil {
		return TxOutputChanges{}, NewStoreError(err)
	}

	g.arm()
	return changes, nil
}
