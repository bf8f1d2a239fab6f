// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"testing"
	"time"

	"github.com/nodecore/utxochain/blockchain"
	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
	"github.com/nodecore/utxochain/database"
	"github.com/nodecore/utxochain/database/memdb"
	"github.com/nodecore/utxochain/utxostore"
	"github.com/nodecore/utxochain/wire"
)

func newTestEngine(t *testing.T) (blockchain.ChainEngine, *chaincfg.Params) {
	t.Helper()
	db, err := database.Create(memdb.DbType)
	if err != nil {
		t.Fatalf("database.Create() error: %v", err)
	}
	store := utxostore.New(db)
	params := &chaincfg.Params{
		Name:                   "reorg-test",
		MaxMoney:               21000000 * 100000000,
		MaxBlockSigOps:         20000,
		CoinbaseMaturity:       100,
		SubsidyHalvingInterval: 210000,
		InitialSubsidy:         50 * 100000000,
	}
	return blockchain.NewEngine(store, blockchain.Config{Params: params}), params
}

func reorgCoinbase(seed byte, value int64) *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Index: ^uint32(0)},
		}},
		TxOut:    []*wire.TxOut{{Value: value}},
		LockTime: uint32(seed),
	}
}

func reorgBlock(prev chainhash.Hash, seed byte, txs ...*wire.MsgTx) *wire.MsgBlock {
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: prev,
			Timestamp: time.Unix(2000000, 0),
			Nonce:     uint32(seed),
		},
		Transactions: txs,
	}
}

// TestTwoBlockReorg walks through connecting a one-block main chain,
// archiving a competing side-branch block alongside it, then (once the
// side branch is chosen) disconnecting the old main-chain block and
// replaying the archived one: the sequence an external chain-selector
// drives through ChainEngine.
func TestTwoBlockReorg(t *testing.T) {
	engine, _ := newTestEngine(t)

	mainBlock := reorgBlock(chainhash.Hash{}, 1, reorgCoinbase(1, 50*100000000))
	mainChanges, err := engine.ConnectNew(0, mainBlock)
	if err != nil {
		t.Fatalf("ConnectNew(main) error: %v", err)
	}
	if err := engine.PreSetChainHead(); err != nil {
		t.Fatalf("PreSetChainHead() error: %v", err)
	}
	if len(mainChanges.Created) != 1 {
		t.Fatalf("expected 1 output created by the main chain block")
	}

	sideBlock := reorgBlock(chainhash.Hash{}, 2, reorgCoinbase(2, 50*100000000))
	sideStored, err := engine.AddToStoreFull(blockchain.StoredBlock{}, sideBlock)
	if err != nil {
		t.Fatalf("AddToStoreFull(side) error: %v", err)
	}
	if err := engine.PreSetChainHead(); err != nil {
		t.Fatalf("PreSetChainHead() after archiving the side block error: %v", err)
	}

	// The selector now prefers the side branch: disconnect the old main
	// chain head and connect the archived side block in its place.
	if err := engine.Disconnect(blockchain.StoredBlock{Hash: mainBlock.BlockHash(), Height: 0}); err != nil {
		t.Fatalf("Disconnect(main) error: %v", err)
	}
	if err := engine.PreSetChainHead(); err != nil {
		t.Fatalf("PreSetChainHead() after disconnect error: %v", err)
	}

	sideChanges, err := engine.ConnectStored(sideStored)
	if err != nil {
		t.Fatalf("ConnectStored(side) error: %v", err)
	}
	if err := engine.PreSetChainHead(); err != nil {
		t.Fatalf("PreSetChainHead() after ConnectStored error: %v", err)
	}
	if len(sideChanges.Created) != 1 {
		t.Fatalf("expected the replayed side block to re-verify and create 1 output")
	}
}

func TestNotSettingChainHeadAbandonsCandidate(t *testing.T) {
	engine, _ := newTestEngine(t)

	block := reorgBlock(chainhash.Hash{}, 9, reorgCoinbase(9, 50*100000000))
	if _, err := engine.ConnectNew(0, block); err != nil {
		t.Fatalf("ConnectNew() error: %v", err)
	}
	if err := engine.NotSettingChainHead(); err != nil {
		t.Fatalf("NotSettingChainHead() error: %v", err)
	}

	// A second, different candidate at the same height must be free to
	// connect: the abort closed the first candidate's batch, and the
	// store refuses to begin a new batch while one is still open.
	other := reorgBlock(chainhash.Hash{}, 10, reorgCoinbase(10, 50*100000000))
	if _, err := engine.ConnectNew(0, other); err != nil {
		t.Fatalf("ConnectNew(other) error: %v", err)
	}
	if err := engine.PreSetChainHead(); err != nil {
		t.Fatalf("PreSetChainHead() error: %v", err)
	}
}
