// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
	"github.com/nodecore/utxochain/wire"
)

func testEngineParams() *chaincfg.Params {
	return &chaincfg.Params{
		Name:                   "test",
		MaxMoney:               21000000 * 100000000,
		MaxBlockSigOps:         20000,
		CoinbaseMaturity:       2,
		SubsidyHalvingInterval: 210000,
		InitialSubsidy:         50 * 100000000,
	}
}

func coinbaseTx(lockTime uint32, value int64) *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Index: ^uint32(0)},
		}},
		TxOut:    []*wire.TxOut{{Value: value}},
		LockTime: lockTime,
	}
}

func spendTx(prevTxID chainhash.Hash, prevIndex uint32, value int64) *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: prevTxID, Index: prevIndex},
		}},
		TxOut: []*wire.TxOut{{Value: value}},
	}
}

func testBlock(prevBlock chainhash.Hash, nonce uint32, txs ...*wire.MsgTx) *wire.MsgBlock {
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   1,
			PrevBlock: prevBlock,
			Timestamp: time.Unix(1000000, 0),
			Nonce:     nonce,
		},
		Transactions: txs,
	}
}

func TestConnectGenesisBlock(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, Config{Params: testEngineParams()})

	cb := coinbaseTx(0, 50*100000000)
	block := testBlock(chainhash.Hash{}, 1, cb)

	changes, err := e.Connect(0, block)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if len(changes.Created) != 1 {
		t.Fatalf("expected 1 created output, got %d", len(changes.Created))
	}
	if !store.batchOpen {
		t.Error("Connect must leave the batch open for the chain-selector to commit")
	}

	undo, ok, err := store.GetUndo(block.BlockHash())
	if err != nil || !ok {
		t.Fatalf("expected an undo record for the connected block, ok=%v err=%v", ok, err)
	}
	if undo.Kind() != KindPruned {
		t.Error("Connect must always archive the pruned delta, never the full transaction list")
	}
}

func TestConnectRejectsEmptyBlock(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, Config{Params: testEngineParams()})

	_, err := e.Connect(0, testBlock(chainhash.Hash{}, 1))
	if !ErrNoTransactions.Is(err) {
		t.Errorf("expected ErrNoTransactions, got %v", err)
	}
	if store.batchOpen {
		t.Error("a rejected block must leave no open batch")
	}
}

func TestConnectRejectsCheckpointMismatch(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	params.Checkpoints = []chaincfg.Checkpoint{
		{Height: 0, Hash: chainhash.DoubleHashH([]byte("the one true genesis"))},
	}
	e := NewEngine(store, Config{Params: params})

	block := testBlock(chainhash.Hash{}, 1, coinbaseTx(0, 50*100000000))
	_, err := e.Connect(0, block)
	if !ErrCheckpointMismatch.Is(err) {
		t.Errorf("expected ErrCheckpointMismatch, got %v", err)
	}
}

func TestConnectSpendMatureCoinbase(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	cb := coinbaseTx(0, 50*100000000)
	genesis := testBlock(chainhash.Hash{}, 1, cb)
	if _, err := e.Connect(0, genesis); err != nil {
		t.Fatalf("Connect(genesis) error: %v", err)
	}
	store.CommitBatch()

	// Coinbase matures after CoinbaseMaturity=2 confirmations: spendable
	// starting at height 2.
	for h := int32(1); h < params.CoinbaseMaturity; h++ {
		filler := testBlock(chainhash.Hash{byte(h)}, uint32(h)+1, coinbaseTx(uint32(h), 1))
		if _, err := e.Connect(h, filler); err != nil {
			t.Fatalf("Connect(height %d) error: %v", h, err)
		}
		store.CommitBatch()
	}

	spend := spendTx(cb.TxHash(), 0, 50*100000000)
	spendCb := coinbaseTx(999, 0)
	spendBlock := testBlock(chainhash.Hash{byte(params.CoinbaseMaturity)}, 1, spendCb, spend)

	if _, err := e.Connect(params.CoinbaseMaturity, spendBlock); err != nil {
		t.Fatalf("Connect(spend at maturity) error: %v", err)
	}
}

func TestConnectRejectsImmatureCoinbaseSpend(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	cb := coinbaseTx(0, 50*100000000)
	genesis := testBlock(chainhash.Hash{}, 1, cb)
	if _, err := e.Connect(0, genesis); err != nil {
		t.Fatalf("Connect(genesis) error: %v", err)
	}
	store.CommitBatch()

	spend := spendTx(cb.TxHash(), 0, 50*100000000)
	spendCb := coinbaseTx(999, 0)
	spendBlock := testBlock(genesis.BlockHash(), 1, spendCb, spend)

	_, err := e.Connect(1, spendBlock)
	if !ErrImmatureCoinbase.Is(err) {
		t.Errorf("expected ErrImmatureCoinbase, got %v", err)
	}
}

func TestConnectRejectsBIP30Duplicate(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	cb := coinbaseTx(0, 50*100000000)
	block := testBlock(chainhash.Hash{}, 1, cb)
	if _, err := e.Connect(0, block); err != nil {
		t.Fatalf("Connect(first) error: %v", err)
	}
	store.CommitBatch()

	// Same lockTime and content => same txid, and its output is still
	// unspent.
	dup := testBlock(block.BlockHash(), 2, coinbaseTx(0, 50*100000000))
	_, err := e.Connect(1, dup)
	if !ErrBIP30Duplicate.Is(err) {
		t.Errorf("expected ErrBIP30Duplicate, got %v", err)
	}
}

func TestConnectRejectsOverclaimedCoinbase(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	// Subsidy at height 0 is 50 coins; claiming more with no fees to
	// cover the difference must fail.
	cb := coinbaseTx(0, 51*100000000)
	block := testBlock(chainhash.Hash{}, 1, cb)

	_, err := e.Connect(0, block)
	if !ErrFeesOutOfRange.Is(err) {
		t.Errorf("expected ErrFeesOutOfRange, got %v", err)
	}
}

func TestDisconnectReversesConnect(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	cb := coinbaseTx(0, 50*100000000)
	block := testBlock(chainhash.Hash{}, 1, cb)
	if _, err := e.Connect(0, block); err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	store.CommitBatch()

	if _, ok, _ := store.GetOutput(cb.TxHash(), 0); !ok {
		t.Fatal("expected the coinbase output to be in the UTXO set after Connect")
	}

	stored := StoredBlock{Hash: block.BlockHash(), Height: 0}
	if err := e.DisconnectBlock(stored); err != nil {
		t.Fatalf("DisconnectBlock() error: %v", err)
	}
	store.CommitBatch()

	if _, ok, _ := store.GetOutput(cb.TxHash(), 0); ok {
		t.Error("expected the coinbase output to be gone after Disconnect")
	}
}

func TestDisconnectRejectsFullUndoRecord(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	hash := chainhash.DoubleHashH([]byte("side branch block"))
	store.undo[hash] = NewFullUndoableBlock(nil)

	err := e.DisconnectBlock(StoredBlock{Hash: hash, Height: 5})
	if err == nil {
		t.Fatal("expected an error disconnecting a full (never-connected) undo record")
	}
}

func TestReplaySideBlockTrustsPrunedDelta(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	out := StoredOutput{TxID: chainhash.DoubleHashH([]byte("archived tx")), Index: 0, Value: 5000, Height: 7}
	hash := chainhash.DoubleHashH([]byte("archived block"))
	store.undo[hash] = NewPrunedUndoableBlock(TxOutputChanges{Created: []StoredOutput{out}})

	changes, err := e.ReplaySideBlock(StoredBlock{Hash: hash, Height: 7, Timestamp: 1000000})
	if err != nil {
		t.Fatalf("ReplaySideBlock() error: %v", err)
	}
	if len(changes.Created) != 1 {
		t.Fatalf("expected the trusted delta to be returned verbatim")
	}
	if _, ok, _ := store.GetOutput(out.TxID, 0); !ok {
		t.Error("expected the created output to be applied to the UTXO set")
	}
}

func TestReplaySideBlockReverifiesFullRecord(t *testing.T) {
	store := newFakeStore()
	params := testEngineParams()
	e := NewEngine(store, Config{Params: params})

	cb := coinbaseTx(0, 51*100000000)
	hash := chainhash.DoubleHashH([]byte("side branch full block"))
	store.undo[hash] = NewFullUndoableBlock([]StoredTransaction{{
		TxID:       cb.TxHash(),
		IsCoinBase: true,
		Outputs:    []StoredOutputSpec{{Value: 51 * 100000000}},
	}})

	_, err := e.ReplaySideBlock(StoredBlock{Hash: hash, Height: 0, Timestamp: 1000000})
	if !ErrFeesOutOfRange.Is(err) {
		t.Errorf("expected re-verification to reject the overclaimed coinbase, got %v", err)
	}
}

func TestReplaySideBlockPropagatesPrunedError(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, Config{Params: testEngineParams()})

	hash := chainhash.DoubleHashH([]byte("never archived"))
	_, err := e.ReplaySideBlock(StoredBlock{Hash: hash, Height: 0})
	if !IsPrunedError(err) {
		t.Errorf("expected a PrunedError for a block with no undo record, got %v", err)
	}
}
