// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// fakeStore is a minimal, non-persistent Store for unit-testing the
// engine's control flow in isolation from any real backing store.
// Batching is tracked only as a boolean, matching how little the
// engine itself needs from Store's transactional contract for these
// tests; utxostore has its own tests against the real implementation.
type fakeStore struct {
	outputs    map[string]StoredOutput
	undo       map[chainhash.Hash]StoredUndoableBlock
	batchOpen  bool
	abortCalls int

	failBeginBatch  er.R
	failCommitBatch er.R
	failAbortBatch  er.R
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		outputs: make(map[string]StoredOutput),
		undo:    make(map[chainhash.Hash]StoredUndoableBlock),
	}
}

func outputKey(txid chainhash.Hash, index uint32) string {
	return fmt.Sprintf("%s:%d", txid, index)
}

func (s *fakeStore) BeginBatch() er.R {
	if s.failBeginBatch != nil {
		return s.failBeginBatch
	}
	s.batchOpen = true
	return nil
}

func (s *fakeStore) CommitBatch() er.R {
	if s.failCommitBatch != nil {
		return s.failCommitBatch
	}
	s.batchOpen = false
	return nil
}

func (s *fakeStore) AbortBatch() er.R {
	s.abortCalls++
	if s.failAbortBatch != nil {
		return s.failAbortBatch
	}
	s.batchOpen = false
	return nil
}

func (s *fakeStore) GetOutput(txid chainhash.Hash, index uint32) (StoredOutput, bool, er.R) {
	out, ok := s.outputs[outputKey(txid, index)]
	return out, ok, nil
}

func (s *fakeStore) AddUnspentOutput(out StoredOutput) er.R {
	s.outputs[outputKey(out.TxID, out.Index)] = out
	return nil
}

func (s *fakeStore) RemoveUnspentOutput(out StoredOutput) er.R {
	delete(s.outputs, outputKey(out.TxID, out.Index))
	return nil
}

func (s *fakeStore) HasUnspentOutputs(txid chainhash.Hash, expectedCount int) (bool, er.R) {
	for _, out := range s.outputs {
		if out.TxID == txid {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) PutUndo(block StoredBlock, undo StoredUndoableBlock) er.R {
	s.undo[block.Hash] = undo
	return nil
}

func (s *fakeStore) GetUndo(blockHash chainhash.Hash) (StoredUndoableBlock, bool, er.R) {
	undo, ok := s.undo[blockHash]
	return undo, ok, nil
}

var _ Store = (*fakeStore)(nil)
