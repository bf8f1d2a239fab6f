// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/nodecore/utxochain/btcutil/er"

// batchGuard gives abort-on-error control flow without exceptions. A
// guard is opened alongside store.BeginBatch and deferred immediately.
// The engine itself never commits: commit is triggered later by the
// chain-selector's PreSetChainHead hook, so the guard's only job on a
// successful run is to leave the batch open; on any failure path it
// aborts before the error propagates. Every engine entry point follows
// the pattern:
//
//	if err := store.BeginBatch(); err != nil { return ..., err }
//	g := newBatchGuard(store)
//	defer g.close()
//	... fail-fast returns leave g disarmed, so close() aborts ...
//	g.arm()
//	return result, nil
type batchGuard struct {
	store Store
	armed bool
	done  bool
}

func newBatchGuard(store Store) *batchGuard {
	return &batchGuard{store: store}
}

// arm marks the run as successful: close will leave the batch open for
// the chain-selector rather than aborting it.
func (g *batchGuard) arm() {
	g.armed = true
}

// close aborts the batch unless arm was called first. Safe to call
// exactly once, normally via defer; a second call is a no-op.
func (g *batchGuard) close() er.R {
	if g.done || g.armed {
		g.done = true
		return nil
	}
	g.done = true
	return g.store.AbortBatch()
}
