// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the consensus parameters consumed by the
// block-connect engine: network-wide constants plus the checkpoint
// table that pins the accepted chain and grandfathers historical
// anomalies.
package chaincfg

import "github.com/nodecore/utxochain/chaincfg/chainhash"

// Amount is a non-negative count of the smallest monetary unit.
type Amount int64

// Checkpoint is a hard-coded (height, block-hash) pair.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// Params carries the consensus-wide constants the block-connect and
// reorg-replay engines check against. A value type, constructed as a
// struct literal by the embedding application for each network it
// supports.
type Params struct {
	// Name identifies the network this set of parameters describes,
	// e.g. "mainnet". Purely informational.
	Name string

	// MaxMoney is MAX_MONEY: the largest value any single output, or
	// any single transaction's value_in/value_out, may carry.
	MaxMoney Amount

	// MaxBlockSigOps is MAX_BLOCK_SIGOPS: the sigop budget enforced
	// once BIP16 P2SH is active.
	MaxBlockSigOps int

	// CoinbaseMaturity is SPENDABLE_COINBASE_DEPTH: the number of
	// confirmations a coinbase output must accrue before it may be
	// spent.
	CoinbaseMaturity int32

	// BIP16Time is BIP16_ENFORCE_TIME: the block timestamp at or
	// after which P2SH sigop accounting is enforced.
	BIP16Time int64

	// SubsidyHalvingInterval is SUBSIDY_HALVING_INTERVAL: the number
	// of blocks between subsidy halvings.
	SubsidyHalvingInterval int32

	// InitialSubsidy is INITIAL_SUBSIDY: the block reward before any
	// halving.
	InitialSubsidy Amount

	// Checkpoints is the ordered (by Height) checkpoint table.
	Checkpoints []Checkpoint

	checkpointsByHeight map[int32]chainhash.Hash
}

// byHeight lazily builds and caches the height->hash lookup used by
// Passes and IsCheckpoint. Params is normally constructed once and used
// read-only for the life of the process, so this is not guarded by a
// mutex; callers must not mutate Checkpoints concurrently with lookups.
func (p *Params) byHeight() map[int32]chainhash.Hash {
	if p.checkpointsByHeight == nil {
		m := make(map[int32]chainhash.Hash, len(p.Checkpoints))
		for _, cp := range p.Checkpoints {
			m[cp.Height] = cp.Hash
		}
		p.checkpointsByHeight = m
	}
	return p.checkpointsByHeight
}

// IsCheckpoint reports whether height is named in the checkpoint table.
func (p *Params) IsCheckpoint(height int32) bool {
	_, ok := p.byHeight()[height]
	return ok
}

// Passes reports whether hash is acceptable at height: true if no
// checkpoint names that height, or if the checkpoint's hash matches.
func (p *Params) Passes(height int32, hash chainhash.Hash) bool {
	want, ok := p.byHeight()[height]
	if !ok {
		return true
	}
	return want == hash
}
