// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire defines the on-the-wire transaction and block shapes the
// block-connect engine consumes. Serialization/deserialization of these
// shapes across the network is out of scope (peer-to-peer networking is
// an external collaborator per this module's purpose); only the in-memory
// field layout a caller constructs candidate blocks from is needed here.
package wire

import "github.com/nodecore/utxochain/chaincfg/chainhash"

// OutPoint identifies a specific transaction output: (txid, output
// index).
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// TxIn is a transaction input: the OutPoint it spends plus the script
// that unlocks it. The coinbase input's PreviousOutPoint has a zero
// Hash and Index 0xffffffff.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
}

// TxOut is a transaction output: a value plus the script that locks it.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// MsgTx is a single transaction as delivered in a candidate block.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32

	cachedHash *chainhash.Hash
}

// IsCoinBase reports whether tx is the coinbase transaction: exactly one
// input whose OutPoint is the reserved null value.
func (tx *MsgTx) IsCoinBase() bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prev := tx.TxIn[0].PreviousOutPoint
	return prev.Hash.IsZero() && prev.Index == ^uint32(0)
}

// TxHash returns the transaction's id, computed (and cached) from a
// deterministic encoding of its fields. A real network codec would hash
// the exact wire serialization; this module treats that codec as
// supplied by the surrounding collaborator and only needs a stable,
// collision-resistant identifier for UTXO bookkeeping and tests.
func (tx *MsgTx) TxHash() chainhash.Hash {
	if tx.cachedHash != nil {
		return *tx.cachedHash
	}
	h := chainhash.DoubleHashH(tx.serializeForHash())
	tx.cachedHash = &h
	return h
}

func (tx *MsgTx) serializeForHash() []byte {
	buf := make([]byte, 0, 64)
	buf = appendUint32(buf, uint32(tx.Version))
	for _, in := range tx.TxIn {
		buf = append(buf, in.PreviousOutPoint.Hash[:]...)
		buf = appendUint32(buf, in.PreviousOutPoint.Index)
		buf = appendUint32(buf, uint32(len(in.SignatureScript)))
		buf = append(buf, in.SignatureScript...)
	}
	for _, out := range tx.TxOut {
		buf = appendUint64(buf, uint64(out.Value))
		buf = appendUint32(buf, uint32(len(out.PkScript)))
		buf = append(buf, out.PkScript...)
	}
	buf = appendUint32(buf, tx.LockTime)
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendUint64(buf []byte, v uint64) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}
