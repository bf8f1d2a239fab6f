// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// StoredOutput is the persistent form of a transaction output: the key
// (txid, index) plus everything the UTXO set must preserve bit-for-bit
// about it (script, value, height, is_coinbase).
type StoredOutput struct {
	TxID       chainhash.Hash
	Index      uint32
	Value      chaincfg.Amount
	Script     []byte
	Height     int32
	IsCoinBase bool
}

// StoredInput is one transaction input as delivered in a candidate
// block: the output it spends, plus its unlocking script.
type StoredInput struct {
	PrevTxID        chainhash.Hash
	PrevIndex       uint32
	SignatureScript []byte
}

// StoredOutputSpec is the shape of one output of a transaction as
// delivered in a candidate block, prior to being assigned a height and
// becoming a StoredOutput.
type StoredOutputSpec struct {
	Value  chaincfg.Amount
	Script []byte
}

// StoredTransaction is a transaction as kept in the undo archive's
// full-transaction form: the same content a candidate block carries,
// but with an explicit height for each output so it can be replayed
// exactly as it was first verified.
type StoredTransaction struct {
	TxID       chainhash.Hash
	IsCoinBase bool
	Inputs     []StoredInput
	Outputs    []StoredOutputSpec
}

// TxOutputChanges is an undo delta: the outputs a block created and the
// outputs it spent, each a StoredOutput, in no particular semantic
// order. Replaying `Created` as "add" and `Spent` as "remove" on the
// pre-block UTXO set yields the post-block set; the inverse reverses it
// exactly.
type TxOutputChanges struct {
	Created []StoredOutput
	Spent   []StoredOutput
}

// StoredBlock is a block's identity as the header chain (out of scope
// here) would maintain it: enough for the undo archive to key its
// records by hash and height without repeating the full header.
type StoredBlock struct {
	Hash      chainhash.Hash
	Height    int32
	Timestamp int64
}
