// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"time"

	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// BlockHeader carries the fields a candidate block's identity and
// consensus eligibility depend on: previous-block linkage, the time used
// for BIP16 activation, and the proof-of-work fields (opaque to this
// module: header-chain selection lives with the external collaborator).
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32

	cachedHash *chainhash.Hash
}

// BlockHash returns the header's id.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	if h.cachedHash != nil {
		return *h.cachedHash
	}
	buf := make([]byte, 0, 96)
	buf = appendUint32(buf, uint32(h.Version))
	buf = append(buf, h.PrevBlock[:]...)
	buf = append(buf, h.MerkleRoot[:]...)
	buf = appendUint32(buf, uint32(h.Timestamp.Unix()))
	buf = appendUint32(buf, h.Bits)
	buf = appendUint32(buf, h.Nonce)
	hash := chainhash.DoubleHashH(buf)
	h.cachedHash = &hash
	return hash
}

// MsgBlock is a candidate block: a header plus its ordered transactions.
// The first transaction is always the coinbase.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// BlockHash returns the block's id, which is the header's id.
func (b *MsgBlock) BlockHash() chainhash.Hash {
	return b.Header.BlockHash()
}
