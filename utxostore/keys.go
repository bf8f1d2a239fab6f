package utxostore

import (
	"encoding/binary"

	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// utxoTxPrefix is every unspent-output key's prefix for a given txid:
// 'u' + the 32-byte hash, with no index suffix. A scan over this prefix
// finds every currently-unspent output of that transaction.
func utxoTxPrefix(txid chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = utxoPrefix
	copy(key[1:], txid[:])
	return key
}

// utxoKey is one unspent output's full key: utxoTxPrefix plus its
// big-endian output index, so that keys for the same transaction sort
// together in index order.
func utxoKey(txid chainhash.Hash, index uint32) []byte {
	prefix := utxoTxPrefix(txid)
	key := make([]byte, len(prefix)+4)
	copy(key, prefix)
	binary.BigEndian.PutUint32(key[len(prefix):], index)
	return key
}

// undoKey is a block's undo-record key: 'd' + its 32-byte hash.
func undoKey(blockHash chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = undoPrefix
	copy(key[1:], blockHash[:])
	return key
}
