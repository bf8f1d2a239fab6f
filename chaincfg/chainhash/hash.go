// Package chainhash provides the 256-bit identifier used throughout this
// module as both transaction id and block id.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/nodecore/utxochain/btcutil/er"
)

// HashSize is the number of bytes in a Hash.
const HashSize = 32

// Hash is an opaque 256-bit block or transaction identifier.
type Hash [HashSize]byte

var ErrHashStrSize = er.GenericErrorType.CodeWithDetail("ErrHashStrSize",
	"hex string does not encode a 32-byte hash")

// String returns the Hash as a hex string in the reversed byte order
// Bitcoin-style displays use (last byte first, i.e. most-significant
// byte first when the hash is read as a little-endian number).
func (h Hash) String() string {
	var reversed [HashSize]byte
	for i := 0; i < HashSize; i++ {
		reversed[i] = h[HashSize-1-i]
	}
	return hex.EncodeToString(reversed[:])
}

// IsZero reports whether h is the all-zero hash, used as the coinbase's
// reserved previous-outpoint hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// NewFromStr parses a reversed-hex-encoded hash, the same display order
// String produces.
func NewFromStr(s string) (Hash, er.R) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, er.E(err)
	}
	if len(b) != HashSize {
		return h, ErrHashStrSize.New(s, nil)
	}
	for i := 0; i < HashSize; i++ {
		h[i] = b[HashSize-1-i]
	}
	return h, nil
}

// DoubleHashH computes sha256(sha256(b)), the hash function used for
// transaction and block ids throughout the network.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return Hash(second)
}
