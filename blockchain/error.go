// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
)

// chainErr identifies a kind of error raised by the block-connect,
// reorg-replay, or block-disconnect engines.
var chainErr er.ErrorType = er.NewErrorType("blockchain.Err")

// VerificationError variants, one per named consensus rule. A caller
// that needs to distinguish "which rule" decodes the returned er.R
// against chainErr (via chainErr.Decode) and switches on these codes.
var (
	// ErrNoTransactions indicates a block arrived with no transactions
	// at all, not even a coinbase.
	ErrNoTransactions = chainErr.Code("ErrNoTransactions")

	// ErrCheckpointMismatch indicates a block's hash disagrees with a
	// checkpoint recorded at its height.
	ErrCheckpointMismatch = chainErr.Code("ErrCheckpointMismatch")

	// ErrBIP30Duplicate indicates a transaction shares a txid with one
	// whose outputs are not yet fully spent.
	ErrBIP30Duplicate = chainErr.Code("ErrBIP30Duplicate")

	// ErrMissingOutput indicates an input references an output that
	// does not exist in the UTXO set (missing or already spent).
	ErrMissingOutput = chainErr.Code("ErrMissingOutput")

	// ErrImmatureCoinbase indicates an input spends a coinbase output
	// before it has accrued CoinbaseMaturity confirmations.
	ErrImmatureCoinbase = chainErr.Code("ErrImmatureCoinbase")

	// ErrScriptError indicates a script failed to parse or failed
	// verification.
	ErrScriptError = chainErr.Code("ErrScriptError")

	// ErrSigOpsExceeded indicates the block's cumulative signature
	// operation count exceeds MaxBlockSigOps.
	ErrSigOpsExceeded = chainErr.Code("ErrSigOpsExceeded")

	// ErrValueOutOfRange indicates a transaction's input or output
	// value is negative, exceeds MaxMoney, or (for non-coinbase
	// transactions) spends more than it consumes.
	ErrValueOutOfRange = chainErr.Code("ErrValueOutOfRange")

	// ErrFeesOutOfRange indicates total fees exceed MaxMoney, or the
	// coinbase claims more than subsidy(height)+fees.
	ErrFeesOutOfRange = chainErr.Code("ErrFeesOutOfRange")

	// ErrMissingTransactions names a stored undoable block lacking the
	// form a caller needs. No code in this package returns it: the
	// StoredUndoableBlock accessors panic when asked for the wrong form,
	// and a block with no transactions is reported as ErrNoTransactions.
	ErrMissingTransactions = chainErr.Code("ErrMissingTransactions")
)

// storeErr wraps failures surfaced by the Store implementation: I/O
// faults, corruption, anything opaque to the engine itself. Always
// accompanied by an abort_batch before propagation.
var storeErr er.ErrorType = er.NewErrorType("blockchain.StoreErr")

var ErrStoreFailure = storeErr.Code("ErrStoreFailure")

// NewStoreError wraps an underlying store failure as a StoreError.
func NewStoreError(cause er.R) er.R {
	return ErrStoreFailure.New("", cause)
}

// prunedErrType is a distinct error type (not a chainErr code) so callers
// can type-switch it apart from a VerificationError, per spec: a
// PrunedError means "can't service this request because the data was
// discarded", not "this block is invalid".
var prunedErrType er.ErrorType = er.NewErrorType("blockchain.PrunedErr")

var errPruned = prunedErrType.Code("ErrPruned")

// NewPrunedError builds a PrunedError naming the block whose undo data
// has been discarded.
func NewPrunedError(hash chainhash.Hash) er.R {
	return errPruned.New(hash.String(), nil)
}

// IsPrunedError reports whether err is a PrunedError, i.e. required
// undo data has been discarded by the store's prune policy.
func IsPrunedError(err er.R) bool {
	return errPruned.Is(err)
}

// AssertError identifies an invariant violated by this module's own
// code (a bug here), as distinct from a bad block or a store fault.
func AssertError(s string) er.R {
	return er.New("assertion failed: " + s)
}
