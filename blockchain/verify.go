// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/nodecore/utxochain/btcutil/er"
	"github.com/nodecore/utxochain/chaincfg"
	"github.com/nodecore/utxochain/chaincfg/chainhash"
	"github.com/nodecore/utxochain/txscript"
	"github.com/nodecore/utxochain/wire"
)

// txForVerify is the shape verifyTransactions needs, common to a
// freshly-received wire.MsgTx and an archived StoredTransaction. This
// is the single factoring point for block-connect and reorg-replay:
// they differ only in where the transaction list comes from, not in
// how it is checked.
type txForVerify struct {
	txid       chainhash.Hash
	isCoinBase bool
	inputs     []StoredInput
	outputs    []StoredOutputSpec
}

func txForVerifyFromMsgTx(tx *wire.MsgTx) txForVerify {
	inputs := make([]StoredInput, len(tx.TxIn))
	for i, in := range tx.TxIn {
		inputs[i] = StoredInput{
			PrevTxID:        in.PreviousOutPoint.Hash,
			PrevIndex:       in.PreviousOutPoint.Index,
			SignatureScript: in.SignatureScript,
		}
	}
	outputs := make([]StoredOutputSpec, len(tx.TxOut))
	for i, out := range tx.TxOut {
		outputs[i] = StoredOutputSpec{Value: chaincfg.Amount(out.Value), Script: out.PkScript}
	}
	return txForVerify{
		txid:       tx.TxHash(),
		isCoinBase: tx.IsCoinBase(),
		inputs:     inputs,
		outputs:    outputs,
	}
}

func txForVerifyFromStored(tx StoredTransaction) txForVerify {
	return txForVerify{
		txid:       tx.TxID,
		isCoinBase: tx.IsCoinBase,
		inputs:     tx.Inputs,
		outputs:    tx.Outputs,
	}
}

// verifyTransactions runs the full per-transaction consensus check
// (BIP30, maturity, script/sigop accounting, fee balance) shared by
// Connect and ReplaySideBlock's re-verification path, parameterized
// over the transaction source. It mutates store via
// AddUnspentOutput/RemoveUnspentOutput as a side effect of verification
// and returns the resulting delta. The caller is responsible for the
// surrounding BeginBatch/abort-on-error bracket, the checkpoint check,
// and (for Connect only) archiving the resulting undo record.
func verifyTransactions(
	store Store,
	params *chaincfg.Params,
	verify txscript.Verify,
	height int32,
	blockTime int64,
	isCheckpoint bool,
	txs []txForVerify,
) (TxOutputChanges, er.R) {
	if len(txs) == 0 {
		return TxOutputChanges{}, ErrNoTransactions.New("", nil)
	}

	enforceP2SH := blockTime >= params.BIP16Time
	sigOps := 0
	var created, spent []StoredOutput
	var totalFees chaincfg.Amount
	var coinbaseValue chaincfg.Amount
	haveCoinbaseValue := false

	// BIP30: no two transactions may share a txid while outputs of the
	// earlier one remain unspent, unless this height is grandfathered
	// by a checkpoint.
	if !isCheckpoint {
		for _, tx := range txs {
			exists, err := store.HasUnspentOutputs(tx.txid, len(tx.outputs))
			if err != nil {
				return TxOutputChanges{}, NewStoreError(err)
			}
			if exists {
				return TxOutputChanges{}, ErrBIP30Duplicate.New(tx.txid.String(), nil)
			}
		}
	}

	for _, tx := range txs {
		if enforceP2SH && !tx.isCoinBase {
			for _, out := range tx.outputs {
				sigOps += txscript.GetSigOpCount(out.Script)
			}
		}

		var valueIn chaincfg.Amount
		if !tx.isCoinBase {
			for _, in := range tx.inputs {
				prev, ok, err := store.GetOutput(in.PrevTxID, in.PrevIndex)
				if err != nil {
					return TxOutputChanges{}, NewStoreError(err)
				}
				if !ok {
					return TxOutputChanges{}, ErrMissingOutput.New(in.PrevTxID.String(), nil)
				}

				if prev.IsCoinBase && height-prev.Height < params.CoinbaseMaturity {
					return TxOutputChanges{}, ErrImmatureCoinbase.New(prev.TxID.String(), nil)
				}

				valueIn += prev.Value

				if enforceP2SH && txscript.IsPayToScriptHash(prev.Script) {
					sigOps += txscript.GetPreciseSigOpCount(in.SignatureScript, prev.Script, true)
					if sigOps > params.MaxBlockSigOps {
						return TxOutputChanges{}, ErrSigOpsExceeded.New("", nil)
					}
				}

				if verify != nil && !verify(in.SignatureScript, prev.Script) {
					return TxOutputChanges{}, ErrScriptError.New(in.PrevTxID.String(), nil)
				}

				if err := store.RemoveUnspentOutput(prev); err != nil {
					return TxOutputChanges{}, NewStoreError(err)
				}
				spent = append(spent, prev)
			}

			if sigOps > params.MaxBlockSigOps {
				return TxOutputChanges{}, ErrSigOpsExceeded.New("", nil)
			}
		}

		var valueOut chaincfg.Amount
		for i, out := range tx.outputs {
			valueOut += out.Value
			if txscript.IsUnspendable(out.Script) {
				// Provably unspendable: never enters the UTXO set, so
				// nothing to add or later prune.
				continue
			}
			stored := StoredOutput{
				TxID:       tx.txid,
				Index:      uint32(i),
				Value:      out.Value,
				Script:     out.Script,
				Height:     height,
				IsCoinBase: tx.isCoinBase,
			}
			if err := store.AddUnspentOutput(stored); err != nil {
				return TxOutputChanges{}, NewStoreError(err)
			}
			created = append(created, stored)
		}

		if valueOut < 0 || valueOut > params.MaxMoney {
			return TxOutputChanges{}, ErrValueOutOfRange.New(tx.txid.String(), nil)
		}

		if tx.isCoinBase {
			coinbaseValue = valueOut
			haveCoinbaseValue = true
		} else {
			if valueIn < valueOut || valueIn > params.MaxMoney {
				return TxOutputChanges{}, ErrValueOutOfRange.New(tx.txid.String(), nil)
			}
			totalFees += valueIn - valueOut
		}
	}

	if !haveCoinbaseValue {
		return TxOutputChanges{}, ErrNoTransactions.New("no coinbase", nil)
	}

	if totalFees > params.MaxMoney {
		return TxOutputChanges{}, ErrFeesOutOfRange.New("", nil)
	}
	if Subsidy(params, height)+totalFees < coinbaseValue {
		return TxOutputChanges{}, ErrFeesOutOfRange.New("", nil)
	}

	return TxOutputChanges{Created: created, Spent: spent}, nil
}
